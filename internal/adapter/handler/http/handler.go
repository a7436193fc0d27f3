package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/middleware/auth"
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

// RequestValidator adapts validator v10 to echo's Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request bodies
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate returns an INVALID_ARGUMENT error naming the first failing field
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.InvalidArgument("Invalid field "+fe.Field()+": failed "+fe.Tag(), err)
		}
		return apperrors.InvalidArgument("Invalid request body", err)
	}
	return nil
}

// bindAndValidate decodes the JSON body into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.InvalidArgument("Invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// uuidParam parses a path parameter as a uuid
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgument("Invalid "+name+" format", err)
	}
	return id, nil
}

// currentUser returns the authenticated caller or an UNAUTHENTICATED error
func currentUser(c echo.Context) (uuid.UUID, error) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return uuid.Nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "Authentication required", err)
	}
	return user.UserID, nil
}

// pageParams reads limit and offset, applying the default and maximum sizes
func pageParams(c echo.Context) (entity.Page, error) {
	var page entity.Page
	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError()
	if err != nil {
		return entity.Page{}, apperrors.InvalidArgument("Invalid pagination parameters", err)
	}
	if page.Limit < 0 || page.Offset < 0 {
		return entity.Page{}, apperrors.InvalidArgument("Pagination parameters must not be negative", nil)
	}
	return page.Normalize(), nil
}
