package errors

import (
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

// Validation errors surfaced to API callers
var (
	ErrCannotFollowSelf  = apperrors.InvalidArgument("Cannot follow yourself", nil)
	ErrUserNotFound      = apperrors.NotFound("User not found", nil)
	ErrFollowsNotAllowed = apperrors.Unauthorized("User does not allow followers", nil)
	ErrAlreadyFollowing  = apperrors.Conflict("Already following this user", nil)
	ErrNotFollowing      = apperrors.NotFound("Not following this user", nil)

	ErrProblemNotFound  = apperrors.NotFound("Problem not found", nil)
	ErrAlreadyFavorited = apperrors.Conflict("Problem already in favorites", nil)
	ErrNotFavorited     = apperrors.NotFound("Problem not in favorites", nil)

	ErrInvalidVisibility    = apperrors.InvalidArgument("Invalid visibility", nil)
	ErrReservedActivityType = apperrors.InvalidArgument("Activity type cannot be created directly", nil)
)
