package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// AuthUser represents an authenticated user from JWT
type AuthUser struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// contextKey is used for storing user in context
type contextKey string

const (
	userContextKey contextKey = "authenticated_user"
)

// Roles granting admin access
const (
	RoleAdmin   = "admin"
	RoleService = "service_role"
)

// JWTConfig holds the configuration for JWT middleware
type JWTConfig struct {
	Secret    string
	Logger    *zap.Logger
	SkipPaths []string // Paths to skip JWT validation
	// Optional lets requests without a token through as anonymous
	Optional bool
	// TokenQueryParam is read when the Authorization header is absent (websocket clients)
	TokenQueryParam string
}

func unauthorized(c echo.Context, message, code string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error": message,
		"code":  code,
	})
}

// JWTMiddleware validates HMAC signed tokens whose sub claim is the user id
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			tokenString, err := extractToken(c, config.TokenQueryParam)
			if err != nil {
				if config.Optional && err == errMissingToken {
					return next(c)
				}
				config.Logger.Warn("Rejected authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method),
					zap.Error(err))
				if err == errMissingToken {
					return unauthorized(c, "Authorization header required", "MISSING_AUTH_HEADER")
				}
				return unauthorized(c, "Invalid authorization header format. Expected: Bearer <token>", "INVALID_AUTH_FORMAT")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Secret), nil
			})
			if err != nil {
				config.Logger.Warn("JWT validation failed",
					zap.Error(err),
					zap.String("path", path))
				return unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				config.Logger.Warn("Invalid JWT claims", zap.String("path", path))
				return unauthorized(c, "Invalid token claims", "INVALID_CLAIMS")
			}

			sub, _ := claims.GetSubject()
			userID, err := uuid.Parse(sub)
			if err != nil {
				config.Logger.Warn("Invalid subject claim",
					zap.String("sub", sub),
					zap.String("path", path))
				return unauthorized(c, "Token subject must be a user id", "INVALID_SUBJECT")
			}

			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)
			authUser := &AuthUser{UserID: userID, Email: email, Role: role}

			ctx := context.WithValue(c.Request().Context(), userContextKey, authUser)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("user_id", userID.String())

			config.Logger.Debug("User authenticated successfully",
				zap.String("user_id", userID.String()),
				zap.String("path", path))

			return next(c)
		}
	}
}

var (
	errMissingToken = fmt.Errorf("missing token")
	errBadFormat    = fmt.Errorf("invalid authorization header format")
)

func extractToken(c echo.Context, queryParam string) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		if queryParam != "" {
			if token := c.QueryParam(queryParam); token != "" {
				return token, nil
			}
		}
		return "", errMissingToken
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", errBadFormat
	}
	return tokenString, nil
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(c echo.Context) (*AuthUser, error) {
	user, ok := c.Request().Context().Value(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user found in context")
	}
	return user, nil
}

// ViewerID returns the authenticated user id or uuid.Nil for anonymous requests
func ViewerID(c echo.Context) uuid.UUID {
	user, err := GetUserFromContext(c)
	if err != nil {
		return uuid.Nil
	}
	return user.UserID
}

// RequireAdmin allows admin or service role tokens, and users flagged as admin in their profile
func RequireAdmin(users domainRepo.UserRepository, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUserFromContext(c)
			if err != nil {
				return unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			}
			if user.Role == RoleAdmin || user.Role == RoleService {
				return next(c)
			}

			profile, err := users.GetByID(c.Request().Context(), user.UserID)
			if err != nil {
				logger.Error("Failed to load profile for admin check",
					zap.String("user_id", user.UserID.String()),
					zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "Failed to verify permissions",
					"code":  "INTERNAL",
				})
			}
			if profile == nil || !profile.IsAdmin {
				logger.Warn("Admin access denied",
					zap.String("user_id", user.UserID.String()),
					zap.String("path", c.Request().URL.Path))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "Admin access required",
					"code":  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
