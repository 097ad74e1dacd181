package middleware

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fahrizal89/angkutin/internal/pkg/jwt"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "user_role"
)

// JWTAuthMiddleware creates a middleware for bearer token authentication.
// It sets user_id, username and user_role on the Echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(config.Secret),
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtpkg.ValidateToken(auth, config.Secret)
			if err != nil {
				return nil, err
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)

			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}

// ActorFromContext extracts the authenticated caller set by
// JWTAuthMiddleware. The zero Actor means "not authenticated".
func ActorFromContext(c echo.Context) models.Actor {
	actor := models.Actor{}
	if id, ok := c.Get(ContextUserID).(uuid.UUID); ok {
		actor.ID = id
	}
	if username, ok := c.Get(ContextUsername).(string); ok {
		actor.Username = username
	}
	if role, ok := c.Get(ContextRole).(models.Role); ok {
		actor.Role = role
	}
	return actor
}

// RequireRoles gates a route group to the given roles. Must run after
// JWTAuthMiddleware. Role mismatch is 403, never 401: the caller is known,
// just not allowed here.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.Role)
			if !ok {
				return utils.UnauthorizedResponse(c, "Missing role")
			}
			if _, ok := allowed[role]; !ok {
				return utils.ForbiddenResponse(c, "Insufficient role")
			}
			return next(c)
		}
	}
}
