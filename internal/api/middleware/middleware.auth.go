// Package middleware - authentication, authorization and the maintenance gate.
package middleware

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "github.com/InderX84/FarmX/internal/api/auth/models"
	authsvc "github.com/InderX84/FarmX/internal/api/auth/service"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/utility"
)

// AuthManager resolves bearer tokens to users, with a short cache in front of
// the database lookup.
type AuthManager struct {
	userService *authsvc.UserService
	cache       *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager returns the shared AuthManager, creating it on first use.
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService(nil)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize auth manager")
		}
		authManager = &AuthManager{
			userService: userService,
			cache:       utility.NewCache(time.Minute, 5*time.Minute),
		}
	})
	return authManager
}

// resolveUser validates the token signature and looks up its owner.
func (m *AuthManager) resolveUser(c fiber.Ctx, token string) (models.User, error) {
	var zero models.User

	if _, err := utility.ParseToken(global.ServerConfig.JwtSecret, token); err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return zero, common.ErrTokenExpired
		}
		return zero, common.ErrTokenInvalid
	}

	if cached, ok := m.cache.Get(token); ok {
		if user, ok := cached.(models.User); ok {
			return user, nil
		}
	}

	user, err := m.userService.FindByToken(c.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrTokenInvalid
		}
		return zero, err
	}

	m.cache.Set(token, user)
	return user, nil
}

// InvalidateToken drops a token from the cache, used after logout or role
// changes so stale sessions do not linger.
func (m *AuthManager) InvalidateToken(token string) {
	m.cache.Delete(token)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware authenticates the request and stores the user in locals.
// When roles are given, the user must hold one of them.
func AuthMiddleware(requiredRoles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		user, err := GetAuthManager().resolveUser(c, token)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		if !user.IsActive {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthCredentials,
				"Account has been deactivated", common.StatusUnauthorized, nil))
			return nil
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, role := range requiredRoles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				basehdl.HandleResponse(c, nil, common.ErrNotAuthorized)
				return nil
			}
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireAdmin guards admin-only routes.
func RequireAdmin() fiber.Handler {
	return AuthMiddleware(models.RoleAdmin)
}
