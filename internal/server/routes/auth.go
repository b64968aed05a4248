package routes

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fr0stylo/enms/internal/app/domain"
	appservices "github.com/fr0stylo/enms/internal/app/services"
	"github.com/fr0stylo/enms/internal/observability"
)

const authUserKey = "authUser"

// RequireBasicAuth checks HTTP basic credentials against stored users and
// records the caller on the request context.
func RequireBasicAuth(auth *appservices.AuthService) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Path(), "/is_alive")
		},
		Realm: "enms",
		Validator: func(name, password string, c echo.Context) (bool, error) {
			user, err := auth.Authenticate(c.Request().Context(), name, password)
			if err != nil {
				if errors.Is(err, appservices.ErrInvalidCredentials) {
					return false, nil
				}
				return false, err
			}
			ctx := observability.WithRequestIdentity(c.Request().Context(), user.ID, user.Name)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(authUserKey, user)
			return true, nil
		},
	})
}

// AuthUser returns the user authenticated for the request.
func AuthUser(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(authUserKey).(domain.User)
	return user, ok
}
