package routes_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appservices "github.com/fr0stylo/enms/internal/app/services"
	"github.com/fr0stylo/enms/internal/observability"
	"github.com/fr0stylo/enms/internal/server/routes"
)

var _ = Describe("RequireBasicAuth", func() {
	var e *echo.Echo

	BeforeEach(func() {
		e = echo.New()
		e.Use(routes.RequireBasicAuth(appservices.NewAuthService(store, time.Minute)))
		e.GET("/whoami", func(c echo.Context) error {
			user, ok := routes.AuthUser(c)
			if !ok {
				return c.NoContent(http.StatusNoContent)
			}
			ctxName, _ := observability.UserNameFromContext(c.Request().Context())
			return c.JSON(http.StatusOK, map[string]string{"user": user.Name, "context": ctxName})
		})
	})

	It("exposes the authenticated user to handlers", func() {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.SetBasicAuth("admin", "admin")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"user":"admin"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"context":"admin"`))
	})

	It("never reaches the handler without credentials", func() {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})
})
