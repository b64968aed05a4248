package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appservices "github.com/fr0stylo/enms/internal/app/services"
)

// httpError maps classified application errors onto HTTP statuses. Anything
// unclassified is returned as is and rendered as a 500.
func httpError(err error) error {
	switch appservices.ClassifyError(err) {
	case appservices.ErrorNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case appservices.ErrorInvalidInput:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case appservices.ErrorUnauthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case appservices.ErrorConflict:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
