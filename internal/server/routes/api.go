package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/enms/internal/app/domain"
	appservices "github.com/fr0stylo/enms/internal/app/services"
)

// APIRoutes registers the REST endpoints under /rest.
type APIRoutes struct {
	factory *appservices.Factory
	runs    *appservices.JobRunService
	auth    *appservices.AuthService
}

// NewAPIRoutes constructs REST routes.
func NewAPIRoutes(factory *appservices.Factory, runs *appservices.JobRunService, auth *appservices.AuthService) *APIRoutes {
	return &APIRoutes{factory: factory, runs: runs, auth: auth}
}

// RegisterRoutes registers REST endpoints. Everything except is_alive
// requires basic auth.
func (a *APIRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/rest", RequireBasicAuth(a.auth))

	api.GET("/is_alive", a.handleIsAlive)
	api.GET("/instance/:type/:name", a.handleGetInstance)
	api.DELETE("/instance/:type/:name", a.handleDeleteInstance)
	api.POST("/instance/:type", a.handleCreateInstance)
	api.PUT("/instance/:type", a.handleUpdateInstance)
	api.GET("/query/:type", a.handleQuery)
	api.POST("/run_job", a.handleRunJob)
	api.GET("/result/:name/:id", a.handleGetResult)
}

func (a *APIRoutes) handleIsAlive(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"name": "enms", "alive": true})
}

func (a *APIRoutes) handleGetInstance(c echo.Context) error {
	kind, err := domain.ParseKind(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	object, err := a.factory.Fetch(c.Request().Context(), kind, c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, object.Serialized())
}

func (a *APIRoutes) handleDeleteInstance(c echo.Context) error {
	kind, err := domain.ParseKind(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	name := c.Param("name")
	if err := a.factory.Delete(c.Request().Context(), kind, name); err != nil {
		return httpError(err)
	}
	a.forgetCredentials(kind)
	return c.JSON(http.StatusOK, map[string]string{"deleted": name})
}

func (a *APIRoutes) handleCreateInstance(c echo.Context) error {
	return a.saveInstance(c, a.factory.Create)
}

func (a *APIRoutes) handleUpdateInstance(c echo.Context) error {
	return a.saveInstance(c, a.factory.Update)
}

type saveFunc func(ctx context.Context, kind domain.Kind, properties map[string]any) (domain.Object, error)

func (a *APIRoutes) saveInstance(c echo.Context, save saveFunc) error {
	kind, err := domain.ParseKind(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	properties, err := bindProperties(c)
	if err != nil {
		return err
	}
	object, err := save(c.Request().Context(), kind, properties)
	if err != nil {
		return httpError(err)
	}
	a.forgetCredentials(kind)
	return c.JSON(http.StatusOK, object.Serialized())
}

// forgetCredentials drops cached logins whenever a user is saved or deleted.
func (a *APIRoutes) forgetCredentials(kind domain.Kind) {
	if kind == domain.KindUser {
		a.auth.Forget()
	}
}

func (a *APIRoutes) handleQuery(c echo.Context) error {
	kind, err := domain.ParseKind(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	objects, err := a.factory.Query(c.Request().Context(), kind, strings.TrimSpace(c.QueryParam("pool")))
	if err != nil {
		return httpError(err)
	}
	out := make([]map[string]any, 0, len(objects))
	for _, object := range objects {
		out = append(out, object.Serialized())
	}
	return c.JSON(http.StatusOK, out)
}

func (a *APIRoutes) handleRunJob(c echo.Context) error {
	properties, err := bindProperties(c)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(fmt.Sprint(properties["name"]))
	if properties["name"] == nil || name == "" {
		return httpError(domain.ErrNameRequired)
	}

	ctx := c.Request().Context()
	caller, _ := AuthUser(c)
	async := truthy(properties["async"])
	slog.InfoContext(ctx, "Run job requested", "job", name, "caller", caller.Name, "async", async)
	if async {
		run, err := a.runs.RunAsync(ctx, name)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusAccepted, map[string]any{
			"id":      run.ID,
			"success": true,
			"message": fmt.Sprintf("job %s started", name),
		})
	}

	run, err := a.runs.Run(ctx, name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":      run.ID,
		"success": run.Success,
		"results": run.Results,
	})
}

func (a *APIRoutes) handleGetResult(c echo.Context) error {
	run, err := a.runs.GetRun(c.Request().Context(), c.Param("name"), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	body := map[string]any{
		"id":         run.ID,
		"job":        run.Job,
		"success":    run.Success,
		"finished":   run.Finished(),
		"results":    run.Results,
		"started_at": run.StartedAt.Format(time.RFC3339),
	}
	if run.Finished() {
		body["ended_at"] = run.EndedAt.Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, body)
}

// bindProperties decodes a JSON object body. Path parameters are not merged in.
func bindProperties(c echo.Context) (map[string]any, error) {
	properties := map[string]any{}
	if err := new(echo.DefaultBinder).BindBody(c, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func truthy(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return false
	}
}
