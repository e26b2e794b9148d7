package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientportal/project-portal/internal/api/metrics"
	"github.com/clientportal/project-portal/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /projects. Admin-only.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), claims, ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		OwnerID:     req.ClientID,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(project.Status).Inc()
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// List handles GET /projects. Admins see all projects, clients only their
// own.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id (ObjectID hex)"
// @Success      200  {object}  projectResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// Update handles PATCH /projects/:id. Admin-only; only fields present in
// the request are applied.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id (ObjectID hex)"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), claims, c.Param("id"), ports.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(project))
}
