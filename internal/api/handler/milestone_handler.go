package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientportal/project-portal/internal/api/metrics"
	"github.com/clientportal/project-portal/internal/core/ports"
)

// MilestoneHandler handles HTTP requests for project milestones.
type MilestoneHandler struct {
	service ports.MilestoneService
}

func NewMilestoneHandler(service ports.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{service: service}
}

// Create handles POST /projects/:id/milestones. Admin-only.
//
// @Summary      Add a milestone to a project
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Project id (ObjectID hex)"
// @Param        body  body      createMilestoneRequest  true  "Milestone details"
// @Success      201   {object}  milestoneResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/milestones [post]
func (h *MilestoneHandler) Create(c echo.Context) error {
	var req createMilestoneRequest
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

	milestone, err := h.service.Add(c.Request().Context(), claims, c.Param("id"), ports.AddMilestoneInput{
		Title:   req.Title,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.MilestonesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toMilestoneResponse(milestone))
}

// List handles GET /projects/:id/milestones, oldest first.
//
// @Summary      List a project's milestones
// @Tags         milestones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id (ObjectID hex)"
// @Success      200  {array}   milestoneResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id}/milestones [get]
func (h *MilestoneHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	milestones, err := h.service.List(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMilestoneResponses(milestones))
}
