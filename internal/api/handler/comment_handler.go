package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientportal/project-portal/internal/api/metrics"
	"github.com/clientportal/project-portal/internal/core/ports"
)

// CommentHandler handles HTTP requests for project comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /projects/:id/comments. Allowed for admins and the
// owning client.
//
// @Summary      Post a comment on a project
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id (ObjectID hex)"
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
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

	comment, err := h.service.Add(c.Request().Context(), claims, c.Param("id"), req.Message)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.WithLabelValues(string(comment.AuthorRole)).Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// List handles GET /projects/:id/comments, newest first.
//
// @Summary      List a project's comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id (ObjectID hex)"
// @Success      200  {array}   commentResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	comments, err := h.service.List(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCommentResponses(comments))
}
