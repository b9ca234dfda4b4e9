package session

import (
	"admin-console/core/console"
	"admin-console/core/logger"
	"admin-console/core/server"
	"admin-console/core/tabs"
	"admin-console/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for console sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = console.Snapshot{}
	return &Handler{service: service}
}

// CreateResponse is the body returned for a new session.
type CreateResponse struct {
	ID string `json:"id"`
}

// TabRequest declares one tab of a response.
type TabRequest struct {
	ResponseID string `json:"response_id"`
	tabs.Tab
}

// ErrorRequest records one field error.
type ErrorRequest struct {
	ClientID string `json:"client_id"`
	Detail   string `json:"detail"`
}

// ClipboardRequest replaces the clipboard content.
type ClipboardRequest struct {
	IDs []string `json:"ids"`
}

// PagerRequest resizes the result behind the scroller.
type PagerRequest struct {
	Total int `json:"total"`
	Fetch int `json:"fetch"`
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/page", h.HandleBeginPage)

	group.Post("/:id/tabs", h.HandleAddTab)
	group.Post("/:id/tabs/:pos/toggle", h.HandleToggleTab)
	group.Get("/:id/tabs", h.HandleGetTabs)

	group.Post("/:id/errors", h.HandleAddError)
	group.Get("/:id/errors", h.HandleGetErrors)

	group.Put("/:id/clipboard", h.HandleSetClipboard)
	group.Get("/:id/clipboard", h.HandleGetClipboard)
	group.Delete("/:id/clipboard", h.HandleClearClipboard)

	group.Put("/:id/pager", h.HandleResetPager)
	group.Post("/:id/pager/:move", h.HandleMovePager)
	group.Get("/:id/pager", h.HandleGetPager)
}

// HandleCreate starts a new console session.
// @Summary Create Session
// @Description Starts a new console session and returns its id.
// @Tags sessions
// @Produce json
// @Success 201 {object} CreateResponse "Session"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sessions [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := h.service.Create(c.Context())
	if err != nil {
		l.Error("Session creation failed", zap.Error(err))
		return server.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(CreateResponse{ID: id})
}

// HandleGet returns the full state of a session.
// @Summary Get Session
// @Description Returns the snapshot of a console session.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} console.Snapshot "Snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	snap, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Session lookup failed", err)
	}
	return c.JSON(snap)
}

// HandleDelete closes a session.
// @Summary Delete Session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Session deletion failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBeginPage starts a full page render.
// @Summary Begin Page
// @Description Drops toolbar, registrations, tabs and field errors before a full page render.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} console.Snapshot "Snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/page [post]
func (h *Handler) HandleBeginPage(c *fiber.Ctx) error {
	snap, err := h.service.BeginPage(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Begin page failed", err)
	}
	return c.JSON(snap)
}

// HandleAddTab declares a tab.
// @Summary Add Tab
// @Tags tabs
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param tab body TabRequest true "Tab"
// @Success 200 {object} tabs.Set "Tabs"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/tabs [post]
func (h *Handler) HandleAddTab(c *fiber.Ctx) error {
	var req TabRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}
	if req.Title == "" {
		return server.BadRequest(c, "title is required")
	}

	set, err := h.service.AddTab(c.Context(), c.Params("id"), req.ResponseID, req.Tab)
	if err != nil {
		return h.fail(c, "Add tab failed", err)
	}
	return c.JSON(set)
}

// HandleToggleTab activates one tab.
// @Summary Toggle Tab
// @Tags tabs
// @Produce json
// @Param id path string true "Session ID"
// @Param pos path int true "Tab position"
// @Success 200 {object} tabs.Set "Tabs"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/tabs/{pos}/toggle [post]
func (h *Handler) HandleToggleTab(c *fiber.Ctx) error {
	pos, ok := utils.ToInt(c.Params("pos"))
	if !ok {
		return server.BadRequest(c, "invalid tab position")
	}

	set, found, err := h.service.ToggleTab(c.Context(), c.Params("id"), pos)
	if err != nil {
		return h.fail(c, "Toggle tab failed", err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "tab not found",
		})
	}
	return c.JSON(set)
}

// HandleGetTabs returns the tab bar.
// @Summary Get Tabs
// @Tags tabs
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} tabs.Set "Tabs"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/tabs [get]
func (h *Handler) HandleGetTabs(c *fiber.Ctx) error {
	set, err := h.service.Tabs(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Tabs lookup failed", err)
	}
	return c.JSON(set)
}

// HandleAddError records a field error.
// @Summary Add Field Error
// @Tags errors
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param error body ErrorRequest true "Field error"
// @Success 200 {array} console.FieldError "Field errors"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/errors [post]
func (h *Handler) HandleAddError(c *fiber.Ctx) error {
	var req ErrorRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	all, err := h.service.AddError(c.Context(), c.Params("id"), req.ClientID, req.Detail)
	if err != nil {
		return h.fail(c, "Add field error failed", err)
	}
	return c.JSON(all)
}

// HandleGetErrors returns the field errors of the page.
// @Summary Get Field Errors
// @Tags errors
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} console.FieldError "Field errors"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/errors [get]
func (h *Handler) HandleGetErrors(c *fiber.Ctx) error {
	all, err := h.service.Errors(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Field errors lookup failed", err)
	}
	return c.JSON(all)
}

// HandleSetClipboard replaces the clipboard.
// @Summary Set Clipboard
// @Tags clipboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param clipboard body ClipboardRequest true "Content ids"
// @Success 200 {array} string "Clipboard"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/clipboard [put]
func (h *Handler) HandleSetClipboard(c *fiber.Ctx) error {
	var req ClipboardRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	content, err := h.service.SetClipboard(c.Context(), c.Params("id"), req.IDs)
	if err != nil {
		return h.fail(c, "Set clipboard failed", err)
	}
	return c.JSON(content)
}

// HandleGetClipboard returns the clipboard.
// @Summary Get Clipboard
// @Tags clipboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} string "Clipboard"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/clipboard [get]
func (h *Handler) HandleGetClipboard(c *fiber.Ctx) error {
	content, err := h.service.Clipboard(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Clipboard lookup failed", err)
	}
	return c.JSON(content)
}

// HandleClearClipboard empties the clipboard.
// @Summary Clear Clipboard
// @Tags clipboard
// @Param id path string true "Session ID"
// @Success 204 "Cleared"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/clipboard [delete]
func (h *Handler) HandleClearClipboard(c *fiber.Ctx) error {
	if err := h.service.ClearClipboard(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Clear clipboard failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleResetPager resizes the scrolled result.
// @Summary Reset Pager
// @Tags pager
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param pager body PagerRequest true "Result size"
// @Success 200 {object} console.PagerState "Pager"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/pager [put]
func (h *Handler) HandleResetPager(c *fiber.Ctx) error {
	var req PagerRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	state, err := h.service.ResetPager(c.Context(), c.Params("id"), req.Total, req.Fetch)
	if err != nil {
		return h.fail(c, "Reset pager failed", err)
	}
	return c.JSON(state)
}

// HandleMovePager moves the scroller window.
// @Summary Move Pager
// @Description Applies first, previous, next, last or refresh. Use ?force=true to notify even if the window stays put.
// @Tags pager
// @Produce json
// @Param id path string true "Session ID"
// @Param move path string true "Move (first, previous, next, last, refresh)"
// @Param force query bool false "Force an update"
// @Success 200 {object} console.PagerState "Pager"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/pager/{move} [post]
func (h *Handler) HandleMovePager(c *fiber.Ctx) error {
	force := utils.ToBool(c.Query("force"))

	state, err := h.service.MovePager(c.Context(), c.Params("id"), c.Params("move"), force)
	if err != nil {
		return h.fail(c, "Move pager failed", err)
	}
	return c.JSON(state)
}

// HandleGetPager returns the scroller.
// @Summary Get Pager
// @Tags pager
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} console.PagerState "Pager"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/pager [get]
func (h *Handler) HandleGetPager(c *fiber.Ctx) error {
	state, err := h.service.Pager(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Pager lookup failed", err)
	}
	return c.JSON(state)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithSession(h.service.logger, c)
	if server.StatusFor(err) >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return server.Error(c, err)
}
