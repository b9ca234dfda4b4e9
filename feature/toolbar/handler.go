package toolbar

import (
	"admin-console/core/console"
	"admin-console/core/logger"
	"admin-console/core/server"
	tb "admin-console/core/toolbar"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session toolbars.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegistrationRequest carries ajax registrations.
type RegistrationRequest struct {
	Registrations []tb.Registration `json:"registrations"`
}

// ItemsRequest carries the toolbar items of a response.
type ItemsRequest struct {
	Items []Item `json:"items"`
}

// ResponseRequest reports a rendered response: its request id, whether it
// was a full page, and the fragment it rendered.
type ResponseRequest struct {
	console.Response
	console.Fragment
}

// ResponseResult is the reconciliation of a response.
type ResponseResult struct {
	tb.Result

	// Applied is the toolbar to render, nil if the toolbar did not change.
	Applied tb.State `json:"applied,omitempty"`
}

// RegisterRoutes registers the toolbar routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions/:id/toolbar")
	group.Get("/", h.HandleGetToolbar)
	group.Post("/registrations", h.HandleRegister)
	group.Post("/items", h.HandleAddItems)
	group.Post("/responses", h.HandleResponse)
}

// HandleGetToolbar returns the toolbar of a session.
// @Summary Get Toolbar
// @Tags toolbar
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} View "Toolbar"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/toolbar [get]
func (h *Handler) HandleGetToolbar(c *fiber.Ctx) error {
	v, err := h.service.Toolbar(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Toolbar lookup failed", err)
	}
	return c.JSON(v)
}

// HandleRegister records ajax registrations.
// @Summary Register Ajax Buttons
// @Description Records ajax registrations for the current page. A repeated id replaces the earlier registration.
// @Tags toolbar
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param registrations body RegistrationRequest true "Registrations"
// @Success 200 {array} tb.Registration "Registrations"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/toolbar/registrations [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var req RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	all, err := h.service.Register(c.Context(), c.Params("id"), req.Registrations)
	if err != nil {
		return h.fail(c, "Registration failed", err)
	}
	return c.JSON(all)
}

// HandleAddItems declares toolbar items.
// @Summary Add Toolbar Items
// @Description Declares toolbar items for a response. Items of an older response are dropped.
// @Tags toolbar
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param items body ItemsRequest true "Items"
// @Success 200 {array} tb.Button "Pending items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/toolbar/items [post]
func (h *Handler) HandleAddItems(c *fiber.Ctx) error {
	var req ItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	pending, err := h.service.AddItems(c.Context(), c.Params("id"), req.Items)
	if err != nil {
		return h.fail(c, "Add toolbar items failed", err)
	}
	return c.JSON(pending)
}

// HandleResponse reconciles the toolbar after a rendered response.
// @Summary Complete Response
// @Description Reconciles the toolbar with the buttons declared by a rendered fragment. Responses older than the last applied one are rejected.
// @Tags toolbar
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param response body ResponseRequest true "Rendered response"
// @Success 200 {object} ResponseResult "Reconciliation"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Stale Response"
// @Router /sessions/{id}/toolbar/responses [post]
func (h *Handler) HandleResponse(c *fiber.Ctx) error {
	var req ResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}
	if req.RequestID == 0 {
		return server.BadRequest(c, "request_id is required")
	}

	ui := req.Fragment
	res, err := h.service.Complete(c.Context(), c.Params("id"), &ui, req.Response)
	if err != nil {
		return h.fail(c, "Toolbar reconciliation failed", err)
	}

	logger.WithSession(h.service.logger, c).Debug("Toolbar response applied",
		zap.Uint64("request_id", req.RequestID),
		zap.Bool("changed", res.Changed))
	return c.JSON(ResponseResult{Result: res, Applied: ui.Applied})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithSession(h.service.logger, c)
	switch status := server.StatusFor(err); {
	case status >= fiber.StatusInternalServerError:
		l.Error(msg, zap.Error(err))
	case status == fiber.StatusConflict:
		l.Warn(msg, zap.Error(err))
	default:
		l.Debug(msg, zap.Error(err))
	}
	return server.Error(c, err)
}
