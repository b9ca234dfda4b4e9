package selection

import (
	"admin-console/core/logger"
	"admin-console/core/server"
	"admin-console/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for row selection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PageRequest materializes a result page.
type PageRequest struct {
	Offset int      `json:"offset"`
	Keys   []string `json:"keys"`
}

// SelectAllRequest adds keys of the whole result.
type SelectAllRequest struct {
	Keys   []string `json:"keys"`
	Prefix string   `json:"prefix"`
}

// SelectAllResponse reports how many keys were added.
type SelectAllResponse struct {
	Added int `json:"added"`
	View
}

// RegisterRoutes registers the selection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions/:id/selection")
	group.Get("/", h.HandleGetSelection)
	group.Delete("/", h.HandleClear)
	group.Put("/page", h.HandlePage)
	group.Post("/click", h.HandleClick)
	group.Post("/rows/:index", h.HandleSelectRow)
	group.Post("/all-on-page", h.HandleSelectAllOnPage)
	group.Post("/all", h.HandleSelectAll)
}

// HandleGetSelection returns the selection.
// @Summary Get Selection
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} View "Selection"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection [get]
func (h *Handler) HandleGetSelection(c *fiber.Ctx) error {
	v, err := h.service.Selection(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Selection lookup failed", err)
	}
	return c.JSON(v)
}

// HandleClear empties the selection.
// @Summary Clear Selection
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} View "Selection"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	v, err := h.service.Clear(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Clear selection failed", err)
	}
	return c.JSON(v)
}

// HandlePage materializes a result page. The selection is kept.
// @Summary Show Page
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param page body PageRequest true "Page"
// @Success 200 {object} View "Selection"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection/page [put]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	var req PageRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}
	if req.Offset < 0 {
		return server.BadRequest(c, "offset must not be negative")
	}

	v, err := h.service.ShowPage(c.Context(), c.Params("id"), req.Offset, req.Keys)
	if err != nil {
		return h.fail(c, "Show page failed", err)
	}
	return c.JSON(v)
}

// HandleClick applies a click on a row.
// @Summary Click Row
// @Description Plain clicks select one row, ctrl toggles, shift selects a range from the anchor.
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param click body Click true "Click"
// @Success 200 {object} ClickView "Click result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection/click [post]
func (h *Handler) HandleClick(c *fiber.Ctx) error {
	var req Click
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	cv, err := h.service.Click(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, "Click failed", err)
	}
	return c.JSON(cv)
}

// HandleSelectRow adds one row to the selection.
// @Summary Select Row
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Page index"
// @Success 200 {object} View "Selection"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection/rows/{index} [post]
func (h *Handler) HandleSelectRow(c *fiber.Ctx) error {
	index, ok := utils.ToInt(c.Params("index"))
	if !ok {
		return server.BadRequest(c, "invalid page index")
	}

	v, err := h.service.SelectRow(c.Context(), c.Params("id"), index)
	if err != nil {
		return h.fail(c, "Select row failed", err)
	}
	return c.JSON(v)
}

// HandleSelectAllOnPage selects every row of the current page.
// @Summary Select All On Page
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} View "Selection"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection/all-on-page [post]
func (h *Handler) HandleSelectAllOnPage(c *fiber.Ctx) error {
	v, err := h.service.SelectAllOnPage(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Select all on page failed", err)
	}
	return c.JSON(v)
}

// HandleSelectAll adds keys of the whole result.
// @Summary Select All
// @Description Adds every key starting with prefix. An empty prefix adds all keys.
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param keys body SelectAllRequest true "Keys"
// @Success 200 {object} SelectAllResponse "Selection"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/selection/all [post]
func (h *Handler) HandleSelectAll(c *fiber.Ctx) error {
	var req SelectAllRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "invalid request body")
	}

	added, v, err := h.service.SelectAll(c.Context(), c.Params("id"), req.Keys, req.Prefix)
	if err != nil {
		return h.fail(c, "Select all failed", err)
	}
	return c.JSON(SelectAllResponse{Added: added, View: v})
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
