package networth

import (
	"errors"

	"networth/core/logger"
	"networth/feature/item"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for valuations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the valuation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/networth/:player", h.HandleCalculate)
	app.Post("/items/value", h.HandleItemValue)
}

// ItemValueRequest is the body of an item valuation request.
type ItemValueRequest struct {
	ItemBytes string `json:"item_bytes"`
}

// HandleCalculate values a player.
// @Summary Calculate Networth
// @Description Values every asset of a player in the profile document sent as the request body.
// @Tags networth
// @Accept json
// @Produce json
// @Param player path string true "Player UUID, dashes optional"
// @Param profile body object true "Profile document"
// @Success 200 {object} map[string]interface{} "Networth Breakdown"
// @Failure 400 {object} map[string]string "Malformed Profile"
// @Failure 404 {object} map[string]string "Player Not In Profile"
// @Router /networth/{player} [post]
func (h *Handler) HandleCalculate(c *fiber.Ctx) error {
	player := c.Params("player")
	l := logger.WithRayID(h.service.logger, c)

	nw, err := h.service.Calculate(c.Context(), c.Body(), player)
	if err != nil {
		l.Warn("Networth calculation rejected", zap.String("player", player), zap.Error(err))

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, ErrMalformedProfile):
			status = fiber.StatusBadRequest
		case errors.Is(err, ErrInvalidPlayer):
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Networth calculated", zap.String("player", nw.Owner), zap.Float64("total", nw.Total()))
	return c.JSON(nw)
}

// HandleItemValue values a single item.
// @Summary Value Item
// @Description Decodes a base64 gzip item stack and returns its craft cost and market value.
// @Tags networth
// @Accept json
// @Produce json
// @Param request body ItemValueRequest true "Encoded item"
// @Success 200 {object} ItemValuation "Item Valuation"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/value [post]
func (h *Handler) HandleItemValue(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ItemValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ItemBytes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item_bytes is required"})
	}

	valuation, err := h.service.ValueItem(c.Context(), req.ItemBytes)
	if err != nil {
		l.Warn("Item valuation rejected", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, item.ErrDecode) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(valuation)
}
