package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "dealscope/internal/log"
	"dealscope/internal/services"
	"dealscope/internal/validate"
)

type HistoryHandler struct {
	Analytics *services.AnalyticsService
}

// Lookup returns the persisted analysis for one product URL.
func (h *HistoryHandler) Lookup(c *fiber.Ctx) error {
	productURL, ok := validate.ProductURL(c.Query("url"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid product url"})
	}

	entry, alts, err := h.Analytics.HistoryFor(productURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no analysis on record for this url"})
		}
		applog.Error(c, "history.lookup.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load history"})
	}
	return c.JSON(fiber.Map{"entry": entry, "alternatives": alts})
}

// Recent lists the latest persisted analyses.
func (h *HistoryHandler) Recent(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"))
	entries, err := h.Analytics.RecentHistory(limit)
	if err != nil {
		applog.Error(c, "history.recent.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load history"})
	}
	return c.JSON(fiber.Map{"entries": entries, "count": len(entries)})
}
