package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealscope/internal/domain"
	applog "dealscope/internal/log"
	"dealscope/internal/services"
	"dealscope/internal/validate"
)

type StatsHandler struct {
	Analytics *services.AnalyticsService
}

func (h *StatsHandler) Statistics(c *fiber.Ctx) error {
	filter, ok := validate.Filter(c.Query("category"))
	if !ok {
		applog.Warn(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category filter"})
	}
	limit := validate.Limit(c.Query("limit"))

	stats, recent := h.Analytics.Statistics(filter, limit)
	return c.JSON(fiber.Map{
		"stats":          stats,
		"recent_records": recent,
	})
}

// Record appends an externally completed analysis record and answers with the
// lifetime total.
func (h *StatsHandler) Record(c *fiber.Ctx) error {
	var rec domain.AnalysisRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if strings.TrimSpace(rec.ProductURL) == "" || strings.TrimSpace(rec.Category) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing product_url or category"})
	}
	if rec.ProcessingTimeMs < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "processing_time_ms must be >= 0"})
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	if rec.UserAgent == "" {
		rec.UserAgent = c.Get(fiber.HeaderUserAgent)
	}

	total, err := h.Analytics.Record(rec)
	if err != nil {
		applog.Error(c, "record.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not record analysis"})
	}
	return c.JSON(fiber.Map{"total_analyses": total})
}
