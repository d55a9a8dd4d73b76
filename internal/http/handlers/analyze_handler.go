package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dealscope/internal/domain"
	applog "dealscope/internal/log"
	"dealscope/internal/services"
	"dealscope/internal/validate"
)

type AnalyzeHandler struct {
	Analysis *services.AnalysisService
}

type analyzeRequest struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if strings.TrimSpace(req.URL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing url"})
	}
	sessionID, ok := validate.SessionID(req.SessionID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session_id"})
	}

	result, err := h.Analysis.Analyze(req.URL, sessionID, c.Get(fiber.HeaderUserAgent))
	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			applog.Error(c, "analyze.fail", err, map[string]any{"url": req.URL})
		} else {
			applog.Warn(c, "analyze.reject", map[string]any{"url": req.URL, "reason": err.Error()})
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Info(c, "analyze.ok", map[string]any{
		"platform": result.Platform,
		"category": result.Category,
		"decision": result.Decision.Kind,
	})
	return c.JSON(result)
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrIncompleteSnapshot):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
