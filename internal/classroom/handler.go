package classroom

import (
	"bytes"
	"errors"
	"net/http"

	"SeatShuffler/internal/auth"
	"SeatShuffler/internal/seating"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var badRequestErrors = []error{
	ErrUnknownCell,
	ErrUnknownEvent,
	seating.ErrInvalidStudentCount,
	seating.ErrInvalidColumnCount,
	seating.ErrInvalidDepth,
	seating.ErrDepthLength,
	seating.ErrDepthSum,
	seating.ErrInvalidRequest,
}

// ClassroomHandler serves the layout and gesture endpoints under /api.
type ClassroomHandler struct {
	service *ClassroomService
	logger  *zap.Logger
}

func NewClassroomHandler(service *ClassroomService, logger *zap.Logger) *ClassroomHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomHandler{service: service, logger: logger}
}

// Balance handles POST /api/layout/balance.
func (h *ClassroomHandler) Balance(c echo.Context) error {
	var req BalanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	resp, err := h.service.Balance(req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Generate handles POST /api/layout.
func (h *ClassroomHandler) Generate(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	view, err := h.service.Generate(id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// Layout handles GET /api/layout.
func (h *ClassroomHandler) Layout(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	view, err := h.service.View(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Roster handles GET /api/layout/roster and returns a printable page.
func (h *ClassroomHandler) Roster(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var buf bytes.Buffer
	if err := h.service.WriteRoster(id, &buf); err != nil {
		return h.fail(c, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Drag handles POST /api/gestures/drag.
func (h *ClassroomHandler) Drag(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req DragRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	resp, err := h.service.Drag(id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Touch handles POST /api/gestures/touch.
func (h *ClassroomHandler) Touch(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req TouchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	resp, err := h.service.Touch(id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Close handles DELETE /api/session.
func (h *ClassroomHandler) Close(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	if err := h.service.CloseSession(id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClassroomHandler) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoLayout):
		return http.StatusConflict
	case errors.Is(err, ErrSessionLimit):
		return http.StatusServiceUnavailable
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func sessionID(c echo.Context) (string, bool) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return "", false
	}
	return claims.SessionID, true
}
