package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/app"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

const (
	msgGenerationDown = "Không thể kết nối với dịch vụ AI để tạo kết quả bói bài"
	msgFromCache      = "Retrieved from cache."
)

type Handler struct {
	svc *app.ReadingService
}

func NewHandler(svc *app.ReadingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/tarot", h.ReadTarot)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ReadTarot(c echo.Context) error {
	var req TarotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := validateRequest(req, time.Now()); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	resp, err := h.svc.GetReading(c.Request().Context(), app.ReadingRequest{
		Name: strings.TrimSpace(req.Name),
		DOB:  req.DOB,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, toResponse(resp))
}

func toResponse(r app.ReadingResponse) TarotResponse {
	cards := make([]CardResponse, len(r.Cards))
	for i, dc := range r.Cards {
		cards[i] = CardResponse{
			Name:       dc.Name,
			ImageURL:   dc.ImageURL,
			IsReversed: dc.IsReversed,
			Keywords:   dc.Keywords,
			Upright:    dc.Upright,
			Reversed:   dc.Reversed,
			Vietnamese: dc.Vietnamese,
		}
	}

	resp := TarotResponse{
		Success: true,
		Data: ReadingData{
			Cards:   cards,
			Reading: r.Narrative,
			Source:  string(r.Source),
		},
	}
	if r.Source == domain.SourceCache {
		resp.Message = msgFromCache
	}
	return resp
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrGenerationUnavailable):
		slog.Error("reading generation failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgGenerationDown})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
