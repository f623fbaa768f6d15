package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/roombooking/internal/service/activity"
	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	service activity.ActivityUseCase
}

type logResponse struct {
	ID           string `json:"id"`
	TypeActivity string `json:"typeActivity"`
	Page         string `json:"page"`
	UserID       string `json:"userId"`
	CreatedAt    string `json:"createdAt"`
}

func NewLogHandler(service activity.ActivityUseCase) *LogHandler {
	return &LogHandler{service: service}
}

func (h *LogHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *LogHandler) list(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]logResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, logResponse{
			ID:           e.ID.String(),
			TypeActivity: string(e.TypeActivity),
			Page:         string(e.Page),
			UserID:       e.UserID.String(),
			CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}
