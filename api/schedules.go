package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/scheduling"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SchedulingHandler struct {
	service scheduling.SchedulingUseCase
}

type createSchedulingRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	ClientID string `json:"clientId"`
	RoomID   string `json:"roomId"`
}

type schedulingResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	RoomID   string `json:"roomId"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
	Status   string `json:"status"`
}

type pageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func NewSchedulingHandler(service scheduling.SchedulingUseCase) *SchedulingHandler {
	return &SchedulingHandler{service: service}
}

func (h *SchedulingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.PATCH("/:id/confirm", h.confirm)
	router.PATCH("/:id/cancel", h.cancel)
}

func (h *SchedulingHandler) create(c *gin.Context) {
	var req createSchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" || req.ClientID == "" || req.RoomID == "" {
		writeValidation(c, "date, time, client and room are required")
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		writeValidation(c, "invalid client id")
		return
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		writeValidation(c, "invalid room id")
		return
	}

	created, err := h.service.Admit(c.Request.Context(), actorFrom(c), scheduling.CreateSchedulingInput{
		RoomID:     roomID,
		CustomerID: clientID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSchedulingResponse(created))
}

func (h *SchedulingHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	schedulings, total, err := h.service.List(c.Request.Context(), actorFrom(c), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]schedulingResponse, 0, len(schedulings))
	for i := range schedulings {
		data = append(data, toSchedulingResponse(&schedulings[i]))
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": pageMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	})
}

func (h *SchedulingHandler) confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	updated, err := h.service.Confirm(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSchedulingResponse(updated))
}

func (h *SchedulingHandler) cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	updated, err := h.service.Cancel(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSchedulingResponse(updated))
}

func toSchedulingResponse(s *domain.Scheduling) schedulingResponse {
	return schedulingResponse{
		ID:       s.ID.String(),
		ClientID: s.CustomerID.String(),
		RoomID:   s.RoomID.String(),
		StartsAt: s.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:   s.EndsAt.UTC().Format(time.RFC3339),
		Status:   string(s.Status),
	}
}
