package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/scheduletimes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleTimeHandler struct {
	service scheduletimes.ScheduleTimeUseCase
}

type createScheduleTimeRequest struct {
	RoomID       string `json:"roomId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BlockMinutes int    `json:"blockMinutes"`
}

type updateScheduleTimeRequest struct {
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BlockMinutes int    `json:"blockMinutes"`
}

type scheduleTimeResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"roomId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BlockMinutes int    `json:"blockMinutes"`
}

func NewScheduleTimeHandler(service scheduletimes.ScheduleTimeUseCase) *ScheduleTimeHandler {
	return &ScheduleTimeHandler{service: service}
}

func (h *ScheduleTimeHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ScheduleTimeHandler) create(c *gin.Context) {
	var req createScheduleTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		writeValidation(c, "invalid room id")
		return
	}

	window, err := h.service.Create(c.Request.Context(), actorFrom(c), scheduletimes.CreateScheduleTimeInput{
		RoomID:       roomID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BlockMinutes: req.BlockMinutes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toScheduleTimeResponse(window))
}

func (h *ScheduleTimeHandler) list(c *gin.Context) {
	roomID := uuid.Nil
	if raw := c.Query("roomId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			writeValidation(c, "invalid room id")
			return
		}
		roomID = parsed
	}

	windows, err := h.service.List(c.Request.Context(), actorFrom(c), roomID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]scheduleTimeResponse, 0, len(windows))
	for i := range windows {
		resp = append(resp, toScheduleTimeResponse(&windows[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleTimeHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	window, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toScheduleTimeResponse(window))
}

func (h *ScheduleTimeHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	var req updateScheduleTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	window, err := h.service.Update(c.Request.Context(), actorFrom(c), id, scheduletimes.UpdateScheduleTimeInput{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BlockMinutes: req.BlockMinutes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toScheduleTimeResponse(window))
}

func (h *ScheduleTimeHandler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toScheduleTimeResponse(w *domain.ScheduleTime) scheduleTimeResponse {
	return scheduleTimeResponse{
		ID:           w.ID.String(),
		RoomID:       w.RoomID.String(),
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
		BlockMinutes: w.BlockMinutes,
	}
}
