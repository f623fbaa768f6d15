package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/rooms"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

type roomRequest struct {
	Name string `json:"name"`
}

type roomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *RoomHandler) create(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	room, err := h.service.Create(c.Request.Context(), actorFrom(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoomResponse(room))
}

func (h *RoomHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]roomResponse, 0, len(all))
	for i := range all {
		resp = append(resp, toRoomResponse(&all[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	room, err := h.service.Update(c.Request.Context(), actorFrom(c), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) delete(c *gin.Context) {
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

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{ID: room.ID.String(), Name: room.Name}
}
