package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/customers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	service customers.CustomerUseCase
}

type customerRequest struct {
	CEP        string `json:"CEP"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Complement string `json:"complement"`
	Neighboor  string `json:"neighboor"`
	City       string `json:"city"`
	State      string `json:"state"`
}

type customerResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	CEP        string `json:"CEP"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Complement string `json:"complement"`
	Neighboor  string `json:"neighboor"`
	City       string `json:"city"`
	State      string `json:"state"`
}

func NewClientHandler(service customers.CustomerUseCase) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ClientHandler) create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	customer, err := h.service.Create(c.Request.Context(), actorFrom(c), toCustomerInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *ClientHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]customerResponse, 0, len(all))
	for i := range all {
		resp = append(resp, toCustomerResponse(&all[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *ClientHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidation(c, "invalid id")
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	customer, err := h.service.Update(c.Request.Context(), actorFrom(c), id, toCustomerInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *ClientHandler) delete(c *gin.Context) {
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

func toCustomerInput(req customerRequest) customers.CustomerInput {
	return customers.CustomerInput{
		CEP:        req.CEP,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		Neighboor:  req.Neighboor,
		City:       req.City,
		State:      req.State,
	}
}

func toCustomerResponse(customer *domain.Customer) customerResponse {
	return customerResponse{
		ID:         customer.ID.String(),
		UserID:     customer.UserID.String(),
		CEP:        customer.CEP,
		Street:     customer.Street,
		Number:     customer.Number,
		Complement: customer.Complement,
		Neighboor:  customer.Neighboor,
		City:       customer.City,
		State:      customer.State,
	}
}
