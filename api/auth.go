package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/service/users"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service users.UserUseCase
}

type registerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Admin     bool   `json:"admin"`

	CEP        string `json:"CEP"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Complement string `json:"complement"`
	Neighboor  string `json:"neighboor"`
	City       string `json:"city"`
	State      string `json:"state"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(service users.UserUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	user, customer, err := h.service.Register(c.Request.Context(), users.RegisterInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Password:   req.Password,
		Admin:      req.Admin,
		CEP:        req.CEP,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		Neighboor:  req.Neighboor,
		City:       req.City,
		State:      req.State,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	resp := toUserResponse(user)
	c.JSON(http.StatusCreated, gin.H{
		"id":        resp.ID,
		"email":     resp.Email,
		"firstName": resp.FirstName,
		"lastName":  resp.LastName,
		"admin":     resp.Admin,
		"customer":  toCustomerResponse(customer),
	})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidation(c, "invalid request body")
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	// stateless tokens, nothing to revoke server-side
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
