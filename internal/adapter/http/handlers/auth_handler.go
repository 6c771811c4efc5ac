package handlers

import (
	"log"
	"net/http"

	request "insurance_xpto/internal/adapter/http/dto/request"
	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/adapter/http/middleware"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login and logout.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register creates a customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.RegisterCustomer(c.Request.Context(), in)
	if err != nil {
		log.Printf("[auth][handler] register failed err=%v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed ip=%s err=%v", c.ClientIP(), err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(result))
}

// Logout revokes the bearer token used on this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFrom(c)
	if token == "" {
		respondAppError(c, errNoActor)
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		log.Printf("[auth][handler] logout failed err=%v", err)
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateAgent registers a staff account. Admin only.
func (h *AuthHandler) CreateAgent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	agent, err := h.usecase.CreateAgent(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[auth][handler] create agent failed user_id=%d err=%v", actor.UserID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAgent(agent))
}
