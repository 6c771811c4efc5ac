package response

import (
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uint      `json:"user_id"`
	Role        string    `json:"role"`
	CustomerID  uint      `json:"customer_id,omitempty"`
	AgentID     uint      `json:"agent_id,omitempty"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   r.ExpiresAt,
		UserID:      r.Actor.UserID,
		Role:        string(r.Actor.Role),
		CustomerID:  r.Actor.CustomerID,
		AgentID:     r.Actor.AgentID,
	}
}

type CustomerResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	NationalID  string    `json:"national_id,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		NationalID: c.NationalID,
		CreatedAt:  c.CreatedAt,
	}
	if c.DateOfBirth != nil {
		resp.DateOfBirth = formatDate(*c.DateOfBirth)
	}
	return resp
}

type AgentResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromAgent(a entities.Agent) AgentResponse {
	return AgentResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		Phone:      a.Phone,
		Department: a.Department,
		CreatedAt:  a.CreatedAt,
	}
}
