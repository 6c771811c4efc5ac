package request

import (
	"insurance_xpto/internal/usecase"
)

type RegisterCustomerRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	NationalID  string `json:"national_id"`
	DateOfBirth string `json:"date_of_birth" example:"1990-05-17"`
}

func (r RegisterCustomerRequest) ToInput() (usecase.RegisterCustomerInput, error) {
	in := usecase.RegisterCustomerInput{
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		NationalID: r.NationalID,
	}
	dob, err := ParseDate(r.DateOfBirth)
	if err != nil {
		return usecase.RegisterCustomerInput{}, err
	}
	if !dob.IsZero() {
		in.DateOfBirth = &dob
	}
	return in, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAgentRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

func (r CreateAgentRequest) ToInput() usecase.CreateAgentInput {
	return usecase.CreateAgentInput{
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Department: r.Department,
	}
}
