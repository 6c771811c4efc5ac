package entities

import "time"

type User struct {
	ID           uint
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Customer struct {
	ID          uint
	UserID      uint
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	NationalID  string
	DateOfBirth *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type Agent struct {
	ID         uint
	UserID     uint
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a Agent) FullName() string {
	return Customer{FirstName: a.FirstName, LastName: a.LastName}.FullName()
}

// RevokedToken is a denylisted access token, kept until its natural expiry.
type RevokedToken struct {
	TokenID   string
	UserID    uint
	ExpiresAt time.Time
	RevokedAt time.Time
}
