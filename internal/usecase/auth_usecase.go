package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

const minPasswordLength = 8

type RegisterCustomerInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	NationalID  string
	DateOfBirth *time.Time
}

type CreateAgentInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	Department string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Actor       entities.Actor
}

type IAuthUseCase interface {
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (entities.Customer, error)
	CreateAgent(ctx context.Context, actor entities.Actor, in CreateAgentInput) (entities.Agent, error)
	EnsureAdmin(ctx context.Context, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entities.Actor, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	customers interfaces.ICustomerRepository
	agents    interfaces.IAgentRepository
	tx        interfaces.ITransactor
	tokens    interfaces.ITokenService
	hasher    interfaces.IPasswordHasher
	denylist  interfaces.ITokenDenylist
	now       func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	customers interfaces.ICustomerRepository,
	agents interfaces.IAgentRepository,
	tx interfaces.ITransactor,
	tokens interfaces.ITokenService,
	hasher interfaces.IPasswordHasher,
	denylist interfaces.ITokenDenylist,
) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		customers: customers,
		agents:    agents,
		tx:        tx,
		tokens:    tokens,
		hasher:    hasher,
		denylist:  denylist,
		now:       utcNow,
	}
}

// RegisterCustomer creates the login and the customer profile together.
func (u *AuthUseCase) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (entities.Customer, error) {
	email, err := validateCredentials(in.Email, in.Password)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := validateProfile(in.FirstName, in.LastName); err != nil {
		return entities.Customer{}, err
	}

	var created entities.Customer
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := u.createUser(ctx, email, in.Password, entities.RoleCustomer)
		if err != nil {
			return err
		}
		now := u.now()
		created, err = u.customers.Create(ctx, entities.Customer{
			UserID:      user.ID,
			FirstName:   strings.TrimSpace(in.FirstName),
			LastName:    strings.TrimSpace(in.LastName),
			Email:       email,
			Phone:       strings.TrimSpace(in.Phone),
			Address:     strings.TrimSpace(in.Address),
			NationalID:  strings.TrimSpace(in.NationalID),
			DateOfBirth: in.DateOfBirth,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		log.Printf("[auth][usecase] register failed email=%s err=%v", email, err)
		return entities.Customer{}, classifyAuth(err)
	}
	log.Printf("[auth][usecase] customer registered customer_id=%d user_id=%d", created.ID, created.UserID)
	return created, nil
}

// CreateAgent is the admin path for onboarding staff.
func (u *AuthUseCase) CreateAgent(ctx context.Context, actor entities.Actor, in CreateAgentInput) (entities.Agent, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Agent{}, ErrForbidden
	}
	email, err := validateCredentials(in.Email, in.Password)
	if err != nil {
		return entities.Agent{}, err
	}
	if err := validateProfile(in.FirstName, in.LastName); err != nil {
		return entities.Agent{}, err
	}

	var created entities.Agent
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := u.createUser(ctx, email, in.Password, entities.RoleAgent)
		if err != nil {
			return err
		}
		now := u.now()
		created, err = u.agents.Create(ctx, entities.Agent{
			UserID:     user.ID,
			FirstName:  strings.TrimSpace(in.FirstName),
			LastName:   strings.TrimSpace(in.LastName),
			Email:      email,
			Phone:      strings.TrimSpace(in.Phone),
			Department: strings.TrimSpace(in.Department),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		return err
	})
	if err != nil {
		return entities.Agent{}, classifyAuth(err)
	}
	log.Printf("[auth][usecase] agent created agent_id=%d by_user=%d", created.ID, actor.UserID)
	return created, nil
}

// EnsureAdmin creates the bootstrap admin account unless the email is taken.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) (entities.User, error) {
	normalized, err := validateCredentials(email, password)
	if err != nil {
		return entities.User{}, err
	}
	existing, err := u.users.GetByEmail(ctx, normalized)
	if err != nil {
		return entities.User{}, storageErr(err)
	}
	if existing.ID != 0 {
		return existing, nil
	}
	user, err := u.createUser(ctx, normalized, password, entities.RoleAdmin)
	if err != nil {
		return entities.User{}, classifyAuth(err)
	}
	log.Printf("[auth][usecase] admin bootstrapped user_id=%d", user.ID)
	return user, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentialsInput
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, storageErr(err)
	}
	if user.ID == 0 {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Printf("[auth][usecase] login rejected user_id=%d", user.ID)
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return LoginResult{}, ErrAccountDisabled
	}

	actor, err := u.actorFor(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	token, claims, err := u.tokens.Issue(interfaces.TokenClaims{
		UserID:     actor.UserID,
		Role:       actor.Role,
		CustomerID: actor.CustomerID,
		AgentID:    actor.AgentID,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	log.Printf("[auth][usecase] login success user_id=%d role=%s", user.ID, user.Role)
	return LoginResult{AccessToken: token, ExpiresAt: claims.ExpiresAt, Actor: actor}, nil
}

// Logout denylists the token id until the token would have expired anyway.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}
	if err := u.denylist.Revoke(ctx, claims.TokenID, claims.UserID, claims.ExpiresAt); err != nil {
		return storageErr(err)
	}
	log.Printf("[auth][usecase] logout user_id=%d jti=%s", claims.UserID, claims.TokenID)
	return nil
}

// Authenticate validates a bearer token and resolves the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Actor, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return entities.Actor{}, ErrInvalidToken
	}
	revoked, err := u.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return entities.Actor{}, storageErr(err)
	}
	if revoked {
		return entities.Actor{}, ErrTokenRevoked
	}
	return entities.Actor{
		UserID:     claims.UserID,
		Role:       claims.Role,
		CustomerID: claims.CustomerID,
		AgentID:    claims.AgentID,
	}, nil
}

func (u *AuthUseCase) createUser(ctx context.Context, email, password string, role entities.Role) (entities.User, error) {
	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrEmailAlreadyRegistered
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}
	now := u.now()
	return u.users.Create(ctx, entities.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (u *AuthUseCase) actorFor(ctx context.Context, user entities.User) (entities.Actor, error) {
	actor := entities.Actor{UserID: user.ID, Role: user.Role}
	switch user.Role {
	case entities.RoleCustomer:
		c, err := u.customers.GetByUserID(ctx, user.ID)
		if err != nil {
			return entities.Actor{}, storageErr(err)
		}
		actor.CustomerID = c.ID
	case entities.RoleAgent:
		a, err := u.agents.GetByUserID(ctx, user.ID)
		if err != nil {
			return entities.Actor{}, storageErr(err)
		}
		actor.AgentID = a.ID
	}
	return actor, nil
}

func classifyAuth(err error) error {
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return ErrEmailAlreadyRegistered
	}
	return classify(err)
}

func validateCredentials(email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentialsInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidProfile
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}
	return email, nil
}

func validateProfile(first, last string) error {
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return ErrInvalidProfile
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
