package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id uint) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id uint) (entities.Customer, error)
	GetByUserID(ctx context.Context, userID uint) (entities.Customer, error)
}

type IAgentRepository interface {
	Create(ctx context.Context, a entities.Agent) (entities.Agent, error)
	GetByID(ctx context.Context, id uint) (entities.Agent, error)
	GetByUserID(ctx context.Context, userID uint) (entities.Agent, error)
}
