package repository

import (
	"context"

	"gorm.io/gorm"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	m := toUserModel(u)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.User{}, translate(err)
	}
	return fromUserModel(m), nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (entities.User, error) {
	var m UserModel
	err := conn(ctx, r.db).First(&m, id).Error
	if notFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m UserModel
	err := conn(ctx, r.db).Where("email = ?", email).First(&m).Error
	if notFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	m := toCustomerModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Customer{}, translate(err)
	}
	return fromCustomerModel(m), nil
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id uint) (entities.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CustomerGormRepository) GetByUserID(ctx context.Context, userID uint) (entities.Customer, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *CustomerGormRepository) first(ctx context.Context, query string, arg any) (entities.Customer, error) {
	var m CustomerModel
	err := conn(ctx, r.db).Where(query, arg).First(&m).Error
	if notFound(err) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerModel(m), nil
}

type AgentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IAgentRepository = (*AgentGormRepository)(nil)

func NewAgentGormRepository(db *gorm.DB) *AgentGormRepository {
	return &AgentGormRepository{db: db}
}

func (r *AgentGormRepository) Create(ctx context.Context, a entities.Agent) (entities.Agent, error) {
	m := toAgentModel(a)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Agent{}, translate(err)
	}
	return fromAgentModel(m), nil
}

func (r *AgentGormRepository) GetByID(ctx context.Context, id uint) (entities.Agent, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AgentGormRepository) GetByUserID(ctx context.Context, userID uint) (entities.Agent, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *AgentGormRepository) first(ctx context.Context, query string, arg any) (entities.Agent, error) {
	var m AgentModel
	err := conn(ctx, r.db).Where(query, arg).First(&m).Error
	if notFound(err) {
		return entities.Agent{}, nil
	}
	if err != nil {
		return entities.Agent{}, err
	}
	return fromAgentModel(m), nil
}
