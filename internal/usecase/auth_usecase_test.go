package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
	mock_interfaces "insurance_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users     *mock_interfaces.MockIUserRepository
	customers *mock_interfaces.MockICustomerRepository
	agents    *mock_interfaces.MockIAgentRepository
	tx        *mock_interfaces.MockITransactor
	tokens    *mock_interfaces.MockITokenService
	hasher    *mock_interfaces.MockIPasswordHasher
	denylist  *mock_interfaces.MockITokenDenylist
}

func newAuthUseCase(ctrl *gomock.Controller) (*AuthUseCase, authMocks) {
	m := authMocks{
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		agents:    mock_interfaces.NewMockIAgentRepository(ctrl),
		tx:        mock_interfaces.NewMockITransactor(ctrl),
		tokens:    mock_interfaces.NewMockITokenService(ctrl),
		hasher:    mock_interfaces.NewMockIPasswordHasher(ctrl),
		denylist:  mock_interfaces.NewMockITokenDenylist(ctrl),
	}
	uc := NewAuthUseCase(m.users, m.customers, m.agents, m.tx, m.tokens, m.hasher, m.denylist)
	uc.now = func() time.Time { return testNow }
	return uc, m
}

func runInline(tx *mock_interfaces.MockITransactor) {
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) },
	)
}

func TestAuthUseCase_RegisterCustomer(t *testing.T) {
	valid := RegisterCustomerInput{Email: " Ana@Example.com ", Password: "s3cret-pass", FirstName: "Ana", LastName: "Silva"}

	t.Run("validation", func(t *testing.T) {
		uc, _ := newAuthUseCase(gomock.NewController(t))
		cases := []struct {
			name   string
			mutate func(in *RegisterCustomerInput)
			want   error
		}{
			{"missing email", func(in *RegisterCustomerInput) { in.Email = "" }, ErrInvalidCredentialsInput},
			{"bad email", func(in *RegisterCustomerInput) { in.Email = "not-an-email" }, ErrInvalidProfile},
			{"short password", func(in *RegisterCustomerInput) { in.Password = "short" }, ErrWeakPassword},
			{"missing last name", func(in *RegisterCustomerInput) { in.LastName = " " }, ErrInvalidProfile},
		}
		for _, tc := range cases {
			in := valid
			tc.mutate(&in)
			if _, err := uc.RegisterCustomer(context.Background(), in); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		runInline(m.tx)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: 1}, nil)

		_, err := uc.RegisterCustomer(context.Background(), valid)
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("unique index race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		runInline(m.tx)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		m.hasher.EXPECT().Hash("s3cret-pass").Return("hash", nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicateKey)

		_, err := uc.RegisterCustomer(context.Background(), valid)
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		runInline(m.tx)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		m.hasher.EXPECT().Hash("s3cret-pass").Return("hash", nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "ana@example.com" || u.PasswordHash != "hash" || u.Role != entities.RoleCustomer || !u.IsActive {
					t.Fatalf("unexpected user: %+v", u)
				}
				u.ID = 70
				return u, nil
			},
		)
		m.customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.UserID != 70 || c.FullName() != "Ana Silva" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				c.ID = 7
				return c, nil
			},
		)

		c, err := uc.RegisterCustomer(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 7 {
			t.Fatalf("expected customer 7, got %d", c.ID)
		}
	})
}

func TestAuthUseCase_CreateAgent(t *testing.T) {
	in := CreateAgentInput{Email: "agent@example.com", Password: "agent-pass", FirstName: "Carl", LastName: "Agent", Department: "Auto"}

	t.Run("admin only", func(t *testing.T) {
		uc, _ := newAuthUseCase(gomock.NewController(t))
		if _, err := uc.CreateAgent(context.Background(), agentThree, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		runInline(m.tx)
		m.users.EXPECT().GetByEmail(gomock.Any(), "agent@example.com").Return(entities.User{}, nil)
		m.hasher.EXPECT().Hash("agent-pass").Return("hash", nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{ID: 30, Role: entities.RoleAgent}, nil)
		m.agents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agent{})).DoAndReturn(
			func(_ context.Context, a entities.Agent) (entities.Agent, error) {
				a.ID = 3
				return a, nil
			},
		)

		a, err := uc.CreateAgent(context.Background(), adminActor, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != 3 || a.UserID != 30 || a.Department != "Auto" {
			t.Fatalf("unexpected agent: %+v", a)
		}
	})
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	t.Run("existing admin is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@insurance.local").Return(entities.User{ID: 1, Role: entities.RoleAdmin}, nil)

		u, err := uc.EnsureAdmin(context.Background(), "admin@insurance.local", "change-me-now")
		if err != nil || u.ID != 1 {
			t.Fatalf("expected existing admin, got %+v err=%v", u, err)
		}
	})

	t.Run("creates admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@insurance.local").Return(entities.User{}, nil).Times(2)
		m.hasher.EXPECT().Hash("change-me-now").Return("hash", nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleAdmin {
					t.Fatalf("expected admin role, got %s", u.Role)
				}
				u.ID = 1
				return u, nil
			},
		)

		u, err := uc.EnsureAdmin(context.Background(), "admin@insurance.local", "change-me-now")
		if err != nil || u.ID != 1 {
			t.Fatalf("expected created admin, got %+v err=%v", u, err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		uc, _ := newAuthUseCase(gomock.NewController(t))
		if _, err := uc.Login(ctx, " ", "x"); !errors.Is(err, ErrInvalidCredentialsInput) {
			t.Fatalf("expected ErrInvalidCredentialsInput, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(entities.User{}, nil)
		if _, err := uc.Login(ctx, "nobody@example.com", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: 70, PasswordHash: "hash", IsActive: true}, nil)
		m.hasher.EXPECT().Compare("hash", "bad-pass").Return(errors.New("mismatch"))
		_, err := uc.Login(ctx, "ana@example.com", "bad-pass")
		if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: 70, PasswordHash: "hash"}, nil)
		m.hasher.EXPECT().Compare("hash", "s3cret-pass").Return(nil)
		if _, err := uc.Login(ctx, "ana@example.com", "s3cret-pass"); !errors.Is(err, ErrAccountDisabled) {
			t.Fatalf("expected ErrAccountDisabled, got %v", err)
		}
	})

	t.Run("customer token carries customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		expires := testNow.Add(time.Hour)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: 70, PasswordHash: "hash", Role: entities.RoleCustomer, IsActive: true}, nil)
		m.hasher.EXPECT().Compare("hash", "s3cret-pass").Return(nil)
		m.customers.EXPECT().GetByUserID(gomock.Any(), uint(70)).Return(entities.Customer{ID: 7, UserID: 70}, nil)
		m.tokens.EXPECT().Issue(interfaces.TokenClaims{UserID: 70, Role: entities.RoleCustomer, CustomerID: 7}).
			Return("signed", interfaces.TokenClaims{TokenID: "jti", UserID: 70, ExpiresAt: expires}, nil)

		res, err := uc.Login(ctx, "ANA@example.com", "s3cret-pass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AccessToken != "signed" || !res.ExpiresAt.Equal(expires) || res.Actor != customerSeven {
			t.Fatalf("unexpected login result: %+v", res)
		}
	})

	t.Run("agent token carries agent id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "agent@example.com").Return(entities.User{ID: 30, PasswordHash: "hash", Role: entities.RoleAgent, IsActive: true}, nil)
		m.hasher.EXPECT().Compare("hash", "agent-pass").Return(nil)
		m.agents.EXPECT().GetByUserID(gomock.Any(), uint(30)).Return(entities.Agent{ID: 3, UserID: 30}, nil)
		m.tokens.EXPECT().Issue(gomock.Any()).Return("signed", interfaces.TokenClaims{}, nil)

		res, err := uc.Login(ctx, "agent@example.com", "agent-pass")
		if err != nil || res.Actor != agentThree {
			t.Fatalf("expected agent actor, got %+v err=%v", res.Actor, err)
		}
	})
}

func TestAuthUseCase_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	claims := interfaces.TokenClaims{TokenID: "jti-1", UserID: 70, Role: entities.RoleCustomer, CustomerID: 7, ExpiresAt: testNow.Add(time.Hour)}

	t.Run("authenticate valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.tokens.EXPECT().Parse("tok").Return(claims, nil)
		m.denylist.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)

		actor, err := uc.Authenticate(ctx, "tok")
		if err != nil || actor != customerSeven {
			t.Fatalf("expected customer actor, got %+v err=%v", actor, err)
		}
	})

	t.Run("authenticate invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.tokens.EXPECT().Parse("garbage").Return(interfaces.TokenClaims{}, errors.New("bad signature"))

		if _, err := uc.Authenticate(ctx, "garbage"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("logout revokes until expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.tokens.EXPECT().Parse("tok").Return(claims, nil).Times(2)
		m.denylist.EXPECT().Revoke(gomock.Any(), "jti-1", uint(70), claims.ExpiresAt).Return(nil)
		m.denylist.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)

		if err := uc.Logout(ctx, "tok"); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if _, err := uc.Authenticate(ctx, "tok"); !errors.Is(err, ErrTokenRevoked) {
			t.Fatalf("expected ErrTokenRevoked, got %v", err)
		}
	})

	t.Run("denylist failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthUseCase(ctrl)
		m.tokens.EXPECT().Parse("tok").Return(claims, nil)
		m.denylist.EXPECT().Revoke(gomock.Any(), "jti-1", uint(70), claims.ExpiresAt).Return(errors.New("redis down"))

		if err := uc.Logout(ctx, "tok"); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}
