package usecase

import (
	"context"
	"errors"
	"testing"

	"insurance_xpto/internal/domain/entities"
	mock_interfaces "insurance_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateInsuranceType(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		if _, err := uc.CreateInsuranceType(ctx, agentThree, CreateInsuranceTypeInput{Name: "Auto"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		if _, err := uc.CreateInsuranceType(ctx, adminActor, CreateInsuranceTypeInput{Name: " "}); !errors.Is(err, ErrInvalidCatalogItem) {
			t.Fatalf("expected ErrInvalidCatalogItem, got %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		types := mock_interfaces.NewMockIInsuranceTypeRepository(ctrl)
		uc := NewCatalogUseCase(types, nil)
		types.EXPECT().GetByName(gomock.Any(), "Auto").Return(entities.InsuranceType{ID: 2, Name: "Auto"}, nil)

		if _, err := uc.CreateInsuranceType(ctx, adminActor, CreateInsuranceTypeInput{Name: "Auto"}); !errors.Is(err, ErrInvalidCatalogItem) {
			t.Fatalf("expected ErrInvalidCatalogItem, got %v", err)
		}
	})

	t.Run("default validity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		types := mock_interfaces.NewMockIInsuranceTypeRepository(ctrl)
		uc := NewCatalogUseCase(types, nil)
		types.EXPECT().GetByName(gomock.Any(), "Home").Return(entities.InsuranceType{}, nil)
		types.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InsuranceType{})).DoAndReturn(
			func(_ context.Context, it entities.InsuranceType) (entities.InsuranceType, error) {
				if it.ValidityMonths != entities.DefaultValidityMonths || !it.IsActive {
					t.Fatalf("unexpected insurance type: %+v", it)
				}
				it.ID = 4
				return it, nil
			},
		)

		it, err := uc.CreateInsuranceType(ctx, adminActor, CreateInsuranceTypeInput{Name: " Home "})
		if err != nil || it.ID != 4 {
			t.Fatalf("expected created type, got %+v err=%v", it, err)
		}
	})
}

func TestCatalogUseCase_Coverages(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		types := mock_interfaces.NewMockIInsuranceTypeRepository(ctrl)
		uc := NewCatalogUseCase(types, nil)
		types.EXPECT().GetByID(gomock.Any(), uint(9)).Return(entities.InsuranceType{}, nil)

		if _, err := uc.ListCoverages(ctx, 9); !errors.Is(err, ErrCatalogNotFound) {
			t.Fatalf("expected ErrCatalogNotFound, got %v", err)
		}
	})

	t.Run("invalid coverage", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		cases := []CreateCoverageInput{
			{Name: "", CoverageLimit: 1},
			{Name: "Glass", CoverageLimit: 0},
			{Name: "Glass", CoverageLimit: 1, BasePremium: -1},
		}
		for _, in := range cases {
			if _, err := uc.CreateCoverage(ctx, adminActor, 2, in); !errors.Is(err, ErrInvalidCatalogItem) {
				t.Fatalf("%+v: expected ErrInvalidCatalogItem, got %v", in, err)
			}
		}
	})

	t.Run("create and list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		types := mock_interfaces.NewMockIInsuranceTypeRepository(ctrl)
		coverages := mock_interfaces.NewMockICoverageRepository(ctrl)
		uc := NewCatalogUseCase(types, coverages)
		types.EXPECT().GetByID(gomock.Any(), uint(2)).Return(entities.InsuranceType{ID: 2}, nil).Times(2)
		coverages.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Coverage{})).DoAndReturn(
			func(_ context.Context, c entities.Coverage) (entities.Coverage, error) {
				if c.InsuranceTypeID != 2 || c.Name != "Glass" {
					t.Fatalf("unexpected coverage: %+v", c)
				}
				c.ID = 6
				return c, nil
			},
		)
		coverages.EXPECT().ListByInsuranceTypeID(gomock.Any(), uint(2)).Return([]entities.Coverage{{ID: 5}, {ID: 6}}, nil)

		if _, err := uc.CreateCoverage(ctx, adminActor, 2, CreateCoverageInput{Name: "Glass", CoverageLimit: 2000, BasePremium: 40, IsOptional: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
		list, err := uc.ListCoverages(ctx, 2)
		if err != nil || len(list) != 2 {
			t.Fatalf("expected 2 coverages, got %d err=%v", len(list), err)
		}
	})
}
