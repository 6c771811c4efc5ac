package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"insurance_xpto/internal/adapter/http/handlers/mocks"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "admin@insurance.local", f.Admin.Email)
	require.Len(t, f.InsuranceTypes, 3)
	assert.Equal(t, "Auto", f.InsuranceTypes[0].Name)
	assert.True(t, f.InsuranceTypes[0].Coverages[2].Optional)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("insurance_types:\n  - name: Pet\n    validity_months: 6\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, f.Admin.Email)
	require.Len(t, f.InsuranceTypes, 1)
	assert.Equal(t, 6, f.InsuranceTypes[0].ValidityMonths)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f := File{
		Admin: Admin{Email: "root@x.io", Password: "s3cret-pass"},
		InsuranceTypes: []InsuranceTypeSeed{
			{Name: "Auto", ValidityMonths: 12, Coverages: []CoverageSeed{
				{Name: "Collision", CoverageLimit: 1000, BasePremium: 10},
				{Name: "Theft", CoverageLimit: 500, BasePremium: 5, Optional: true},
			}},
			{Name: "Home", ValidityMonths: 12},
		},
	}

	t.Run("creates only what is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		system := entities.Actor{UserID: 1, Role: entities.RoleAdmin}

		auth.EXPECT().EnsureAdmin(ctx, "root@x.io", "s3cret-pass").Return(entities.User{ID: 1}, nil)
		catalog.EXPECT().ListInsuranceTypes(ctx).Return([]entities.InsuranceType{{ID: 4, Name: "Auto"}}, nil)
		catalog.EXPECT().ListCoverages(ctx, uint(4)).Return([]entities.Coverage{{Name: "Collision"}}, nil)
		catalog.EXPECT().CreateCoverage(ctx, system, uint(4), usecase.CreateCoverageInput{
			Name: "Theft", CoverageLimit: 500, BasePremium: 5, IsOptional: true,
		}).Return(entities.Coverage{ID: 9}, nil)
		catalog.EXPECT().CreateInsuranceType(ctx, system, usecase.CreateInsuranceTypeInput{Name: "Home", ValidityMonths: 12}).
			Return(entities.InsuranceType{ID: 5, Name: "Home"}, nil)
		catalog.EXPECT().ListCoverages(ctx, uint(5)).Return(nil, nil)

		require.NoError(t, Apply(ctx, f, auth, catalog))
	})

	t.Run("admin failure stops the seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		auth.EXPECT().EnsureAdmin(ctx, gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrStorage)

		err := Apply(ctx, f, auth, catalog)
		assert.True(t, errors.Is(err, usecase.ErrStorage))
	})
}
