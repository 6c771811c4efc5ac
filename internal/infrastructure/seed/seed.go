package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Admin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type CoverageSeed struct {
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	CoverageLimit float64 `yaml:"coverage_limit"`
	BasePremium   float64 `yaml:"base_premium"`
	Optional      bool    `yaml:"optional"`
}

type InsuranceTypeSeed struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description"`
	ValidityMonths int            `yaml:"validity_months"`
	Coverages      []CoverageSeed `yaml:"coverages"`
}

type File struct {
	Admin          Admin               `yaml:"admin"`
	InsuranceTypes []InsuranceTypeSeed `yaml:"insurance_types"`
}

// Load reads path, or the embedded catalog when path is empty.
func Load(path string) (File, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Apply creates whatever part of the seed is missing; it is safe to run on
// every start.
func Apply(ctx context.Context, f File, auth usecase.IAuthUseCase, catalog usecase.ICatalogUseCase) error {
	system := entities.Actor{Role: entities.RoleAdmin}
	if f.Admin.Email != "" {
		admin, err := auth.EnsureAdmin(ctx, f.Admin.Email, f.Admin.Password)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		system.UserID = admin.ID
	}

	existing, err := catalog.ListInsuranceTypes(ctx)
	if err != nil {
		return fmt.Errorf("list insurance types: %w", err)
	}
	byName := make(map[string]entities.InsuranceType, len(existing))
	for _, t := range existing {
		byName[t.Name] = t
	}

	for _, ts := range f.InsuranceTypes {
		t, ok := byName[ts.Name]
		if !ok {
			t, err = catalog.CreateInsuranceType(ctx, system, usecase.CreateInsuranceTypeInput{
				Name:           ts.Name,
				Description:    ts.Description,
				ValidityMonths: ts.ValidityMonths,
			})
			if err != nil {
				return fmt.Errorf("seed insurance type %q: %w", ts.Name, err)
			}
		}
		if err := applyCoverages(ctx, catalog, system, t, ts.Coverages); err != nil {
			return err
		}
	}
	log.Printf("[seed] catalog applied insurance_types=%d", len(f.InsuranceTypes))
	return nil
}

func applyCoverages(ctx context.Context, catalog usecase.ICatalogUseCase, system entities.Actor, t entities.InsuranceType, seeds []CoverageSeed) error {
	current, err := catalog.ListCoverages(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("list coverages for %q: %w", t.Name, err)
	}
	have := make(map[string]bool, len(current))
	for _, c := range current {
		have[c.Name] = true
	}
	for _, cs := range seeds {
		if have[cs.Name] {
			continue
		}
		if _, err := catalog.CreateCoverage(ctx, system, t.ID, usecase.CreateCoverageInput{
			Name:          cs.Name,
			Description:   cs.Description,
			CoverageLimit: cs.CoverageLimit,
			BasePremium:   cs.BasePremium,
			IsOptional:    cs.Optional,
		}); err != nil {
			return fmt.Errorf("seed coverage %q/%q: %w", t.Name, cs.Name, err)
		}
	}
	return nil
}
