package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/adapter/http/handlers/mocks"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func catalogRouter(actor entities.Actor, h *CatalogHandler) *gin.Engine {
	r := newRouter(actor)
	r.GET("/v1/insurance-types", h.ListInsuranceTypes)
	r.POST("/v1/insurance-types", h.CreateInsuranceType)
	r.GET("/v1/insurance-types/:id/coverages", h.ListCoverages)
	r.POST("/v1/insurance-types/:id/coverages", h.CreateCoverage)
	return r
}

func TestCatalogHandler_InsuranceTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().ListInsuranceTypes(gomock.Any()).Return([]entities.InsuranceType{{ID: 2, Name: "Auto", IsActive: true, ValidityMonths: 12}}, nil)
	uc.EXPECT().CreateInsuranceType(gomock.Any(), adminActor, usecase.CreateInsuranceTypeInput{Name: "Home", ValidityMonths: 24}).
		Return(entities.InsuranceType{ID: 3, Name: "Home", IsActive: true, ValidityMonths: 24}, nil)
	r := catalogRouter(adminActor, NewCatalogHandler(uc))

	w := serve(r, http.MethodGet, "/v1/insurance-types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.InsuranceTypeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
	}

	if w := serve(r, http.MethodPost, "/v1/insurance-types", `{"name":"Home","validity_months":24}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/insurance-types", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCatalogHandler_Coverages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().ListCoverages(gomock.Any(), uint(9)).Return(nil, usecase.ErrCatalogNotFound)
	uc.EXPECT().CreateCoverage(gomock.Any(), agentActor, uint(2), gomock.Any()).Return(entities.Coverage{}, usecase.ErrForbidden)
	r := catalogRouter(agentActor, NewCatalogHandler(uc))

	if w := serve(r, http.MethodGet, "/v1/insurance-types/9/coverages", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/insurance-types/2/coverages", `{"name":"Glass","coverage_limit":2000}`); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
