package repository

import (
	"encoding/json"

	"gorm.io/datatypes"

	"insurance_xpto/internal/domain/entities"
)

func toUserModel(u entities.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserModel(m UserModel) entities.User {
	return entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCustomerModel(c entities.Customer) CustomerModel {
	return CustomerModel{
		ID:          c.ID,
		UserID:      c.UserID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		NationalID:  c.NationalID,
		DateOfBirth: c.DateOfBirth,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromCustomerModel(m CustomerModel) entities.Customer {
	return entities.Customer{
		ID:          m.ID,
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		NationalID:  m.NationalID,
		DateOfBirth: m.DateOfBirth,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toAgentModel(a entities.Agent) AgentModel {
	return AgentModel{
		ID:         a.ID,
		UserID:     a.UserID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		Phone:      a.Phone,
		Department: a.Department,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func fromAgentModel(m AgentModel) entities.Agent {
	return entities.Agent{
		ID:         m.ID,
		UserID:     m.UserID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toInsuranceTypeModel(t entities.InsuranceType) InsuranceTypeModel {
	return InsuranceTypeModel{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		ValidityMonths: t.ValidityMonths,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func fromInsuranceTypeModel(m InsuranceTypeModel) entities.InsuranceType {
	return entities.InsuranceType{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		ValidityMonths: m.ValidityMonths,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toCoverageModel(c entities.Coverage) CoverageModel {
	return CoverageModel{
		ID:              c.ID,
		InsuranceTypeID: c.InsuranceTypeID,
		Name:            c.Name,
		Description:     c.Description,
		CoverageLimit:   c.CoverageLimit,
		BasePremium:     c.BasePremium,
		IsOptional:      c.IsOptional,
		CreatedAt:       c.CreatedAt,
	}
}

func fromCoverageModel(m CoverageModel) entities.Coverage {
	return entities.Coverage{
		ID:              m.ID,
		InsuranceTypeID: m.InsuranceTypeID,
		Name:            m.Name,
		Description:     m.Description,
		CoverageLimit:   m.CoverageLimit,
		BasePremium:     m.BasePremium,
		IsOptional:      m.IsOptional,
		CreatedAt:       m.CreatedAt,
	}
}

func toOfferModel(o entities.Offer) OfferModel {
	m := OfferModel{
		ID:                      o.ID,
		CustomerID:              o.CustomerID,
		AgentID:                 o.Agent.Ptr(),
		InsuranceTypeID:         o.InsuranceTypeID,
		BasePrice:               o.BasePrice,
		DiscountRate:            o.DiscountRate,
		FinalPrice:              o.FinalPrice,
		Status:                  string(o.Status),
		ValidUntil:              o.ValidUntil,
		IsCustomerApproved:      o.IsCustomerApproved,
		CustomerApprovedAt:      o.CustomerApprovedAt,
		ReviewedAt:              o.ReviewedAt,
		ReviewedBy:              o.ReviewedBy.Ptr(),
		CustomerAdditionalInfo:  o.CustomerAdditionalInfo,
		RequestedCoverageAmount: o.RequestedCoverageAmount,
		RequestedStartDate:      o.RequestedStartDate,
		Department:              o.Department,
		AdminNotes:              o.AdminNotes,
		RejectionReason:         o.RejectionReason,
		CreatedBy:               o.CreatedBy,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
	for _, sc := range o.SelectedCoverages {
		m.SelectedCoverages = append(m.SelectedCoverages, SelectedCoverageModel{
			ID:         sc.ID,
			OfferID:    sc.OfferID,
			CoverageID: sc.CoverageID,
			Premium:    sc.Premium,
			Notes:      sc.Notes,
		})
	}
	return m
}

func fromOfferModel(m OfferModel) entities.Offer {
	o := entities.Offer{
		ID:                      m.ID,
		CustomerID:              m.CustomerID,
		Agent:                   entities.AgentRefFromPtr(m.AgentID),
		InsuranceTypeID:         m.InsuranceTypeID,
		BasePrice:               m.BasePrice,
		DiscountRate:            m.DiscountRate,
		FinalPrice:              m.FinalPrice,
		Status:                  entities.OfferStatus(m.Status),
		ValidUntil:              m.ValidUntil,
		IsCustomerApproved:      m.IsCustomerApproved,
		CustomerApprovedAt:      m.CustomerApprovedAt,
		ReviewedAt:              m.ReviewedAt,
		ReviewedBy:              entities.AgentRefFromPtr(m.ReviewedBy),
		CustomerAdditionalInfo:  m.CustomerAdditionalInfo,
		RequestedCoverageAmount: m.RequestedCoverageAmount,
		RequestedStartDate:      m.RequestedStartDate,
		Department:              m.Department,
		AdminNotes:              m.AdminNotes,
		RejectionReason:         m.RejectionReason,
		CreatedBy:               m.CreatedBy,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
	for _, sc := range m.SelectedCoverages {
		o.SelectedCoverages = append(o.SelectedCoverages, entities.SelectedCoverage{
			ID:         sc.ID,
			OfferID:    sc.OfferID,
			CoverageID: sc.CoverageID,
			Premium:    sc.Premium,
			Notes:      sc.Notes,
		})
	}
	return o
}

func toPolicyModel(p entities.Policy) PolicyModel {
	return PolicyModel{
		ID:           p.ID,
		OfferID:      p.OfferID,
		PolicyNumber: p.PolicyNumber,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromPolicyModel(m PolicyModel) entities.Policy {
	return entities.Policy{
		ID:           m.ID,
		OfferID:      m.OfferID,
		PolicyNumber: m.PolicyNumber,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPaymentModel(p entities.Payment) PaymentModel {
	var payload datatypes.JSON
	if len(p.ProviderPayloadRaw) > 0 && json.Valid(p.ProviderPayloadRaw) {
		payload = datatypes.JSON(p.ProviderPayloadRaw)
	}
	return PaymentModel{
		ID:                p.ID,
		PolicyID:          p.PolicyID,
		Amount:            p.Amount,
		PaidAt:            p.PaidAt,
		Method:            string(p.Method),
		Status:            string(p.Status),
		TransactionID:     p.TransactionID,
		CardLast4:         p.CardLast4,
		ProviderReference: p.ProviderReference,
		ProviderPayload:   payload,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func fromPaymentModel(m PaymentModel) entities.Payment {
	var raw json.RawMessage
	if len(m.ProviderPayload) > 0 {
		raw = json.RawMessage(m.ProviderPayload)
	}
	return entities.Payment{
		ID:                 m.ID,
		PolicyID:           m.PolicyID,
		Amount:             m.Amount,
		PaidAt:             m.PaidAt,
		Method:             entities.PaymentMethod(m.Method),
		Status:             entities.PaymentStatus(m.Status),
		TransactionID:      m.TransactionID,
		CardLast4:          m.CardLast4,
		ProviderReference:  m.ProviderReference,
		ProviderPayloadRaw: raw,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toClaimModel(c entities.Claim) ClaimModel {
	return ClaimModel{
		ID:                      c.ID,
		PolicyID:                c.PolicyID,
		CreatedBy:               c.CreatedBy,
		ProcessedBy:             c.ProcessedBy,
		Description:             c.Description,
		Status:                  string(c.Status),
		Type:                    string(c.Type),
		Priority:                string(c.Priority),
		ClaimedAmount:           c.ClaimedAmount,
		ApprovedAmount:          c.ApprovedAmount,
		IncidentDate:            c.IncidentDate,
		EstimatedResolutionDate: c.EstimatedResolutionDate,
		ProcessedAt:             c.ProcessedAt,
		Notes:                   c.Notes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func fromClaimModel(m ClaimModel) entities.Claim {
	return entities.Claim{
		ID:                      m.ID,
		PolicyID:                m.PolicyID,
		CreatedBy:               m.CreatedBy,
		ProcessedBy:             m.ProcessedBy,
		Description:             m.Description,
		Status:                  entities.ClaimStatus(m.Status),
		Type:                    entities.ClaimType(m.Type),
		Priority:                entities.ClaimPriority(m.Priority),
		ClaimedAmount:           m.ClaimedAmount,
		ApprovedAmount:          m.ApprovedAmount,
		IncidentDate:            m.IncidentDate,
		EstimatedResolutionDate: m.EstimatedResolutionDate,
		ProcessedAt:             m.ProcessedAt,
		Notes:                   m.Notes,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func toDocumentModel(d entities.Document) DocumentModel {
	return DocumentModel{
		ID:          d.ID,
		PolicyID:    d.PolicyID,
		PaymentID:   d.PaymentID,
		Kind:        string(d.Kind),
		FileName:    d.FileName,
		ContentType: d.ContentType,
		StorageKey:  d.StorageKey,
		SizeBytes:   d.SizeBytes,
		Checksum:    d.Checksum,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
	}
}

func fromDocumentModel(m DocumentModel) entities.Document {
	return entities.Document{
		ID:          m.ID,
		PolicyID:    m.PolicyID,
		PaymentID:   m.PaymentID,
		Kind:        entities.DocumentKind(m.Kind),
		FileName:    m.FileName,
		ContentType: m.ContentType,
		StorageKey:  m.StorageKey,
		SizeBytes:   m.SizeBytes,
		Checksum:    m.Checksum,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
