package dto

import (
	"housing-empire-ai/internal/entity"
)

// GenerationRequest carries the form or JSON fields of one generation action.
// Each kind reads only its own fields.
type GenerationRequest struct {
	Address    string  `json:"address" form:"address"`
	DealType   string  `json:"deal_type" form:"deal_type" validate:"omitempty,deal_type"`
	Structure  string  `json:"structure" form:"structure" validate:"omitempty,deal_structure"`
	SellerName string  `json:"seller_name" form:"seller_name"`
	Price      float64 `json:"price" form:"price" validate:"gte=0"`
}

func (r GenerationRequest) Fields() entity.GenerationFields {
	return entity.GenerationFields{
		Address:    r.Address,
		DealType:   r.DealType,
		Structure:  r.Structure,
		SellerName: r.SellerName,
		Price:      r.Price,
	}
}

type GenerationResult struct {
	Kind    entity.GenerationKind `json:"kind"`
	Heading string                `json:"heading"`
	Content string                `json:"content"`
	Model   string                `json:"model"`
}

type CredentialRequest struct {
	APIKey string `json:"api_key" form:"api_key"`
}

type CredentialResponse struct {
	CredentialSet bool `json:"credential_set"`
}

type PageSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
