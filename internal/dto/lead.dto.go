package dto

import (
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type OwnerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LeadDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	City       *string `json:"city"`
	Source     *string `json:"source"`
	Notes      *string `json:"notes"`
	ValueCents int64   `json:"value_cents"`
	Status     string  `json:"status"`

	StageID string        `json:"stage_id"`
	Stage   *models.Stage `json:"stage,omitempty"`
	OwnerID string        `json:"owner_id"`
	Owner   *OwnerDTO     `json:"owner,omitempty"`
	Sale    *models.Sale  `json:"sale"`

	ClosedAt  *time.Time `json:"closed_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToOwnerDTO(u *models.User) *OwnerDTO {
	if u == nil {
		return nil
	}
	return &OwnerDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToLeadDTO(l *models.Lead) LeadDTO {
	return LeadDTO{
		ID:         l.ID,
		Name:       l.Name,
		Phone:      l.Phone,
		Email:      l.Email,
		City:       l.City,
		Source:     l.Source,
		Notes:      l.Notes,
		ValueCents: l.ValueCents,
		Status:     l.Status,
		StageID:    l.StageID,
		Stage:      l.Stage,
		OwnerID:    l.OwnerID,
		Owner:      ToOwnerDTO(l.Owner),
		Sale:       l.Sale,
		ClosedAt:   l.ClosedAt,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func ToLeadDTOs(leads []models.Lead) []LeadDTO {
	out := make([]LeadDTO, len(leads))
	for i := range leads {
		out[i] = ToLeadDTO(&leads[i])
	}
	return out
}

// SaleDTO is a sale row with the lead it settles.
type SaleDTO struct {
	models.Sale
	Lead LeadSummaryDTO `json:"lead"`
}

type LeadSummaryDTO struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Email  *string       `json:"email"`
	Phone  *string       `json:"phone"`
	City   *string       `json:"city"`
	Status string        `json:"status"`
	Stage  *models.Stage `json:"stage,omitempty"`
	Owner  *OwnerDTO     `json:"owner,omitempty"`
}

func ToSaleDTO(s *models.Sale, l *models.Lead) SaleDTO {
	return SaleDTO{
		Sale: *s,
		Lead: LeadSummaryDTO{
			ID:     l.ID,
			Name:   l.Name,
			Email:  l.Email,
			Phone:  l.Phone,
			City:   l.City,
			Status: l.Status,
			Stage:  l.Stage,
			Owner:  ToOwnerDTO(l.Owner),
		},
	}
}

// ToSaleDTOs expects every lead to carry its Sale.
func ToSaleDTOs(leads []models.Lead) []SaleDTO {
	out := make([]SaleDTO, 0, len(leads))
	for i := range leads {
		if leads[i].Sale == nil {
			continue
		}
		out = append(out, ToSaleDTO(leads[i].Sale, &leads[i]))
	}
	return out
}
