package lead

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateLeadInput struct {
	Name   string
	Phone  *string
	Email  *string
	City   *string
	Source *string
	Notes  *string

	ValueCents int64
	StageID    string
	// OwnerID is honoured for ADMIN and MANAGER only.
	OwnerID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateLead {
	return &CreateLead{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateLead) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateLeadInput,
) (*models.Lead, error) {

	// --------------------------------------------------
	// Payload
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	if err := domain.ValidateValue(in.ValueCents); err != nil {
		return nil, err
	}
	email := domain.CleanOptional(in.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// References
	// --------------------------------------------------
	stage, err := uc.repo.GetStage(ctx, in.StageID)
	if err != nil {
		return nil, err
	}

	ownerID := access.ResolveOwner(actor, in.OwnerID)
	if ownerID != actor.ID {
		ok, err := uc.repo.ActiveUserExists(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrNotFound("owner_not_found")
		}
	}

	// --------------------------------------------------
	// Create
	// --------------------------------------------------
	l := &models.Lead{
		Name:       name,
		Phone:      domain.CleanOptional(in.Phone),
		Email:      email,
		City:       domain.CleanOptional(in.City),
		Source:     domain.CleanOptional(in.Source),
		Notes:      domain.CleanOptional(in.Notes),
		ValueCents: in.ValueCents,
		OwnerID:    ownerID,
	}
	domain.Open(l, stage, timezone.Now())

	if err := uc.repo.CreateLead(ctx, l); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: l.ID,
		Metadata: map[string]any{
			"stage_id": l.StageID,
			"owner_id": l.OwnerID,
			"status":   l.Status,
		},
	})

	return uc.repo.GetLead(ctx, l.ID)
}
