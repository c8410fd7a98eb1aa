package lead

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/dto"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateLeadInput is a partial update. Nil pointers and unset Nullables leave
// the field alone; a set Nullable holding null clears it.
type UpdateLeadInput struct {
	Name       *string
	ValueCents *int64

	Phone  dto.Nullable[string]
	Email  dto.Nullable[string]
	City   dto.Nullable[string]
	Source dto.Nullable[string]
	Notes  dto.Nullable[string]

	// OwnerID is dropped for agents.
	OwnerID dto.Nullable[string]
}

// ======================================================
// USE CASE
// ======================================================

type UpdateLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateLead {
	return &UpdateLead{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateLead) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	in UpdateLeadInput,
) (*models.Lead, error) {

	// --------------------------------------------------
	// Payload
	// --------------------------------------------------
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if err := domain.ValidateName(name); err != nil {
			return nil, err
		}
	}
	if in.ValueCents != nil {
		if err := domain.ValidateValue(*in.ValueCents); err != nil {
			return nil, err
		}
	}
	email := domain.CleanOptional(in.Email.Value)
	if in.Email.Set {
		if err := domain.ValidateEmail(email); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Owner change (privileged only)
	// --------------------------------------------------
	var newOwner string
	if access.CanReassign(actor) && in.OwnerID.Set && in.OwnerID.Value != nil {
		newOwner = strings.TrimSpace(*in.OwnerID.Value)
	}
	if newOwner != "" {
		ok, err := uc.repo.ActiveUserExists(ctx, newOwner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrNotFound("owner_not_found")
		}
	}

	// --------------------------------------------------
	// Apply
	// --------------------------------------------------
	changed := []string{}
	updated, err := uc.repo.UpdateLead(ctx, id, writeGuard(actor), func(l *models.Lead) error {
		if in.Name != nil {
			l.Name = name
			changed = append(changed, "name")
		}
		if in.ValueCents != nil {
			l.ValueCents = *in.ValueCents
			changed = append(changed, "value_cents")
		}
		if in.Email.Set {
			l.Email = email
			changed = append(changed, "email")
		}
		setOptional(&l.Phone, in.Phone, "phone", &changed)
		setOptional(&l.City, in.City, "city", &changed)
		setOptional(&l.Source, in.Source, "source", &changed)
		setOptional(&l.Notes, in.Notes, "notes", &changed)

		if newOwner != "" && newOwner != l.OwnerID {
			l.OwnerID = newOwner
			changed = append(changed, "owner_id")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "lead_updated",
		Entity:   "lead",
		EntityID: updated.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return updated, nil
}

func setOptional(dst **string, v dto.Nullable[string], field string, changed *[]string) {
	if !v.Set {
		return
	}
	*dst = domain.CleanOptional(v.Value)
	*changed = append(*changed, field)
}
