package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/auth"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/user"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type UpdateUserInput struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *string
	LeadScope *string
	Active    *bool
}

type UpdateUser struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	domainCheck func(email string) bool
}

func NewUpdateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
	domainCheck func(email string) bool,
) *UpdateUser {
	return &UpdateUser{
		repo:        repo,
		audit:       audit,
		domainCheck: domainCheck,
	}
}

// Execute applies a partial update. A new password is re-hashed; role and
// scope changes take effect on the user's next login.
func (uc *UpdateUser) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := uc.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManage(actor, access.Role(u.Role)); err != nil {
		return nil, err
	}

	changed := []string{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len([]rune(name)) < domain.MinNameLength {
			return nil, httperr.ErrValidation("invalid_request", map[string]string{"name": "min"})
		}
		u.Name = name
		changed = append(changed, "name")
	}

	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		if email != u.Email {
			if err := checkEmail(email, uc.domainCheck); err != nil {
				return nil, err
			}
			if other, err := uc.repo.GetUserByEmail(ctx, email); err == nil && other.ID != u.ID {
				return nil, httperr.ErrConflict("email_already_exists")
			} else if err != nil && !httperr.IsKind(err, httperr.KindNotFound) {
				return nil, err
			}
			u.Email = email
			changed = append(changed, "email")
		}
	}

	if in.Password != nil {
		if len(*in.Password) < domain.MinPasswordLength {
			return nil, httperr.ErrValidation("invalid_request", map[string]string{"password": "min"})
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	if in.Role != nil {
		role, err := domain.ResolveRole(*in.Role)
		if err != nil {
			return nil, err
		}
		if err := canManage(actor, role); err != nil {
			return nil, err
		}
		u.Role = string(role)
		changed = append(changed, "role")
	}

	if in.LeadScope != nil {
		scope, err := domain.ResolveScope(*in.LeadScope)
		if err != nil {
			return nil, err
		}
		u.LeadScope = string(scope)
		changed = append(changed, "lead_scope")
	}

	if in.Active != nil {
		if !*in.Active && u.ID == actor.ID {
			return nil, httperr.ErrBusiness("cannot_deactivate_self")
		}
		u.Active = *in.Active
		changed = append(changed, "active")
	}

	if err := uc.repo.SaveUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return u, nil
}
