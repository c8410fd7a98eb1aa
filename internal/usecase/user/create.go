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

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	LeadScope string
	// Active defaults to true.
	Active *bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// domainCheck, when set, rejects emails whose domain does not resolve.
	domainCheck func(email string) bool
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
	domainCheck func(email string) bool,
) *CreateUser {
	return &CreateUser{
		repo:        repo,
		audit:       audit,
		domainCheck: domainCheck,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateUser) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateUserInput,
) (*models.User, error) {

	// --------------------------------------------------
	// Payload
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < domain.MinNameLength {
		return nil, httperr.ErrValidation("invalid_request", map[string]string{"name": "min"})
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, httperr.ErrValidation("invalid_request", map[string]string{"password": "min"})
	}

	email := domain.NormalizeEmail(in.Email)
	if err := checkEmail(email, uc.domainCheck); err != nil {
		return nil, err
	}

	role, err := domain.ResolveRole(in.Role)
	if err != nil {
		return nil, err
	}
	scope, err := domain.ResolveScope(in.LeadScope)
	if err != nil {
		return nil, err
	}
	if err := canManage(actor, role); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Unique email
	// --------------------------------------------------
	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, httperr.ErrConflict("email_already_exists")
	} else if !httperr.IsKind(err, httperr.KindNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// Create
	// --------------------------------------------------
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role),
		LeadScope:    string(scope),
		Active:       active,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{
			"role":       u.Role,
			"lead_scope": u.LeadScope,
		},
	})

	return u, nil
}
