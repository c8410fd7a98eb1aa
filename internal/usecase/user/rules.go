package user

import (
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/validators"
)

// canManage reports whether actor may create or edit an account with role.
// Only an ADMIN touches ADMIN accounts.
func canManage(actor access.Actor, role access.Role) error {
	if role == access.RoleAdmin && actor.Role != access.RoleAdmin {
		return httperr.ErrForbidden("forbidden")
	}
	return nil
}

func checkEmail(email string, domainCheck func(string) bool) error {
	if !validators.IsEmailSyntaxValid(email) {
		return httperr.ErrValidation("invalid_request", map[string]string{"email": "email"})
	}
	if domainCheck != nil && !domainCheck(email) {
		return httperr.ErrBusiness("invalid_email_domain")
	}
	return nil
}
