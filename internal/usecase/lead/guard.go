package lead

import (
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

// writeGuard rejects changes to leads the actor may not write.
func writeGuard(actor access.Actor) domain.Guard {
	return func(l *models.Lead) error {
		return access.Check(actor, access.OpWrite, l.OwnerID)
	}
}
