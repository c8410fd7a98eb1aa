package stage

import (
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

const MinNameLength = 2

// Position is one entry of a reorder batch.
type Position struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order" binding:"required,min=1"`
}

func ValidateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < MinNameLength {
		return httperr.ErrValidation("invalid_request", map[string]string{"name": "min"})
	}
	return nil
}

func ValidateOrder(order int) error {
	if order < 1 {
		return httperr.ErrValidation("invalid_request", map[string]string{"order": "min"})
	}
	return nil
}

// ValidateReorder rejects empty batches, non-positive orders and repeated ids.
func ValidateReorder(batch []Position) error {
	if len(batch) == 0 {
		return httperr.ErrValidation("invalid_request", map[string]string{"order": "required"})
	}

	seen := make(map[string]bool, len(batch))
	for _, p := range batch {
		if p.ID == "" {
			return httperr.ErrValidation("invalid_request", map[string]string{"id": "required"})
		}
		if err := ValidateOrder(p.Order); err != nil {
			return err
		}
		if seen[p.ID] {
			return httperr.ErrValidation("invalid_request", map[string]string{"id": "duplicate"})
		}
		seen[p.ID] = true
	}
	return nil
}
