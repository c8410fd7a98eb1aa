package lead

// ===============================
// Lead Status
// ===============================

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
	StatusSold   Status = "SOLD"
)

// DeriveStatus is the only source of a lead's status: a settled lead is SOLD
// wherever it sits, otherwise the current stage decides.
func DeriveStatus(stageClosed, hasSale bool) Status {
	switch {
	case hasSale:
		return StatusSold
	case stageClosed:
		return StatusClosed
	default:
		return StatusOpen
	}
}

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusSold
}
