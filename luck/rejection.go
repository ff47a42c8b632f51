package luck

import "errors"

// Rejection reasons surfaced to the caller. All are non-fatal: the caller
// decides whether to re-poll status and retry.
const (
	ReasonInvalidMethod      = "invalid-method"
	ReasonCooldownActive     = "cooldown-active"
	ReasonInsufficientTicket = "insufficient-tickets"
	ReasonInsufficientPoints = "insufficient-points"
	ReasonPendingExists      = "pending-exists"
	ReasonInvalidIndex       = "invalid-index"
	ReasonNoPendingRoll      = "no-pending-roll"
	ReasonCorruptPending     = "corrupt-pending-data"
	ReasonInvalidAmount      = "invalid-amount"
)

// Rejection is a structured refusal of a roll/claim request, as opposed to
// an infrastructure failure.
type Rejection struct {
	Reason  string
	Message string
}

func (r *Rejection) Error() string {
	return r.Reason + ": " + r.Message
}

func reject(reason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}

// AsRejection unwraps a Rejection from err, or nil.
func AsRejection(err error) *Rejection {
	var r *Rejection
	if errors.As(err, &r) {
		return r
	}
	return nil
}
