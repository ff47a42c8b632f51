package luck

import (
	"context"
	"fmt"
	"time"

	"github.com/duskforge/ladyluck-server/player"
)

// Payment methods.
const (
	MethodFree   = "free"
	MethodTicket = "ticket"
	MethodPoint  = "point"
)

const (
	// FreeRollCooldown gates the free rail.
	FreeRollCooldown = time.Hour
	// PointCost is the fixed point-currency price per roll.
	PointCost int64 = 50
)

// freeRollStatus computes free-rail eligibility at now. Status and the
// payment gate share this so UI and server never disagree.
func freeRollStatus(lastFree, now time.Time) (eligible bool, msUntil int64) {
	if lastFree.IsZero() {
		return true, 0
	}
	elapsed := now.Sub(lastFree)
	if elapsed >= FreeRollCooldown {
		return true, 0
	}
	return false, int64((FreeRollCooldown - elapsed) / time.Millisecond)
}

// authorize validates and applies exactly one payment rail. State mutations
// happen only on the success path; the free and ticket rails touch st alone
// (committed together with the pending write by the caller's save), while
// the point rail issues the external ledger debit here.
func (s *Session) authorize(ctx context.Context, st *player.State, method string, now time.Time) error {
	switch method {
	case MethodFree:
		eligible, msUntil := freeRollStatus(st.LastFreeRoll, now)
		if !eligible {
			return reject(ReasonCooldownActive, fmt.Sprintf("free roll available in %dms", msUntil))
		}
		// Forward-only: the timer is never rewound.
		st.LastFreeRoll = now
		return nil
	case MethodTicket:
		if st.Tickets < 1 {
			return reject(ReasonInsufficientTicket, "no lottery tickets left")
		}
		st.Tickets--
		return nil
	case MethodPoint:
		balance, err := s.ledger.Balance(ctx, st.PlayerID)
		if err != nil {
			return err
		}
		if balance < PointCost {
			return reject(ReasonInsufficientPoints, fmt.Sprintf("need %d points, have %d", PointCost, balance))
		}
		return s.ledger.Debit(ctx, st.PlayerID, PointCost)
	default:
		return reject(ReasonInvalidMethod, "method must be free, ticket or point")
	}
}
