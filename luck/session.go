// Package luck implements the pay-then-claim roll protocol: a paid roll
// generates a batch of nine weighted-random rewards into the player's single
// pending slot, and a later claim realizes one of them plus an independent
// rare-drop trial.
package luck

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/duskforge/ladyluck-server/catalog"
	"github.com/duskforge/ladyluck-server/history"
	"github.com/duskforge/ladyluck-server/ledger"
	"github.com/duskforge/ladyluck-server/player"
)

const (
	// SecondaryDropChance is the independent rare-drop probability per claim.
	SecondaryDropChance = 1.0 / 2000.0
	// SecondaryDropID identifies the rare drop.
	SecondaryDropID = "lucky_lady"
)

// Session orchestrates roll and claim against durable per-player state.
// Each request runs under a per-player lock; the store's version check
// backs that up across processes.
type Session struct {
	store   player.Store
	ledger  ledger.PointLedger
	table   *catalog.Table
	history *history.Store
	src     catalog.Source
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSession wires a session. src nil means the crypto-backed default;
// hist nil disables the audit log.
func NewSession(store player.Store, lg ledger.PointLedger, table *catalog.Table, hist *history.Store, src catalog.Source) *Session {
	if src == nil {
		src = catalog.DefaultSource()
	}
	return &Session{
		store:   store,
		ledger:  lg,
		table:   table,
		history: hist,
		src:     src,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Session) playerLock(playerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[playerID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[playerID] = l
	}
	return l
}

// pointBalance reads the ledger for response projections. Best-effort: a
// ledger outage degrades the displayed balance to 0 instead of failing the
// whole request.
func (s *Session) pointBalance(ctx context.Context, playerID string) int64 {
	balance, err := s.ledger.Balance(ctx, playerID)
	if err != nil {
		log.Printf("luck: point balance for %s unavailable: %v", playerID, err)
		return 0
	}
	return balance
}

// RollReceipt confirms payment and batch creation. Rewards stay concealed
// until claim.
type RollReceipt struct {
	RollID           string
	FreeRollEligible bool
	MsUntilEligible  int64
	TicketBalance    int64
	PointBalance     int64
}

// Roll executes the pay phase: reject if a pending roll exists, authorize
// exactly one payment rail, draw the batch, and commit it to the pending
// slot in a single versioned save.
func (s *Session) Roll(ctx context.Context, playerID, method string) (*RollReceipt, error) {
	l := s.playerLock(playerID)
	l.Lock()
	defer l.Unlock()

	st, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if st.HasPending() {
		return nil, reject(ReasonPendingExists, "unclaimed roll outstanding, claim it first")
	}

	now := s.now()
	if err := s.authorize(ctx, st, method, now); err != nil {
		return nil, err
	}

	pending := &player.PendingRoll{
		RollID:    uuid.New().String(),
		Rewards:   s.table.SampleBatch(s.src, player.BatchSize),
		CreatedAt: now,
	}
	if err := st.SetPending(pending); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, st); err != nil {
		if errors.Is(err, player.ErrVersionConflict) {
			// A concurrent roll won the slot after our read. The point-rail
			// debit (if any) is already committed; see the claim history for
			// reconciliation.
			return nil, reject(ReasonPendingExists, "concurrent roll in flight")
		}
		return nil, err
	}

	eligible, msUntil := freeRollStatus(st.LastFreeRoll, s.now())
	return &RollReceipt{
		RollID:           pending.RollID,
		FreeRollEligible: eligible,
		MsUntilEligible:  msUntil,
		TicketBalance:    st.Tickets,
		PointBalance:     s.pointBalance(ctx, playerID),
	}, nil
}

// SecondaryDrop is the rare bonus outcome, evaluated fresh per claim and
// never stored.
type SecondaryDrop struct {
	ID string `json:"id"`
}

// ClaimResult reveals the full batch and the realized selection. Granting
// the chosen reward (and the secondary drop) into inventory is the caller's
// responsibility.
type ClaimResult struct {
	RollID           string
	Rewards          []catalog.Snapshot
	ChosenIndex      int
	ChosenReward     catalog.Snapshot
	SecondaryDrop    *SecondaryDrop
	FreeRollEligible bool
	MsUntilEligible  int64
	TicketBalance    int64
	PointBalance     int64
}

// Claim executes the claim phase: load the pending batch, select the chosen
// reward, run the independent secondary trial, and clear the slot. The clear
// is the commit point; a repeated claim rejects with no-pending-roll.
func (s *Session) Claim(ctx context.Context, playerID string, chosenIndex int) (*ClaimResult, error) {
	if chosenIndex < 0 || chosenIndex >= player.BatchSize {
		return nil, reject(ReasonInvalidIndex, "chosenIndex must be in [0, 9)")
	}

	l := s.playerLock(playerID)
	l.Lock()
	defer l.Unlock()

	st, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !st.HasPending() {
		return nil, reject(ReasonNoPendingRoll, "no pending roll, pay first")
	}
	pending, err := st.PendingBatch()
	if err != nil {
		// Slot stays occupied; the admin clear endpoint is the remediation.
		return nil, reject(ReasonCorruptPending, "stored pending batch is unreadable")
	}

	chosen := pending.Rewards[chosenIndex]

	var drop *SecondaryDrop
	if s.src.Float64() < SecondaryDropChance {
		drop = &SecondaryDrop{ID: SecondaryDropID}
	}

	st.ClearPending()
	if err := s.store.Save(ctx, st); err != nil {
		if errors.Is(err, player.ErrVersionConflict) {
			return nil, reject(ReasonNoPendingRoll, "claim already settled")
		}
		return nil, err
	}

	if s.history != nil {
		rec := &history.Record{
			RollID:      pending.RollID,
			PlayerID:    playerID,
			ChosenIndex: chosenIndex,
			RewardID:    chosen.ID,
			ClaimedAt:   s.now(),
		}
		if drop != nil {
			rec.SecondaryDrop = drop.ID
		}
		if err := s.history.Append(rec); err != nil {
			log.Printf("luck: claim history append for %s: %v", playerID, err)
		}
	}

	eligible, msUntil := freeRollStatus(st.LastFreeRoll, s.now())
	return &ClaimResult{
		RollID:           pending.RollID,
		Rewards:          pending.Rewards,
		ChosenIndex:      chosenIndex,
		ChosenReward:     chosen,
		SecondaryDrop:    drop,
		FreeRollEligible: eligible,
		MsUntilEligible:  msUntil,
		TicketBalance:    st.Tickets,
		PointBalance:     s.pointBalance(ctx, playerID),
	}, nil
}

// StatusReport is the read-only projection for UI polling.
type StatusReport struct {
	FreeRollEligible bool
	MsUntilEligible  int64
	TicketBalance    int64
	PointBalance     int64
	HasPendingRoll   bool
}

// Status snapshots timer, balances and pending state. No locking: reads are
// best-effort.
func (s *Session) Status(ctx context.Context, playerID string) (*StatusReport, error) {
	st, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	eligible, msUntil := freeRollStatus(st.LastFreeRoll, s.now())
	return &StatusReport{
		FreeRollEligible: eligible,
		MsUntilEligible:  msUntil,
		TicketBalance:    st.Tickets,
		PointBalance:     s.pointBalance(ctx, playerID),
		HasPendingRoll:   st.HasPending(),
	}, nil
}

// AddTickets credits lottery tickets (admin or reward-system path) and
// returns the new balance.
func (s *Session) AddTickets(ctx context.Context, playerID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, reject(ReasonInvalidAmount, "amount must be positive")
	}
	l := s.playerLock(playerID)
	l.Lock()
	defer l.Unlock()

	st, err := s.store.Get(ctx, playerID)
	if err != nil {
		return 0, err
	}
	st.Tickets += amount
	if err := s.store.Save(ctx, st); err != nil {
		return 0, err
	}
	return st.Tickets, nil
}

// ClearPending force-empties the player's pending slot. Recovery path for
// corrupt pending payloads; reports whether a slot was occupied.
func (s *Session) ClearPending(ctx context.Context, playerID string) (bool, error) {
	l := s.playerLock(playerID)
	l.Lock()
	defer l.Unlock()

	st, err := s.store.Get(ctx, playerID)
	if err != nil {
		return false, err
	}
	if !st.HasPending() {
		return false, nil
	}
	st.ClearPending()
	if err := s.store.Save(ctx, st); err != nil {
		return false, err
	}
	log.Printf("luck: pending slot cleared for %s (admin)", playerID)
	return true, nil
}
