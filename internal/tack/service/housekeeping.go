package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/store"
)

// HousekeepingService periodically deletes expired verification codes,
// reset tokens, invites and revocation entries. Expiry is enforced at read
// time; this only reclaims space.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Revocations defaults to the store's own table. Set it when the
	// denylist lives elsewhere.
	Revocations store.Revocations

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:       store,
		Logger:      logger,
		Interval:    interval,
		Revocations: store.Revocations(),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep performs one cleanup pass and returns the number of rows removed.
// Each table is independent; a failure in one does not stop the others.
func (s *HousekeepingService) Sweep(ctx context.Context) int64 {
	now := time.Now().UTC()
	s.Logger.Debug("starting housekeeping sweep")

	sweeps := []struct {
		name string
		fn   func(context.Context, time.Time) (int64, error)
	}{
		{"verification_tokens", s.Store.VerificationTokens().DeleteExpiredVerificationTokens},
		{"reset_tokens", s.Store.ResetTokens().DeleteExpiredResetTokens},
		{"invites", s.Store.Invites().DeleteExpiredInvites},
		{"revoked_tokens", s.Revocations.DeleteExpiredRevocations},
	}

	var total int64
	for _, sw := range sweeps {
		n, err := sw.fn(ctx, now)
		if err != nil {
			s.Logger.Error("housekeeping sweep failed", "table", sw.name, "error", err)
			continue
		}
		if n > 0 {
			s.Logger.Debug("deleted expired rows", "table", sw.name, "count", n)
		}
		total += n
	}

	s.Logger.Info("housekeeping sweep completed", "deleted", total)
	return total
}
