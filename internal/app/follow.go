package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/state"
)

const defaultFollowInterval = 15 * time.Second

// StartFollower launches a background goroutine that keeps a live shared
// instant on the current grid slot. It returns immediately.
func StartFollower(ctx context.Context, store *state.Store, sync *anchor.Synchronizer, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultFollowInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			follow(store, sync, logger)
		}
	}()
}

// follow re-runs Initialize on a live state and stores the result when it
// lies ahead of the current instant. Edited states are never live, and the
// instant never moves backwards: when home's rounded slot wraps past
// midnight ahead of the local day the state holds until the local date
// catches up. It reports whether the store changed.
func follow(store *state.Store, sync *anchor.Synchronizer, logger *slog.Logger) bool {
	snap, moved := store.Update(func(st anchor.State) (anchor.State, bool) {
		if !st.Live {
			return st, false
		}
		current := sync.Initialize(st.Locations)
		if !current.Instant.After(st.Instant) {
			return st, false
		}
		return current, true
	})
	if moved {
		logger.Debug("advanced to current slot", "instant", snap.State.Instant, "revision", snap.Revision)
	}
	return moved
}
