package app

import (
	"context"
	"log"
	"time"

	"github.com/atalayahq/atalaya/internal/scanner"
	"github.com/atalayahq/atalaya/internal/state"
)

const defaultPollInterval = 10 * time.Second

// StartPoller launches a background goroutine that refreshes the store at
// a fixed cadence, beginning with an immediate refresh. It returns
// immediately; the goroutine stops when ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, client *scanner.Client, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	log.Printf("status poller started, interval %s", interval)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, store, client)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refresh fetches status once and records the outcome. Failures are
// logged and counted; the store keeps the last-known-good status.
func refresh(ctx context.Context, store *state.Store, client *scanner.Client) {
	status, err := client.FetchStatus(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("status poll failed: %v", err)
		return
	}
	store.Update(status, nil)
}
