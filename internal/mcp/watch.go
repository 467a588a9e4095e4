package mcp

import (
	"context"
	"os"
	"time"

	"enigma/internal/logging"
)

// parentPollInterval is how often WatchParent checks the parent PID.
var parentPollInterval = 2 * time.Second

// WatchParent cancels the server when its parent process goes away, so a
// stdio server does not outlive the client that spawned it.
//
// It never reads stdin: the SDK's StdioTransport owns it exclusively.
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	log := logging.New("enigma-mcp")
	ticker := time.NewTicker(parentPollInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if os.Getppid() != ppid {
					log.Warn("parent process exited, shutting down", "ppid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
