// internal/motion/signal_unix.go

//go:build unix

package motion

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Signal lets another process flip the preference:
// SIGUSR1 asks for reduced motion, SIGUSR2 allows motion again.
// It has no initial value of its own.
type Signal struct{}

func (Signal) Name() string { return "signal" }

func (Signal) Watch(ctx context.Context) (<-chan bool, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGUSR1, unix.SIGUSR2)

	out := make(chan bool, 1)
	go func() {
		defer close(out)
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				offer(out, sig == unix.SIGUSR1)
			}
		}
	}()
	return out, nil
}
