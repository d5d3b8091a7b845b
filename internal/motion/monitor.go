// internal/motion/monitor.go
package motion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-hex-ants/internal/config"
)

// InitialWait bounds how long Start waits for a source's first value.
const InitialWait = 500 * time.Millisecond

// Monitor holds the last preference value seen by the frame loop. Only Poll
// and Reduced may be called, and only from the frame loop goroutine.
type Monitor struct {
	name    string
	updates <-chan bool
	reduced bool
}

// Start begins watching src. If src has no value within wait, fallback is
// used as the initial preference.
func Start(ctx context.Context, src Source, fallback bool, wait time.Duration) (*Monitor, error) {
	updates, err := src.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", src.Name(), err)
	}
	m := &Monitor{name: src.Name(), updates: updates, reduced: fallback}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case v, ok := <-updates:
		if ok {
			m.reduced = v
		}
	case <-timer.C:
	}
	return m, nil
}

// Name is the name of the watched source.
func (m *Monitor) Name() string {
	return m.name
}

// Reduced returns the current preference without looking for news.
func (m *Monitor) Reduced() bool {
	return m.reduced
}

// Poll drains pending updates without blocking. changed is true only when
// the value differs from what the previous Poll returned.
func (m *Monitor) Poll() (reduced, changed bool) {
	prev := m.reduced
	for {
		select {
		case v, ok := <-m.updates:
			if !ok {
				m.updates = nil
				return m.reduced, m.reduced != prev
			}
			m.reduced = v
		default:
			return m.reduced, m.reduced != prev
		}
	}
}

// FromSettings builds the source selected by motion.source. "auto" follows
// GNOME when gsettings is installed, otherwise ANTS_REDUCED_MOTION, and on
// unix always listens for SIGUSR1/SIGUSR2 on top.
func FromSettings(s config.MotionSettings, log *slog.Logger) Source {
	env := Env{Var: config.EnvReducedMotion}
	switch s.Source {
	case config.MotionSourceStatic:
		return Static{Reduced: s.Reduced}
	case config.MotionSourceEnv:
		return env
	case config.MotionSourceSignal:
		return Merge{Static{Reduced: s.Reduced}, Signal{}}
	case config.MotionSourceGSettings:
		return NewGSettings()
	}

	var primary Source = Static{Reduced: s.Reduced}
	if _, set, _ := env.Value(); set {
		primary = env
	} else if g := NewGSettings(); g.Available() {
		primary = g
	}
	log.Debug("reduced-motion source selected", "source", primary.Name())
	return Merge{primary, Signal{}}
}
