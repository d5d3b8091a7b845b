// internal/motion/source.go

// Package motion supplies the "prefers reduced motion" accessibility
// preference. Sources watch some OS signal in the background; Monitor turns
// them into a value the frame loop polls once per tick.
package motion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ErrUnsupported is returned by sources that cannot work on this system.
var ErrUnsupported = errors.New("motion source not supported here")

// Source reports the preference. The channel may start with the current
// value and then carries every change; true means "reduce motion". It is
// closed once ctx is done.
type Source interface {
	Name() string
	Watch(ctx context.Context) (<-chan bool, error)
}

// offer does a coalescing send into a 1-slot channel: a value nobody read yet
// is replaced by the newer one. Only one goroutine may send on ch.
func offer(ch chan bool, v bool) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Static always reports the same value.
type Static struct {
	Reduced bool
}

func (s Static) Name() string { return "static" }

func (s Static) Watch(ctx context.Context) (<-chan bool, error) {
	ch := make(chan bool, 1)
	ch <- s.Reduced
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// Env reads the preference once from an environment variable. Besides the
// strconv booleans it accepts "reduce" and "no-preference".
type Env struct {
	Var    string
	lookup func(string) (string, bool)
}

func (e Env) Name() string { return "env:" + e.Var }

// Value parses the variable; ok is false when it is unset or empty.
func (e Env) Value() (reduced bool, ok bool, err error) {
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, set := lookup(e.Var)
	raw = strings.TrimSpace(strings.ToLower(raw))
	if !set || raw == "" {
		return false, false, nil
	}
	switch raw {
	case "reduce":
		return true, true, nil
	case "no-preference":
		return false, true, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("%s=%q: %w", e.Var, raw, err)
	}
	return b, true, nil
}

func (e Env) Watch(ctx context.Context) (<-chan bool, error) {
	v, _, err := e.Value()
	if err != nil {
		return nil, err
	}
	return Static{Reduced: v}.Watch(ctx)
}

// Merge combines sources; whichever changed last wins. A source that fails
// to start is skipped as long as at least one other starts.
type Merge []Source

func (m Merge) Name() string {
	names := make([]string, len(m))
	for i, s := range m {
		names[i] = s.Name()
	}
	return "merge(" + strings.Join(names, ",") + ")"
}

func (m Merge) Watch(ctx context.Context) (<-chan bool, error) {
	in := make(chan bool)
	var wg sync.WaitGroup
	var errs error
	started := 0
	for _, s := range m {
		ch, err := s.Watch(ctx)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		started++
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range ch {
				select {
				case in <- v:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	if started == 0 {
		return nil, errs
	}

	out := make(chan bool, 1)
	go func() {
		wg.Wait()
		close(in)
	}()
	go func() {
		defer close(out)
		for v := range in {
			offer(out, v)
		}
	}()
	return out, nil
}
