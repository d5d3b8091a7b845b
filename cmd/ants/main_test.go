// cmd/ants/main_test.go
package main

import (
	"errors"
	"testing"

	"go-hex-ants/internal/config"
)

func TestApplyFlags(t *testing.T) {
	s := config.Default()
	if err := applyFlags(&s, "on", ""); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if s.Motion.Source != config.MotionSourceStatic || !s.Motion.Reduced {
		t.Fatalf("motion = %+v, want static reduced", s.Motion)
	}

	s = config.Default()
	if err := applyFlags(&s, "auto", config.MotionSourceSignal); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if s.Motion.Source != config.MotionSourceSignal {
		t.Fatalf("source = %q", s.Motion.Source)
	}

	s = config.Default()
	if err := applyFlags(&s, "sometimes", ""); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	s = config.Default()
	if err := applyFlags(&s, "", "carrier-pigeon"); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid for an unknown source", err)
	}
}

func TestWindowSize_Pinned(t *testing.T) {
	w, h := windowSize(config.WindowSettings{Width: 800, Height: 600})
	if w != 800 || h != 600 {
		t.Fatalf("size = %dx%d", w, h)
	}
}
