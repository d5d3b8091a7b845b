// internal/app/app_test.go
package app

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"go-hex-ants/internal/page"
	"go-hex-ants/internal/utils"
	"go-hex-ants/pkg/logger"
)

func newTestController(t *testing.T, h *page.Headless) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug"}, &buf)
	return New(h, DefaultOptions(), log, utils.NewPRNGService(42)), &buf
}

func TestController_StartMountsAndAnimates(t *testing.T) {
	h := page.NewHeadless(1920, 1080, false)
	c, buf := newTestController(t, h)

	c.Start()
	if !c.Running() {
		t.Fatal("controller not running after Start")
	}
	if h.Surfaces() != 1 || h.PendingFrames() != 1 {
		t.Fatalf("surfaces=%d pending=%d, want 1/1", h.Surfaces(), h.PendingFrames())
	}
	if !strings.Contains(buf.String(), "creating ant system") {
		t.Fatalf("missing creation log in %q", buf.String())
	}

	st := c.Stats()
	if st.Edges != 252 || st.Cols != 7 || st.Rows != 6 {
		t.Fatalf("stats = %+v", st)
	}
	if st.Resets != 20 {
		t.Fatalf("initial resets = %d, want 20", st.Resets)
	}

	for i := 0; i < 5; i++ {
		h.Step()
	}
	st = c.Stats()
	if st.Drawn == 0 {
		t.Fatal("no ant drawn inside the viewport")
	}
	if st.Frames != 5 || h.PendingFrames() != 1 {
		t.Fatalf("frames=%d pending=%d", st.Frames, h.PendingFrames())
	}
	if img := h.Composite(color.Transparent); countOpaque(img.Pix) == 0 {
		t.Fatal("nothing drawn after five frames")
	}
}

func TestController_StartWhileRunningCreatesNothing(t *testing.T) {
	h := page.NewHeadless(200, 200, false)
	c, _ := newTestController(t, h)

	first := c.Start()
	second := c.Start()
	if h.Surfaces() != 1 || h.PendingFrames() != 1 {
		t.Fatalf("surfaces=%d pending=%d", h.Surfaces(), h.PendingFrames())
	}
	if c.Stats().Sessions != 1 {
		t.Fatalf("sessions = %d", c.Stats().Sessions)
	}

	second()
	if c.Running() || h.Surfaces() != 0 || h.PendingFrames() != 0 {
		t.Fatal("stopper of the live session did not stop it")
	}
	first()
}

func TestController_StopIsIdempotent(t *testing.T) {
	h := page.NewHeadless(200, 200, false)
	c, _ := newTestController(t, h)
	stop := c.Start()
	stop()
	stop()
	c.Stop()
	if c.Running() || h.Surfaces() != 0 || h.PendingFrames() != 0 {
		t.Fatalf("running=%v surfaces=%d pending=%d", c.Running(), h.Surfaces(), h.PendingFrames())
	}
}

func TestController_StopThenStartLeavesOneSurface(t *testing.T) {
	h := page.NewHeadless(300, 200, false)
	c, _ := newTestController(t, h)

	old := c.Start()
	h.Step()
	c.Stop()
	c.Start()
	old()

	if !c.Running() {
		t.Fatal("stale stopper ended the new session")
	}
	if h.Surfaces() != 1 || h.PendingFrames() != 1 {
		t.Fatalf("surfaces=%d pending=%d, want 1/1", h.Surfaces(), h.PendingFrames())
	}
}

func TestController_ReducedAtStartCreatesNothing(t *testing.T) {
	h := page.NewHeadless(300, 200, true)
	c, buf := newTestController(t, h)

	stop := c.Start()
	stop()
	if c.Running() || h.Surfaces() != 0 || h.PendingFrames() != 0 {
		t.Fatal("reduced motion still created a session")
	}
	out := buf.String()
	if !strings.Contains(out, "ants disabled: prefers-reduced-motion is enabled") {
		t.Fatalf("missing disabled log in %q", out)
	}
	if strings.Contains(out, "creating ant system") {
		t.Fatal("creation logged under reduced motion")
	}
}

func TestController_FollowsPreference(t *testing.T) {
	h := page.NewHeadless(400, 300, false)
	c, _ := newTestController(t, h)
	c.Attach()
	c.Attach()

	for _, reduced := range []bool{true, false, true, false, false} {
		h.SetReducedMotion(reduced)
		h.Step()
		if h.Surfaces() > 1 || h.PendingFrames() > 1 {
			t.Fatalf("after reduced=%v: surfaces=%d pending=%d", reduced, h.Surfaces(), h.PendingFrames())
		}
		if c.Running() == reduced {
			t.Fatalf("after reduced=%v running=%v", reduced, c.Running())
		}
	}

	c.Detach()
	if c.Running() || h.Surfaces() != 0 {
		t.Fatal("Detach left the animation running")
	}
	h.SetReducedMotion(true)
	h.SetReducedMotion(false)
	if c.Running() {
		t.Fatal("detached controller reacted to the preference")
	}
}

func TestController_ResizeRebuildsGrid(t *testing.T) {
	h := page.NewHeadless(1920, 1080, false)
	c, _ := newTestController(t, h)
	c.Start()

	h.Resize(800, 600)
	st := c.Stats()
	// 800/100 = 8 px per unit: tile 160 x 138.56 -> 5+2 cols, 5+2 rows
	if st.Cols != 7 || st.Rows != 7 || st.Edges != 7*7*6 {
		t.Fatalf("stats after resize = %+v", st)
	}
	if h.Surfaces() != 1 {
		t.Fatalf("surfaces = %d", h.Surfaces())
	}
	h.Step()
	if c.Stats().Frames != 1 {
		t.Fatal("frame loop did not survive the resize")
	}
}

func TestController_ResizeToZeroParksAnts(t *testing.T) {
	h := page.NewHeadless(300, 200, false)
	c, _ := newTestController(t, h)
	c.Start()

	h.Resize(0, 0)
	for i := 0; i < 3000; i++ {
		h.Step()
	}
	if c.Stats().Edges != 0 || !c.Running() {
		t.Fatalf("stats = %+v", c.Stats())
	}

	before := c.Stats().Resets
	h.Resize(300, 200)
	h.Step()
	if c.Stats().Resets <= before {
		t.Fatal("parked ants were not placed on the new grid")
	}
}

func TestController_MountFailureStaysStopped(t *testing.T) {
	h := page.NewHeadless(300, 200, false)
	h.FailMounts(errors.New("canvas unsupported"))
	c, buf := newTestController(t, h)

	c.Attach()
	if c.Running() || h.PendingFrames() != 0 {
		t.Fatal("controller running without a surface")
	}
	if !strings.Contains(buf.String(), ErrNoSurface.Error()) {
		t.Fatalf("missing debug log in %q", buf.String())
	}

	h.FailMounts(nil)
	h.SetReducedMotion(true)
	h.SetReducedMotion(false)
	if !c.Running() {
		t.Fatal("controller did not start once a surface was available")
	}
}

func countOpaque(pix []uint8) int {
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestController_LiveSuspendLogsQuietly(t *testing.T) {
	h := page.NewHeadless(300, 200, false)
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info"}, &buf)
	c := New(h, DefaultOptions(), log, utils.NewPRNGService(42))
	c.Attach()

	h.SetReducedMotion(true)
	if c.Running() {
		t.Fatal("still running under reduced motion")
	}
	if strings.Contains(buf.String(), "prefers-reduced-motion") {
		t.Fatalf("suspending a live run logged the start-time notice: %q", buf.String())
	}

	c.Start()
	if n := strings.Count(buf.String(), "ants disabled: prefers-reduced-motion is enabled"); n != 1 {
		t.Fatalf("notice logged %d times, want 1 for the skipped start", n)
	}
}
