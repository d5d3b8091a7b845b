// internal/motion/gsettings.go
package motion

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"go-hex-ants/internal/config"
)

// GSettings follows GNOME's "enable-animations" switch, the desktop
// counterpart of the browser's prefers-reduced-motion media query.
type GSettings struct {
	Binary string // defaults to "gsettings"
	Schema string
	Key    string
}

// NewGSettings watches org.gnome.desktop.interface enable-animations.
func NewGSettings() GSettings {
	return GSettings{Binary: "gsettings", Schema: config.GSettingsSchema, Key: config.GSettingsKey}
}

func (g GSettings) Name() string { return "gsettings:" + g.Schema + "." + g.Key }

// Available reports whether the gsettings tool is on PATH.
func (g GSettings) Available() bool {
	_, err := exec.LookPath(g.binary())
	return err == nil
}

func (g GSettings) binary() string {
	if g.Binary == "" {
		return "gsettings"
	}
	return g.Binary
}

// Current reads the switch once.
func (g GSettings) Current(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, g.binary(), "get", g.Schema, g.Key).Output()
	if err != nil {
		return false, fmt.Errorf("gsettings get: %w", err)
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(string(out)))
	if err != nil {
		return false, fmt.Errorf("gsettings get: unexpected value %q: %w", out, err)
	}
	return !enabled, nil
}

func (g GSettings) Watch(ctx context.Context) (<-chan bool, error) {
	if !g.Available() {
		return nil, ErrUnsupported
	}
	reduced, err := g.Current(ctx)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, g.binary(), "monitor", g.Schema, g.Key)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("gsettings monitor: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gsettings monitor: %w", err)
	}

	out := make(chan bool, 1)
	out <- reduced
	go func() {
		defer close(out)
		watchLines(stdout, g.Key, out)
		_ = cmd.Wait()
	}()
	return out, nil
}

// watchLines parses "key: value" lines as printed by gsettings monitor.
func watchLines(r io.Reader, key string, out chan bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if reduced, ok := parseMonitorLine(sc.Text(), key); ok {
			offer(out, reduced)
		}
	}
}

func parseMonitorLine(line, key string) (reduced bool, ok bool) {
	name, value, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(name) != key {
		return false, false
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return !enabled, true
}
