// internal/motion/signal_other.go

//go:build !unix

package motion

import "context"

// Signal is only available on unix systems.
type Signal struct{}

func (Signal) Name() string { return "signal" }

func (Signal) Watch(context.Context) (<-chan bool, error) {
	return nil, ErrUnsupported
}
