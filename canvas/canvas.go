// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/gogpu/checkers"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")
)

// Canvas is a drawing surface for a checkers board: a gg.Context with an
// input event registry and an optional label font.
//
// Canvas implements checkers.Surface, checkers.TextSurface and
// checkers.EventTarget. Drawing is NOT safe for concurrent use; the event
// registry is.
type Canvas struct {
	*gg.Context

	fonts  *text.FontSource
	closed bool

	mu        sync.Mutex
	nextID    checkers.ListenerID
	listeners map[string][]registration
}

type registration struct {
	id checkers.ListenerID
	fn checkers.Listener
}

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background color.Color
	labelSize  float64
}

// WithBackground clears the canvas to c on creation.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLabelFont loads the Go Regular font at size points so that boards
// created with checkers.WithLabels can annotate their slots.
func WithLabelFont(size float64) Option {
	return func(o *options) {
		o.labelSize = size
	}
}

// New creates a width×height canvas.
//
// A board needs a square canvas; New itself accepts any positive size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		Context:   gg.NewContext(width, height),
		listeners: make(map[string][]registration),
	}
	if o.background != nil {
		c.ClearWithColor(gg.FromColor(o.background))
	}
	if o.labelSize > 0 {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			_ = c.Context.Close()
			return nil, fmt.Errorf("canvas: load label font: %w", err)
		}
		c.fonts = src
		c.SetFont(src.Face(o.labelSize))
	}

	checkers.Logger().Debug("canvas: created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Bool("labels", c.fonts != nil))
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// HasLabelFont reports whether a label font is loaded.
func (c *Canvas) HasLabelFont() bool {
	return c.fonts != nil
}

// Close releases the font and the drawing context. It is safe to call
// Close more than once.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.mu.Lock()
	c.listeners = make(map[string][]registration)
	c.mu.Unlock()

	var errs []error
	if c.fonts != nil {
		errs = append(errs, c.fonts.Close())
		c.fonts = nil
	}
	errs = append(errs, c.Context.Close())
	return errors.Join(errs...)
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.Context.SavePNG(path)
}
