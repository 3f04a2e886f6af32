// Package hud implements on-screen overlays whose content is produced by a
// pluggable strategy. A HUD keeps its position, the last data it was given
// and the rendered view; the Content decides how data turns into a view.
package hud

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrNoContent = errors.New("hud has no content")
	ErrDestroyed = errors.New("hud destroyed")
)

// Content renders HUD data. Render receives the data currently shown and
// the new data; Release frees whatever the content holds on to.
type Content[T any] interface {
	Render(prev, next T) (string, error)
	Release()
}

// HUD is an overlay positioned by its center.
type HUD[T any] struct {
	x, y  int
	angle float64 // degrees, for hosts that can rotate

	data    T
	view    string
	content Content[T]

	destroyed bool
}

// New creates a HUD centered on (x, y) holding initial data. Nothing is shown
// until the first successful Update.
func New[T any](x, y int, initial T, content Content[T]) *HUD[T] {
	return &HUD[T]{
		x:       x,
		y:       y,
		data:    initial,
		content: content,
	}
}

// Update renders next and, on success, replaces the view and the data. On
// failure the previous view stays.
func (h *HUD[T]) Update(next T) error {
	if h == nil || h.destroyed {
		return ErrDestroyed
	}
	if h.content == nil {
		return ErrNoContent
	}
	view, err := h.content.Render(h.data, next)
	if err != nil {
		return fmt.Errorf("hud update failed: %w", err)
	}
	h.view = view
	h.data = next
	return nil
}

// MoveTo sets the position and angle.
func (h *HUD[T]) MoveTo(x, y int, angle float64) {
	h.x, h.y, h.angle = x, y, angle
}

// MoveBy offsets the position and angle.
func (h *HUD[T]) MoveBy(dx, dy int, dAngle float64) {
	h.x += dx
	h.y += dy
	h.angle += dAngle
}

func (h *HUD[T]) Position() (x, y int, angle float64) {
	return h.x, h.y, h.angle
}

func (h *HUD[T]) Data() T {
	return h.data
}

func (h *HUD[T]) View() string {
	if h == nil || h.destroyed {
		return ""
	}
	return h.view
}

// Draw places the view centered on the HUD position inside a width x height
// area. Parts falling outside the area are cut.
func (h *HUD[T]) Draw(width, height int) string {
	view := h.View()
	if view == "" || width <= 0 || height <= 0 {
		return ""
	}
	left := max(0, h.x-lipgloss.Width(view)/2)
	top := max(0, h.y-lipgloss.Height(view)/2)

	return lipgloss.NewStyle().
		MarginLeft(left).
		MarginTop(top).
		MaxWidth(width).
		MaxHeight(height).
		Render(view)
}

// Destroy releases the content. Further calls have no effect.
func (h *HUD[T]) Destroy() {
	if h == nil || h.destroyed {
		return
	}
	if h.content != nil {
		h.content.Release()
	}
	h.view = ""
	h.destroyed = true
}
