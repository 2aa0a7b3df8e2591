// Package scene defines the Scene interface for application screens and the
// commands a scene hands back to the manager.
//
// Each screen (opening, menu, etc.) implements the Scene interface to handle
// its own update logic and rendering.
package scene

import (
	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
)

// Scene represents an application screen (opening, menu, etc.)
//
// The manager calls Update on the current scene once per tick. Scene
// transitions are requested through the returned Command.
type Scene interface {
	// Name returns the scene's identifier. It must be unique within a manager.
	Name() string

	// Load is called before the scene's first Update after it becomes current.
	Load(h Host)

	// Update advances the scene and renders it.
	// Returns the command the manager should carry out next.
	Update(h Host) Command

	// Unload is called when the scene stops being current.
	// Use this for cleanup or resource release.
	Unload(h Host)
}

// Host is what a running scene may ask of the application for the current frame.
type Host interface {
	// DT is the elapsed time since the previous frame in seconds.
	DT() float32

	// Pointer is the pointer position in window coordinates.
	Pointer() geom.Vec2

	// PointerDown reports whether the primary pointer button is held.
	PointerDown() bool

	// PointerPressed reports whether the primary pointer button went down this frame.
	PointerPressed() bool

	// ScreenSize is the drawable area width and height.
	ScreenSize() geom.Vec2

	// BeginDrawing starts a new render submission for this frame and returns
	// its canvas. Anything drawn in an earlier submission of the same frame
	// is discarded.
	BeginDrawing() draw.Canvas

	// LoadTexture loads an image by path.
	LoadTexture(path string) (draw.Texture, error)
}
