package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/starframe/internal/application/scene"
)

// DefaultMaxJumps bounds how many scene switches one Tick may chain.
const DefaultMaxJumps = 16

var (
	// ErrExit is returned by Tick when the current scene asked to exit.
	ErrExit = errors.New("scene requested exit")

	// ErrJumpLimit is returned by Tick when scenes keep switching within one frame.
	ErrJumpLimit = errors.New("scene jump limit exceeded")

	// ErrNoScene is returned by the run loop when there is no current scene to tick.
	ErrNoScene = errors.New("no current scene")
)

// Manager owns the registered scenes and drives the current one.
//
// Lookup is by exact name, first registered match wins. The current scene is
// held as an index into the registry; -1 means none.
type Manager struct {
	scenes   []scene.Scene
	loaded   []bool
	current  int
	maxJumps int
}

// NewManager creates an empty manager with no current scene.
func NewManager() *Manager {
	return &Manager{
		current:  -1,
		maxJumps: DefaultMaxJumps,
	}
}

// SetMaxJumps sets how many scene switches one Tick may chain (minimum 1).
func (m *Manager) SetMaxJumps(n int) {
	if n < 1 {
		n = 1
	}
	m.maxJumps = n
}

// Register adds a scene to the registry. Names are not checked for uniqueness.
func (m *Manager) Register(s scene.Scene) {
	m.scenes = append(m.scenes, s)
	m.loaded = append(m.loaded, false)
}

// Len returns the number of registered scenes.
func (m *Manager) Len() int {
	return len(m.scenes)
}

// Find returns the first registered scene with the given name, or nil.
func (m *Manager) Find(name string) scene.Scene {
	if i := m.index(name); i >= 0 {
		return m.scenes[i]
	}
	return nil
}

func (m *Manager) index(name string) int {
	for i, s := range m.scenes {
		if s.Name() == name {
			return i
		}
	}
	return -1
}

// SetCurrent makes the named scene current. An unknown name leaves no
// current scene and returns false. Lifecycle hooks run on the next Tick.
func (m *Manager) SetCurrent(name string) bool {
	m.current = m.index(name)
	return m.current >= 0
}

// Current returns the current scene, or nil if there is none.
func (m *Manager) Current() scene.Scene {
	if m.current < 0 {
		return nil
	}
	return m.scenes[m.current]
}

// HasCurrent reports whether a scene is current. The run loop must check it
// before every Tick.
func (m *Manager) HasCurrent() bool {
	return m.current >= 0
}

// Tick updates the current scene and carries out the command it returns.
//
// When the command switches to another scene, that scene is updated (and
// renders) within the same Tick, repeating for chained jumps up to the jump
// limit. Exit unloads the current scene and returns ErrExit. A jump to an
// unknown name leaves no current scene and returns nil.
//
// Tick panics if there is no current scene.
func (m *Manager) Tick(h scene.Host) error {
	if m.current < 0 {
		panic("game: Tick called with no current scene")
	}

	for jumps := 1; ; jumps++ {
		before := m.current
		s := m.scenes[before]
		if !m.loaded[before] {
			s.Load(h)
			m.loaded[before] = true
		}

		cmd := s.Update(h)

		switch cmd.Kind() {
		case scene.KindExit:
			m.unload(h, before)
			m.current = -1
			return ErrExit
		case scene.KindJumpTo:
			m.current = m.index(cmd.Target())
			if m.current != before {
				m.unload(h, before)
			}
			if m.current < 0 {
				log.Printf("Scene %q jumped to unknown scene %q", s.Name(), cmd.Target())
				return nil
			}
		}

		if m.current == before {
			return nil
		}
		if jumps > m.maxJumps {
			return fmt.Errorf("%w: %d switches in one tick, last %q -> %q",
				ErrJumpLimit, jumps, s.Name(), cmd.Target())
		}
	}
}

// Shutdown unloads every scene that is still loaded.
func (m *Manager) Shutdown(h scene.Host) {
	for i := range m.scenes {
		m.unload(h, i)
	}
}

func (m *Manager) unload(h scene.Host, i int) {
	if !m.loaded[i] {
		return
	}
	m.loaded[i] = false
	m.scenes[i].Unload(h)
}
