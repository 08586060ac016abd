package obj

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kevindesuyo/supermario-platform-game/geom"
)

// Manager owns every live entity. Structural changes are two-phase: adds
// and removes queue into pending buffers and only take effect on the next
// drain, so an entity's own update can never mutate the slice it is being
// iterated from. Iteration order is insertion order, which keeps
// simultaneous multi-entity collisions deterministic.
type Manager struct {
	entities      []Entity
	pendingAdd    []Entity
	pendingRemove []Entity
}

func NewManager() *Manager {
	return &Manager{}
}

// Add queues an entity; it becomes visible to update and render after the
// next drain.
func (m *Manager) Add(e Entity) {
	if e == nil {
		return
	}
	m.pendingAdd = append(m.pendingAdd, e)
}

// Remove queues an entity for removal on the next drain.
func (m *Manager) Remove(e Entity) {
	if e == nil {
		return
	}
	m.pendingRemove = append(m.pendingRemove, e)
}

// Entities returns the live slice. Callers must not mutate it.
func (m *Manager) Entities() []Entity {
	return m.entities
}

// ByType returns all active entities of the given type, in insertion order.
func (m *Manager) ByType(t Type) []Entity {
	var out []Entity
	for _, e := range m.entities {
		if b := e.Body(); b.Active && b.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// InArea returns all active entities whose box intersects the given area.
func (m *Manager) InArea(area geom.Rect) []Entity {
	var out []Entity
	for _, e := range m.entities {
		if b := e.Body(); b.Active && b.Rect().Intersects(area) {
			out = append(out, e)
		}
	}
	return out
}

// Drain applies pending adds, then purges queued removals together with
// every inactive entity. Insertion order of survivors is preserved.
func (m *Manager) Drain() {
	m.entities = append(m.entities, m.pendingAdd...)
	m.pendingAdd = m.pendingAdd[:0]

	doomed := make(map[Entity]struct{}, len(m.pendingRemove))
	for _, e := range m.pendingRemove {
		doomed[e] = struct{}{}
	}
	m.pendingRemove = m.pendingRemove[:0]

	kept := m.entities[:0]
	for _, e := range m.entities {
		if _, gone := doomed[e]; gone {
			continue
		}
		if !e.Body().Active {
			continue
		}
		kept = append(kept, e)
	}
	// clear the tail so removed entities don't linger in the backing array
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = kept
}

// Update drains pending changes, then updates every active entity in
// insertion order. An entity deactivated earlier in the same pass is
// skipped.
func (m *Manager) Update(dt float64, w *World) {
	m.Drain()
	for _, e := range m.entities {
		if !e.Body().Active {
			continue
		}
		e.Update(dt, w)
	}
}

// Draw renders the visible entities inside the viewport, sorted by
// layer. The sort is stable so entities on the same layer keep
// insertion order.
func (m *Manager) Draw(screen *ebiten.Image, camX, camY float64) {
	bounds := screen.Bounds()
	view := geom.Rect{X: camX, Y: camY, Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}

	sorted := make([]Entity, 0, len(m.entities))
	for _, e := range m.InArea(view) {
		if e.Body().Visible {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Body().Layer < sorted[j].Body().Layer
	})
	for _, e := range sorted {
		e.Draw(screen, camX, camY)
	}
}

// Clear removes everything, including pending entries.
func (m *Manager) Clear() {
	m.entities = nil
	m.pendingAdd = nil
	m.pendingRemove = nil
}
