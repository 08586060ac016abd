package obj

import (
	"golang.org/x/image/colornames"
)

// stompTolerance is how far (px) above an enemy's top the stomping
// entity's bottom edge may be for the contact to count as a stomp.
const stompTolerance = 10.0

const stompBounceSpeed = -300.0

// World is the per-level simulation: the entity collection, an explicit
// handle to the active player, and the completion flag surfaced to the
// surrounding game-state layer. It is owned and mutated by the frame loop
// only; nothing in here is safe for concurrent use.
type World struct {
	Entities *Manager
	Player   *Player

	// Complete is set when the player overlaps the goal. The world never
	// acts on it; the game-state layer reads it.
	Complete bool
}

func NewWorld() *World {
	return &World{Entities: NewManager()}
}

// Spawn queues an entity into the collection. Safe to call from inside an
// entity update; the add is deferred to the next drain.
func (w *World) Spawn(e Entity) {
	w.Entities.Add(e)
}

// AttachPlayer registers the player with both the collection and the
// explicit handle used by interaction calls.
func (w *World) AttachPlayer(p *Player) {
	w.Player = p
	w.Entities.Add(p)
}

// Update advances the simulation one frame: drain pending changes, update
// every entity in collection order, then resolve player/enemy and goal
// interactions on the final positions.
func (w *World) Update(dt float64) {
	w.Entities.Update(dt, w)
	w.resolveInteractions()
}

func (w *World) resolveInteractions() {
	p := w.Player
	if p == nil || !p.Active {
		return
	}

	for _, e := range w.Entities.ByType(TypeEnemy) {
		enemy, ok := e.(*Enemy)
		if !ok || enemy.Dead {
			continue
		}
		// a piranha hidden in its pipe is intangible
		if !enemy.Visible {
			continue
		}
		if !Overlaps(&p.Base, &enemy.Base) {
			continue
		}
		if p.VelocityY > 0 && p.Bottom() <= enemy.Y+stompTolerance {
			// downward contact near the enemy's top is a stomp
			points := enemy.Stomp(p)
			if points > 0 {
				p.Score += points
				w.Spawn(NewScorePopup(enemy.CenterX(), enemy.Y-20, points, colornames.White))
				w.Spawn(NewExplosion(enemy.CenterX(), enemy.CenterY(), colornames.Orange, 15))
			}
			p.Bounce(stompBounceSpeed)
		} else {
			hurt := p.TakeDamage()
			if hurt && p.Active {
				w.Spawn(NewExplosion(p.CenterX(), p.CenterY(), colornames.Red, 10))
			}
		}
	}

	if !w.Complete {
		for _, e := range w.Entities.ByType(TypeGoal) {
			if Overlaps(&p.Base, e.Body()) {
				w.Complete = true
				break
			}
		}
	}
}
