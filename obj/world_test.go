package obj

import (
	"testing"

	"github.com/kevindesuyo/supermario-platform-game/prefabs"
)

var itemSpecForTest = prefabs.ItemSpec{
	Coin:       prefabs.CoinSpec{Width: 16, Height: 16, BobAmplitude: 3, BobFrequency: 6},
	Mushroom:   prefabs.MushroomSpec{Width: 20, Height: 20, Speed: 60},
	FireFlower: prefabs.FireFlowerSpec{Width: 20, Height: 20},
}

func TestStompClassification(t *testing.T) {
	cases := []struct {
		name      string
		playerY   float64
		velocityY float64
		wantStomp bool
	}{
		// enemy top at y=104, tolerance 10
		{"falling_onto_top", 104 - 32 + 5, 200, true},
		{"falling_at_tolerance_edge", 104 - 32 + 10, 200, true},
		{"side_contact_while_falling", 104 - 32 + 11, 200, false},
		{"rising_through", 104 - 32 + 5, -200, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enemy := NewEnemy(KindGoomba, 100, 104, goombaSpec())
			player := newTestPlayer(100, c.playerY)
			player.VelocityY = c.velocityY

			w := worldWith(enemy)
			w.Player = player

			w.resolveInteractions()

			if c.wantStomp {
				if !enemy.Dead {
					t.Fatalf("expected enemy stomped")
				}
				if player.Score != 100 {
					t.Fatalf("expected 100 stomp points, got %d", player.Score)
				}
				if player.VelocityY != stompBounceSpeed {
					t.Fatalf("expected bounce %v, got %v", stompBounceSpeed, player.VelocityY)
				}
			} else {
				if enemy.Dead {
					t.Fatalf("expected no stomp")
				}
				if player.Lives == 3 && player.PowerLevel == 0 && !player.Invulnerable {
					t.Fatalf("expected the player to take damage")
				}
			}
		})
	}
}

func TestSideContactDamagesPlayer(t *testing.T) {
	enemy := NewEnemy(KindGoomba, 100, 104, goombaSpec())
	player := newTestPlayer(110, 100)
	player.VelocityY = 0

	w := worldWith(enemy)
	w.Player = player

	w.resolveInteractions()
	if player.Lives != 2 {
		t.Fatalf("expected a lost life on side contact, got %d", player.Lives)
	}
	if !player.NeedsRespawn {
		t.Fatalf("expected respawn flag after losing a life")
	}
}

func TestDeadEnemyDoesNotInteract(t *testing.T) {
	enemy := NewEnemy(KindGoomba, 100, 104, goombaSpec())
	enemy.Dead = true
	player := newTestPlayer(100, 100)

	w := worldWith(enemy)
	w.Player = player

	w.resolveInteractions()
	if player.Lives != 3 || player.Invulnerable {
		t.Fatalf("dead enemy must not damage the player")
	}
}

func TestHiddenPiranhaDoesNotInteract(t *testing.T) {
	enemy := NewEnemy(KindPiranha, 100, 104, piranhaSpec())
	player := newTestPlayer(100, enemy.Y-10)
	player.Y = enemy.Y // force overlap with the hidden position

	w := worldWith(enemy)
	w.Player = player

	w.resolveInteractions()
	if player.Lives != 3 || player.Invulnerable {
		t.Fatalf("hidden piranha must be intangible")
	}
}

func TestGoalOverlapCompletesLevel(t *testing.T) {
	goal := NewGoal(400, 200, 100)
	player := newTestPlayer(398, 150)

	w := worldWith(goal)
	w.Player = player

	w.resolveInteractions()
	if !w.Complete {
		t.Fatalf("expected completion on goal overlap")
	}
}

func TestGoalFarAwayDoesNotComplete(t *testing.T) {
	goal := NewGoal(400, 200, 100)
	player := newTestPlayer(0, 150)

	w := worldWith(goal)
	w.Player = player

	w.resolveInteractions()
	if w.Complete {
		t.Fatalf("no overlap, no completion")
	}
}

func TestCoinPickup(t *testing.T) {
	coin := NewCoin(100, 100, &itemSpecForTest)
	player := newTestPlayer(96, 96)

	w := worldWith(coin)
	w.Player = player
	w.Entities.Add(player)
	w.Entities.Drain()

	w.Update(1.0 / 60.0)
	if player.Coins != 1 {
		t.Fatalf("expected coin collected, got %d", player.Coins)
	}
	if coin.Active {
		t.Fatalf("collected coin must deactivate")
	}
}

func TestPowerUpPickup(t *testing.T) {
	shroom := NewMushroom(100, 100, &itemSpecForTest)
	player := newTestPlayer(96, 96)

	w := worldWith(shroom)
	w.Player = player

	shroom.Update(1.0/60.0, w)
	if player.PowerLevel != 1 {
		t.Fatalf("expected power level 1 after mushroom, got %d", player.PowerLevel)
	}
	if shroom.Active {
		t.Fatalf("consumed power-up must deactivate")
	}
}
