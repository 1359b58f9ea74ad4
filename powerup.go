package main

import "math/rand/v2"

const (
	PowerUpSize        = 30.0
	PowerUpFallSpeed   = 2.0 // pixels per tick, downward
	PowerUpSpawnChance = 0.02
	PowerUpHeal        = 20
	PowerUpScore       = 50
)

// PowerUpKind selects the effect applied on collection
type PowerUpKind string

const (
	PowerUpHealth PowerUpKind = "health"
	PowerUpPoints PowerUpKind = "score"
)

// PowerUp is a collectible that falls from the top of the arena
type PowerUp struct {
	ID   string
	Kind PowerUpKind
	X, Y float64
}

// Update moves the power-up one tick
func (p *PowerUp) Update() {
	p.Y += PowerUpFallSpeed
}

// OutOfBounds reports whether the power-up fell past the arena bottom
func (p *PowerUp) OutOfBounds() bool {
	return p.Y > GameHeight
}

// Bounds returns the power-up's hitbox
func (p *PowerUp) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: PowerUpSize, Height: PowerUpSize}
}

// Apply grants the power-up's effect to a player
func (p *PowerUp) Apply(player *Player) {
	switch p.Kind {
	case PowerUpHealth:
		player.Heal(PowerUpHeal)
	case PowerUpPoints:
		player.AddScore(PowerUpScore)
	}
}

// ToState converts to protocol state
func (p *PowerUp) ToState() PowerUpState {
	return PowerUpState{
		ID:     p.ID,
		Type:   string(p.Kind),
		X:      p.X,
		Y:      p.Y,
		Width:  PowerUpSize,
		Height: PowerUpSize,
	}
}

// PowerUpSpawner rolls for a new power-up once per tick
type PowerUpSpawner struct {
	Chance float64
	rng    *rand.Rand
}

// NewPowerUpSpawner creates a spawner with the default per-tick chance
func NewPowerUpSpawner(rng *rand.Rand) *PowerUpSpawner {
	return &PowerUpSpawner{Chance: PowerUpSpawnChance, rng: rng}
}

// Spawn returns a new power-up just above the arena, or nil if the roll failed
func (s *PowerUpSpawner) Spawn() *PowerUp {
	if s.rng.Float64() >= s.Chance {
		return nil
	}
	kind := PowerUpHealth
	if s.rng.Float64() >= 0.5 {
		kind = PowerUpPoints
	}
	return &PowerUp{
		ID:   GenerateID(),
		Kind: kind,
		X:    s.rng.Float64() * (GameWidth - PowerUpSize),
		Y:    -PowerUpSize,
	}
}
