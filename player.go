package main

import (
	"fmt"
	"math/rand/v2"
)

const (
	PlayerWidth     = 50.0
	PlayerHeight    = 70.0
	PlayerMaxHealth = 100
	SpawnRowOffset  = 100.0 // spawn row distance from the arena bottom
)

// Player is a connected participant. The connection is owned by the
// player and released when the player leaves the store.
type Player struct {
	ID     string
	Name   string
	Color  string
	X, Y   float64
	Health int
	Score  int

	conn Broadcaster
}

// NewPlayer creates a player with full health at a random spawn point
func NewPlayer(id, name string, conn Broadcaster, rng *rand.Rand) *Player {
	x, y := SpawnPoint(rng)
	return &Player{
		ID:     id,
		Name:   name,
		Color:  RandomColor(rng),
		X:      x,
		Y:      y,
		Health: PlayerMaxHealth,
		conn:   conn,
	}
}

// SpawnPoint picks a random x on the spawn row near the arena bottom
func SpawnPoint(rng *rand.Rand) (float64, float64) {
	return rng.Float64() * (GameWidth - PlayerWidth), GameHeight - SpawnRowOffset
}

// RandomColor returns a CSS hsl() color with a random hue
func RandomColor(rng *rand.Rand) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", rng.IntN(360))
}

// Bounds returns the player's hitbox
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: PlayerWidth, Height: PlayerHeight}
}

// Defeated is true between a lethal hit and the respawn
func (p *Player) Defeated() bool {
	return p.Health <= 0
}

// MoveTo sets an absolute position clamped to the arena.
// Non-finite coordinates leave the player where it is.
func (p *Player) MoveTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	p.X = Clamp(x, 0, GameWidth-PlayerWidth)
	p.Y = Clamp(y, 0, GameHeight-PlayerHeight)
}

// TakeDamage reduces health and returns true if this hit defeated the player
func (p *Player) TakeDamage(dmg int) bool {
	if p.Defeated() {
		return false
	}
	p.Health = clampInt(p.Health-dmg, 0, PlayerMaxHealth)
	return p.Health == 0
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health = clampInt(p.Health+amount, 0, PlayerMaxHealth)
}

// AddScore credits points; score never decreases
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// Respawn restores full health at x,y. Score is kept.
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.Health = PlayerMaxHealth
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		Color:  p.Color,
		X:      p.X,
		Y:      p.Y,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Health: p.Health,
		Score:  p.Score,
	}
}
