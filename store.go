package main

import (
	"cmp"
	"slices"
)

// Store owns the canonical entity collections of the arena. It has no
// locking of its own; the Game serializes all access.
type Store struct {
	players  map[string]*Player
	bullets  []*Bullet
	powerUps []*PowerUp
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

// AddPlayer inserts or replaces a player
func (s *Store) AddPlayer(p *Player) {
	s.players[p.ID] = p
}

// RemovePlayer deletes a player and returns it, if present
func (s *Store) RemovePlayer(id string) (*Player, bool) {
	p, ok := s.players[id]
	if ok {
		delete(s.players, id)
	}
	return p, ok
}

// Player looks up a player by id
func (s *Store) Player(id string) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

// PlayerCount returns the number of players
func (s *Store) PlayerCount() int {
	return len(s.players)
}

// Players returns all players ordered by id
func (s *Store) Players() []*Player {
	list := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b *Player) int { return cmp.Compare(a.ID, b.ID) })
	return list
}

// AddBullet appends a bullet
func (s *Store) AddBullet(b *Bullet) {
	s.bullets = append(s.bullets, b)
}

// Bullet looks up a bullet by id
func (s *Store) Bullet(id string) (*Bullet, bool) {
	for _, b := range s.bullets {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// RemoveBullet deletes a bullet by id
func (s *Store) RemoveBullet(id string) {
	s.bullets = slices.DeleteFunc(s.bullets, func(b *Bullet) bool { return b.ID == id })
}

// Bullets returns the live bullet slice; callers must not retain it
func (s *Store) Bullets() []*Bullet {
	return s.bullets
}

// FilterBullets visits every bullet once, in order, and keeps those for
// which keep returns true
func (s *Store) FilterBullets(keep func(*Bullet) bool) {
	s.bullets = filter(s.bullets, keep)
}

// AddPowerUp appends a power-up
func (s *Store) AddPowerUp(p *PowerUp) {
	s.powerUps = append(s.powerUps, p)
}

// PowerUp looks up a power-up by id
func (s *Store) PowerUp(id string) (*PowerUp, bool) {
	for _, p := range s.powerUps {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// RemovePowerUp deletes a power-up by id
func (s *Store) RemovePowerUp(id string) {
	s.powerUps = slices.DeleteFunc(s.powerUps, func(p *PowerUp) bool { return p.ID == id })
}

// PowerUps returns the live power-up slice; callers must not retain it
func (s *Store) PowerUps() []*PowerUp {
	return s.powerUps
}

// FilterPowerUps visits every power-up once, in order, and keeps those for
// which keep returns true
func (s *Store) FilterPowerUps(keep func(*PowerUp) bool) {
	s.powerUps = filter(s.powerUps, keep)
}

// Snapshot copies the current contents of all three collections
func (s *Store) Snapshot() GameState {
	state := GameState{
		Type:     MsgGameState,
		Players:  make([]PlayerState, 0, len(s.players)),
		Bullets:  make([]BulletState, 0, len(s.bullets)),
		PowerUps: make([]PowerUpState, 0, len(s.powerUps)),
	}
	for _, p := range s.Players() {
		state.Players = append(state.Players, p.ToState())
	}
	for _, b := range s.bullets {
		state.Bullets = append(state.Bullets, b.ToState())
	}
	for _, p := range s.powerUps {
		state.PowerUps = append(state.PowerUps, p.ToState())
	}
	return state
}

// filter keeps survivors in place. The write index never passes the read
// index, so every element is visited exactly once.
func filter[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
