package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	TickRate     = 60 // simulation ticks per second
	TickDuration = time.Second / TickRate
	GameWidth    = 800.0
	GameHeight   = 600.0
	KillScore    = 100
)

// Broadcaster is one client's outbound channel
type Broadcaster interface {
	Encoding() Encoding
	SendFrame(f Frame)
}

// EventSink receives gameplay events for analytics
type EventSink interface {
	Track(evtType, playerID, data string)
}

type nopSink struct{}

func (nopSink) Track(string, string, string) {}

// Game owns the arena state. Every mutation happens under mu, so the tick
// and the input handlers interleave but never run concurrently.
type Game struct {
	mu       sync.Mutex
	store    *Store
	respawns RespawnQueue
	spawner  *PowerUpSpawner
	grid     SpatialGrid
	rng      *rand.Rand
	now      func() time.Time
	events   EventSink
	tick     uint64

	// per-tick scratch
	live       []*Player
	candidates []int
}

// GameOption configures a Game
type GameOption func(*Game)

// WithClock replaces time.Now
func WithClock(now func() time.Time) GameOption {
	return func(g *Game) { g.now = now }
}

// WithRand replaces the random source used for spawns and colors
func WithRand(rng *rand.Rand) GameOption {
	return func(g *Game) { g.rng = rng }
}

// WithEventSink reports gameplay events to sink
func WithEventSink(sink EventSink) GameOption {
	return func(g *Game) { g.events = sink }
}

// NewGame creates a new Game
func NewGame(opts ...GameOption) *Game {
	g := &Game{
		store:  NewStore(),
		rng:    newRand(),
		now:    time.Now,
		events: nopSink{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spawner = NewPowerUpSpawner(g.rng)
	return g
}

// Run drives the simulation at TickRate until ctx is cancelled
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-ctx.Done():
			return
		}
	}
}

// AddPlayer creates a player bound to conn, welcomes it and announces it
func (g *Game) AddPlayer(id string, conn Broadcaster) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	name := fmt.Sprintf("Player%d", g.store.PlayerCount()+1)
	p := NewPlayer(id, name, conn, g.rng)
	g.store.AddPlayer(p)
	log.Printf("player %s connected, %d online", id, g.store.PlayerCount())

	g.unicast(p, WelcomeMsg{
		Type:       MsgWelcome,
		PlayerID:   id,
		GameWidth:  int(GameWidth),
		GameHeight: int(GameHeight),
	})
	g.broadcast(PlayerJoinedMsg{Type: MsgPlayerJoined, Player: p.ToState()})
	g.events.Track(EvtPlayerJoin, id, "")
	return p
}

// RemovePlayer drops a player. Pending respawns for the id become no-ops.
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.store.RemovePlayer(id); !ok {
		return
	}
	log.Printf("player %s disconnected, %d online", id, g.store.PlayerCount())
	g.broadcast(PlayerLeftMsg{Type: MsgPlayerLeft, PlayerID: id})
	g.events.Track(EvtPlayerLeave, id, "")
}

// HasPlayer reports whether id is in the arena
func (g *Game) HasPlayer(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.store.Player(id)
	return ok
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.PlayerCount()
}

// Snapshot returns the current full state
func (g *Game) Snapshot() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Snapshot()
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	g.fireRespawns(g.now())
	g.indexPlayers()
	g.updateBullets()
	g.updatePowerUps()
	if pu := g.spawner.Spawn(); pu != nil {
		g.store.AddPowerUp(pu)
	}
	g.broadcast(g.store.Snapshot())
}

// indexPlayers rebuilds the broad-phase grid from players that can be hit
func (g *Game) indexPlayers() {
	g.grid.Clear()
	g.live = g.live[:0]
	for _, p := range g.store.Players() {
		if p.Defeated() {
			continue
		}
		g.grid.InsertRect(p.Bounds(), len(g.live))
		g.live = append(g.live, p)
	}
}

// firstHit returns the lowest-indexed live player colliding with e, skipping skipID
func (g *Game) firstHit(e Bounded, skipID string) *Player {
	g.candidates = g.grid.QueryBuf(e.Bounds(), g.candidates[:0])
	best := -1
	for _, idx := range g.candidates {
		if best != -1 && idx >= best {
			continue
		}
		p := g.live[idx]
		// a player defeated earlier this tick is still in the grid
		if p.ID == skipID || p.Defeated() {
			continue
		}
		if Collides(e, p) {
			best = idx
		}
	}
	if best == -1 {
		return nil
	}
	return g.live[best]
}

// updateBullets advances bullets and resolves at most one hit per bullet
func (g *Game) updateBullets() {
	g.store.FilterBullets(func(b *Bullet) bool {
		b.Update()
		if b.OutOfBounds() {
			return false
		}
		victim := g.firstHit(b, b.OwnerID)
		if victim == nil {
			return true
		}
		g.applyHit(b, victim)
		return false
	})
}

// applyHit damages victim and handles the defeat if it was lethal
func (g *Game) applyHit(b *Bullet, victim *Player) {
	defeated := victim.TakeDamage(BulletDamage)
	g.broadcast(PlayerHitMsg{Type: MsgPlayerHit, PlayerID: victim.ID, Health: victim.Health})
	if !defeated {
		return
	}

	var killerScore *int
	if killer, ok := g.store.Player(b.OwnerID); ok {
		killer.AddScore(KillScore)
		score := killer.Score
		killerScore = &score
	}
	g.broadcast(PlayerKilledMsg{
		Type:        MsgPlayerKilled,
		Killer:      b.OwnerID,
		Victim:      victim.ID,
		KillerScore: killerScore,
	})
	g.respawns.Schedule(victim.ID, g.now().Add(RespawnDelay))
	g.events.Track(EvtPlayerKill, b.OwnerID, fmt.Sprintf(`{"victim":%q}`, victim.ID))
}

// updatePowerUps advances power-ups and lets the first overlapping player collect each
func (g *Game) updatePowerUps() {
	g.store.FilterPowerUps(func(pu *PowerUp) bool {
		pu.Update()
		if pu.OutOfBounds() {
			return false
		}
		p := g.firstHit(pu, "")
		if p == nil {
			return true
		}
		pu.Apply(p)
		g.broadcast(PowerUpCollectedMsg{
			Type:      MsgPowerUpCollected,
			PlayerID:  p.ID,
			PowerUpID: pu.ID,
			Health:    p.Health,
			Score:     p.Score,
		})
		g.events.Track(EvtPowerUp, p.ID, fmt.Sprintf(`{"kind":%q}`, pu.Kind))
		return false
	})
}

// fireRespawns revives every player whose delay has elapsed and who is still connected
func (g *Game) fireRespawns(now time.Time) {
	for _, id := range g.respawns.Due(now) {
		p, ok := g.store.Player(id)
		if !ok {
			continue
		}
		x, y := SpawnPoint(g.rng)
		p.Respawn(x, y)
		g.broadcast(PlayerRespawnMsg{
			Type:     MsgPlayerRespawn,
			PlayerID: p.ID,
			X:        p.X,
			Y:        p.Y,
			Health:   p.Health,
		})
		g.events.Track(EvtRespawn, p.ID, "")
	}
}

// broadcast sends msg to every player's channel, encoding at most once per encoding.
// An encoding that fails is skipped; clients on the other encoding still get msg.
func (g *Game) broadcast(msg any) {
	var (
		frames [encodingCount]*Frame
		failed [encodingCount]bool
	)
	for _, p := range g.store.players {
		if p.conn == nil {
			continue
		}
		enc := p.conn.Encoding()
		if failed[enc] {
			continue
		}
		if frames[enc] == nil {
			f, err := Encode(enc, msg)
			if err != nil {
				log.Printf("broadcast encode error (%s): %v", enc, err)
				failed[enc] = true
				continue
			}
			frames[enc] = &f
		}
		p.conn.SendFrame(*frames[enc])
	}
}

// unicast sends msg to a single player
func (g *Game) unicast(p *Player, msg any) {
	if p.conn == nil {
		return
	}
	f, err := Encode(p.conn.Encoding(), msg)
	if err != nil {
		log.Printf("encode error: %v", err)
		return
	}
	p.conn.SendFrame(f)
}
