package main

// Client -> Server message types
const (
	MsgMove  = "move"
	MsgShoot = "shoot"
	MsgChat  = "chat"
)

// Server -> Client message types
const (
	MsgWelcome          = "welcome"
	MsgPlayerJoined     = "playerJoined"
	MsgPlayerLeft       = "playerLeft"
	MsgPlayerHit        = "playerHit"
	MsgPlayerKilled     = "playerKilled"
	MsgPlayerRespawn    = "playerRespawn"
	MsgPowerUpCollected = "powerUpCollected"
	MsgGameState        = "gameState"
)

// InMessage is any client message. Fields unused by a type stay zero.
type InMessage struct {
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Message string  `json:"message"`
}

// PlayerState is the serializable part of a Player
type PlayerState struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Health int     `json:"health"`
	Score  int     `json:"score"`
}

// BulletState is broadcast per bullet
type BulletState struct {
	ID       string  `json:"id"`
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Speed    float64 `json:"speed"`
	Color    string  `json:"color"`
}

// PowerUpState is broadcast per power-up
type PowerUpState struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GameState is the full snapshot sent every tick
type GameState struct {
	Type     string         `json:"type"`
	Players  []PlayerState  `json:"players"`
	Bullets  []BulletState  `json:"bullets"`
	PowerUps []PowerUpState `json:"powerUps"`
}

// WelcomeMsg is sent only to a newly connected client
type WelcomeMsg struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	GameWidth  int    `json:"gameWidth"`
	GameHeight int    `json:"gameHeight"`
}

// PlayerJoinedMsg announces a new player to everyone
type PlayerJoinedMsg struct {
	Type   string      `json:"type"`
	Player PlayerState `json:"player"`
}

// PlayerLeftMsg announces a disconnect
type PlayerLeftMsg struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

// PlayerHitMsg carries a player's health after a bullet hit
type PlayerHitMsg struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Health   int    `json:"health"`
}

// PlayerKilledMsg is broadcast once per defeat.
// KillerScore is omitted when the killer has already left.
type PlayerKilledMsg struct {
	Type        string `json:"type"`
	Killer      string `json:"killer"`
	Victim      string `json:"victim"`
	KillerScore *int   `json:"killerScore,omitempty"`
}

// PlayerRespawnMsg is broadcast when a defeated player revives
type PlayerRespawnMsg struct {
	Type     string  `json:"type"`
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Health   int     `json:"health"`
}

// PowerUpCollectedMsg carries the collector's stats after the effect
type PowerUpCollectedMsg struct {
	Type      string `json:"type"`
	PlayerID  string `json:"playerId"`
	PowerUpID string `json:"powerUpId"`
	Health    int    `json:"health"`
	Score     int    `json:"score"`
}

// ChatMsg relays a chat line to everyone
type ChatMsg struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
}

// StatsResponse is served from /api/stats
type StatsResponse struct {
	Players     int            `json:"players"`
	EventCounts map[string]int `json:"eventCounts,omitempty"`
	TopKillers  []KillerEntry  `json:"topKillers,omitempty"`
}
