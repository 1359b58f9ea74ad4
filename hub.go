package main

import "sync"

// Hub tracks live connections, enforces connection limits and binds each
// connection to a player in the Game
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	game    *Game
	// Connection limiting (accessed from HTTP handlers)
	connMu        sync.Mutex
	ipConns       map[string]int
	totalConns    int
	maxConnsPerIP int
	maxTotalConns int
}

// NewHub creates a Hub in front of game
func NewHub(game *Game, maxConnsPerIP, maxTotalConns int) *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		game:          game,
		ipConns:       make(map[string]int),
		maxConnsPerIP: maxConnsPerIP,
		maxTotalConns: maxTotalConns,
	}
}

// Acquire reserves a connection slot for ip, or returns false if a limit is reached
func (h *Hub) Acquire(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= h.maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= h.maxConnsPerIP {
		return false
	}
	h.ipConns[ip]++
	h.totalConns++
	return true
}

// Release frees a slot taken by Acquire
func (h *Hub) Release(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Register adds the client and its player. It must complete before the
// client's pumps start so that leave always follows join.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.game.AddPlayer(c.playerID, c)
}

// Unregister removes the client and its player; repeated calls are no-ops
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if !ok {
		return
	}
	c.close()
	h.game.RemovePlayer(c.playerID)
	h.Release(c.remoteAddr)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}
