package main

import "log"

// HandleFrame decodes one inbound frame from playerID and applies it.
// Undecodable frames are logged and dropped; the connection stays open.
func (g *Game) HandleFrame(playerID string, f Frame) {
	var msg InMessage
	if err := Decode(f, &msg); err != nil {
		log.Printf("decode error from %s: %v", playerID, err)
		return
	}
	g.HandleInput(playerID, msg)
}

// HandleInput applies a decoded client message. Messages from players no
// longer in the arena and unknown types are ignored.
func (g *Game) HandleInput(playerID string, msg InMessage) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.store.Player(playerID)
	if !ok {
		return
	}

	switch msg.Type {
	case MsgMove:
		p.MoveTo(msg.X, msg.Y)
	case MsgShoot:
		g.store.AddBullet(NewBullet(GenerateID(), p))
	case MsgChat:
		g.broadcast(ChatMsg{
			Type:       MsgChat,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Message:    msg.Message,
			Timestamp:  g.now().UnixMilli(),
		})
		g.events.Track(EvtChat, p.ID, "")
	}
}

