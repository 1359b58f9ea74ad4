package main

import (
	"math"
	"testing"
	"time"
)

func TestHandleMoveClamps(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"inside", 200, 300, 200, 300},
		{"negative", -50, -10, 0, 0},
		{"past far edges", 1000, 9999, GameWidth - PlayerWidth, GameHeight - PlayerHeight},
		{"exact max", 750, 530, 750, 530},
		{"nan ignored", math.NaN(), 100, 0, 0},
		{"inf ignored", math.Inf(1), math.Inf(-1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame()
			p, _ := addAt(g, "a", 0, 0)
			g.HandleInput("a", InMessage{Type: MsgMove, X: tt.x, Y: tt.y})
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("got (%f,%f), want (%f,%f)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestHandleInputUnknownPlayer(t *testing.T) {
	g, _ := newTestGame()
	_, mock := addAt(g, "a", 0, 0)
	mock.reset()

	g.HandleInput("ghost", InMessage{Type: MsgMove, X: 10, Y: 10})
	g.HandleInput("ghost", InMessage{Type: MsgShoot})
	g.HandleInput("ghost", InMessage{Type: MsgChat, Message: "boo"})

	if len(g.store.Bullets()) != 0 {
		t.Error("departed player must not create bullets")
	}
	if n := len(mock.messages(t)); n != 0 {
		t.Errorf("expected no broadcasts, got %d", n)
	}
}

func TestHandleShoot(t *testing.T) {
	g, _ := newTestGame()
	p, _ := addAt(g, "a", 200, 400)

	g.HandleInput("a", InMessage{Type: MsgShoot})

	bullets := g.store.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	b := bullets[0]
	if b.OwnerID != "a" || b.Color != p.Color || b.Speed != BulletSpeed {
		t.Errorf("unexpected bullet: %+v", b)
	}
	if b.X+BulletWidth/2 != p.X+PlayerWidth/2 || b.Y != p.Y {
		t.Errorf("bullet should start at the top center of the player, got (%f,%f)", b.X, b.Y)
	}
	if b.ID == "" {
		t.Error("bullet needs an id")
	}
}

func TestHandleChat(t *testing.T) {
	g, clock := newTestGame()
	_, mockA := addAt(g, "a", 0, 0)
	_, mockB := addAt(g, "b", 0, 0)

	g.HandleInput("a", InMessage{Type: MsgChat, Message: "hello"})

	for _, m := range []*mockBroadcaster{mockA, mockB} {
		chats := m.ofType(t, MsgChat)
		if len(chats) != 1 {
			t.Fatalf("expected 1 chat, got %d", len(chats))
		}
		c := chats[0]
		if c["playerId"] != "a" || c["playerName"] != "Player1" || c["message"] != "hello" {
			t.Errorf("unexpected chat payload: %v", c)
		}
		if c["timestamp"] != float64(clock.Now().UnixMilli()) {
			t.Errorf("timestamp = %v, want %d", c["timestamp"], clock.Now().UnixMilli())
		}
	}
}

func TestHandleFrameMalformed(t *testing.T) {
	g, _ := newTestGame()
	p, mock := addAt(g, "a", 100, 100)
	mock.reset()

	g.HandleFrame("a", Frame{Data: []byte(`{not json`)})
	g.HandleFrame("a", Frame{Data: []byte(`{"type":"dance"}`)})
	g.HandleFrame("a", Frame{Binary: true, Data: []byte{0xc1}})
	g.HandleFrame("a", Frame{Data: []byte(`{"type":"move","x":"left"}`)})

	if p.X != 100 || p.Y != 100 {
		t.Errorf("malformed input must not move the player")
	}
	if n := len(mock.messages(t)); n != 0 {
		t.Errorf("expected no broadcasts, got %d", n)
	}
}

func TestHandleFrameJSONAndMsgpack(t *testing.T) {
	g, _ := newTestGame()
	p, _ := addAt(g, "a", 0, 0)

	g.HandleFrame("a", Frame{Data: []byte(`{"type":"move","x":120,"y":240}`)})
	if p.X != 120 || p.Y != 240 {
		t.Fatalf("json move: got (%f,%f)", p.X, p.Y)
	}

	f, err := Encode(EncodingMsgpack, map[string]any{"type": "move", "x": 300, "y": 50.5})
	if err != nil {
		t.Fatal(err)
	}
	g.HandleFrame("a", f)
	if p.X != 300 || p.Y != 50.5 {
		t.Errorf("msgpack move: got (%f,%f)", p.X, p.Y)
	}
}

func TestChatAfterDisconnectIsDropped(t *testing.T) {
	g, clock := newTestGame()
	addAt(g, "a", 0, 0)
	_, mockB := addAt(g, "b", 0, 0)
	g.RemovePlayer("a")
	clock.Advance(time.Second)

	g.HandleInput("a", InMessage{Type: MsgChat, Message: "late"})

	if n := len(mockB.ofType(t, MsgChat)); n != 0 {
		t.Errorf("chat from departed player should be dropped, got %d", n)
	}
}

func TestMsgpackNaNMoveKeepsSnapshotFlowing(t *testing.T) {
	g, _ := newTestGame()
	a, _ := addAt(g, "a", 100, 200)
	a.conn = &mockBroadcaster{enc: EncodingMsgpack}
	_, jsonConn := addAt(g, "b", 600, 500)
	jsonConn.reset()

	f, err := Encode(EncodingMsgpack, map[string]any{"type": "move", "x": math.NaN(), "y": math.NaN()})
	if err != nil {
		t.Fatal(err)
	}
	g.HandleFrame("a", f)

	if a.X != 100 || a.Y != 200 {
		t.Fatalf("non-finite move should be ignored, got (%f,%f)", a.X, a.Y)
	}

	for i := 0; i < 5; i++ {
		g.update()
	}
	if n := len(jsonConn.ofType(t, MsgGameState)); n != 5 {
		t.Errorf("json client should get a snapshot every tick, got %d", n)
	}
}
