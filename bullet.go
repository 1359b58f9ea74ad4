package main

const (
	BulletWidth  = 4.0
	BulletHeight = 10.0
	BulletSpeed  = -8.0 // pixels per tick, upward
	BulletDamage = 10
)

// Bullet is a projectile fired straight up by a player
type Bullet struct {
	ID      string
	OwnerID string
	X, Y    float64
	Speed   float64
	Color   string
}

// NewBullet spawns a bullet at the horizontal center of the owner's top edge
func NewBullet(id string, owner *Player) *Bullet {
	return &Bullet{
		ID:      id,
		OwnerID: owner.ID,
		X:       owner.X + PlayerWidth/2 - BulletWidth/2,
		Y:       owner.Y,
		Speed:   BulletSpeed,
		Color:   owner.Color,
	}
}

// Update moves the bullet one tick
func (b *Bullet) Update() {
	b.Y += b.Speed
}

// OutOfBounds reports whether the bullet left the arena's vertical range
func (b *Bullet) OutOfBounds() bool {
	return b.Y < 0 || b.Y > GameHeight
}

// Bounds returns the bullet's hitbox
func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: BulletWidth, Height: BulletHeight}
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		ID:       b.ID,
		PlayerID: b.OwnerID,
		X:        b.X,
		Y:        b.Y,
		Width:    BulletWidth,
		Height:   BulletHeight,
		Speed:    b.Speed,
		Color:    b.Color,
	}
}
