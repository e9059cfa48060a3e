// Package components defines ECS components for the game.
package components

// Kind tags an entity's role. Assigned at spawn and never changed.
type Kind uint8

const (
	KindNone   Kind = iota // decorations (splash art)
	KindPlayer             // the player-controlled sprite
	KindPeep               // picked up on contact
	KindWall               // lethal on contact
)

// Position represents an entity's world position.
// World space is centred on the origin with +y pointing up.
type Position struct {
	X, Y float32
	Z    float32 // draw order only
}

// Size is the full width and height of an entity's bounding box.
type Size struct {
	W, H float32
}

// Velocity is present only on entities that bounce.
type Velocity struct {
	X, Y float32
}

// Tag holds the entity's Kind.
type Tag struct {
	Kind Kind
}

// Bob marks an entity that has bounced horizontally at least once.
// Once added it stays until the entity is despawned.
type Bob struct{}

// Dead marks the player after a wall collision.
type Dead struct{}

// Slot selects which texture the renderer draws for an entity.
type Slot uint8

const (
	SlotPlayer Slot = iota
	SlotPeep
	SlotWall
	SlotSplash
)

// Sprite holds the renderer-facing state of an entity.
type Sprite struct {
	Slot  Slot
	FlipX bool
	FlipY bool
	Scale float32 // texture scale; 0 means fit the bounding box
}

// ScreenID identifies which game screen spawned an entity.
type ScreenID uint8

const (
	ScreenSplash ScreenID = iota + 1
	ScreenMenu
	ScreenGame
)

// Screen ties an entity to the screen whose exit despawns it.
type Screen struct {
	ID ScreenID
}
