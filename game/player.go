package game

import (
	"cmp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/cooldown2d/assets"
	"github.com/meghashyamc/cooldown2d/geometry"
	"github.com/meghashyamc/cooldown2d/logger"
)

const (
	playerSpeed   = 4.0   // Pixels per frame
	blinkDistance = 180.0 // Maximum teleport distance per blink
)

type Player struct {
	position geometry.Vector
	sprite   *ebiten.Image
	logger   logger.Logger
}

func NewPlayer() *Player {
	sprite := assets.PlayerSprite
	bounds := sprite.Bounds()

	// Spawn in the horizontal middle of the left half, vertically centered
	pos := geometry.Vector{
		X: float64(screenWidth)/4 - float64(bounds.Dx())/2,
		Y: float64(screenHeight)/2 - float64(bounds.Dy())/2,
	}

	player := &Player{
		position: pos,
		sprite:   sprite,
		logger:   logger.New(),
	}

	player.logger.Debug("player created", "position", pos)
	return player
}

func (p *Player) Update() {
	var move geometry.Vector

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y += 1
	}

	// Normalize so diagonal movement isn't faster
	p.position = p.position.Add(move.Normalize().Scale(playerSpeed))
	p.clampToScreen()
}

// Blink teleports the player toward target, capped at blinkDistance.
func (p *Player) Blink(target geometry.Vector) {
	delta := target.Sub(p.Center())
	if delta.Magnitude() > blinkDistance {
		delta = delta.Normalize().Scale(blinkDistance)
	}

	p.position = p.position.Add(delta)
	p.clampToScreen()
	p.logger.Debug("player blinked", "position", p.position)
}

func (p *Player) clampToScreen() {
	bounds := p.sprite.Bounds()
	p.position.X = clampValue(p.position.X, 0, float64(screenWidth-bounds.Dx()))
	p.position.Y = clampValue(p.position.Y, 0, float64(screenHeight-bounds.Dy()))
}

func (p *Player) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.position.X, p.position.Y)
	screen.DrawImage(p.sprite, op)
}

// Center returns the middle of the player sprite, used as the origin
// for aiming.
func (p *Player) Center() geometry.Vector {
	bounds := p.sprite.Bounds()
	return geometry.Vector{
		X: p.position.X + float64(bounds.Dx())/2,
		Y: p.position.Y + float64(bounds.Dy())/2,
	}
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
