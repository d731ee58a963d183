package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/cooldown2d/assets"
	"github.com/meghashyamc/cooldown2d/cooldown"
	"github.com/meghashyamc/cooldown2d/geometry"
	"github.com/meghashyamc/cooldown2d/logger"
)

const (
	targetSpeed   = 2.5 // Pixels per frame, vertical drift
	hitFlashTicks = 12  // Frames the target stays highlighted after a hit
)

// Target is a drifting practice dummy on the right side of the screen.
// It bounces between the top and bottom edges and flashes briefly when
// a projectile connects.
type Target struct {
	position geometry.Vector
	velocity geometry.Vector
	sprite   *ebiten.Image
	hitFlash *cooldown.Cooldown
	logger   logger.Logger
}

func NewTarget() *Target {
	sprite := assets.TargetSprite
	bounds := sprite.Bounds()

	pos := geometry.Vector{
		X: float64(screenWidth) - float64(bounds.Dx()) - 120,
		Y: float64(screenHeight)/2 - float64(bounds.Dy())/2,
	}

	target := &Target{
		position: pos,
		velocity: geometry.Vector{X: 0, Y: targetSpeed},
		sprite:   sprite,
		hitFlash: cooldown.New(hitFlashTicks, nil),
		logger:   logger.New(),
	}

	target.logger.Debug("target created", "position", pos)
	return target
}

func (t *Target) Update() {
	t.position = t.position.Add(t.velocity)

	// Bounce off the top and bottom edges
	bounds := t.sprite.Bounds()
	if t.position.Y <= 0 {
		t.position.Y = 0
		t.velocity.Y = targetSpeed
	} else if t.position.Y >= float64(screenHeight-bounds.Dy()) {
		t.position.Y = float64(screenHeight - bounds.Dy())
		t.velocity.Y = -targetSpeed
	}

	t.hitFlash.Update()
}

// OnHit restarts the flash countdown.
func (t *Target) OnHit() {
	t.hitFlash.Start()
	t.logger.Debug("target hit", "position", t.position)
}

func (t *Target) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(t.position.X, t.position.Y)

	// Brighten while the flash countdown is running
	if !t.hitFlash.IsReady() {
		op.ColorScale.Scale(1.6, 1.6, 1.6, 1.0)
	}

	screen.DrawImage(t.sprite, op)
}

func (t *Target) Collider() Rect {
	bounds := t.sprite.Bounds()
	return NewRect(
		t.position.X,
		t.position.Y,
		float64(bounds.Dx()),
		float64(bounds.Dy()),
	)
}
