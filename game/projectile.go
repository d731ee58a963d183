package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/cooldown2d/assets"
	"github.com/meghashyamc/cooldown2d/geometry"
)

const projectileSpeed = 10.0 // Pixels per frame

type Projectile struct {
	position geometry.Vector
	velocity geometry.Vector
	sprite   *ebiten.Image
	active   bool
}

// NewProjectile spawns a shot at from, heading toward target.
func NewProjectile(from, target geometry.Vector) *Projectile {
	direction := target.Sub(from).Normalize()
	if direction.Magnitude() == 0 {
		// Cursor exactly on the spawn point; default to firing right
		direction = geometry.Vector{X: 1, Y: 0}
	}

	sprite := assets.ProjectileSprite
	bounds := sprite.Bounds()

	return &Projectile{
		position: geometry.Vector{
			X: from.X - float64(bounds.Dx())/2,
			Y: from.Y - float64(bounds.Dy())/2,
		},
		velocity: direction.Scale(projectileSpeed),
		sprite:   sprite,
		active:   true,
	}
}

func (p *Projectile) Update() {
	if !p.active {
		return
	}

	p.position = p.position.Add(p.velocity)

	// Deactivate once fully off screen
	bounds := p.sprite.Bounds()
	if p.position.Y > screenHeight+float64(bounds.Dy()) ||
		p.position.X < -float64(bounds.Dx()) ||
		p.position.X > screenWidth+float64(bounds.Dx()) ||
		p.position.Y < -float64(bounds.Dy()) {
		p.active = false
	}
}

func (p *Projectile) Draw(screen *ebiten.Image) {
	if !p.active {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.position.X, p.position.Y)
	screen.DrawImage(p.sprite, op)
}

func (p *Projectile) Collider() Rect {
	bounds := p.sprite.Bounds()
	return NewRect(
		p.position.X,
		p.position.Y,
		float64(bounds.Dx()),
		float64(bounds.Dy()),
	)
}

func (p *Projectile) IsActive() bool {
	return p.active
}

func (p *Projectile) Deactivate() {
	p.active = false
}
