package game

import (
	"fmt"
	"image/color"

	"github.com/meghashyamc/cooldown2d/config"
	"github.com/meghashyamc/cooldown2d/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/cooldown2d/assets"
	"github.com/meghashyamc/cooldown2d/cooldown"
	"github.com/meghashyamc/cooldown2d/geometry"
)

const (
	screenWidth  = 1200
	screenHeight = 800
)

const readyFlashTicks = 45 // Frames the "ready" notice stays on screen

type GameState int

const (
	GameStatePlaying GameState = iota
	GameStatePaused
)

type Game struct {
	cfg         *config.Config
	player      *Player
	target      *Target
	projectiles map[*Projectile]struct{}
	blink       *Ability
	shoot       *Ability
	readyFlash  *cooldown.Cooldown
	hits        int
	state       GameState
	logger      logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:         cfg,
		player:      NewPlayer(),
		target:      NewTarget(),
		projectiles: make(map[*Projectile]struct{}),
		state:       GameStatePlaying,
		logger:      logger.New(),
	}

	g.readyFlash = cooldown.New(readyFlashTicks, nil)
	g.blink = NewAbility("Blink", cfg.GetBlinkCooldownTicks(), nil)
	g.shoot = NewAbility("Shoot", cfg.GetShootCooldownTicks(), func() {
		// Fires on the exact frame the shoot cooldown runs out
		g.readyFlash.Start()
		g.logger.Debug("shoot ability ready")
	})

	g.logger.Info("game initialized",
		"blink_cooldown_ticks", cfg.GetBlinkCooldownTicks(),
		"shoot_cooldown_ticks", cfg.GetShootCooldownTicks())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {

	switch g.state {
	case GameStatePlaying:
		return g.updatePlaying()
	case GameStatePaused:
		return g.updatePaused()
	}
	return nil
}

func (g *Game) updatePlaying() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.blink.ResetCooldown()
		g.shoot.ResetCooldown()
		g.logger.Debug("cooldowns reset")
	}

	g.player.Update()
	g.handleAbilities()

	// Advance every cooldown exactly once per frame
	g.blink.Update()
	g.shoot.Update()
	g.readyFlash.Update()

	g.target.Update()
	g.updateProjectiles()

	return nil
}

func (g *Game) handleAbilities() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.blink.TryUse() {
			g.player.Blink(getCursorPosition())
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.shoot.TryUse() {
			projectile := NewProjectile(g.player.Center(), getCursorPosition())
			g.projectiles[projectile] = struct{}{}
			g.logger.Debug("projectile fired", "projectileCount", len(g.projectiles))
		}
	}
}

func (g *Game) updateProjectiles() {
	projectilesToRemove := make([]*Projectile, 0)

	for projectile := range g.projectiles {
		projectile.Update()

		if !projectile.IsActive() {
			projectilesToRemove = append(projectilesToRemove, projectile)
			continue
		}

		if projectile.Collider().Intersects(g.target.Collider()) {
			g.hits++
			g.target.OnHit()
			projectile.Deactivate()
			projectilesToRemove = append(projectilesToRemove, projectile)
			g.logger.Debug("projectile hit target", "hits", g.hits)
		}
	}

	for _, projectile := range projectilesToRemove {
		delete(g.projectiles, projectile)
	}
}

func (g *Game) updatePaused() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.resume()
	}
	return nil
}

func (g *Game) pause() {
	// Suspend the countdowns so remaining ticks survive the pause
	g.blink.Pause()
	g.shoot.Pause()
	g.state = GameStatePaused
	g.logger.Debug("game paused", "blink_remaining", g.blink.Remaining(), "shoot_remaining", g.shoot.Remaining())
}

func (g *Game) resume() {
	g.blink.Resume()
	g.shoot.Resume()
	g.state = GameStatePlaying
	g.logger.Debug("game resumed")
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Clear screen with black background (terminal-like)
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.target.Draw(screen)
	g.player.Draw(screen)

	for projectile := range g.projectiles {
		projectile.Draw(screen)
	}

	g.drawHUD(screen)

	if g.state == GameStatePaused {
		g.drawPauseOverlay(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawAbilityBar(screen, g.blink, 20, 20, color.RGBA{80, 200, 255, 255})
	g.drawAbilityBar(screen, g.shoot, 20, 60, color.RGBA{255, 230, 100, 255})

	// Hit counter
	hitsText := fmt.Sprintf("Hits: %d", g.hits)
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 110)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hitsText, assets.HUDFont, op)

	// Flash a notice on the frame the shoot cooldown completes
	if !g.readyFlash.IsReady() {
		readyOp := &text.DrawOptions{}
		readyOp.GeoM.Translate(20, 145)
		readyOp.ColorScale.ScaleWithColor(color.RGBA{255, 230, 100, 255})
		text.Draw(screen, "SHOOT READY!", assets.HUDFont, readyOp)
	}

	// Controls reminder
	instructionText := "WASD/arrows move, Space blink, click shoot, P pause, R reset cooldowns"
	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(20, screenHeight-30)
	op2.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op2)
}

func (g *Game) drawAbilityBar(screen *ebiten.Image, ability *Ability, x, y float64, fillColor color.Color) {
	bar := NewRect(x, y, 220, 18)
	drawProgressBar(screen, bar, ability.Progress(), fillColor)

	label := ability.Name()
	if ability.IsReady() {
		label += ": READY"
	} else {
		label += fmt.Sprintf(": %d", ability.Remaining())
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+bar.Width+15, y-3)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, assets.HUDFont, op)
}

func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	pausedOp := &text.DrawOptions{}
	pausedOp.GeoM.Scale(2.0, 2.0)
	pausedOp.GeoM.Translate(screenWidth/2-80, screenHeight/2-20)
	pausedOp.ColorScale.ScaleWithColor(color.RGBA{255, 50, 50, 255})
	text.Draw(screen, "PAUSED", assets.HUDFont, pausedOp)

	resumeOp := &text.DrawOptions{}
	resumeOp.GeoM.Translate(screenWidth/2-80, screenHeight/2+30)
	resumeOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, "Press P to resume", assets.HUDFont, resumeOp)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (width, height int) {
	return screenWidth, screenHeight
}

func getCursorPosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}
