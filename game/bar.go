package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawProgressBar renders an outlined bar filled left-to-right by
// progress (0 = empty, 1 = full).
func drawProgressBar(screen *ebiten.Image, bar Rect, progress float64, fillColor color.Color) {
	fillWidth := bar.Width * clampValue(progress, 0.0, 1.0)
	if fillWidth > 0 {
		fillImg := ebiten.NewImage(1, 1)
		fillImg.Fill(fillColor)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fillWidth, bar.Height)
		op.GeoM.Translate(bar.X, bar.Y)
		screen.DrawImage(fillImg, op)
	}

	drawRectangleOutline(screen, bar, color.White)
}

func drawRectangleOutline(screen *ebiten.Image, rect Rect, col color.Color) {
	lineImg := ebiten.NewImage(1, 1)
	lineImg.Fill(col)

	// Top line
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Bottom line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y+rect.Height-1)
	screen.DrawImage(lineImg, op)

	// Left line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Right line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X+rect.Width-1, rect.Y)
	screen.DrawImage(lineImg, op)
}
