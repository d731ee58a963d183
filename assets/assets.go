package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	PlayerSprite     *ebiten.Image
	ProjectileSprite *ebiten.Image
	TargetSprite     *ebiten.Image
	HUDFont          *text.GoTextFace
)

func init() {
	PlayerSprite = makeSquare(28, color.RGBA{80, 200, 255, 255})
	ProjectileSprite = makeSquare(8, color.RGBA{255, 230, 100, 255})
	TargetSprite = makeSquare(36, color.RGBA{255, 90, 90, 255})

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
}

func makeSquare(size int, col color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(col)
	return img
}
