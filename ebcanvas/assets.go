package ebcanvas

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed radial_shader.go
	radialShaderSrc []byte
	radialShader    *eb.Shader
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

// RadialShader compiles radial gradient shader on first use.
func RadialShader() (*eb.Shader, error) {
	if radialShader != nil {
		return radialShader, nil
	}

	shader, err := eb.NewShader(radialShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile radial shader: %w", err)
	}
	radialShader = shader

	return radialShader, nil
}
