package main

import (
	"image"
	"path/filepath"

	eb "github.com/hajimehoshi/ebiten/v2"

	"backdrop/misc"
)

func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	imgImg := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	// ebiten pixels are premultiplied, same as image.RGBA
	img.ReadPixels(imgImg.Pix)
	return imgImg
}

// TakeScreenshot saves img as png in dir and returns file name.
func TakeScreenshot(img *eb.Image, dir string) (string, error) {
	filename, err := misc.UniqueFilename(dir, "pic", ".png")
	if err != nil {
		return "", err
	}

	if err := misc.WritePNG(filepath.Join(dir, filename), ImageImageFromEbImage(img)); err != nil {
		return "", err
	}

	return filename, nil
}
