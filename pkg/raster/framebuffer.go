package raster

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// DefaultDevice is the framebuffer opened when none is given.
const DefaultDevice = "/dev/fb0"

// Framebuffer is an open framebuffer device.
type Framebuffer struct {
	dev *fb.Device
}

// OpenFramebuffer maps the framebuffer device at path.
func OpenFramebuffer(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return &Framebuffer{dev: dev}, nil
}

// Bounds is the device resolution.
func (f *Framebuffer) Bounds() image.Rectangle { return f.dev.Bounds() }

// Show scales img to the whole screen.
func (f *Framebuffer) Show(img image.Image) {
	Scale(f.dev, img)
}

func (f *Framebuffer) Close() error {
	f.dev.Close()
	return nil
}
