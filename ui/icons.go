// Package ui provides the graphical user interface for rfkill-panel.
// This file contains icon lookup and the fallback icon generator.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rfkill-panel/common"
)

// Close control images.
const (
	closeIconFile      = "close.svg"
	closeHoverIconFile = "close-red.svg"
)

// IconConfig defines the look of a generated radio icon.
type IconConfig struct {
	Size       int
	WaveColor  color.RGBA
	SlashColor color.RGBA
	Blocked    bool
}

// UnblockedIconConfig returns the config for a radio that is on.
func UnblockedIconConfig(size int) IconConfig {
	return IconConfig{
		Size:      size,
		WaveColor: color.RGBA{46, 194, 126, 255}, // Green
	}
}

// BlockedIconConfig returns the config for a radio that is off.
func BlockedIconConfig(size int) IconConfig {
	return IconConfig{
		Size:       size,
		WaveColor:  color.RGBA{154, 153, 150, 255}, // Gray
		SlashColor: color.RGBA{224, 27, 36, 255},   // Red
		Blocked:    true,
	}
}

// IconGenerator draws a generic radio icon for themes that lack the
// named radio icons.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawWaves(img)
	if g.config.Blocked {
		g.drawSlash(img)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawWaves draws a dot and three concentric arcs opening upwards.
func (g *IconGenerator) drawWaves(img *image.RGBA) {
	size := float64(g.config.Size)
	cx, cy := size/2, size*0.7
	thickness := math.Max(1, size/24)
	radii := []float64{size * 0.08, size * 0.2, size * 0.32, size * 0.44}

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			dist := math.Hypot(dx, dy)

			if dist <= radii[0] {
				img.Set(x, y, g.config.WaveColor)
				continue
			}
			// Arcs cover the upper 90 degree wedge.
			if dy > 0 || math.Abs(dx) > -dy {
				continue
			}
			for _, r := range radii[1:] {
				if math.Abs(dist-r) <= thickness {
					img.Set(x, y, g.config.WaveColor)
					break
				}
			}
		}
	}
}

// drawSlash draws a diagonal bar from the top-left to the bottom-right.
func (g *IconGenerator) drawSlash(img *image.RGBA) {
	size := g.config.Size
	thickness := math.Max(1, float64(size)/16)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Abs(float64(x-y))/math.Sqrt2 <= thickness {
				img.Set(x, y, g.config.SlashColor)
			}
		}
	}
}

// GenerateRadioIcon generates the fallback icon for a switch state.
func GenerateRadioIcon(active bool, size int) []byte {
	if active {
		return NewIconGenerator(UnblockedIconConfig(size)).Generate()
	}
	return NewIconGenerator(BlockedIconConfig(size)).Generate()
}

// Fallback textures, created lazily on the GTK thread.
var fallbackTextures = map[bool]*gdk.Texture{}

// setupIconTheme adds the icon search paths: the working directory, the
// executable directory and the configured icon directory.
func setupIconTheme(iconDir string) *gtk.IconTheme {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return nil
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return nil
	}

	for _, dir := range iconSearchPaths(iconDir) {
		iconTheme.AddSearchPath(dir)
	}
	return iconTheme
}

// iconSearchPaths returns the directories searched for radio icons.
func iconSearchPaths(iconDir string) []string {
	paths := []string{"."}
	if dir := common.ExecutableDir(); dir != "" {
		paths = append(paths, dir, filepath.Join(dir, "icons"))
	}
	if iconDir != "" {
		paths = append(paths, iconDir)
	}
	return paths
}

// setRadioIcon shows the named icon, or a generated one when the theme
// does not provide it.
func setRadioIcon(img *gtk.Image, theme *gtk.IconTheme, name string, active bool) {
	if theme == nil || theme.HasIcon(name) {
		img.SetFromIconName(name)
		img.SetPixelSize(common.IconSize)
		return
	}

	texture, ok := fallbackTextures[active]
	if !ok {
		var err error
		texture, err = gdk.NewTextureFromBytes(glib.NewBytes(GenerateRadioIcon(active, common.IconSize)))
		if err != nil {
			common.LogWarn("Cannot create fallback icon for %s: %v", name, err)
			img.SetFromIconName(name)
			return
		}
		fallbackTextures[active] = texture
	}
	img.SetFromPaintable(texture)
	img.SetPixelSize(common.IconSize)
}
