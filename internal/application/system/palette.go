package system

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Palette holds the resolved draw colours. Colours are straight (not
// premultiplied) RGBA as written in the colour table.
type Palette struct {
	Player      color.RGBA
	EnemyFlash  color.RGBA
	SpecialRing color.RGBA

	GroundDark  color.RGBA
	GroundLight color.RGBA
	Sea         color.RGBA
	Beach       color.RGBA
	Road        color.RGBA
	Tree        color.RGBA
	TreeShadow  color.RGBA

	CloudLight      color.RGBA
	CloudDark       color.RGBA
	CloudShadowLand color.RGBA
	CloudShadowSea  color.RGBA

	ShadowLand color.RGBA
	ShadowSea  color.RGBA

	TitleBackground color.RGBA

	Text   color.RGBA
	Button color.RGBA
	Hover  color.RGBA
	Gauge  color.RGBA
}

// NewPalette reads the colour table, falling back to named colours
func NewPalette(g *config.GameSettings) Palette {
	return Palette{
		Player:      g.Color("player", colornames.Blue),
		EnemyFlash:  g.Color("enemyFlash", colornames.White),
		SpecialRing: g.Color("specialRing", colornames.Khaki),

		GroundDark:  g.Color("groundDark", colornames.Yellowgreen),
		GroundLight: g.Color("groundLight", colornames.Lightgreen),
		Sea:         g.Color("sea", colornames.Steelblue),
		Beach:       g.Color("beach", colornames.Navajowhite),
		Road:        g.Color("road", colornames.Burlywood),
		Tree:        g.Color("tree", colornames.Forestgreen),
		TreeShadow:  g.Color("treeShadow", colornames.Darkslategray),

		CloudLight:      g.Color("cloudLight", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xB3}),
		CloudDark:       g.Color("cloudDark", color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xB3}),
		CloudShadowLand: g.Color("cloudShadowLand", color.RGBA{A: 0x33}),
		CloudShadowSea:  g.Color("cloudShadowSea", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x4D}),

		ShadowLand: g.Color("shadowLand", color.RGBA{A: 0x80}),
		ShadowSea:  g.Color("shadowSea", color.RGBA{A: 0x4D}),

		TitleBackground: g.Color("titleBackground", color.RGBA{R: 0x2E, G: 0x34, B: 0x40, A: 0xFF}),

		Text:   g.Color("text", colornames.White),
		Button: g.Color("button", colornames.Darkslateblue),
		Hover:  g.Color("buttonHover", colornames.Slateblue),
		Gauge:  g.Color("gauge", colornames.Gold),
	}
}

// lerpColor blends a toward b by t in [0, 1]
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// fade converts a straight colour for drawing, scaling its alpha by a
func fade(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
