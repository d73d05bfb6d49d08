package system

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/terrain"
)

// ImageSource looks up sprites by key. A nil image means not loaded yet.
type ImageSource interface {
	Image(key string) *ebiten.Image
}

// Align is a horizontal text anchor
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer draws scenery, entities and HUD with vector primitives, using
// sprites where they have loaded
type Renderer struct {
	Palette Palette
	images  ImageSource
	face    *text.GoXFace
}

// NewRenderer creates a renderer. images may be nil.
func NewRenderer(p Palette, images ImageSource) *Renderer {
	return &Renderer{
		Palette: p,
		images:  images,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

func disc(dst *ebiten.Image, x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(dst, float32(x), float32(y), float32(r), c, true)
}

// DrawScenery draws the ground layers in order: tint, beach, road, sea,
// tree shadow, tree.
func (r *Renderer) DrawScenery(dst *ebiten.Image, s *Scenery) {
	p := s.Plan()
	pal := r.Palette

	dst.Fill(pal.GroundDark)
	for _, c := range p.Ground {
		vector.FillRect(dst, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size),
			lerpColor(pal.GroundDark, pal.GroundLight, c.Tint), false)
	}
	for _, d := range p.Beach {
		disc(dst, d.X, d.Y, d.Radius, pal.Beach)
	}
	for _, d := range p.Road {
		disc(dst, d.X, d.Y, d.Radius, pal.Road)
	}
	for _, d := range p.Sea {
		disc(dst, d.X, d.Y, d.Radius, pal.Sea)
	}
	for _, d := range p.TreeShadow {
		disc(dst, d.X, d.Y, d.Radius, fade(pal.TreeShadow, 0.5))
	}
	for _, d := range p.Tree {
		disc(dst, d.X, d.Y, d.Radius, pal.Tree)
	}
}

// DrawClouds draws cloud shadows, then cloud bodies. It goes above the
// entities.
func (r *Renderer) DrawClouds(dst *ebiten.Image, clouds []terrain.Cloud) {
	pal := r.Palette
	for _, c := range clouds {
		shade := pal.CloudShadowLand
		if c.OverSea {
			shade = pal.CloudShadowSea
		}
		disc(dst, c.Shadow.X, c.Shadow.Y, c.Shadow.Radius, fade(shade, 1))
	}
	for _, c := range clouds {
		body := pal.CloudDark
		if c.Light {
			body = pal.CloudLight
		}
		disc(dst, c.Body.X, c.Body.Y, c.Body.Radius, fade(body, 1))
	}
}

// DrawObject draws a sprite scaled to the object's diameter, or a solid
// circle in the object's colour when the sprite is unavailable
func (r *Renderer) DrawObject(dst *ebiten.Image, o *entity.Object, alpha float64) {
	var img *ebiten.Image
	if r.images != nil && o.ImageKey != "" {
		img = r.images.Image(o.ImageKey)
	}
	if img == nil {
		disc(dst, o.Position.X, o.Position.Y, o.Radius, fade(o.Color, alpha))
		return
	}

	b := img.Bounds()
	d := o.Radius * 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d/float64(b.Dx()), d/float64(b.Dy()))
	op.GeoM.Translate(o.Position.X-o.Radius, o.Position.Y-o.Radius)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (r *Renderer) drawShadow(dst *ebiten.Image, s *Scenery, o *entity.Object) {
	if !o.HasShadow {
		return
	}
	sh := s.ShadowFor(o.Position)
	c := r.Palette.ShadowLand
	if sh.OverSea {
		c = r.Palette.ShadowSea
	}
	disc(dst, sh.X, sh.Y, o.Radius, fade(c, 1))
}

// DrawSession draws every live entity of the session over the scenery
func (r *Renderer) DrawSession(dst *ebiten.Image, s *Scenery, w *Session) {
	p := w.Player

	for _, e := range w.Enemies {
		if e.Active {
			r.drawShadow(dst, s, &e.Object)
		}
	}
	if p.ShouldRender() {
		r.drawShadow(dst, s, &p.Object)
	}

	for _, e := range w.Enemies {
		r.guardDraw(e.ID, func() { r.drawEnemy(dst, e) })
	}
	for _, b := range w.EnemyBullets {
		r.guardDraw(b.ID, func() { r.drawBullet(dst, b) })
	}
	for _, b := range w.PlayerBullets {
		r.guardDraw(b.ID, func() { r.drawBullet(dst, b) })
	}
	for _, b := range w.Specials {
		r.guardDraw(b.ID, func() { r.drawSpecial(dst, b, w.Elapsed) })
	}
	if p.ShouldRender() {
		r.guardDraw(p.ID, func() { r.DrawObject(dst, &p.Object, 1) })
	}
	for _, pt := range w.Particles {
		if pt.Active {
			disc(dst, pt.Position.X, pt.Position.Y, pt.Radius, fade(pt.Color, pt.Alpha()))
		}
	}
	for _, t := range w.ScoreTexts {
		if t.Active {
			r.Text(dst, t.Text, t.Position.X, t.Position.Y, 2, AlignCenter, fade(t.Color, t.Alpha()))
		}
	}
}

// guardDraw isolates a faulty entity's draw from the rest of the frame
func (r *Renderer) guardDraw(id entity.EntityID, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("entity %d: recovered from draw panic: %v", id, rec)
		}
	}()
	fn()
}

func (r *Renderer) drawEnemy(dst *ebiten.Image, e *entity.Enemy) {
	if !e.Active {
		return
	}
	r.DrawObject(dst, &e.Object, 1)
	if e.Flashing() {
		disc(dst, e.Position.X, e.Position.Y, e.Radius, fade(r.Palette.EnemyFlash, 0.7))
	}
}

func (r *Renderer) drawBullet(dst *ebiten.Image, b *entity.Bullet) {
	if !b.Active {
		return
	}
	for i, pt := range b.Trail {
		disc(dst, pt.X, pt.Y, b.Radius, fade(b.Color, b.TrailAlpha(i)))
	}
	disc(dst, b.Position.X, b.Position.Y, b.Radius, fade(b.Color, 1))
}

func (r *Renderer) drawSpecial(dst *ebiten.Image, b *entity.SpecialBullet, now float64) {
	if !b.Active {
		return
	}
	r.drawBullet(dst, &b.Bullet)
	if b.RingVisible(now) {
		vector.StrokeCircle(dst, float32(b.Position.X), float32(b.Position.Y), float32(b.RingRadius()), 2,
			fade(r.Palette.SpecialRing, 1), true)
	}
}

// DrawHUD draws score, high score, lives and the special gauge
func (r *Renderer) DrawHUD(dst *ebiten.Image, w *Session, highScore int) {
	pal := r.Palette
	width := float64(dst.Bounds().Dx())

	r.Text(dst, fmt.Sprintf("SCORE %06d", w.Score), 12, 12, 2, AlignLeft, pal.Text)
	r.Text(dst, fmt.Sprintf("HI %06d", max(highScore, w.Score)), width-12, 12, 2, AlignRight, pal.Text)

	for i := 0; i < w.Player.Lives; i++ {
		disc(dst, 20+float64(i)*24, 56, 8, pal.Player)
	}

	const gw, gh = 120.0, 10.0
	x, y := width-12-gw, 50.0
	vector.FillRect(dst, float32(x), float32(y), gw, gh, fade(pal.Text, 0.25), false)
	vector.FillRect(dst, float32(x), float32(y), float32(gw*w.Player.SpecialProgress()), gh, pal.Gauge, false)
	if w.Player.SpecialReady() {
		r.Text(dst, "SPECIAL READY", width-12, y+gh+6, 1, AlignRight, pal.Gauge)
	}
}

// Text draws s with its top edge at y, scaled by size
func (r *Renderer) Text(dst *ebiten.Image, s string, x, y, size float64, align Align, c color.Color) {
	w, _ := text.Measure(s, r.face, 0)
	w *= size
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, r.face, op)
}

// DrawButton draws a labelled button
func (r *Renderer) DrawButton(dst *ebiten.Image, b *Button) {
	fill := r.Palette.Button
	if b.Hovered() {
		fill = r.Palette.Hover
	}
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, r.Palette.Text, false)
	_, th := text.Measure(b.Label, r.face, 0)
	r.Text(dst, b.Label, b.X+b.W/2, b.Y+(b.H-th*2)/2, 2, AlignCenter, r.Palette.Text)
}

// Dim darkens the whole screen
func (r *Renderer) Dim(dst *ebiten.Image, alpha float64) {
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), fade(color.RGBA{A: 0xFF}, alpha), false)
}
