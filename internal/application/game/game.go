// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	hooks []func()
	debug bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// OnFrame registers fn to run at the start of every Update, before the
// scene. Asset publication and audio voice reaping hook in here.
func (g *Game) OnFrame(fn func()) {
	g.hooks = append(g.hooks, fn)
}

// SetDebug toggles the TPS/FPS overlay.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// State returns the state of the active scene.
func (g *Game) State() state.GameState {
	return g.current.State()
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	for _, fn := range g.hooks {
		fn()
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	from, to := g.current.State(), next.State()
	if !from.CanTransition(to) {
		return fmt.Errorf("invalid scene transition %s -> %s", from, to)
	}
	log.Printf("scene: %s -> %s", from, to)

	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f  FPS %.1f  %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.current.State()))
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
