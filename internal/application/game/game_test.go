package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	kind          state.GameState
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func (m *mockScene) State() state.GameState {
	return m.kind
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, state.StateTitle, g.State())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{kind: state.StateTitle}
	scene2 := &mockScene{kind: state.StateReady}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 320, 240)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Equal(t, state.StateReady, g.State())

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_FullCycle(t *testing.T) {
	title := &mockScene{kind: state.StateTitle}
	ready := &mockScene{kind: state.StateReady}
	playing := &mockScene{kind: state.StatePlaying}
	over := &mockScene{kind: state.StateGameOver}
	replay := &mockScene{kind: state.StatePlaying}

	title.nextScene = ready
	ready.nextScene = playing
	playing.nextScene = over
	over.nextScene = replay

	g := New(title, 320, 240)
	for _, want := range []state.GameState{state.StateReady, state.StatePlaying, state.StateGameOver, state.StatePlaying} {
		assert.NoError(t, g.Update())
		assert.Equal(t, want, g.State())
	}
	assert.Equal(t, 1, over.onExitCalled)
	assert.Equal(t, 1, replay.onEnterCalled)
}

func TestGame_InvalidTransitionRejected(t *testing.T) {
	title := &mockScene{kind: state.StateTitle}
	over := &mockScene{kind: state.StateGameOver}
	title.nextScene = over

	g := New(title, 320, 240)
	err := g.Update()

	assert.ErrorContains(t, err, "Title -> GameOver")
	assert.Equal(t, state.StateTitle, g.State())
	assert.Zero(t, title.onExitCalled)
	assert.Zero(t, over.onEnterCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil}

	g := New(scene1, 320, 240)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_FrameHooksRunBeforeScene(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 320, 240)

	var order []string
	g.OnFrame(func() { order = append(order, "a") })
	g.OnFrame(func() {
		order = append(order, "b")
		assert.Zero(t, scene1.updateCalled)
	})

	assert.NoError(t, g.Update())
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}
