package ready

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/pevious/internal/application/scene/scenetest"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
)

const frame = 1.0 / 64

func TestReady_CountsDownThenPlays(t *testing.T) {
	env := scenetest.NewEnv()
	r := New(env.Env)
	r.OnEnter()
	assert.Equal(t, 3.0, r.Remaining())

	steps := 0
	for {
		next, err := r.Update(frame)
		require.NoError(t, err)
		steps++
		if next != nil {
			assert.Equal(t, state.StatePlaying, next.State())
			break
		}
		require.Less(t, steps, 1000)
	}

	assert.Equal(t, 3*64, steps)
	assert.Zero(t, r.Remaining())
}

func TestReady_IgnoresInput(t *testing.T) {
	env := scenetest.NewEnv()
	r := New(env.Env)
	r.OnEnter()

	env.In.Push(system.InputState{Click: true, Confirm: true, Fire: true})
	next, _ := r.Update(frame)

	assert.Nil(t, next)
	assert.Empty(t, env.Snd.Played)
}

func TestReady_ScrollsScenery(t *testing.T) {
	env := scenetest.NewEnv()
	r := New(env.Env)
	r.OnEnter()

	for range 32 {
		_, _ = r.Update(frame)
	}

	assert.InDelta(t, -50, env.Scenery.Camera.Position.Y, 1e-9)
}

func TestReady_OnEnterRestarts(t *testing.T) {
	env := scenetest.NewEnv()
	r := New(env.Env)
	r.OnEnter()
	_, _ = r.Update(1)
	assert.Equal(t, 2.0, r.Remaining())

	r.OnEnter()
	assert.Equal(t, 3.0, r.Remaining())
}
