package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateHandleValidation(t *testing.T) {
	var pos, vel, eff float64

	_, err := NewStateHandle("", &pos, &vel, &eff)
	assert.ErrorIs(t, err, ErrNameEmpty)

	_, err = NewStateHandle("shoulder_motor", &pos, nil, &eff)
	assert.ErrorIs(t, err, ErrNilValue)

	h, err := NewStateHandle("shoulder_motor", &pos, &vel, &eff)
	require.NoError(t, err)
	assert.Equal(t, "shoulder_motor", h.Name())
}

func TestStateHandleReadsThrough(t *testing.T) {
	pos, vel, eff := 1.0, 2.0, 3.0
	h, err := NewStateHandle("shoulder_motor", &pos, &vel, &eff)
	require.NoError(t, err)

	assert.Equal(t, 1.0, h.Position())
	assert.Equal(t, 2.0, h.Velocity())
	assert.Equal(t, 3.0, h.Effort())

	// Handles read live storage, not a snapshot.
	pos, vel, eff = 4.0, 5.0, 6.0
	assert.Equal(t, 4.0, h.Position())
	assert.Equal(t, 5.0, h.Velocity())
	assert.Equal(t, 6.0, h.Effort())
}

func TestCommandHandle(t *testing.T) {
	var pos, vel, eff, cmd float64
	state, err := NewStateHandle("elbow_motor", &pos, &vel, &eff)
	require.NoError(t, err)

	_, err = NewCommandHandle(state, nil)
	assert.ErrorIs(t, err, ErrNilValue)

	h, err := NewCommandHandle(state, &cmd)
	require.NoError(t, err)

	h.SetCommand(0.75)
	assert.Equal(t, 0.75, cmd)
	assert.Equal(t, 0.75, h.Command())
}

func TestStateRegistry(t *testing.T) {
	pos1, vel1, eff1 := 1.0, 2.0, 3.0
	pos2, vel2, eff2 := 4.0, 5.0, 6.0

	h1, err := NewStateHandle("motor_1", &pos1, &vel1, &eff1)
	require.NoError(t, err)
	h2, err := NewStateHandle("motor_2", &pos2, &vel2, &eff2)
	require.NoError(t, err)

	r := NewStateRegistry()
	require.NoError(t, r.Register(h1))
	require.NoError(t, r.Register(h2))
	assert.ErrorIs(t, r.Register(h1), ErrDuplicateHandle)

	got1, err := r.Handle("motor_1")
	require.NoError(t, err)
	assert.Equal(t, "motor_1", got1.Name())
	assert.Equal(t, 1.0, got1.Position())
	assert.Equal(t, 2.0, got1.Velocity())
	assert.Equal(t, 3.0, got1.Effort())

	got2, err := r.Handle("motor_2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got2.Position())
	assert.Equal(t, 5.0, got2.Velocity())
	assert.Equal(t, 6.0, got2.Effort())

	_, err = r.Handle("unknown_name")
	assert.ErrorIs(t, err, ErrHandleNotFound)

	assert.Equal(t, []string{"motor_1", "motor_2"}, r.Names())
}

func TestCommandRegistry(t *testing.T) {
	var pos, vel, eff, cmd float64
	state, err := NewStateHandle("motor_1", &pos, &vel, &eff)
	require.NoError(t, err)
	h, err := NewCommandHandle(state, &cmd)
	require.NoError(t, err)

	r := NewCommandRegistry()
	require.NoError(t, r.Register(h))
	assert.ErrorIs(t, r.Register(h), ErrDuplicateHandle)

	got, err := r.Handle("motor_1")
	require.NoError(t, err)
	got.SetCommand(-1.5)
	assert.Equal(t, -1.5, cmd)

	_, err = r.Handle("motor_9")
	assert.ErrorIs(t, err, ErrHandleNotFound)
}
