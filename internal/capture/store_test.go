package capture

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore opens a store in a temp directory and closes it on cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "capture.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := setupStore(t)

	id, err := s.BeginSession("wrist sweep", 100.0)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := s.Session(id)
	require.NoError(t, err)
	assert.Equal(t, "wrist sweep", sess.Name)
	assert.Equal(t, 100.0, sess.RateHz)
	assert.Nil(t, sess.EndedAt)

	require.NoError(t, s.EndSession(id))
	sess, err = s.Session(id)
	require.NoError(t, err)
	assert.NotNil(t, sess.EndedAt)

	assert.ErrorIs(t, s.EndSession("no-such-session"), ErrSessionNotFound)
}

func TestRecordAndFetchCycles(t *testing.T) {
	s := setupStore(t)

	id, err := s.BeginSession("run", 1000.0)
	require.NoError(t, err)

	for cycle := 0; cycle < 3; cycle++ {
		err := s.RecordCycle(id, cycle, time.Duration(cycle+1)*time.Millisecond,
			map[string]float64{"wrist_motor_left": float64(cycle)},
			map[string]float64{"wrist_pitch": float64(cycle) / 2.0},
		)
		require.NoError(t, err)
	}

	cycles, err := s.Cycles(id)
	require.NoError(t, err)
	require.Len(t, cycles, 3)
	assert.Equal(t, 0, cycles[0].Cycle)
	assert.Equal(t, 1.0, cycles[0].ElapsedMS)
	assert.Equal(t, 2.0, cycles[2].Joints["wrist_pitch"]*2.0)
	assert.Equal(t, 1.0, cycles[1].Actuators["wrist_motor_left"])
}

func TestCyclesUnknownSession(t *testing.T) {
	s := setupStore(t)
	_, err := s.Cycles("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsListedOldestFirst(t *testing.T) {
	s := setupStore(t)

	first, err := s.BeginSession("first", 10.0)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond) // distinct UUID v7 timestamps
	second, err := s.BeginSession("second", 10.0)
	require.NoError(t, err)

	sessions, err := s.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// UUID v7 IDs sort by creation time.
	assert.Equal(t, first, sessions[0].ID)
	assert.Equal(t, second, sessions[1].ID)
}

func TestClosedStore(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, err := s.BeginSession("late", 1.0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Sessions()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.RecordCycle("x", 0, 0, nil, nil), ErrClosed)
}

func TestSessionRecorder(t *testing.T) {
	s := setupStore(t)
	id, err := s.BeginSession("recorded", 50.0)
	require.NoError(t, err)

	rec := NewSessionRecorder(s, id)
	require.NoError(t, rec.Record(0, 20*time.Millisecond,
		map[string]float64{"m": 1.0}, map[string]float64{"j": 0.5}))

	cycles, err := s.Cycles(id)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, 20.0, cycles[0].ElapsedMS)
	assert.Equal(t, 0.5, cycles[0].Joints["j"])
}
