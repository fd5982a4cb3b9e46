package capture

import "time"

// SessionRecorder ties every recorded cycle to one session. It satisfies
// the control loop's Recorder interface.
type SessionRecorder struct {
	store     *Store
	sessionID string
}

// NewSessionRecorder creates a recorder writing into the given session.
func NewSessionRecorder(store *Store, sessionID string) *SessionRecorder {
	return &SessionRecorder{store: store, sessionID: sessionID}
}

// Record persists one cycle snapshot.
func (r *SessionRecorder) Record(cycle int, elapsed time.Duration, actuators, joints map[string]float64) error {
	return r.store.RecordCycle(r.sessionID, cycle, elapsed, actuators, joints)
}
