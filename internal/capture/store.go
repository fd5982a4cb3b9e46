package capture

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store lifecycle and lookup errors.
var (
	ErrClosed          = errors.New("capture store is closed")
	ErrSessionNotFound = errors.New("session not found")
)

// Session describes one recorded run.
type Session struct {
	ID        string
	Name      string
	RateHz    float64
	StartedAt time.Time
	EndedAt   *time.Time
}

// Cycle is one recorded control cycle: positions keyed by actuator and
// joint name at a logical elapsed time.
type Cycle struct {
	Cycle     int
	ElapsedMS float64
	Actuators map[string]float64
	Joints    map[string]float64
}

// Store persists sessions and cycles to a SQLite database.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// Open opens or creates the capture database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening capture database: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying capture schema: %w", err)
		}
	}
	return &Store{db: db, open: true}, nil
}

// Close releases the database. Idempotent: closing twice succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// BeginSession creates a session row and returns its ID (UUID v7, so IDs
// sort by creation time).
func (s *Store) BeginSession(name string, rateHz float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return "", ErrClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating session ID: %w", err)
	}

	startedAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT INTO sessions (session_id, name, rate_hz, started_at) VALUES (?, ?, ?, ?)",
		id.String(), name, rateHz, startedAt,
	)
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return id.String(), nil
}

// EndSession stamps the session's end time.
// Returns ErrSessionNotFound for an unknown ID.
func (s *Store) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}

	endedAt := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		"UPDATE sessions SET ended_at = ? WHERE session_id = ?",
		endedAt, sessionID,
	)
	if err != nil {
		return fmt.Errorf("ending session %s: %w", sessionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ending session %s: %w", sessionID, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// RecordCycle persists one control cycle. Value maps are stored as JSON.
func (s *Store) RecordCycle(sessionID string, cycle int, elapsed time.Duration, actuators, joints map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}

	actuatorsJSON, err := json.Marshal(actuators)
	if err != nil {
		return fmt.Errorf("marshaling actuator values: %w", err)
	}
	jointsJSON, err := json.Marshal(joints)
	if err != nil {
		return fmt.Errorf("marshaling joint values: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO cycles (session_id, cycle, elapsed_ms, actuators, joints) VALUES (?, ?, ?, ?, ?)",
		sessionID, cycle, float64(elapsed)/float64(time.Millisecond),
		string(actuatorsJSON), string(jointsJSON),
	)
	if err != nil {
		return fmt.Errorf("recording cycle %d: %w", cycle, err)
	}
	return nil
}

// Sessions lists all recorded sessions, oldest first.
func (s *Store) Sessions() ([]Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		"SELECT session_id, name, rate_hz, started_at, ended_at FROM sessions ORDER BY session_id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := hydrateSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Session returns one session by ID, or ErrSessionNotFound.
func (s *Store) Session(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return Session{}, ErrClosed
	}
	return s.session(sessionID)
}

func (s *Store) session(sessionID string) (Session, error) {
	row := s.db.QueryRow(
		"SELECT session_id, name, rate_hz, started_at, ended_at FROM sessions WHERE session_id = ?",
		sessionID,
	)
	sess, err := hydrateSession(row)
	if err == sql.ErrNoRows {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("getting session %s: %w", sessionID, err)
	}
	return sess, nil
}

// Cycles returns the recorded cycles of a session in cycle order.
// Returns ErrSessionNotFound for an unknown ID.
func (s *Store) Cycles(sessionID string) ([]Cycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrClosed
	}
	if _, err := s.session(sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT cycle, elapsed_ms, actuators, joints FROM cycles WHERE session_id = ? ORDER BY cycle",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cycles for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		var c Cycle
		var actuatorsJSON, jointsJSON string
		if err := rows.Scan(&c.Cycle, &c.ElapsedMS, &actuatorsJSON, &jointsJSON); err != nil {
			return nil, fmt.Errorf("scanning cycle: %w", err)
		}
		if err := json.Unmarshal([]byte(actuatorsJSON), &c.Actuators); err != nil {
			return nil, fmt.Errorf("unmarshaling actuator values: %w", err)
		}
		if err := json.Unmarshal([]byte(jointsJSON), &c.Joints); err != nil {
			return nil, fmt.Errorf("unmarshaling joint values: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func hydrateSession(row scannable) (Session, error) {
	var sess Session
	var startedAt string
	var endedAt sql.NullString
	if err := row.Scan(&sess.ID, &sess.Name, &sess.RateHz, &startedAt, &endedAt); err != nil {
		return Session{}, err
	}

	parsed, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return Session{}, fmt.Errorf("parsing session start time: %w", err)
	}
	sess.StartedAt = parsed

	if endedAt.Valid {
		parsed, err := time.Parse(time.RFC3339, endedAt.String)
		if err != nil {
			return Session{}, fmt.Errorf("parsing session end time: %w", err)
		}
		sess.EndedAt = &parsed
	}
	return sess, nil
}
