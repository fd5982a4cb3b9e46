// Package capture records control-loop cycles to a SQLite database so
// simulated runs can be inspected after the fact.
// See docs/ARCHITECTURE.md § Capture store.
package capture

// Schema DDL. IF NOT EXISTS keeps reopening an existing capture file cheap.
const (
	createSessions = `CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    rate_hz REAL NOT NULL,
    started_at TEXT NOT NULL,
    ended_at TEXT
);`

	createCycles = `CREATE TABLE IF NOT EXISTS cycles (
    session_id TEXT NOT NULL,
    cycle INTEGER NOT NULL,
    elapsed_ms REAL NOT NULL,
    actuators TEXT NOT NULL,
    joints TEXT NOT NULL,
    PRIMARY KEY (session_id, cycle),
    FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);`
)

// schemaStatements lists the DDL applied on Open, in order.
var schemaStatements = []string{
	createSessions,
	createCycles,
}
