package db

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "create audit events table",
		sql: `
			CREATE TABLE IF NOT EXISTS audit_events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				session_id TEXT NOT NULL,
				action TEXT NOT NULL,
				actor_id INTEGER NOT NULL DEFAULT 0,
				target_id INTEGER NOT NULL DEFAULT 0,
				detail TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		name: "index audit events by target",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_audit_events_target ON audit_events(target_id, id);
			CREATE INDEX IF NOT EXISTS idx_audit_events_session ON audit_events(session_id);
		`,
	},
}
