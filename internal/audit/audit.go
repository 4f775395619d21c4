package audit

import (
	"database/sql"
	"fmt"
	"time"
)

// Actions recorded in the activity log.
const (
	ActionLogin       = "login"
	ActionLoginFailed = "login_failed"
	ActionAdd         = "add"
	ActionEdit        = "edit"
	ActionRemove      = "remove"
)

// Event is one entry in the activity log.
type Event struct {
	ID        int64
	SessionID string
	Action    string
	ActorID   int // 0 when nobody is logged in
	TargetID  int
	Detail    string
	CreatedAt time.Time
}

// Repo reads and writes activity log entries.
type Repo struct {
	db *sql.DB
}

// NewRepo creates an activity log repository.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Record appends ev. A zero CreatedAt is set to now.
func (r *Repo) Record(ev Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(`
		INSERT INTO audit_events (session_id, action, actor_id, target_id, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ev.SessionID, ev.Action, ev.ActorID, ev.TargetID, ev.Detail, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("record %s event: %w", ev.Action, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *Repo) Recent(limit int) ([]Event, error) {
	return r.query(`
		SELECT id, session_id, action, actor_id, target_id, detail, created_at
		FROM audit_events ORDER BY id DESC LIMIT ?
	`, limit)
}

// ForTarget returns every entry about one employee, newest first.
func (r *Repo) ForTarget(id int) ([]Event, error) {
	return r.query(`
		SELECT id, session_id, action, actor_id, target_id, detail, created_at
		FROM audit_events WHERE target_id = ? ORDER BY id DESC
	`, id)
}

func (r *Repo) query(q string, args ...any) ([]Event, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var created sql.NullTime
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Action, &ev.ActorID,
			&ev.TargetID, &ev.Detail, &created); err != nil {
			return nil, err
		}
		if created.Valid {
			ev.CreatedAt = created.Time
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
