package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// Value kinds as stored in the kind column.
const (
	kindAbsent = "absent"
	kindNumber = "number"
	kindText   = "text"
)

// SaveRun persists one reconciled SweepSet as a new run and returns the
// generated run ID. Sweep first-appearance order and per-channel field
// order are recorded so queries reproduce the reconciler's output exactly.
// Implements: prd002-sqlite-store R2, R3.
func (s *Store) SaveRun(device, source string, sweeps *types.SweepSet) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}

	runID := newUUID()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, device, source, created_at) VALUES (?, ?, ?, ?)",
		runID, device, source, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sweep_fields (run_id, sweep_id, sweep_pos, channel, field, ordinal, kind, num, text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing field insert: %w", err)
	}
	defer stmt.Close()

	for pos, sweepID := range sweeps.IDs() {
		channels, _ := sweeps.Get(sweepID)
		for ch, meta := range channels {
			for ord, name := range meta.Names() {
				v, _ := meta.Get(name)
				var num sql.NullFloat64
				var text sql.NullString
				kind := kindAbsent
				if f, ok := v.Float(); ok {
					kind = kindNumber
					num = sql.NullFloat64{Float64: f, Valid: true}
				} else if str, ok := v.Str(); ok {
					kind = kindText
					text = sql.NullString{String: str, Valid: true}
				}
				if _, err := stmt.Exec(runID, sweepID, pos, ch, name, ord, kind, num, text); err != nil {
					return "", fmt.Errorf("inserting sweep %d channel %d field %q: %w",
						sweepID, ch, name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing save: %w", err)
	}
	return runID, nil
}

// Runs lists all saved runs, newest first.
func (s *Store) Runs() ([]*types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(`
		SELECT r.run_id, r.device, r.source, r.created_at,
		       (SELECT COUNT(DISTINCT sweep_id) FROM sweep_fields WHERE run_id = r.run_id)
		FROM runs r ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("fetching runs: %w", err)
	}
	defer rows.Close()

	var results []*types.Run
	for rows.Next() {
		var r types.Run
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Device, &r.Source, &createdAt, &r.Sweeps); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		results = append(results, &r)
	}
	if results == nil {
		results = []*types.Run{}
	}
	return results, rows.Err()
}

// SweepIDs returns the sweep ids of a run in first-appearance order.
// Returns ErrRunNotFound if the run does not exist.
func (s *Store) SweepIDs(runID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if err := s.checkRun(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT DISTINCT sweep_id, sweep_pos FROM sweep_fields WHERE run_id = ? ORDER BY sweep_pos",
		runID)
	if err != nil {
		return nil, fmt.Errorf("fetching sweep ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id, pos int
		if err := rows.Scan(&id, &pos); err != nil {
			return nil, fmt.Errorf("scanning sweep id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Channels reconstructs the per-channel metadata of one sweep, with field
// order matching the reconciler's output. Returns ErrSweepNotFound if the
// sweep is not part of the run.
func (s *Store) Channels(runID string, sweepID int) ([]*types.ChannelMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if err := s.checkRun(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT channel, field, kind, num, text
		FROM sweep_fields
		WHERE run_id = ? AND sweep_id = ?
		ORDER BY channel, ordinal`,
		runID, sweepID)
	if err != nil {
		return nil, fmt.Errorf("fetching sweep fields: %w", err)
	}
	defer rows.Close()

	var channels []*types.ChannelMeta
	for rows.Next() {
		var ch int
		var field, kind string
		var num sql.NullFloat64
		var text sql.NullString
		if err := rows.Scan(&ch, &field, &kind, &num, &text); err != nil {
			return nil, fmt.Errorf("scanning sweep field: %w", err)
		}
		for len(channels) <= ch {
			channels = append(channels, types.NewChannelMeta())
		}
		switch kind {
		case kindNumber:
			channels[ch].Set(field, types.Number(num.Float64))
		case kindText:
			channels[ch].Set(field, types.Text(text.String))
		default:
			channels[ch].Set(field, types.Absent())
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if channels == nil {
		return nil, types.ErrSweepNotFound
	}
	return channels, nil
}

// checkRun verifies a run exists. The caller must hold s.mu.
func (s *Store) checkRun(runID string) error {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM runs WHERE run_id = ?", runID).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrRunNotFound
	}
	if err != nil {
		return fmt.Errorf("checking run: %w", err)
	}
	return nil
}
