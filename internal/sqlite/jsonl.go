// JSONL export for the sweep store, using atomic temp-file, fsync, rename
// writes so a partial export never replaces a previous one.
// Implements: prd002-sqlite-store R4 (export).
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// exportRecord is one JSONL line: a single channel of a single sweep.
type exportRecord struct {
	RunID   string             `json:"run_id"`
	SweepID int                `json:"sweep_id"`
	Channel int                `json:"channel"`
	Fields  *types.ChannelMeta `json:"fields"`
}

// ExportRun writes every sweep channel of a run to a JSONL file, one record
// per line, in sweep first-appearance order.
func (s *Store) ExportRun(runID, path string) error {
	ids, err := s.SweepIDs(runID)
	if err != nil {
		return err
	}

	var records []json.RawMessage
	for _, sweepID := range ids {
		channels, err := s.Channels(runID, sweepID)
		if err != nil {
			return err
		}
		for ch, meta := range channels {
			rec, err := json.Marshal(exportRecord{
				RunID:   runID,
				SweepID: sweepID,
				Channel: ch,
				Fields:  meta,
			})
			if err != nil {
				return fmt.Errorf("marshaling sweep %d channel %d: %w", sweepID, ch, err)
			}
			records = append(records, rec)
		}
	}
	return writeJSONL(path, records)
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
