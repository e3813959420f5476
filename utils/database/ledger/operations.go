package ledger

import (
	"fmt"
	"time"

	"royal-court/model"
)

// createdAtLayout is a fixed-width ISO-8601 form so that the stored text
// sorts the same as the instant it encodes. Ties within one microsecond
// fall back to id ordering in the queries.
const createdAtLayout = "2006-01-02T15:04:05.000000Z07:00"

type sanctionRow struct {
	ID        int64  `db:"id"`
	SubjectID int64  `db:"subject_id"`
	ActorID   int64  `db:"actor_id"`
	Kind      string `db:"kind"`
	Reason    string `db:"reason"`
	CreatedAt string `db:"created_at"`
}

func (r sanctionRow) toRecord() (model.SanctionRecord, error) {
	createdAt, err := time.Parse(createdAtLayout, r.CreatedAt)
	if err != nil {
		return model.SanctionRecord{}, fmt.Errorf("failed to parse created_at for record %d: %w", r.ID, err)
	}
	return model.SanctionRecord{
		ID:        r.ID,
		SubjectID: r.SubjectID,
		ActorID:   r.ActorID,
		Kind:      model.SanctionKind(r.Kind),
		Reason:    r.Reason,
		CreatedAt: createdAt,
	}, nil
}

// Append inserts one sanction record and returns its store-assigned id.
func (s *Store) Append(rec model.SanctionRecord) (int64, error) {
	row := sanctionRow{
		SubjectID: rec.SubjectID,
		ActorID:   rec.ActorID,
		Kind:      string(rec.Kind),
		Reason:    rec.Reason,
		CreatedAt: rec.CreatedAt.UTC().Format(createdAtLayout),
	}
	query := `INSERT INTO punishments (subject_id, actor_id, kind, reason, created_at)
			  VALUES (:subject_id, :actor_id, :kind, :reason, :created_at)`

	result, err := s.db.NamedExec(query, row)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sanction record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// HistoryFor returns every sanction record for one subject, newest first.
// The result is unbounded; display truncation is the caller's concern.
func (s *Store) HistoryFor(subjectID int64) ([]model.SanctionRecord, error) {
	var rows []sanctionRow
	query := `SELECT * FROM punishments WHERE subject_id = ? ORDER BY created_at DESC, id DESC`
	if err := s.db.Select(&rows, query, subjectID); err != nil {
		return nil, fmt.Errorf("failed to get sanction records for subject %d: %w", subjectID, err)
	}
	return toRecords(rows)
}

// Recent returns the limit most recent records across all subjects, newest
// first. Callers validate the limit before it gets here.
func (s *Store) Recent(limit int) ([]model.SanctionRecord, error) {
	var rows []sanctionRow
	query := `SELECT * FROM punishments ORDER BY created_at DESC, id DESC LIMIT ?`
	if err := s.db.Select(&rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent sanction records: %w", err)
	}
	return toRecords(rows)
}

func toRecords(rows []sanctionRow) ([]model.SanctionRecord, error) {
	records := make([]model.SanctionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
