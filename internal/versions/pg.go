package versions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/resume/model"
)

// PGStore implements Store on the resume_versions table.
type PGStore struct {
	DB    *sql.DB
	Now   func() time.Time
	NewID func() string
}

// NewPGStore constructs a PGStore over an open pool.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{
		DB:    db,
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

// Append inserts a version. The bigserial seq column fixes its position.
func (s *PGStore) Append(ctx context.Context, parsed model.ResumeDocument, analysis model.AnalysisResult, score model.Score) (Version, error) {
	const query = `
INSERT INTO resume_versions (id, created_at, parsed_data, analysis, score, total_score, grade)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	v := Version{
		ID:         s.NewID(),
		Timestamp:  s.Now().Truncate(time.Microsecond),
		ParsedData: parsed,
		Analysis:   analysis,
		Score:      score,
	}
	parsedJSON, err := marshalJSONB(v.ParsedData)
	if err != nil {
		return Version{}, err
	}
	analysisJSON, err := marshalJSONB(v.Analysis)
	if err != nil {
		return Version{}, err
	}
	scoreJSON, err := marshalJSONB(v.Score)
	if err != nil {
		return Version{}, err
	}
	if _, err := s.DB.ExecContext(ctx, query,
		v.ID,
		v.Timestamp,
		parsedJSON,
		analysisJSON,
		scoreJSON,
		v.Score.TotalScore,
		v.Score.Grade,
	); err != nil {
		return Version{}, fmt.Errorf("insert version: %w", err)
	}
	return v, nil
}

// List returns versions newest first.
func (s *PGStore) List(ctx context.Context, limit, offset int) ([]Version, error) {
	const query = `
SELECT id, created_at, parsed_data, analysis, score
FROM resume_versions
ORDER BY seq DESC
LIMIT $1 OFFSET $2`

	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	rows, err := s.DB.QueryContext(ctx, query, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	out := make([]Version, 0)
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return out, nil
}

// Get returns a version by id.
func (s *PGStore) Get(ctx context.Context, id string) (Version, error) {
	const query = `
SELECT id, created_at, parsed_data, analysis, score
FROM resume_versions
WHERE id = $1`

	v, err := scanVersion(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Version{}, ErrNotFound
	}
	return v, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (Version, error) {
	var v Version
	var parsed, analysis, score []byte
	if err := row.Scan(&v.ID, &v.Timestamp, &parsed, &analysis, &score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Version{}, err
		}
		return Version{}, fmt.Errorf("scan version: %w", err)
	}
	v.Timestamp = v.Timestamp.UTC()
	if err := unmarshalJSONB(parsed, &v.ParsedData); err != nil {
		return Version{}, err
	}
	if err := unmarshalJSONB(analysis, &v.Analysis); err != nil {
		return Version{}, err
	}
	if err := unmarshalJSONB(score, &v.Score); err != nil {
		return Version{}, err
	}
	return v, nil
}
