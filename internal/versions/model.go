// Package versions keeps the append-only history of analyzed resumes.
package versions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-analyzer/resume/model"
)

var (
	ErrNotFound    = errors.New("version not found")
	ErrDuplicateID = errors.New("version id already exists")
)

// Version is one immutable snapshot of a resume and its computed results.
type Version struct {
	ID         string               `json:"id"`
	Timestamp  time.Time            `json:"timestamp"`
	ParsedData model.ResumeDocument `json:"parsed_data"`
	Analysis   model.AnalysisResult `json:"analysis"`
	Score      model.Score          `json:"score"`
}

// Summary is the list view of a Version.
type Summary struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	TotalScore int       `json:"total_score"`
	Grade      string    `json:"grade"`
}

// Summary returns the list view of v.
func (v Version) Summary() Summary {
	return Summary{
		ID:         v.ID,
		Timestamp:  v.Timestamp,
		TotalScore: v.Score.TotalScore,
		Grade:      v.Score.Grade,
	}
}

// Store persists versions. Records are never updated in place; Append assigns
// the id and ordering position atomically.
type Store interface {
	Append(ctx context.Context, parsed model.ResumeDocument, analysis model.AnalysisResult, score model.Score) (Version, error)
	// List returns versions newest first. A limit of 0 or less means no limit.
	List(ctx context.Context, limit, offset int) ([]Version, error)
	Get(ctx context.Context, id string) (Version, error)
}

func encode(v Version) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode version %s: %w", v.ID, err)
	}
	return payload, nil
}

func decode(payload []byte) (Version, error) {
	var v Version
	if err := json.Unmarshal(payload, &v); err != nil {
		return Version{}, fmt.Errorf("decode version: %w", err)
	}
	return v, nil
}

func window(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return offset, end
}
