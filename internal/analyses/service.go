package analyses

import (
	"context"
	"fmt"
	"sort"
	"time"

	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/versions"
	"resume-analyzer/resume/engine"
	"resume-analyzer/resume/export"
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

// Service runs analyses and records every result as a new version.
type Service struct {
	Engine    *engine.Engine
	Store     versions.Store
	StoreName string
}

// NewService constructs a Service; a nil engine uses the built-in taxonomy.
func NewService(eng *engine.Engine, store versions.Store, storeName string) *Service {
	if eng == nil {
		eng = engine.New()
	}
	return &Service{Engine: eng, Store: store, StoreName: storeName}
}

// Analyze scores doc, optionally against a caller taxonomy, and appends the
// outcome to the version history.
func (s *Service) Analyze(ctx context.Context, doc model.ResumeDocument, override *taxonomy.Spec) (versions.Version, error) {
	if s.Store == nil {
		return versions.Version{}, ErrStoreRequired
	}
	metrics.IncAnalysisStarted()
	start := time.Now()

	var tax *taxonomy.Taxonomy
	if override != nil {
		built, err := taxonomy.New(*override)
		if err != nil {
			metrics.IncAnalysisFailed()
			return versions.Version{}, fmt.Errorf("%w: %v", ErrInvalidTaxonomy, err)
		}
		tax = built
	} else {
		tax = s.Engine.Taxonomy()
	}

	report := s.Engine.AnalyzeWith(doc, tax)
	v, err := s.Store.Append(ctx, doc, report.Analysis, report.Score)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.store_failed", map[string]any{
			"store": s.StoreName,
			"error": err.Error(),
		})
		return versions.Version{}, fmt.Errorf("append version: %w", err)
	}

	duration := metrics.SinceMillis(start)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(duration)
	metrics.ObserveTotalScore(report.Score.TotalScore)
	metrics.IncVersionAppended(s.StoreName)
	telemetry.Info("analysis.complete", map[string]any{
		"version_id":       v.ID,
		"total_score":      report.Score.TotalScore,
		"grade":            report.Score.Grade,
		"ats_level":        report.Score.ATSCompatibility.Level,
		"critical_issues":  len(report.Score.CriticalIssues),
		"taxonomy_version": tax.Version(),
		"duration_ms":      duration,
	})
	return v, nil
}

// List returns version summaries newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]versions.Summary, error) {
	if s.Store == nil {
		return nil, ErrStoreRequired
	}
	list, err := s.Store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]versions.Summary, 0, len(list))
	for _, v := range list {
		out = append(out, v.Summary())
	}
	return out, nil
}

// Get returns one version.
func (s *Service) Get(ctx context.Context, id string) (versions.Version, error) {
	if s.Store == nil {
		return versions.Version{}, ErrStoreRequired
	}
	return s.Store.Get(ctx, id)
}

// Optimizations derives the export payload for a stored version.
func (s *Service) Optimizations(ctx context.Context, id string, opts export.PresentationOptions) (export.Optimizations, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return export.Optimizations{}, err
	}
	categories := categoryOrder(v.Analysis.MissingKeywords, s.Engine.Taxonomy().Categories())
	return export.BuildOptimizations(v.ParsedData, v.Analysis, categories, opts)
}

// Taxonomy returns the active default taxonomy.
func (s *Service) Taxonomy() taxonomy.Spec {
	return s.Engine.Taxonomy().Spec()
}

// categoryOrder lists the categories present in missing, known ones first in
// taxonomy order and any others (from an override taxonomy) sorted by name.
func categoryOrder(missing map[string][]string, known []string) []string {
	out := make([]string, 0, len(missing))
	seen := make(map[string]bool, len(known))
	for _, name := range known {
		seen[name] = true
		if _, ok := missing[name]; ok {
			out = append(out, name)
		}
	}
	extra := make([]string, 0)
	for name := range missing {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
