package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"resume-analyzer/resume/engine"
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

// readDocument loads a resume document from path, or stdin when path is "-".
// A wrapping {"resume": {...}} object, as accepted by the API, is unwrapped.
func readDocument(path string, stdin io.Reader) (model.ResumeDocument, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("read resume: %w", err)
	}

	var wrapped struct {
		Resume *model.ResumeDocument `json:"resume"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("parse resume json: %w", err)
	}
	if wrapped.Resume != nil {
		return *wrapped.Resume, nil
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("parse resume json: %w", err)
	}
	return doc, nil
}

func buildEngine(taxonomyPath string) (*engine.Engine, error) {
	if strings.TrimSpace(taxonomyPath) == "" {
		return engine.New(), nil
	}
	tax, err := taxonomy.LoadFile(taxonomyPath)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.WithTaxonomy(tax)), nil
}

func writeJSON(w io.Writer, value any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}
