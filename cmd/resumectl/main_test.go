package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAnalyzeFromFile(t *testing.T) {
	path := writeFile(t, "resume.json", `{"contact":{"name":"Ada","email":"ada@example.com"}}`)

	out, err := run(t, "", "analyze", path)
	require.NoError(t, err)

	var report struct {
		Analysis map[string]any `json:"analysis"`
		Score    struct {
			ATS struct {
				Score int    `json:"score"`
				Level string `json:"level"`
			} `json:"ats_compatibility"`
		} `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 45, report.Score.ATS.Score)
	assert.Equal(t, "Fair", report.Score.ATS.Level)
	assert.Contains(t, report.Analysis, "keyword_density")
}

func TestAnalyzeFromStdinUnwrapsRequestBody(t *testing.T) {
	out, err := run(t, `{"resume":{"skills":["Python","SQL"]}}`, "analyze", "--score-only", "-")
	require.NoError(t, err)

	var score map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &score))
	assert.Contains(t, score, "total_score")
	assert.NotContains(t, score, "analysis")
}

func TestAnalyzeWithTaxonomyFile(t *testing.T) {
	tax := writeFile(t, "tax.yaml", "version: tiny\ncategories:\n  - name: ops\n    keywords: [terraform]\n")
	out, err := run(t, `{"skills":["terraform"]}`, "analyze", "--taxonomy", tax, "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"match_percentage":100`)
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := run(t, "", "analyze")
	assert.Error(t, err)

	_, err = run(t, "not json", "analyze", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse resume json")

	_, err = run(t, "", "analyze", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read resume")
}

func TestOptimize(t *testing.T) {
	in := `{"summary":"Engineer with experience building data platforms","skills":["Python","SQL"]}`

	out, err := run(t, in, "optimize", "-", "--style", "modern", "--top", "1")
	require.NoError(t, err)
	var opt map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &opt))
	assert.Equal(t, "modern", opt["format_style"])
	assert.Equal(t, "medium", opt["font_size"])
	assert.Len(t, opt["top_keywords"], 1)
	assert.Contains(t, opt["enhanced_summary"], "experience in ")

	out, err = run(t, in, "optimize", "-", "--no-keywords")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &opt))
	assert.Equal(t, false, opt["include_keywords"])
	assert.Equal(t, "Engineer with experience building data platforms", opt["enhanced_summary"])

	_, err = run(t, in, "optimize", "-", "--spacing", "cramped")
	assert.Error(t, err)
}

func TestTaxonomyCommand(t *testing.T) {
	out, err := run(t, "", "taxonomy")
	require.NoError(t, err)
	assert.Contains(t, out, `"builtin-2024.1"`)

	out, err = run(t, "", "taxonomy", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "version: builtin-2024.1")
	assert.Contains(t, out, "name: technical")

	bad := writeFile(t, "bad.yaml", "categories:\n  - name: a\n    keywords: [go]\n  - name: b\n    keywords: [go]\n")
	_, err = run(t, "", "taxonomy", "--taxonomy", bad)
	assert.Error(t, err)
}
