// Package taxonomy holds the categorized keyword reference table used for
// extraction, density and gap analysis. A Taxonomy is immutable once built.
package taxonomy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"resume-analyzer/resume/text"
)

var (
	ErrEmpty             = errors.New("taxonomy has no keywords")
	ErrDuplicateKeyword  = errors.New("duplicate taxonomy keyword")
	ErrDuplicateCategory = errors.New("duplicate taxonomy category")
	ErrKeywordTooLong    = errors.New("taxonomy keyword longer than 3 words")
	ErrBlankCategory     = errors.New("taxonomy category name is blank")
)

// Spec is the serializable form of a taxonomy, used for overrides and output.
type Spec struct {
	Version    string         `json:"version" yaml:"version"`
	Categories []CategorySpec `json:"categories" yaml:"categories" validate:"required,min=1,dive"`
}

// CategorySpec lists the keywords of one category in display order.
type CategorySpec struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Keywords []string `json:"keywords" yaml:"keywords" validate:"required,min=1,dive,required"`
}

// Taxonomy is an ordered, validated category→keyword table.
type Taxonomy struct {
	version    string
	categories []category
	index      map[string]string
}

type category struct {
	name     string
	keywords []string
}

var validate = validator.New()

// New validates spec and builds a Taxonomy. Keywords are normalized to their
// lowercase token form and must be 1-3 tokens long and unique across categories.
func New(spec Spec) (*Taxonomy, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	version := strings.TrimSpace(spec.Version)
	if version == "" {
		version = "custom"
	}

	t := &Taxonomy{
		version:    version,
		categories: make([]category, 0, len(spec.Categories)),
		index:      make(map[string]string),
	}
	seenCategory := make(map[string]bool, len(spec.Categories))
	for _, c := range spec.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrBlankCategory, c.Name)
		}
		if seenCategory[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
		}
		seenCategory[name] = true

		cat := category{name: name, keywords: make([]string, 0, len(c.Keywords))}
		for _, raw := range c.Keywords {
			tokens := text.Tokenize(raw)
			if len(tokens) == 0 {
				return nil, fmt.Errorf("invalid taxonomy: keyword %q in %q has no words", raw, name)
			}
			if len(tokens) > text.MaxNGram {
				return nil, fmt.Errorf("%w: %q", ErrKeywordTooLong, raw)
			}
			kw := strings.Join(tokens, " ")
			if owner, ok := t.index[kw]; ok {
				return nil, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateKeyword, kw, owner, name)
			}
			t.index[kw] = name
			cat.keywords = append(cat.keywords, kw)
		}
		t.categories = append(t.categories, cat)
	}
	if len(t.index) == 0 {
		return nil, ErrEmpty
	}
	return t, nil
}

// ParseYAML builds a Taxonomy from a YAML document shaped like Spec.
func ParseYAML(data []byte) (*Taxonomy, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse taxonomy yaml: %w", err)
	}
	return New(spec)
}

// LoadFile reads a YAML taxonomy from path.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return ParseYAML(data)
}

// Version identifies the keyword table.
func (t *Taxonomy) Version() string {
	return t.version
}

// Categories returns category names in declared order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, c.name)
	}
	return out
}

// Keywords returns a copy of the keywords of a category in declared order.
func (t *Taxonomy) Keywords(categoryName string) []string {
	for _, c := range t.categories {
		if c.name == categoryName {
			return append([]string(nil), c.keywords...)
		}
	}
	return nil
}

// CategoryOf returns the category owning a normalized keyword phrase.
func (t *Taxonomy) CategoryOf(phrase string) (string, bool) {
	name, ok := t.index[phrase]
	return name, ok
}

// Contains reports whether the phrase is a taxonomy keyword.
func (t *Taxonomy) Contains(phrase string) bool {
	_, ok := t.index[text.Normalize(phrase)]
	return ok
}

// Size is the number of distinct keywords across all categories.
func (t *Taxonomy) Size() int {
	return len(t.index)
}

// Spec returns the normalized serializable form.
func (t *Taxonomy) Spec() Spec {
	spec := Spec{Version: t.version, Categories: make([]CategorySpec, 0, len(t.categories))}
	for _, c := range t.categories {
		spec.Categories = append(spec.Categories, CategorySpec{
			Name:     c.name,
			Keywords: append([]string(nil), c.keywords...),
		})
	}
	return spec
}
