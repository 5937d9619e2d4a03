package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	assert.Equal(t, DefaultVersion, tax.Version())
	assert.Equal(t, []string{CategoryTechnical, CategorySoftSkills, CategoryBusiness}, tax.Categories())
	assert.Equal(t, 41, tax.Size())

	cat, ok := tax.CategoryOf("machine learning")
	require.True(t, ok)
	assert.Equal(t, CategoryTechnical, cat)
	assert.True(t, tax.Contains("Node.JS"))
	assert.False(t, tax.Contains("cobol"))
}

func TestKeywordsReturnsCopy(t *testing.T) {
	tax := Default()
	kws := tax.Keywords(CategoryTechnical)
	kws[0] = "mutated"

	assert.Equal(t, "python", tax.Keywords(CategoryTechnical)[0])
	assert.Nil(t, tax.Keywords("unknown"))
}

func TestNewNormalizesKeywords(t *testing.T) {
	tax, err := New(Spec{Categories: []CategorySpec{
		{Name: "cloud", Keywords: []string{"  Google   Cloud ", "GCP"}},
	}})
	require.NoError(t, err)

	assert.Equal(t, "custom", tax.Version())
	assert.Equal(t, []string{"google cloud", "gcp"}, tax.Keywords("cloud"))
}

func TestNewRejectsInvalidSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want error
	}{
		{
			name: "duplicate keyword across categories",
			spec: Spec{Categories: []CategorySpec{
				{Name: "a", Keywords: []string{"go"}},
				{Name: "b", Keywords: []string{"Go"}},
			}},
			want: ErrDuplicateKeyword,
		},
		{
			name: "duplicate category",
			spec: Spec{Categories: []CategorySpec{
				{Name: "a", Keywords: []string{"go"}},
				{Name: "a", Keywords: []string{"rust"}},
			}},
			want: ErrDuplicateCategory,
		},
		{
			name: "keyword too long",
			spec: Spec{Categories: []CategorySpec{
				{Name: "a", Keywords: []string{"one two three four"}},
			}},
			want: ErrKeywordTooLong,
		},
		{
			name: "whitespace category name",
			spec: Spec{Categories: []CategorySpec{
				{Name: "   ", Keywords: []string{"go"}},
			}},
			want: ErrBlankCategory,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewRejectsMissingFields(t *testing.T) {
	_, err := New(Spec{})
	assert.Error(t, err)

	_, err = New(Spec{Categories: []CategorySpec{{Name: "", Keywords: []string{"go"}}}})
	assert.Error(t, err)

	_, err = New(Spec{Categories: []CategorySpec{{Name: "a", Keywords: []string{"!!!"}}}})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `version: team-2024
categories:
  - name: backend
    keywords: [go, postgres, grpc]
  - name: people
    keywords:
      - mentoring
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	tax, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "team-2024", tax.Version())
	assert.Equal(t, []string{"backend", "people"}, tax.Categories())
	assert.Equal(t, 4, tax.Size())

	spec := tax.Spec()
	assert.Equal(t, []string{"go", "postgres", "grpc"}, spec.Categories[0].Keywords)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
