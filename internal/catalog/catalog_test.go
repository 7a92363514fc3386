package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDropsUnnamedColumns(t *testing.T) {
	path := writeCatalog(t,
		"Unnamed: 0,course_title,course_rating\n"+
			"0,Intro to Data Analytics,4.7\n"+
			"1,Python for Everybody,4.8\n")

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []string{"Intro to Data Analytics", "Python for Everybody"}, store.Titles())
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing course_title column",
			content: "id,name\n1,Algebra\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "header only",
			content: "course_title\n",
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: ErrEmptyCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFirstMatch(t *testing.T) {
	store := NewStore([]string{
		"Financial Markets",
		"Intro to Data Analytics",
		"Python for Everybody",
		"Applied Data Science with Python",
	})

	tests := []struct {
		name     string
		keywords []string
		want     string
		wantErr  error
	}{
		{
			name:     "data keywords hit first data title in file order",
			keywords: []string{"data", "analytics"},
			want:     "Intro to Data Analytics",
		},
		{
			name:     "match is case-insensitive",
			keywords: []string{"PYTHON"},
			want:     "Python for Everybody",
		},
		{
			name:     "no business titles",
			keywords: []string{"business", "management"},
			wantErr:  ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FirstMatch(tt.keywords)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountMatching(t *testing.T) {
	store := NewStore([]string{
		"Intro to Data Analytics",
		"Applied Data Science with Python",
		"Business Foundations",
		"Financial Markets",
	})

	assert.Equal(t, 2, store.CountMatching([]string{"data"}))
	assert.Equal(t, 1, store.CountMatching([]string{"business", "management"}))
	assert.Equal(t, 0, store.CountMatching([]string{"quantum"}))
}

func TestTitlesReturnsCopy(t *testing.T) {
	store := NewStore([]string{"Intro to Data Analytics"})

	titles := store.Titles()
	titles[0] = "mutated"

	assert.Equal(t, []string{"Intro to Data Analytics"}, store.Titles())
}
