package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/advisorlabs/course-advisor/pkg/logger"
)

var (
	ErrNoMatch       = errors.New("no catalog entry matches the given keywords")
	ErrMissingColumn = errors.New("catalog is missing the course_title column")
	ErrEmptyCatalog  = errors.New("catalog contains no entries")
)

// index columns written by spreadsheet exports, e.g. "Unnamed: 0"
const unnamedColumnHint = "unnamed"

// Store holds the course catalog loaded once at startup. It is read-only
// after Load, so concurrent readers need no locking.
type Store struct {
	titles []string
}

// Load reads the catalog CSV from path. The file must carry a course_title
// column; columns with an "Unnamed" index-style header are dropped.
// Duplicate titles are kept as-is.
func Load(path string) (*Store, error) {
	log := logger.WithComponent("catalog")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	header := records[0]
	titleCol := -1
	dropped := 0
	for i, name := range header {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(name)), unnamedColumnHint) {
			dropped++
			continue
		}
		if strings.TrimSpace(name) == "course_title" {
			titleCol = i
		}
	}
	if titleCol == -1 {
		return nil, ErrMissingColumn
	}

	titles := make([]string, 0, len(records)-1)
	for _, row := range records[1:] {
		if titleCol >= len(row) {
			continue
		}
		title := strings.TrimSpace(row[titleCol])
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	if len(titles) == 0 {
		return nil, ErrEmptyCatalog
	}

	log.Debug().
		Str("path", path).
		Int("courses", len(titles)).
		Int("dropped_columns", dropped).
		Msg("Catalog loaded")

	return &Store{titles: titles}, nil
}

// NewStore builds a store from an in-memory title list.
func NewStore(titles []string) *Store {
	copied := make([]string, len(titles))
	copy(copied, titles)
	return &Store{titles: copied}
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	return len(s.titles)
}

// Titles returns a copy of all course titles in file order.
func (s *Store) Titles() []string {
	copied := make([]string, len(s.titles))
	copy(copied, s.titles)
	return copied
}

// FirstMatch returns the first title, in file order, containing any of the
// given keywords as a case-insensitive substring. Returns ErrNoMatch when
// nothing in the catalog matches.
func (s *Store) FirstMatch(keywords []string) (string, error) {
	for _, title := range s.titles {
		if matches(title, keywords) {
			return title, nil
		}
	}
	return "", ErrNoMatch
}

// CountMatching returns how many titles contain any of the given keywords.
func (s *Store) CountMatching(keywords []string) int {
	count := 0
	for _, title := range s.titles {
		if matches(title, keywords) {
			count++
		}
	}
	return count
}

func matches(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
