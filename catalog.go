package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogStore holds the question catalogs loaded at startup. It is never
// mutated afterwards, so concurrent reads need no locking.
type CatalogStore struct {
	catalogs map[CatalogID][]Question
	byID     map[CatalogID]map[string]*Question
}

// LoadCatalogStore reads every catalog file under dataDir. Any missing,
// unparsable or invalid catalog is a startup failure.
func LoadCatalogStore(dataDir string) (*CatalogStore, error) {
	s := &CatalogStore{
		catalogs: make(map[CatalogID][]Question, len(catalogFiles)),
		byID:     make(map[CatalogID]map[string]*Question, len(catalogFiles)),
	}
	for id, filename := range catalogFiles {
		qs, err := loadCatalogFile(filepath.Join(dataDir, filename))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", id, err)
		}
		index := make(map[string]*Question, len(qs))
		for i := range qs {
			index[qs[i].ID] = &qs[i]
		}
		s.catalogs[id] = qs
		s.byID[id] = index
	}
	return s, nil
}

func loadCatalogFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("json parse: %w", err)
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	// Basic validation: unique question IDs, each question answerable
	seen := map[string]bool{}
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question ID: %s", q.ID)
		}
		seen[q.ID] = true

		if len(q.Answers) == 0 {
			return nil, fmt.Errorf("question %s has no answers", q.ID)
		}
		hasCorrect := false
		for _, a := range q.Answers {
			if a.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			return nil, fmt.Errorf("question %s has no correct answer", q.ID)
		}
	}
	return qs, nil
}

// Questions returns the canonical question list for a catalog. The caller
// must not modify the returned slice.
func (s *CatalogStore) Questions(id CatalogID) []Question {
	return s.catalogs[id]
}

// Question looks up a single question by ID within a catalog.
func (s *CatalogStore) Question(id CatalogID, questionID string) (*Question, bool) {
	q, ok := s.byID[id][questionID]
	return q, ok
}

// TotalCount returns the number of questions in a catalog.
func (s *CatalogStore) TotalCount(id CatalogID) int {
	return len(s.catalogs[id])
}
