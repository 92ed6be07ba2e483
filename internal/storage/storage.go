// Package storage persists the group list as a single JSON array file.
// Every operation is a full read-modify-write cycle; nothing is cached
// between calls, so the file is the only source of truth.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

var (
	ErrRead  = errors.New("cannot read group store")
	ErrParse = errors.New("cannot parse group store")
	ErrIndex = errors.New("group index out of range")
)

// Group is one persisted grading entry. Identity is positional: a group
// is identified by its index in the stored array, not by a stable key.
type Group struct {
	Name       string   `json:"name"`
	Assignment int      `json:"assignment"`
	Feedback   []string `json:"feedback"`
	Footnote   string   `json:"footnote"`
}

type Store struct {
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the whole store file. Unknown fields, trailing
// content, or a missing feedback array are parse failures; the file is
// either fully well formed or rejected.
func (s *Store) Load() ([]Group, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var groups []Group
	if err := dec.Decode(&groups); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	// A json "null" decodes without error but leaves the slice nil; only
	// an actual array is well formed.
	if groups == nil {
		return nil, fmt.Errorf("%w: store is not a JSON array", ErrParse)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after group array", ErrParse)
	}
	for i, g := range groups {
		if g.Feedback == nil {
			return nil, fmt.Errorf("%w: group %d has no feedback field", ErrParse, i)
		}
	}
	return groups, nil
}

// Append loads the store, adds one group at the end and saves. It
// returns the new sequence. Existing records are never touched.
func (s *Store) Append(g Group) ([]Group, error) {
	groups, err := s.Load()
	if err != nil {
		return nil, err
	}
	groups = append(groups, g)
	if err := s.save(groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// RemoveAt deletes the group at index. A store holding exactly one
// group is left unchanged: the list never shrinks below one through
// this operation, and the returned flag tells the caller whether a
// record was actually removed. A stale index against the freshly
// loaded sequence reports ErrIndex.
func (s *Store) RemoveAt(index int) ([]Group, bool, error) {
	groups, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	if len(groups) == 1 {
		return groups, false, nil
	}
	if index < 0 || index >= len(groups) {
		return nil, false, fmt.Errorf("%w: %d of %d", ErrIndex, index, len(groups))
	}
	groups = append(groups[:index], groups[index+1:]...)
	if err := s.save(groups); err != nil {
		return nil, false, err
	}
	return groups, true, nil
}

// UpdateAt replaces the group at index and saves.
func (s *Store) UpdateAt(index int, g Group) ([]Group, error) {
	groups, err := s.Load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(groups) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndex, index, len(groups))
	}
	groups[index] = g
	if err := s.save(groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// save writes the whole array to a sibling temp file and renames it
// over the store path, so a crash mid-write cannot truncate the store.
func (s *Store) save(groups []Group) error {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

const graderFootnote = "This assignment was graded by: Tom Koning. E-mail: tom.koning@ru.nl."

// RandomGroup synthesizes a seed record: a name from the small fixed
// label space "Group 0".."Group 9", an assignment id in the same range,
// a single placeholder feedback line and the fixed grader footnote.
func RandomGroup(rng *rand.Rand) Group {
	return Group{
		Name:       fmt.Sprintf("Group %d", rng.Intn(10)),
		Assignment: rng.Intn(10),
		Feedback:   []string{"feedback"},
		Footnote:   graderFootnote,
	}
}
