// Package alias implements the on-disk alias store: a JSON file mapping an
// alias name to a set of dice expressions plus an optional comment.
//
// Only expressions that compile are stored. Set parses every candidate and
// rejects the whole alias on the first failure, so a loaded store never
// contains an expression the parser would refuse.
package alias

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/archer884/roll/internal/dice"
)

// StoreFileName is the default store file, kept in the user's home
// directory for compatibility with existing installations.
const StoreFileName = ".roll"

// Formula is one stored alias: an ordered list of expressions and an
// optional free-text comment.
type Formula struct {
	Comment     string   `json:"comment,omitempty"`
	Expressions []Stored `json:"expressions"`
}

// Stored pairs an expression's original text with its compiled form. The
// text is what the user typed and what gets echoed in output; the compiled
// expression is what gets evaluated.
type Stored struct {
	Text       string          `json:"text"`
	Expression dice.Expression `json:"expression"`
}

// Store holds the alias map for one store file. It is not safe for
// concurrent use; the CLI loads, mutates and saves within one invocation.
type Store struct {
	path     string
	formulas map[string]*Formula
}

// DefaultPath returns the store path for the given profile. An empty
// profile selects ~/.roll; a named profile selects ~/.roll.<profile> with
// the profile lowercased and stripped to letters.
func DefaultPath(profile string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	name := StoreFileName
	if profile != "" {
		clean := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
				return r
			}
			return -1
		}, profile)
		name = StoreFileName + "." + strings.ToLower(clean)
	}
	return filepath.Join(home, name), nil
}

// Load reads the store at path. A missing file yields an empty store; the
// file is created on the first Save.
func Load(path string) (*Store, error) {
	s := &Store{path: path, formulas: make(map[string]*Formula)}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from DefaultPath or an explicit flag
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.formulas); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the store back to its file as indented JSON.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.formulas, "", "  ")
	if err != nil {
		return fmt.Errorf("encode aliases: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Get returns the formula stored under name.
func (s *Store) Get(name string) (*Formula, bool) {
	f, ok := s.formulas[name]
	return f, ok
}

// Set compiles each expression and stores them under name, replacing any
// existing alias. If any expression fails to parse, nothing is stored and
// the parse error is returned.
func (s *Store) Set(name, comment string, expressions []string) error {
	stored := make([]Stored, 0, len(expressions))
	for _, text := range expressions {
		expr, err := dice.Parse(text)
		if err != nil {
			return err
		}
		stored = append(stored, Stored{Text: text, Expression: expr})
	}

	s.formulas[name] = &Formula{Comment: comment, Expressions: stored}
	return nil
}

// Remove deletes the alias and reports whether it existed.
func (s *Store) Remove(name string) bool {
	if _, ok := s.formulas[name]; !ok {
		return false
	}
	delete(s.formulas, name)
	return true
}

// Names returns all alias names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.formulas))
	for name := range s.formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of stored aliases.
func (s *Store) Len() int { return len(s.formulas) }
