// Package state persists macforge's per-project record under
// gen/macos/.macforge/ so later commands can find the generated project
// without re-deriving everything.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Project is the persisted record for a scaffolded project.
type Project struct {
	Name        string    `json:"name"`
	TargetName  string    `json:"target_name"`
	BundleID    string    `json:"bundle_id"`
	GenDir      string    `json:"gen_dir"`
	Xcodeproj   string    `json:"xcodeproj,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Store reads and writes the project record as a local JSON file.
type Store struct {
	mu  sync.Mutex
	dir string // .macforge/ directory
}

// NewStore creates a store rooted at genDir/.macforge.
func NewStore(genDir string) *Store {
	return &Store{dir: filepath.Join(genDir, ".macforge")}
}

func (s *Store) filePath() string {
	return filepath.Join(s.dir, "project.json")
}

// Load reads the project record. A missing file returns (nil, nil).
func (s *Store) Load() (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read project state: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project state: %w", err)
	}
	return &p, nil
}

// Save writes the project record, creating the state directory if needed.
func (s *Store) Save(p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project state: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project state: %w", err)
	}
	return nil
}
