package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"codebird.dev/codebird/internal/errors"
)

// State is the serialized form of the whole repository: every branch with its
// commit sequence, the active branch, and the tracked-file registry.
type State struct {
	CurrentBranch string                   `json:"currentBranch"`
	Branches      map[string][]CommitState `json:"branches"`
	BranchOrder   []string                 `json:"branchOrder,omitempty"`
	TrackedFiles  []string                 `json:"trackedFiles,omitempty"`
}

// CommitState represents a commit for persistence
type CommitState struct {
	ID                string    `json:"id"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
	ChangeDescription string    `json:"changeDescription"`
	BranchName        string    `json:"branchName"`
}

// DefaultState returns the state of a freshly initialized repository
func DefaultState() *State {
	return DefaultStateFor(DefaultBranch)
}

// DefaultStateFor returns a fresh state whose only branch is defaultBranch
func DefaultStateFor(defaultBranch string) *State {
	if defaultBranch == "" {
		defaultBranch = DefaultBranch
	}
	return &State{
		CurrentBranch: defaultBranch,
		Branches:      map[string][]CommitState{defaultBranch: {}},
		BranchOrder:   []string{defaultBranch},
	}
}

// StateStore loads and saves repository state
type StateStore interface {
	Load() (*State, error)
	Save(state *State) error
}

// FileStateStore persists state as a JSON document on disk
type FileStateStore struct {
	path string
}

// NewFileStateStore creates a store writing to the given file path
func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

// Load reads the state document. A missing file is not an error: it yields
// the default state, so a freshly initialized repository needs no state file.
func (s *FileStateStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}

	return &state, nil
}

// Save writes the state document, creating the parent directory if needed
func (s *FileStateStore) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(s.path, data, 0600)
}

// MemoryStateStore keeps state in process memory. Used for tests and as the
// default when no file store is configured.
type MemoryStateStore struct {
	state *State
}

// NewMemoryStateStore creates an empty in-memory store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{}
}

// Load returns the last saved state, or the default state if none was saved
func (s *MemoryStateStore) Load() (*State, error) {
	if s.state == nil {
		return DefaultState(), nil
	}
	return s.state, nil
}

// Save retains the state in memory
func (s *MemoryStateStore) Save(state *State) error {
	s.state = state
	return nil
}

// snapshot converts the engine's live state into its serialized form.
// Caller must hold at least the read lock.
func (e *repoEngine) snapshot() *State {
	state := &State{
		CurrentBranch: e.store.CurrentBranch(),
		Branches:      make(map[string][]CommitState),
		BranchOrder:   e.store.BranchNames(),
		TrackedFiles:  e.files.List(),
	}

	for _, name := range state.BranchOrder {
		commits, _ := e.store.CommitsOf(name)
		serialized := make([]CommitState, 0, len(commits))
		for _, commit := range commits {
			serialized = append(serialized, CommitState{
				ID:                commit.ID,
				Message:           commit.Message,
				Timestamp:         commit.Timestamp,
				ChangeDescription: commit.ChangeDescription,
				BranchName:        commit.BranchName,
			})
		}
		state.Branches[name] = serialized
	}

	return state
}

// restore rebuilds the engine's live state from its serialized form
func (e *repoEngine) restore(state *State) error {
	if state == nil || len(state.Branches) == 0 {
		state = DefaultState()
	}

	if _, ok := state.Branches[state.CurrentBranch]; !ok {
		return fmt.Errorf("state names current branch %s: %w", state.CurrentBranch, errors.ErrBranchNotFound)
	}

	// Hand-edited state files may omit branches from the order or list
	// stale ones; reconcile against the branch map, appending any missing
	// names sorted so loading stays deterministic.
	order := make([]string, 0, len(state.Branches))
	seen := make(map[string]bool, len(state.Branches))
	for _, name := range state.BranchOrder {
		if _, ok := state.Branches[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	var missing []string
	for name := range state.Branches {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	order = append(order, missing...)

	store := &BranchStore{
		branches:      make(map[string][]Commit, len(state.Branches)),
		branchOrder:   order,
		currentBranch: state.CurrentBranch,
	}
	for name, serialized := range state.Branches {
		commits := make([]Commit, 0, len(serialized))
		for _, cs := range serialized {
			commits = append(commits, Commit{
				ID:                cs.ID,
				Message:           cs.Message,
				Timestamp:         cs.Timestamp,
				ChangeDescription: cs.ChangeDescription,
				BranchName:        cs.BranchName,
			})
		}
		store.branches[name] = commits
	}

	files := NewTrackedFiles()
	for _, name := range state.TrackedFiles {
		files.Add(name)
	}

	e.store = store
	e.files = files
	return nil
}
