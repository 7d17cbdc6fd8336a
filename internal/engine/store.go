package engine

import (
	"sort"

	"codebird.dev/codebird/internal/errors"
)

// DefaultBranch is the branch every new repository starts on.
const DefaultBranch = "main"

// BranchStore maps branch names to their ordered commit sequences and tracks
// which branch is active. It always contains at least one branch, and
// currentBranch is always a present key.
type BranchStore struct {
	branches      map[string][]Commit
	branchOrder   []string // creation order, for stable listings
	currentBranch string
}

// NewBranchStore creates a store containing only the default branch.
func NewBranchStore(defaultBranch string) *BranchStore {
	if defaultBranch == "" {
		defaultBranch = DefaultBranch
	}
	return &BranchStore{
		branches:      map[string][]Commit{defaultBranch: {}},
		branchOrder:   []string{defaultBranch},
		currentBranch: defaultBranch,
	}
}

// CreateBranch inserts a new empty branch. The current branch is unchanged.
func (s *BranchStore) CreateBranch(name string) error {
	if _, ok := s.branches[name]; ok {
		return errors.NewBranchAlreadyExistsError(name)
	}
	s.branches[name] = []Commit{}
	s.branchOrder = append(s.branchOrder, name)
	return nil
}

// SwitchBranch makes name the current branch. Commit sequences are untouched.
func (s *BranchStore) SwitchBranch(name string) error {
	if _, ok := s.branches[name]; !ok {
		return errors.NewBranchNotFoundError(name)
	}
	s.currentBranch = name
	return nil
}

// AppendCommit appends commit to the end of the named branch's sequence.
func (s *BranchStore) AppendCommit(branchName string, commit Commit) error {
	if _, ok := s.branches[branchName]; !ok {
		return errors.NewBranchNotFoundError(branchName)
	}
	s.branches[branchName] = append(s.branches[branchName], commit)
	return nil
}

// CommitsOf returns a copy of the named branch's commit sequence in
// chronological order.
func (s *BranchStore) CommitsOf(branchName string) ([]Commit, error) {
	commits, ok := s.branches[branchName]
	if !ok {
		return nil, errors.NewBranchNotFoundError(branchName)
	}
	out := make([]Commit, len(commits))
	copy(out, commits)
	return out, nil
}

// HasBranch reports whether the named branch exists.
func (s *BranchStore) HasBranch(name string) bool {
	_, ok := s.branches[name]
	return ok
}

// CurrentBranch returns the active branch name.
func (s *BranchStore) CurrentBranch() string {
	return s.currentBranch
}

// BranchNames returns all branch names in creation order.
func (s *BranchStore) BranchNames() []string {
	out := make([]string, len(s.branchOrder))
	copy(out, s.branchOrder)
	return out
}

// TrackedFiles is a grow-only registry of file names the repository is aware
// of. It has no relation to filesystem content.
type TrackedFiles struct {
	files map[string]struct{}
}

// NewTrackedFiles creates an empty registry.
func NewTrackedFiles() *TrackedFiles {
	return &TrackedFiles{files: make(map[string]struct{})}
}

// Add registers a file name. Idempotent.
func (t *TrackedFiles) Add(name string) {
	t.files[name] = struct{}{}
}

// Contains reports whether the file name is registered.
func (t *TrackedFiles) Contains(name string) bool {
	_, ok := t.files[name]
	return ok
}

// List returns all registered file names, sorted for stable output.
func (t *TrackedFiles) List() []string {
	out := make([]string, 0, len(t.files))
	for name := range t.files {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
