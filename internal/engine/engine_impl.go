package engine

import (
	"fmt"
	"strings"
	"sync"

	"codebird.dev/codebird/internal/errors"
)

const (
	commitMessagePrefix     = "Modified files: "
	changeDescriptionPrefix = "Modified "
)

// repoEngine is the StateStore-backed implementation of the Engine interface
type repoEngine struct {
	store *BranchStore
	files *TrackedFiles
	state StateStore
	mu    sync.RWMutex
}

// Options configures a new engine instance
type Options struct {
	// StateStore loads and persists repository state. Defaults to an
	// in-memory store when nil.
	StateStore StateStore
}

// NewEngine creates an engine, loading existing state from the store
func NewEngine(opts Options) (Engine, error) {
	stateStore := opts.StateStore
	if stateStore == nil {
		stateStore = NewMemoryStateStore()
	}

	state, err := stateStore.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load repository state: %w", err)
	}

	e := &repoEngine{state: stateStore}
	if err := e.restore(state); err != nil {
		return nil, fmt.Errorf("failed to restore repository state: %w", err)
	}

	return e, nil
}

// CurrentBranch returns the active branch name
func (e *repoEngine) CurrentBranch() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.CurrentBranch()
}

// AllBranchNames returns all branch names in creation order
func (e *repoEngine) AllBranchNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.BranchNames()
}

// CommitsOf returns the named branch's commits in chronological order
func (e *repoEngine) CommitsOf(branchName string) ([]Commit, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.CommitsOf(branchName)
}

// TrackedFiles returns all registered file names, sorted
func (e *repoEngine) TrackedFiles() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.files.List()
}

// IsFileTracked reports whether the file name is registered
func (e *repoEngine) IsFileTracked(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.files.Contains(name)
}

// CreateBranch creates a new empty branch without switching to it
func (e *repoEngine) CreateBranch(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.CreateBranch(name); err != nil {
		return err
	}
	return e.persist()
}

// SwitchBranch makes the named branch current
func (e *repoEngine) SwitchBranch(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.SwitchBranch(name); err != nil {
		return err
	}
	return e.persist()
}

// Commit records a change event for the given files on the current branch
func (e *repoEngine) Commit(modifiedFiles []string) (Commit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(modifiedFiles) == 0 {
		return Commit{}, errors.ErrNoFilesModified
	}

	message := commitMessagePrefix + strings.Join(modifiedFiles, " ")
	changes := changeDescriptionPrefix + strings.Join(modifiedFiles, ", ")

	commit := NewCommit(message, changes, e.store.CurrentBranch())
	if err := e.store.AppendCommit(e.store.CurrentBranch(), commit); err != nil {
		return Commit{}, err
	}

	if err := e.persist(); err != nil {
		return Commit{}, err
	}
	return commit, nil
}

// AddFile registers a file in the tracked-file registry. Idempotent.
func (e *repoEngine) AddFile(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.files.Add(name)
	return e.persist()
}

// Merge copies every commit of the named branch, in order, onto the end of
// the current branch. On conflict both branches are left untouched and a
// MergeConflictError listing the tracked-file registry is returned. The
// source branch keeps its own sequence either way.
func (e *repoEngine) Merge(branchName string) (MergeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.HasBranch(branchName) {
		return MergeResult{}, errors.NewBranchNotFoundError(branchName)
	}

	current := e.store.CurrentBranch()
	changesCurrent := e.changeSetOf(current)
	changesOther := e.changeSetOf(branchName)

	if HasConflict(changesCurrent, changesOther) {
		return MergeResult{}, errors.NewMergeConflictError(branchName, current, e.files.List())
	}

	incoming, err := e.store.CommitsOf(branchName)
	if err != nil {
		return MergeResult{}, err
	}
	for _, commit := range incoming {
		if err := e.store.AppendCommit(current, commit); err != nil {
			return MergeResult{}, err
		}
	}

	if err := e.persist(); err != nil {
		return MergeResult{}, err
	}

	return MergeResult{
		SourceBranch:    branchName,
		TargetBranch:    current,
		AppendedCommits: len(incoming),
	}, nil
}

// changeSetOf collects the change descriptions of a branch's commits in
// order. Caller must hold the lock and have verified the branch exists.
func (e *repoEngine) changeSetOf(branchName string) []string {
	commits, _ := e.store.CommitsOf(branchName)
	changes := make([]string, 0, len(commits))
	for _, commit := range commits {
		changes = append(changes, commit.ChangeDescription)
	}
	return changes
}

// persist saves the full repository state. Caller must hold the write lock.
func (e *repoEngine) persist() error {
	if err := e.state.Save(e.snapshot()); err != nil {
		return fmt.Errorf("failed to persist repository state: %w", err)
	}
	return nil
}
