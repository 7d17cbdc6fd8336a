// Package engine provides the core repository state management interface and
// implementation. It tracks named branches, each an ordered sequence of
// commits, the registry of tracked files, and the merge decision procedure.
package engine

// RepositoryReader provides read-only access to repository state
// Thread-safe: All methods are safe for concurrent use
type RepositoryReader interface {
	CurrentBranch() string
	AllBranchNames() []string
	CommitsOf(branchName string) ([]Commit, error)
	TrackedFiles() []string
	IsFileTracked(name string) bool
}

// RepositoryWriter provides write operations for repository state.
// Every successful mutation is persisted through the engine's StateStore
// before the call returns; failed operations never write.
// Thread-safe: All methods are safe for concurrent use
type RepositoryWriter interface {
	CreateBranch(name string) error
	SwitchBranch(name string) error
	Commit(modifiedFiles []string) (Commit, error)
	AddFile(name string) error
	Merge(branchName string) (MergeResult, error)
}

// Engine is the core interface for repository state management.
// It composes RepositoryReader and RepositoryWriter.
// Thread-safe: All methods are safe for concurrent use
type Engine interface {
	RepositoryReader
	RepositoryWriter
}

// MergeResult describes a completed merge
type MergeResult struct {
	SourceBranch    string // branch whose commits were copied
	TargetBranch    string // branch that received them
	AppendedCommits int
}
