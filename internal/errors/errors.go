// Package errors provides sentinel errors and custom error types for the codebird application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrBranchAlreadyExists indicates that a branch with the same name already exists
	ErrBranchAlreadyExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrNoFilesModified indicates that a commit was attempted with no modified files
	ErrNoFilesModified = errors.New("no files modified")

	// ErrMergeConflict indicates that a merge detected overlapping change sets
	ErrMergeConflict = errors.New("merge conflict")

	// ErrAlreadyInitialized indicates that a repository marker already exists
	ErrAlreadyInitialized = errors.New("repository already initialized")

	// ErrNotInitialized indicates that no repository marker was found
	ErrNotInitialized = errors.New("repository not initialized")
)

// BranchAlreadyExistsError represents an error when creating a branch whose name is taken
type BranchAlreadyExistsError struct {
	BranchName string
}

func (e *BranchAlreadyExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchAlreadyExists
func (e *BranchAlreadyExistsError) Is(target error) bool {
	return target == ErrBranchAlreadyExists
}

// NewBranchAlreadyExistsError creates a new BranchAlreadyExistsError
func NewBranchAlreadyExistsError(branchName string) *BranchAlreadyExistsError {
	return &BranchAlreadyExistsError{BranchName: branchName}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// MergeConflictError represents an error when a merge detects overlapping change sets.
// It carries the two branches involved and the tracked-file list reported for
// manual resolution. The file list is the whole registry, not a computed
// conflict set.
type MergeConflictError struct {
	SourceBranch string // branch being merged in
	TargetBranch string // branch being merged into
	TrackedFiles []string
}

func (e *MergeConflictError) Error() string {
	msg := fmt.Sprintf("merge conflict between %s and %s", e.TargetBranch, e.SourceBranch)
	if len(e.TrackedFiles) > 0 {
		msg += fmt.Sprintf("; resolve manually in: %s", strings.Join(e.TrackedFiles, ", "))
	}
	return msg
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(sourceBranch, targetBranch string, trackedFiles []string) *MergeConflictError {
	return &MergeConflictError{
		SourceBranch: sourceBranch,
		TargetBranch: targetBranch,
		TrackedFiles: trackedFiles,
	}
}
