package engine

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Commit is an immutable record of one change event on one branch.
// BranchName is fixed at creation; merges copy commits into another branch
// without rewriting it.
type Commit struct {
	ID                string
	Message           string
	Timestamp         time.Time
	ChangeDescription string
	BranchName        string
}

// NewCommit constructs a commit bound to the given branch, capturing the
// current time. Construction always succeeds; the caller is responsible for
// passing non-empty message and change description.
func NewCommit(message, changeDescription, branchName string) Commit {
	now := time.Now()
	return Commit{
		ID:                commitID(now, message),
		Message:           message,
		Timestamp:         now,
		ChangeDescription: changeDescription,
		BranchName:        branchName,
	}
}

// commitID derives a deterministic identifier from (timestamp, message).
// FNV-64a is intentionally not collision-resistant: two commits created
// within the same nanosecond with the same message share an id.
func commitID(ts time.Time, message string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(ts.Format(time.RFC3339Nano)))
	_, _ = h.Write([]byte(message))
	return fmt.Sprintf("%016x", h.Sum64())
}
