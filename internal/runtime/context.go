// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"os"

	"codebird.dev/codebird/internal/config"
	"codebird.dev/codebird/internal/engine"
	"codebird.dev/codebird/internal/output"
)

// Context provides access to engine and output for commands
type Context struct {
	Engine   engine.Engine
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a context around an existing engine, with console-only
// logging. Used by tests and by init before a repo root exists.
func NewContext(eng engine.Engine) *Context {
	return &Context{
		Engine: eng,
		Splog:  output.NewSplog(),
	}
}

// GetContext locates the repository, loads its persisted state and returns a
// ready context. Fails with ErrNotInitialized when no marker directory is
// found in the working directory or any parent.
func GetContext() (*Context, error) {
	repoRoot, err := config.FindRepoRoot()
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithConfig(os.Stdout, config.LogPath(repoRoot))
	if err != nil {
		splog = output.NewSplog()
	}

	eng, err := engine.NewEngine(engine.Options{
		StateStore: engine.NewFileStateStore(config.StatePath(repoRoot)),
	})
	if err != nil {
		return nil, err
	}

	return &Context{
		Engine:   eng,
		Splog:    splog,
		RepoRoot: repoRoot,
	}, nil
}
