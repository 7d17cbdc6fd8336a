package actions

import (
	"codebird.dev/codebird/internal/runtime"
)

// AddOptions contains options for tracking a file
type AddOptions struct {
	FileName string
}

// AddAction registers a file in the tracked-file registry. Idempotent.
func AddAction(ctx *runtime.Context, opts AddOptions) error {
	alreadyTracked := ctx.Engine.IsFileTracked(opts.FileName)

	if err := ctx.Engine.AddFile(opts.FileName); err != nil {
		return err
	}

	if alreadyTracked {
		ctx.Splog.Info("File %s is already tracked.", opts.FileName)
	} else {
		ctx.Splog.Info("File added: %s", opts.FileName)
	}
	return nil
}
