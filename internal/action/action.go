// Package action runs the conditional badge update: build the content, render
// it for the target filename, then write it to the gist unless the stored
// content already matches.
package action

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/UnitVectorY-Labs/badgegist/internal/badge"
	"github.com/UnitVectorY-Labs/badgegist/internal/config"
	"github.com/UnitVectorY-Labs/badgegist/internal/gist"
	"github.com/UnitVectorY-Labs/badgegist/internal/render"
)

// Result reports what a run did.
type Result struct {
	// Updated is true when the gist file was written, false when the write
	// was skipped because the content was unchanged.
	Updated bool
	// Content is the rendered badge as it exists in the gist after the run.
	Content string
}

// Run executes one update. Read failures are recovered: a gist that does not
// answer, or does not contain the file yet, simply means there is nothing to
// compare against and the write goes ahead. A failed write is the one fatal
// outcome.
func Run(ctx context.Context, cfg *config.Config, store gist.Store) (*Result, error) {
	content, err := badge.Build(cfg)
	if err != nil {
		return nil, err
	}
	rendered, err := render.ForFilename(content, cfg.Filename)
	if err != nil {
		return nil, err
	}
	res := &Result{Content: rendered}

	if cfg.Force() {
		logrus.Infof("forceUpdate is set, writing %s without comparing", cfg.Filename)
	} else {
		logrus.Infof("fetching current content of %s from gist %s", cfg.Filename, cfg.GistID)
		previous, exists, err := store.FileContent(ctx, cfg.GistID, cfg.Filename)
		switch {
		case err != nil:
			logrus.Warnf("could not read previous content, assuming the file does not exist yet: %v", err)
		case !exists:
			logrus.Infof("%s does not exist in the gist yet", cfg.Filename)
		case previous == rendered:
			logrus.Infof("content of %s is unchanged, skipping update", cfg.Filename)
			return res, nil
		default:
			logrus.Infof("content of %s changed, updating", cfg.Filename)
		}
	}

	if err := store.WriteFile(ctx, cfg.GistID, cfg.Filename, rendered); err != nil {
		return nil, fmt.Errorf("failed to update gist %s: %w", cfg.GistID, err)
	}
	res.Updated = true
	logrus.Infof("updated %s in gist %s", cfg.Filename, cfg.GistID)
	return res, nil
}

// WriteOutputs appends the step outputs to the file GitHub Actions names via
// GITHUB_OUTPUT. An empty path means the step is not running under Actions
// and there is nowhere to report to.
func WriteOutputs(path string, res *Result) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open step output file: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "updated=%t\n", res.Updated); err != nil {
		return fmt.Errorf("failed to write step outputs: %w", err)
	}
	return nil
}
