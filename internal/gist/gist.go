// Package gist reads and writes a single file inside an existing GitHub gist.
package gist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const userAgent = "badgegist"

// requestTimeout bounds each API call. The upstream contract has no timeout;
// this is a local hardening choice so a hung connection cannot stall a CI job
// indefinitely.
const requestTimeout = 30 * time.Second

// Store is the remote file store the update decision runs against. The GitHub
// implementation below is the only production one; tests substitute a fake.
type Store interface {
	// FileContent returns the current content of the named file and whether
	// the file exists in the gist at all.
	FileContent(ctx context.Context, gistID, filename string) (string, bool, error)
	// WriteFile creates or replaces the named file with the given content.
	WriteFile(ctx context.Context, gistID, filename, content string) error
}

// GitHub is the Store implementation backed by the GitHub gist API.
type GitHub struct {
	client *github.Client
}

// NewGitHub builds a store authenticated with the given token.
func NewGitHub(ctx context.Context, token string) *GitHub {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = requestTimeout
	client := github.NewClient(tc)
	client.UserAgent = userAgent
	return &GitHub{client: client}
}

// FileContent fetches the gist and looks up the named file. Callers decide
// how to treat errors; the update flow recovers from them by assuming the
// file does not exist yet.
func (g *GitHub) FileContent(ctx context.Context, gistID, filename string) (string, bool, error) {
	gist, resp, err := g.client.Gists.Get(ctx, gistID)
	if err != nil {
		if resp != nil {
			return "", false, fmt.Errorf("gist read returned status %d: %w", resp.StatusCode, err)
		}
		return "", false, fmt.Errorf("gist read failed: %w", err)
	}
	file, ok := gist.Files[github.GistFilename(filename)]
	if !ok {
		return "", false, nil
	}
	return file.GetContent(), true, nil
}

// WriteFile creates or replaces the named file. Editing a gist with a files
// map touches only the listed files; everything else in the gist is left
// untouched.
func (g *GitHub) WriteFile(ctx context.Context, gistID, filename, content string) error {
	payload := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(filename): {Content: github.String(content)},
		},
	}
	_, resp, err := g.client.Gists.Edit(ctx, gistID, payload)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("gist write returned status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("gist write failed: %w", err)
	}
	return nil
}
