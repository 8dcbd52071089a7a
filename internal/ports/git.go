package ports

import (
	"context"
)

// GitInfo holds git repository context information.
type GitInfo struct {
	Branch     string
	Commit     string
	Repository string
}

// ShortCommit returns the first seven characters of the commit hash.
func (g *GitInfo) ShortCommit() string {
	if len(g.Commit) > 7 {
		return g.Commit[:7]
	}
	return g.Commit
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans workingDir and its parents for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}
