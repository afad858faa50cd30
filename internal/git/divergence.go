package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Divergence classifies the relationship between a local branch and its
// remote-tracking counterpart
type Divergence int

const (
	// UpToDate means local and remote point at the same commit
	UpToDate Divergence = iota
	// NeedsPull means the local branch is strictly behind the remote
	NeedsPull
	// NeedsPush means the local branch is strictly ahead of the remote
	NeedsPush
	// Diverged means both sides advanced since their common ancestor
	Diverged
)

func (d Divergence) String() string {
	switch d {
	case UpToDate:
		return "up to date"
	case NeedsPull:
		return "behind remote"
	case NeedsPush:
		return "ahead of remote"
	case Diverged:
		return "diverged"
	}
	return "unknown"
}

// ClassifyDivergence compares the local branch, its remote-tracking ref, and
// their merge base. Fetch the remote branch before calling this so the
// remote-tracking ref is current.
func ClassifyDivergence(repoRoot, remote, branch string) (Divergence, error) {
	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return UpToDate, fmt.Errorf("failed to open repository: %w", err)
	}

	localHash, err := resolveRefHash(repo, "refs/heads/"+branch)
	if err != nil {
		return UpToDate, fmt.Errorf("failed to resolve local branch %s: %w", branch, err)
	}

	remoteHash, err := resolveRefHash(repo, "refs/remotes/"+remote+"/"+branch)
	if err != nil {
		return UpToDate, fmt.Errorf("failed to resolve remote branch %s/%s: %w", remote, branch, err)
	}

	if localHash == remoteHash {
		return UpToDate, nil
	}

	localCommit, err := repo.CommitObject(localHash)
	if err != nil {
		return UpToDate, fmt.Errorf("failed to get local commit: %w", err)
	}

	remoteCommit, err := repo.CommitObject(remoteHash)
	if err != nil {
		return UpToDate, fmt.Errorf("failed to get remote commit: %w", err)
	}

	mergeBases, err := localCommit.MergeBase(remoteCommit)
	if err != nil {
		return UpToDate, fmt.Errorf("failed to find merge base: %w", err)
	}

	// No common ancestor counts as diverged: histories are unrelated
	if len(mergeBases) == 0 {
		return Diverged, nil
	}

	base := mergeBases[0].Hash
	switch base {
	case localHash:
		return NeedsPull, nil
	case remoteHash:
		return NeedsPush, nil
	}
	return Diverged, nil
}

// resolveRefHash resolves a fully-qualified ref name to its commit hash
func resolveRefHash(repo *gogit.Repository, name string) (plumbing.Hash, error) {
	ref, err := repo.Reference(plumbing.ReferenceName(name), true)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}
