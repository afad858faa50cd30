package testhelpers

import (
	"os"
	"testing"
)

// Scene is a temporary directory with a git repository checked out and the
// process working directory pointed at it. Cleanup restores the previous
// working directory and removes the temp tree.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for seeding a scene before the test runs.
type SceneSetup func(*Scene) error

// NewScene creates a scene backed by an initialized repository.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup, true)
}

// NewEmptyScene creates a scene whose directory is not yet a repository.
func NewEmptyScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup, false)
}

func newScene(t *testing.T, setup SceneSetup, initRepo bool) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shipit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	var repo *GitRepo
	if initRepo {
		repo, err = NewGitRepo(tmpDir)
	} else {
		repo, err = NewBareDir(tmpDir)
	}
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to prepare scene repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Prompts must never reach for the terminal during tests.
	t.Setenv("SHIPIT_NO_INTERACTIVE", "1")

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// BasicSceneSetup seeds the scene with a single committed change and a
// project marker so the directory check passes without prompting.
func BasicSceneSetup(scene *Scene) error {
	if err := os.WriteFile(scene.Dir+"/README.md", []byte("# test project\n"), 0600); err != nil {
		return err
	}
	return scene.Repo.CreateChangeAndCommit("initial", "a")
}
