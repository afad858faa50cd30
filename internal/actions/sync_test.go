package actions_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/config"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/prompt"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/testhelpers"
)

// setGlobalIdentity points GIT_CONFIG_GLOBAL at a throwaway config so runs in
// fresh directories find an identity regardless of the host machine.
func setGlobalIdentity(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitconfig")
	content := "[user]\n\tname = Test User\n\temail = test@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("GIT_CONFIG_GLOBAL", path)
}

func testConfig(remoteURL string) *config.Config {
	return &config.Config{
		Remote:  config.RemoteConfig{Name: "origin", URL: remoteURL},
		Branch:  "main",
		Project: config.ProjectConfig{Markers: config.DefaultMarkers},
		Ignore:  config.IgnoreConfig{Write: true},
		Browser: config.BrowserConfig{Open: false},
	}
}

func TestActionFreshDirectory(t *testing.T) {
	setGlobalIdentity(t)

	scene := testhelpers.NewEmptyScene(t, func(s *testhelpers.Scene) error {
		return os.WriteFile(filepath.Join(s.Dir, "README.md"), []byte("# widgets\n"), 0600)
	})

	bare := filepath.Join(t.TempDir(), "remote.git")
	require.NoError(t, testhelpers.InitBareRepo(bare))

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"first sync"},
		Confirms: []bool{true},
	}
	run := runtime.NewContext(scene.Dir, testConfig(bare), prompter)

	err := actions.Action(context.Background(), run, actions.Options{})
	require.NoError(t, err)

	// The directory became a repository with the ignore file materialized
	require.DirExists(t, filepath.Join(scene.Dir, ".git"))
	require.FileExists(t, filepath.Join(scene.Dir, ".gitignore"))

	// The commit landed on the remote
	remoteRepo := &testhelpers.GitRepo{Dir: bare}
	remoteSHA, err := remoteRepo.GetRevision("main")
	require.NoError(t, err)

	localSHA, err := scene.Repo.GetRevision("main")
	require.NoError(t, err)
	require.Equal(t, localSHA, remoteSHA)

	messages, err := scene.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, []string{"first sync"}, messages)
}

func TestActionSecondRunIsIdempotent(t *testing.T) {
	setGlobalIdentity(t)

	scene := testhelpers.NewEmptyScene(t, func(s *testhelpers.Scene) error {
		return os.WriteFile(filepath.Join(s.Dir, "README.md"), []byte("# widgets\n"), 0600)
	})

	bare := filepath.Join(t.TempDir(), "remote.git")
	require.NoError(t, testhelpers.InitBareRepo(bare))
	cfg := testConfig(bare)

	first := &prompt.ScriptedPrompter{Inputs: []string{"first sync"}, Confirms: []bool{true}}
	err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, first), actions.Options{})
	require.NoError(t, err)

	sha, err := scene.Repo.GetRevision("main")
	require.NoError(t, err)

	// Nothing changed, so the second run stops cleanly before any prompt
	second := &prompt.ScriptedPrompter{}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, second), actions.Options{})
	require.NoError(t, err)
	require.Empty(t, second.Asked)

	after, err := scene.Repo.GetRevision("main")
	require.NoError(t, err)
	require.Equal(t, sha, after)
}

func TestActionNeverTouchesExistingIdentity(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	prompter := &prompt.ScriptedPrompter{Inputs: []string{"sync"}, Confirms: []bool{true}}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
	require.NoError(t, err)

	name, err := scene.Repo.RunGitCommandAndGetOutput("config", "user.name")
	require.NoError(t, err)
	require.Equal(t, "Test User", name)

	for _, asked := range prompter.Asked {
		require.NotContains(t, asked, "user.name")
		require.NotContains(t, asked, "user.email")
	}
}

func TestActionRejectedDirectoryCheck(t *testing.T) {
	scene := testhelpers.NewEmptyScene(t, nil)

	cfg := testConfig("")
	cfg.Project.Markers = []string{"go.mod"}

	prompter := &prompt.ScriptedPrompter{Confirms: []bool{false}}
	err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, prompter), actions.Options{})
	require.ErrorIs(t, err, shipiterrors.ErrDirectoryRejected)

	// Nothing was initialized
	require.NoDirExists(t, filepath.Join(scene.Dir, ".git"))
}

func TestActionRemoteMismatch(t *testing.T) {
	t.Run("declining keeps the remote and stops cleanly", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		existing, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		cfg := testConfig("https://github.com/octo/elsewhere.git")
		prompter := &prompt.ScriptedPrompter{Confirms: []bool{false}}

		err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, prompter), actions.Options{})
		require.NoError(t, err)

		url, err := scene.Repo.RunGitCommandAndGetOutput("remote", "get-url", "origin")
		require.NoError(t, err)
		require.Equal(t, existing, url)

		// The run ended at the remote check, no commit was made
		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"initial"}, messages)
	})

	t.Run("confirming rewrites the remote and pushes there", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		other := filepath.Join(t.TempDir(), "other.git")
		require.NoError(t, testhelpers.InitBareRepo(other))

		cfg := testConfig(other)
		prompter := &prompt.ScriptedPrompter{
			Confirms: []bool{true, true},
			Inputs:   []string{"moved remote"},
		}

		err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, prompter), actions.Options{})
		require.NoError(t, err)

		url, err := scene.Repo.RunGitCommandAndGetOutput("remote", "get-url", "origin")
		require.NoError(t, err)
		require.Equal(t, other, url)

		remoteRepo := &testhelpers.GitRepo{Dir: other}
		_, err = remoteRepo.GetRevision("main")
		require.NoError(t, err)
	})
}

func TestActionCleanTreeStopsBeforePush(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	cfg := testConfig("")
	cfg.Ignore.Write = false

	prompter := &prompt.ScriptedPrompter{}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, prompter), actions.Options{})
	require.NoError(t, err)
	require.Empty(t, prompter.Asked)
}

func TestActionDeclinedPush(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateChange("pending", "p"))

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"local only"},
		Confirms: []bool{false},
	}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
	require.NoError(t, err)

	// The commit exists locally but never reached the remote
	messages, err := scene.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, "local only", messages[0])

	exists, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin", "refs/heads/main")
	require.NoError(t, err)
	require.Empty(t, exists)
}

func TestActionDiverged(t *testing.T) {
	setupDiverged := func(t *testing.T) (*testhelpers.Scene, string) {
		t.Helper()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		bare, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("shared base", "base"))
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		// Rewind and commit a different history locally
		require.NoError(t, scene.Repo.RunGitCommand("reset", "--hard", "HEAD~1"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("local fork", "fork"))
		return scene, bare
	}

	t.Run("aborting leaves the remote untouched and fails the run", func(t *testing.T) {
		scene, bare := setupDiverged(t)

		remoteRepo := &testhelpers.GitRepo{Dir: bare}
		before, err := remoteRepo.GetRevision("main")
		require.NoError(t, err)

		prompter := &prompt.ScriptedPrompter{
			Inputs:  []string{"diverged attempt"},
			Selects: []int{0},
		}
		err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
		require.ErrorIs(t, err, shipiterrors.ErrDivergenceUnresolved)

		after, err := remoteRepo.GetRevision("main")
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("declining the overwrite confirmation also aborts", func(t *testing.T) {
		scene, _ := setupDiverged(t)

		prompter := &prompt.ScriptedPrompter{
			Inputs:   []string{"diverged attempt"},
			Selects:  []int{1},
			Confirms: []bool{false},
		}
		err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
		require.ErrorIs(t, err, shipiterrors.ErrDivergenceUnresolved)
	})

	t.Run("double confirmation force-pushes the local history", func(t *testing.T) {
		scene, bare := setupDiverged(t)

		prompter := &prompt.ScriptedPrompter{
			Inputs:   []string{"forced"},
			Selects:  []int{1},
			Confirms: []bool{true, true},
		}
		err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
		require.NoError(t, err)

		remoteRepo := &testhelpers.GitRepo{Dir: bare}
		remoteSHA, err := remoteRepo.GetRevision("main")
		require.NoError(t, err)

		localSHA, err := scene.Repo.GetRevision("main")
		require.NoError(t, err)
		require.Equal(t, localSHA, remoteSHA)

		// The overwrite question was asked separately from the push question
		var overwriteAsked bool
		for _, asked := range prompter.Asked {
			if strings.Contains(asked, "overwrite") {
				overwriteAsked = true
			}
		}
		require.True(t, overwriteAsked)
	})
}

func TestActionPushFailure(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	// A remote that points nowhere
	require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", filepath.Join(scene.Dir, "missing.git")))
	require.NoError(t, scene.Repo.CreateChange("pending", "p"))

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"doomed"},
		Confirms: []bool{true},
	}
	err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{})
	require.ErrorIs(t, err, shipiterrors.ErrPushFailed)

	// The commit survives locally
	messages, err := scene.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, "doomed", messages[0])
}

func TestActionBranchOverride(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateChange("pending", "p"))

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"renamed"},
		Confirms: []bool{true},
	}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{
		Branch: "trunk",
	})
	require.NoError(t, err)

	// The current branch was renamed so the commit traveled with it
	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "trunk", branch)

	exists, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin", "refs/heads/trunk")
	require.NoError(t, err)
	require.NotEmpty(t, exists)
}

func TestActionPresetMessageSkipsPrompt(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateChange("pending", "p"))

	prompter := &prompt.ScriptedPrompter{Confirms: []bool{true}}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig(""), prompter), actions.Options{
		Message: "from the flag",
	})
	require.NoError(t, err)

	messages, err := scene.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, "from the flag", messages[0])

	for _, asked := range prompter.Asked {
		require.NotContains(t, asked, "Commit message")
	}
}

func TestActionDryRun(t *testing.T) {
	setGlobalIdentity(t)

	scene := testhelpers.NewEmptyScene(t, func(s *testhelpers.Scene) error {
		return os.WriteFile(filepath.Join(s.Dir, "README.md"), []byte("# widgets\n"), 0600)
	})

	prompter := &prompt.ScriptedPrompter{}
	err := actions.Action(context.Background(), runtime.NewContext(scene.Dir, testConfig("https://github.com/octo/widgets.git"), prompter), actions.Options{
		DryRun: true,
	})
	require.NoError(t, err)

	require.NoDirExists(t, filepath.Join(scene.Dir, ".git"))
	require.NoFileExists(t, filepath.Join(scene.Dir, ".gitignore"))
	require.Empty(t, prompter.Asked)
}

func TestDoctor(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	run := runtime.NewContext(scene.Dir, testConfig(""), &prompt.ScriptedPrompter{})
	require.NoError(t, actions.Doctor(context.Background(), run))
}

func TestActionFromSubdirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	sub := filepath.Join(scene.Dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "README.md"), []byte("# nested\n"), 0600))

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"nested change"},
		Confirms: []bool{true},
	}
	err = actions.Action(context.Background(), runtime.NewContext(sub, testConfig(""), prompter), actions.Options{})
	require.NoError(t, err)

	// No nested repository appeared and the subdirectory is still part of
	// the parent repository
	require.NoDirExists(t, filepath.Join(sub, ".git"))
	require.True(t, git.IsRepository(sub))

	// The parent repository holds the commit and the log file
	messages, err := scene.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, "nested change", messages[0])
	require.FileExists(t, filepath.Join(scene.Dir, ".git", "shipit.log"))

	// A second run from the subdirectory stays idempotent
	second := &prompt.ScriptedPrompter{}
	err = actions.Action(context.Background(), runtime.NewContext(sub, testConfig(""), second), actions.Options{})
	require.NoError(t, err)
	require.Empty(t, second.Asked)
	require.NoDirExists(t, filepath.Join(sub, ".git"))
}

func TestActionIgnoreFileFullyReplaced(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	stale := filepath.Join(scene.Dir, ".gitignore")
	require.NoError(t, os.WriteFile(stale, []byte("stale-entry/\n"), 0600))

	cfg := testConfig("")
	cfg.Ignore.Patterns = []string{"dist/", "*.log"}

	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"replace ignore"},
		Confirms: []bool{true},
	}
	err = actions.Action(context.Background(), runtime.NewContext(scene.Dir, cfg, prompter), actions.Options{})
	require.NoError(t, err)

	content, err := os.ReadFile(stale)
	require.NoError(t, err)
	require.Equal(t, "dist/\n*.log\n", string(content))
}
