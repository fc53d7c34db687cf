package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagesearch/copy-assets/internal/app"
	"github.com/sagesearch/copy-assets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	attachment1 = "d0d64a44-b202-43a2-ab48-046599552efd.png"
	attachment2 = "1f31b1d4-20ab-4560-91b6-06efd4704580.png"
	attachment3 = "b4306869-a24c-4b1d-92fc-bc0eeff3acc6.png"
)

// executeRoot runs the root command with args and returns stdout and stderr.
func executeRoot(t *testing.T, workDir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(workDir, "test-version")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeAttachment(t *testing.T, root, name string, content []byte) {
	t.Helper()
	dir := filepath.Join(root, domain.DefaultSourceDir)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o600))
}

func TestRootCommand_OnlyFirstAttachmentPresent(t *testing.T) {
	root := t.TempDir()
	content := []byte("\x89PNG\r\n\x1a\nfirst")
	writeAttachment(t, root, attachment1, content)

	stdout, stderr, err := executeRoot(t, root, "--root", root, "--no-color")
	require.NoError(t, err)
	// Nothing follows the summary at the default log level.
	assert.Empty(t, stderr)

	expected := "Copying image assets...\n" +
		"✅ Copied: .prompt_attachments/" + attachment1 + " → assets/images/settings_profile_1.png\n" +
		"❌ Source file not found: .prompt_attachments/" + attachment2 + "\n" +
		"❌ Source file not found: .prompt_attachments/" + attachment3 + "\n" +
		"\n" +
		"Assets copied successfully!\n" +
		"Files should now be available at:\n" +
		"- assets/images/settings_profile_1.png\n" +
		"- assets/images/settings_profile_2.png\n" +
		"- assets/images/settings_profile_3.png\n"
	assert.Equal(t, expected, stdout)

	got, err := os.ReadFile(filepath.Join(root, "assets", "images", "settings_profile_1.png"))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	for _, name := range []string{"settings_profile_2.png", "settings_profile_3.png"} {
		_, err := os.Stat(filepath.Join(root, "assets", "images", name))
		assert.ErrorIs(t, err, os.ErrNotExist, name)
	}
}

func TestRootCommand_AllAttachmentsPresentTwice(t *testing.T) {
	root := t.TempDir()
	writeAttachment(t, root, attachment1, []byte("one"))
	writeAttachment(t, root, attachment2, []byte("two"))
	writeAttachment(t, root, attachment3, []byte("three"))

	for range 2 {
		stdout, _, err := executeRoot(t, root, "--root", root)
		require.NoError(t, err)
		assert.NotContains(t, stdout, "not found")
		assert.Contains(t, stdout, "settings_profile_3.png")
	}

	for name, want := range map[string]string{
		"settings_profile_1.png": "one",
		"settings_profile_2.png": "two",
		"settings_profile_3.png": "three",
	} {
		got, err := os.ReadFile(filepath.Join(root, "assets", "images", name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestRootCommand_NoAttachments_CreatesRoot(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeRoot(t, root, "--root", root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "assets", "images"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, stdout, "- assets/images/settings_profile_1.png")
	assert.Contains(t, stdout, "- assets/images/settings_profile_2.png")
	assert.Contains(t, stdout, "- assets/images/settings_profile_3.png")
}

func TestRootCommand_DestinationSetupFails(t *testing.T) {
	root := t.TempDir()
	// A regular file where the assets directory should be
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets"), []byte("x"), 0o600))

	stdout, _, err := executeRoot(t, root, "--root", root)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDestinationSetup)
	assert.Empty(t, stdout)
}

func TestRootCommand_DryRun(t *testing.T) {
	root := t.TempDir()
	writeAttachment(t, root, attachment1, []byte("one"))

	stdout, _, err := executeRoot(t, root, "--root", root, "--dry-run", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stdout, "(dry run: nothing is written to disk)")
	assert.Contains(t, stdout, "✅ Copied: .prompt_attachments/"+attachment1)
	_, err = os.Stat(filepath.Join(root, "assets"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand_Manifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "logo.png"), []byte("logo"), 0o600))
	manifestYAML := "dest_root: public\nentries:\n  - source: logo.png\n    destination: public/brand/logo.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets.yaml"), []byte(manifestYAML), 0o600))

	stdout, _, err := executeRoot(t, root, "--root", root, "--manifest", "assets.yaml", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✅ Copied: logo.png → public/brand/logo.png")
	assert.Contains(t, stdout, "- public/brand/logo.png\n")
	got, err := os.ReadFile(filepath.Join(root, "public", "brand", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "logo", string(got))
}

func TestRootCommand_InvalidManifest(t *testing.T) {
	root := t.TempDir()
	bad := "[[entries]]\nsource = \"a.png\"\ndestination = \"elsewhere/a.png\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.toml"), []byte(bad), 0o600))

	stdout, _, err := executeRoot(t, root, "--root", root, "--manifest", "bad.toml")

	assert.ErrorIs(t, err, domain.ErrInvalidManifest)
	assert.Empty(t, stdout)
	_, statErr := os.Stat(filepath.Join(root, "assets"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRootCommand_DebugLogsToStderr(t *testing.T) {
	root := t.TempDir()

	stdout, stderr, err := executeRoot(t, root, "--root", root, "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, "source missing")
	assert.Contains(t, stderr, "copy finished")
	assert.NotContains(t, stdout, "source missing")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeRoot(t, root, "--root", root, "--log-level", "chatty")
	assert.ErrorIs(t, err, domain.ErrInvalidLogLevel)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, _, err := executeRoot(t, t.TempDir(), "extra")
	assert.Error(t, err)
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
}

func TestRootCommand_ContainerError(t *testing.T) {
	// Save original function and restore after test
	originalFunc := newContainerFunc
	defer func() {
		newContainerFunc = originalFunc
	}()

	var gotOpts app.Options
	newContainerFunc = func(opts app.Options) (*app.Container, error) {
		gotOpts = opts
		return nil, assert.AnError
	}

	_, _, err := executeRoot(t, "/work", "--root", "site", "--manifest", "m.toml", "--dry-run", "--log-level", "warn")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "/work", gotOpts.WorkDir)
	assert.Equal(t, "site", gotOpts.Root)
	assert.Equal(t, "m.toml", gotOpts.ManifestPath)
	assert.Equal(t, "warn", gotOpts.LogLevel)
	assert.True(t, gotOpts.DryRun)
}
