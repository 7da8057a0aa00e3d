package commands

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"url-switcher/config"
	"url-switcher/html"
)

const root = "/project"

func init() {
	color.NoColor = true
}

func newEnv(t *testing.T, files map[string]string) (*Env, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	var stdout bytes.Buffer
	return &Env{
		Fs:     fs,
		Stdout: &stdout,
		Stderr: io.Discard,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: config.Default(root),
	}, &stdout
}

func readFile(t *testing.T, env *Env, name string) string {
	t.Helper()
	data, err := afero.ReadFile(env.Fs, filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func TestLocalhostCommand(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{
		"index.html":     `<a href="` + config.ProductionURL + `/x">`,
		"sub/game.html":  config.ProductionURL,
		"sub/plain.html": "<p/>",
	})

	require.NoError(t, LocalhostCommand(env, nil))

	expected := "Project root: /project\n\n" +
		"Switching URLs to localhost (http://localhost:8000)...\n" +
		"  [+] index.html\n" +
		"  [+] " + filepath.Join("sub", "game.html") + "\n" +
		"\n[OK] Successfully modified 2 file(s)\n" +
		"\nYou can now run a local server with:\n" +
		"  python -m http.server 8000\n" +
		"\nThen visit: http://localhost:8000/\n"
	assert.Equal(t, expected, stdout.String())
	assert.Equal(t, `<a href="http://localhost:8000/x">`, readFile(t, env, "index.html"))
}

func TestLocalhostCommandNothingToDo(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{"index.html": config.LocalhostURL})

	require.NoError(t, LocalhostCommand(env, nil))
	assert.Contains(t, stdout.String(), "No files needed updating (already using localhost URLs)")
	assert.NotContains(t, stdout.String(), "[OK]")
	assert.NotContains(t, stdout.String(), "http.server")
}

func TestProductionCommand(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{"index.html": config.LocalhostURL + "/x"})

	require.NoError(t, ProductionCommand(env, nil))
	out := stdout.String()
	assert.Contains(t, out, "Switching URLs to production (https://ryanking13.github.io/pyodide-pygame-demo)...")
	assert.Contains(t, out, "  [+] index.html\n")
	assert.Contains(t, out, "[OK] Successfully modified 1 file(s)")
	assert.NotContains(t, out, "http.server")
	assert.Equal(t, config.ProductionURL+"/x", readFile(t, env, "index.html"))
}

func TestSwitchCommandDryRun(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{"index.html": config.ProductionURL})

	require.NoError(t, LocalhostCommand(env, []string{"-dry-run"}))
	out := stdout.String()
	assert.Contains(t, out, "  [~] index.html\n")
	assert.Contains(t, out, "[OK] 1 file(s) would be modified")
	assert.NotContains(t, out, "http.server")
	assert.Equal(t, config.ProductionURL, readFile(t, env, "index.html"))
}

func TestSwitchCommandReportsFailures(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{"a.html": config.ProductionURL})
	require.NoError(t, afero.WriteFile(env.Fs, filepath.Join(root, "b.html"), []byte{0xff}, 0o644))

	require.NoError(t, LocalhostCommand(env, nil))
	out := stdout.String()
	assert.Contains(t, out, "  [+] a.html\n")
	assert.Contains(t, out, "[!] 1 file(s) could not be processed")
	assert.Contains(t, out, "Successfully modified 1 file(s)")
}

func TestSwitchCommandRootFlag(t *testing.T) {
	env, stdout := newEnv(t, nil)
	require.NoError(t, env.Fs.MkdirAll("/elsewhere", 0o755))
	require.NoError(t, afero.WriteFile(env.Fs, "/elsewhere/page.html", []byte(config.ProductionURL), 0o644))

	require.NoError(t, LocalhostCommand(env, []string{"-root", "/elsewhere"}))
	assert.Contains(t, stdout.String(), "Project root: /elsewhere")
	assert.Contains(t, stdout.String(), "  [+] page.html\n")
	assert.Equal(t, "/project", env.Config.Root)
}

func TestStatusCommand(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		expected []string
	}{
		{
			name:  "production",
			files: map[string]string{"index.html": config.ProductionURL},
			expected: []string{
				"Found 1 HTML files\n",
				"Files with production URLs: 1\n",
				"Files with localhost URLs: 0\n",
				"[OK] Currently configured for PRODUCTION",
			},
		},
		{
			name:  "localhost",
			files: map[string]string{"index.html": config.LocalhostURL, "b.html": "<p/>"},
			expected: []string{
				"Found 2 HTML files\n",
				"Files with localhost URLs: 1\n",
				"[OK] Currently configured for LOCALHOST",
			},
		},
		{
			name: "mixed",
			files: map[string]string{
				"a.html": config.LocalhostURL,
				"b.html": config.ProductionURL,
			},
			expected: []string{"[WARNING] Mixed configuration detected!"},
		},
		{
			name:     "neither",
			files:    map[string]string{"a.html": "<p/>"},
			expected: []string{"[WARNING] No files reference either URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, stdout := newEnv(t, tt.files)
			require.NoError(t, StatusCommand(env, nil))
			for _, want := range tt.expected {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestStatusCommandVerbose(t *testing.T) {
	env, stdout := newEnv(t, map[string]string{
		"index.html": `<script src="` + config.LocalhostURL + `/main.js"></script>`,
		"plain.html": "<p/>",
	})

	require.NoError(t, StatusCommand(env, []string{"-v"}))
	out := stdout.String()
	assert.Contains(t, out, "  index.html: production=0 localhost=1\n")
	assert.Contains(t, out, "      localhost in attributes: script[src]=1\n")
	assert.NotContains(t, out, "plain.html")
}

func TestFormatReferences(t *testing.T) {
	assert.Equal(t, "", formatReferences(nil))
	assert.Equal(t, "a[href]=2, img[src]=1", formatReferences([]html.Reference{
		{Tag: "a", Attr: "href", Count: 2},
		{Tag: "img", Attr: "src", Count: 1},
	}))
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	for _, cmd := range []string{"localhost", "production", "status"} {
		assert.Contains(t, buf.String(), cmd)
	}
}
