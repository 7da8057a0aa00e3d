package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"url-switcher/config"
	"url-switcher/switcher"
	"url-switcher/utils"
)

// Env carries everything a command touches, so commands can run against an
// in-memory filesystem and captured output.
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config config.Config
}

// NewEnv returns the environment for a real invocation: the OS filesystem and
// the project root derived from the executable's location.
func NewEnv(stdout, stderr io.Writer) (*Env, error) {
	root, err := utils.ProjectRoot()
	if err != nil {
		return nil, err
	}
	return &Env{
		Fs:     afero.NewOsFs(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
		Config: config.Default(root),
	}, nil
}

func (e *Env) newSwitcher(root string) (*switcher.Switcher, error) {
	return switcher.New(e.Fs, e.Config.WithRoot(root), e.Logger)
}
