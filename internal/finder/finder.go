// Package finder drives the external fuzzy-finder process.
package finder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"launchbox/internal/models"
	"launchbox/internal/ui"
)

// Finder invokes an fzf-compatible binary over the rendered menu
type Finder struct {
	command string
	self    string // this binary, re-invoked for preview rendering
}

// New creates a Finder for the given binary
func New(command, self string) *Finder {
	return &Finder{command: command, self: self}
}

// Available reports whether the finder binary is on PATH
func (f *Finder) Available() bool {
	_, err := exec.LookPath(f.command)
	return err == nil
}

// Args builds the finder argument list. The hidden first column carries the
// menu index, the hidden last column the descriptor path for the preview.
func (f *Finder) Args() []string {
	return []string{
		"--ansi",
		"--prompt", "launch ▶ ",
		"--delimiter", "\t",
		"--with-nth", "2,3,4",
		"--tabstop", "4",
		"--preview", f.self + " preview {5}",
		"--preview-window", "right:50%",
	}
}

// Pick runs the finder over the menu and returns the selected record.
// A nil record with a nil error means the user cancelled.
func (f *Finder) Pick(m *models.Menu) (*models.App, error) {
	cmd := exec.Command(f.command, f.Args()...)
	cmd.Stdin = strings.NewReader(strings.Join(ui.Lines(m), "\n"))
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		// 1: no match, 130: interrupted. Both are a cancel, not a failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && (exitErr.ExitCode() == 1 || exitErr.ExitCode() == 130) {
			return nil, nil
		}
		return nil, fmt.Errorf("run %s: %w", f.command, err)
	}

	return Selection(m, string(out))
}

// Selection maps a finder output line back to its menu record
func Selection(m *models.Menu, out string) (*models.App, error) {
	line := strings.TrimRight(out, "\n")
	if line == "" {
		return nil, nil
	}

	indexField, _, _ := strings.Cut(line, "\t")
	index, err := strconv.Atoi(indexField)
	if err != nil || index < 0 || index >= len(m.Apps) {
		return nil, fmt.Errorf("unexpected finder selection %q", line)
	}
	return &m.Apps[index], nil
}
