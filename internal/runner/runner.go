// Package runner starts the selected application.
package runner

import (
	"fmt"
	"os/exec"

	"launchbox/internal/models"
)

// CommandLine builds the shell command for an app, wrapping Terminal=true
// entries in the configured terminal emulator prefix
func CommandLine(app *models.App, terminal string) string {
	if app.Terminal && terminal != "" {
		return terminal + " " + app.Exec
	}
	return app.Exec
}

// Launch starts the application detached and returns without waiting
func Launch(app *models.App, terminal string) error {
	cmd := exec.Command("sh", "-c", CommandLine(app, terminal))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", app.PlainName(), err)
	}
	return cmd.Process.Release()
}
