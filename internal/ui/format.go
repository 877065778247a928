package ui

import (
	"fmt"
	"strings"

	"launchbox/internal/models"
)

// Line renders one menu row for the external finder. The leading index
// column maps the selection back to its record; the trailing column carries
// the source path for the preview binding. Neither is shown to the user.
func Line(index int, app *models.App) string {
	return strings.Join([]string{
		fmt.Sprintf("%d", index),
		app.Name,
		app.Description,
		CategoryStyle.Render(app.Category),
		app.Source,
	}, "\t")
}

// Lines renders the whole menu in order
func Lines(m *models.Menu) []string {
	lines := make([]string, len(m.Apps))
	for i := range m.Apps {
		lines[i] = Line(i, &m.Apps[i])
	}
	return lines
}
