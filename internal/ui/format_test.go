package ui

import (
	"strings"
	"testing"

	"launchbox/internal/models"
)

func TestLineColumns(t *testing.T) {
	app := models.App{
		Name:        "• Firefox",
		Exec:        "firefox",
		Description: "Browse the web",
		Category:    "Network │ WebBrowser",
		Source:      "/usr/share/applications/firefox.desktop",
	}

	line := Line(3, &app)
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		t.Fatalf("expected 5 tab-separated fields, got %d: %q", len(fields), line)
	}
	if fields[0] != "3" {
		t.Errorf("index field = %q", fields[0])
	}
	if fields[1] != "• Firefox" {
		t.Errorf("name field = %q", fields[1])
	}
	if fields[2] != "Browse the web" {
		t.Errorf("description field = %q", fields[2])
	}
	if !strings.Contains(fields[3], "Network │ WebBrowser") {
		t.Errorf("category field = %q", fields[3])
	}
	if fields[4] != app.Source {
		t.Errorf("source field = %q", fields[4])
	}
}

func TestLines(t *testing.T) {
	m := &models.Menu{Apps: []models.App{
		{Name: "• A", Exec: "a"},
		{Name: "• B", Exec: "b"},
	}}

	lines := Lines(m)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0\t") || !strings.HasPrefix(lines[1], "1\t") {
		t.Errorf("lines should carry their menu index: %v", lines)
	}
}
