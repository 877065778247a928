package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchbox/internal/icons"
)

func writeEntry(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.desktop")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func emptyResolver(t *testing.T) *icons.Resolver {
	t.Helper()
	return icons.New(nil, t.TempDir())
}

func TestParseWellFormed(t *testing.T) {
	path := writeEntry(t, `[Desktop Entry]
Name=Firefox
Comment=Browse the web
Exec=firefox %u
Icon=firefox
Terminal=false
Categories=Network;WebBrowser;
Keywords=web;browser;
`)

	app, err := ParseFile(path, emptyResolver(t))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if app == nil {
		t.Fatal("expected a record")
	}

	if app.Name != "• Firefox" {
		t.Errorf("Name = %q", app.Name)
	}
	if app.Exec != "firefox" {
		t.Errorf("Exec = %q, field code should be stripped", app.Exec)
	}
	if app.Description != "Browse the web" {
		t.Errorf("Description = %q", app.Description)
	}
	if app.Category != "Network │ WebBrowser" {
		t.Errorf("Category = %q", app.Category)
	}
	if app.Keywords != "web, browser" {
		t.Errorf("Keywords = %q", app.Keywords)
	}
	if app.Terminal {
		t.Error("Terminal should be false")
	}
	if app.Icon != "firefox" {
		t.Errorf("Icon = %q, unresolved name should pass through", app.Icon)
	}
	if app.Source != path {
		t.Errorf("Source = %q", app.Source)
	}
}

func TestParseNoDisplay(t *testing.T) {
	for _, value := range []string{"true", "True", "TRUE"} {
		path := writeEntry(t, "[Desktop Entry]\nName=X\nExec=x\nNoDisplay="+value+"\n")
		app, err := ParseFile(path, emptyResolver(t))
		if err != nil {
			t.Fatalf("ParseFile: %v", err)
		}
		if app != nil {
			t.Errorf("NoDisplay=%s should discard the record", value)
		}
	}
}

func TestParseExecFieldCodes(t *testing.T) {
	tests := []struct {
		exec string
		want string
	}{
		{"app %f --flag", "app --flag"},
		{"app %F %U", "app"},
		{"app --flag", "app --flag"},
		{`app "some file" %u`, `app "some file"`},
		{"env FOO=1 app %i", "env FOO=1 app"},
	}

	for _, tt := range tests {
		path := writeEntry(t, "[Desktop Entry]\nName=X\nExec="+tt.exec+"\n")
		app, err := ParseFile(path, emptyResolver(t))
		if err != nil {
			t.Fatalf("ParseFile: %v", err)
		}
		if app == nil {
			t.Fatalf("Exec=%q: expected a record", tt.exec)
		}
		if app.Exec != tt.want {
			t.Errorf("Exec=%q: got %q, want %q", tt.exec, app.Exec, tt.want)
		}
	}
}

func TestParseCategoriesDropEmptySegments(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\nName=X\nExec=x\nCategories=Utility;System;;\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Category != "Utility │ System" {
		t.Errorf("Category = %q", app.Category)
	}
}

func TestParseKeywordsFilterNonASCII(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\nName=X\nExec=x\nKeywords=ok;€bad;good\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Keywords != "ok, good" {
		t.Errorf("Keywords = %q, want %q", app.Keywords, "ok, good")
	}
}

func TestParseStopsAtNextSection(t *testing.T) {
	path := writeEntry(t, `[Desktop Entry]
Name=Real
Exec=real
[Desktop Action new-window]
Name=Ignored
Exec=ignored --new-window
`)

	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Name != "• Real" || app.Exec != "real" {
		t.Errorf("fields from later sections leaked in: %+v", app)
	}
}

func TestParseIgnoresLinesBeforeSection(t *testing.T) {
	path := writeEntry(t, "# comment\nName=Early\n[Desktop Entry]\nName=Late\nExec=x\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Name != "• Late" {
		t.Errorf("Name = %q, fields before the section should be ignored", app.Name)
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\nName=First\nName=Second\nExec=x\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Name != "• First" {
		t.Errorf("Name = %q, first occurrence should win", app.Name)
	}
}

func TestParseMissingExec(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\nName=NoCommand\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if app != nil {
		t.Error("record without Exec should be filtered out")
	}
}

func TestParseNoSection(t *testing.T) {
	path := writeEntry(t, "Name=X\nExec=x\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if app != nil {
		t.Error("file without [Desktop Entry] should yield no record")
	}
}

func TestParseUnreadableFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.desktop"), emptyResolver(t))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "missing.desktop") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestParseResolvesIcon(t *testing.T) {
	pixmapDir := t.TempDir()
	iconPath := filepath.Join(pixmapDir, "myapp.png")
	if err := os.WriteFile(iconPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	path := writeEntry(t, "[Desktop Entry]\nName=X\nExec=x\nIcon=myapp\n")
	app, err := ParseFile(path, icons.New(nil, pixmapDir))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Icon != iconPath {
		t.Errorf("Icon = %q, want resolved path %q", app.Icon, iconPath)
	}
}

func TestParseTerminal(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\nName=htop\nExec=htop\nTerminal=True\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if !app.Terminal {
		t.Error("Terminal=True should set the flag")
	}
}

func TestParseLinesWithoutSeparator(t *testing.T) {
	path := writeEntry(t, "[Desktop Entry]\njunk line\nName=X\nExec=x\n")
	app, err := ParseFile(path, emptyResolver(t))
	if err != nil || app == nil {
		t.Fatalf("ParseFile: app=%v err=%v", app, err)
	}
	if app.Name != "• X" {
		t.Errorf("Name = %q", app.Name)
	}
}
