// Package desktop parses freedesktop .desktop entries into menu records.
package desktop

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"launchbox/internal/icons"
	"launchbox/internal/models"
)

// CategorySeparator joins category segments for display
const CategorySeparator = " │ "

// fieldKind identifies a recognized [Desktop Entry] key
type fieldKind int

const (
	fieldUnknown fieldKind = iota
	fieldName
	fieldComment
	fieldExec
	fieldIcon
	fieldTerminal
	fieldNoDisplay
	fieldCategories
	fieldKeywords
)

var fieldKinds = map[string]fieldKind{
	"Name":       fieldName,
	"Comment":    fieldComment,
	"Exec":       fieldExec,
	"Icon":       fieldIcon,
	"Terminal":   fieldTerminal,
	"NoDisplay":  fieldNoDisplay,
	"Categories": fieldCategories,
	"Keywords":   fieldKeywords,
}

// ParseFile reads one descriptor file. A nil record with a nil error means
// the file is valid but filtered out: hidden via NoDisplay, or missing the
// required name/command fields. A non-nil error means the file could not be
// read; callers log and skip it without aborting the build.
func ParseFile(path string, resolver *icons.Resolver) (*models.App, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	app := &models.App{Source: path}
	seen := make(map[fieldKind]bool)
	inEntry := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if strings.HasPrefix(line, "[") {
			// Fields after the first section are ignored
			if inEntry {
				break
			}
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		// First occurrence of a key wins
		kind := fieldKinds[strings.TrimSpace(key)]
		if kind == fieldUnknown || seen[kind] {
			continue
		}
		seen[kind] = true

		applyField(app, kind, strings.TrimSpace(value), resolver)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(seen) == 0 || !app.Launchable() {
		return nil, nil
	}
	return app, nil
}

func applyField(app *models.App, kind fieldKind, value string, resolver *icons.Resolver) {
	switch kind {
	case fieldName:
		app.Name = models.Bullet + value
	case fieldComment:
		app.Description = value
	case fieldExec:
		app.Exec = cleanExec(value)
	case fieldIcon:
		app.Icon = resolver.Resolve(value)
	case fieldTerminal:
		app.Terminal = strings.EqualFold(value, "true")
	case fieldNoDisplay:
		app.Hidden = strings.EqualFold(value, "true")
	case fieldCategories:
		app.Category = joinSegments(value, CategorySeparator, nil)
	case fieldKeywords:
		app.Keywords = joinSegments(value, ", ", printableLead)
	}
}

// cleanExec splits an Exec value on whitespace, honoring double-quoted
// spans, and drops %-letter field codes that this launcher never substitutes
func cleanExec(value string) string {
	tokens := splitQuoted(value)

	kept := tokens[:0]
	for _, token := range tokens {
		if isFieldCode(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func splitQuoted(value string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range value {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func isFieldCode(token string) bool {
	return len(token) == 2 && token[0] == '%' && isLetter(token[1])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// joinSegments splits a ;-separated list, drops empty segments and segments
// rejected by keep, and joins the rest with sep
func joinSegments(value, sep string, keep func(string) bool) string {
	var parts []string
	for _, segment := range strings.Split(value, ";") {
		if segment == "" {
			continue
		}
		if keep != nil && !keep(segment) {
			continue
		}
		parts = append(parts, segment)
	}
	return strings.TrimSpace(strings.Join(parts, sep))
}

// printableLead keeps segments whose first byte is printable ASCII
func printableLead(segment string) bool {
	return segment[0] >= 32 && segment[0] <= 126
}
