// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prose recovers informally numbered statements ("Theorem N",
// "Assumption N") from whitepaper text.
package prose

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

var (
	// headerRe matches the start of a statement: keyword, ordinal, and an
	// optional parenthetical name, e.g. "Theorem 7 (Safety)." Matching is
	// case-insensitive.
	headerRe = regexp.MustCompile(`(?i)\b(theorem|assumption)\s+(\d+)\s*(?:\(([^)]*)\))?[.:]?`)

	// terminatorRe marks where a statement body ends: a blank line, the next
	// statement-family keyword, or a heading marker.
	terminatorRe = regexp.MustCompile(`(?i)\n[ \t]*\n|\b(?:proof|lemma|theorem|assumption)\b|\n#`)

	// headingRe matches Markdown headings, used for best-effort section
	// attribution.
	headingRe = regexp.MustCompile(`(?m)^#+[ \t]*(.+?)[ \t]*$`)

	// pageMarkerRe matches page markers emitted by PDF conversion:
	// <!-- page N -->.
	pageMarkerRe = regexp.MustCompile(`<!-- page (\d+) -->`)

	// spaceRe collapses whitespace runs when normalizing bodies.
	spaceRe = regexp.MustCompile(`\s+`)
)

// ExtractStatements reads the whitepaper at path and returns every numbered
// theorem and assumption keyed by synthesized identifier ({kind}_{ordinal}).
// A duplicate ordinal+kind overwrites the earlier occurrence; whitepapers are
// assumed non-repeating. A missing file is not an error: a warning is logged
// and an empty map returned so the rest of the pipeline can proceed.
func ExtractStatements(logger *zap.Logger, path string) (map[string]types.ProseStatement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("whitepaper not found, continuing with no prose statements",
				zap.String("path", path))
			return map[string]types.ProseStatement{}, nil
		}
		return nil, fmt.Errorf("reading whitepaper %s: %w", path, err)
	}

	statements := parse(string(data))
	logger.Info("extracted whitepaper statements",
		zap.String("path", path),
		zap.Int("count", len(statements)))
	return statements, nil
}

// parse scans the full text for statement headers and delimits each body at
// the earliest terminator or the next header, whichever comes first.
func parse(text string) map[string]types.ProseStatement {
	statements := make(map[string]types.ProseStatement)

	headers := headerRe.FindAllStringSubmatchIndex(text, -1)
	for i, h := range headers {
		kind := types.StatementKind(strings.ToLower(text[h[2]:h[3]]))
		ordinal, err := strconv.Atoi(text[h[4]:h[5]])
		if err != nil {
			continue
		}

		title := ""
		if h[6] >= 0 {
			title = strings.TrimSpace(text[h[6]:h[7]])
		}
		if title == "" {
			title = fmt.Sprintf("%s %d", capitalize(string(kind)), ordinal)
		}

		bodyEnd := len(text)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		tail := text[h[1]:bodyEnd]
		if loc := terminatorRe.FindStringIndex(tail); loc != nil {
			tail = tail[:loc[0]]
		}

		id := fmt.Sprintf("%s_%d", kind, ordinal)
		statements[id] = types.ProseStatement{
			ID:      id,
			Kind:    kind,
			Title:   title,
			Text:    normalize(tail),
			Section: sectionBefore(text, h[0]),
			Page:    pageBefore(text, h[0]),
		}
	}

	return statements
}

// normalize collapses whitespace runs to single spaces and trims the result.
func normalize(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// sectionBefore returns the text of the nearest heading preceding offset,
// or "unknown" when the statement appears before any heading.
func sectionBefore(text string, offset int) string {
	section := "unknown"
	for _, m := range headingRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] >= offset {
			break
		}
		section = strings.TrimSpace(text[m[2]:m[3]])
	}
	return section
}

// pageBefore returns the page number of the nearest preceding page marker,
// or 0 when the statement appears before any marker.
func pageBefore(text string, offset int) int {
	page := 0
	for _, m := range pageMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] >= offset {
			break
		}
		if n, err := strconv.Atoi(text[m[2]:m[3]]); err == nil {
			page = n
		}
	}
	return page
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
