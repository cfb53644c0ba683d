// Package textutil provides the text and date normalization helpers shared
// by the content loader and the document builders: year-month formatting,
// age calculation, and the lossy markdown-to-plain-text reduction used for
// print output.
package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Bullet is the full-width glyph that replaces markdown list markers.
const Bullet = "・"

// Precompiled patterns. MarkdownToText is a scoped reduction, not a
// markdown parser: only fences, ATX headings, list markers, links and
// inline code spans are handled.
var (
	yearMonthPattern  = regexp.MustCompile(`^(\d{4})[./-](\d{1,2})`)
	fencedCodeBlock   = regexp.MustCompile("(?s)```.*?```")
	headingMarker     = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	listMarker        = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	linkSyntax        = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	excessBlankLines  = regexp.MustCompile(`\n{3,}`)
	paragraphBoundary = regexp.MustCompile(`\n\s*\n`)
	leadingBullet     = regexp.MustCompile(`^` + Bullet + `\s*`)
)

// birthLayouts are tried in order when parsing a birth date string.
// The loader normalizes YAML dates to ISO, but free-form source text may
// use slashes or omit zero padding.
var birthLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
}

// NormalizeScalar renders a loosely-typed YAML scalar as a string.
// Dates become ISO YYYY-MM-DD, nil becomes the empty string.
func NormalizeScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatYearMonth renders a leading "YYYY sep MM" prefix (separators ".",
// "/", "-") as "{year}年{month}月". Non-matching input is returned trimmed
// and otherwise unchanged; this function never fails.
func FormatYearMonth(value string) string {
	text := strings.TrimSpace(value)
	m := yearMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d年%d月", year, month)
}

// ParseDate parses a date string in any of the accepted layouts.
// Returns the zero time and false when nothing matches.
func ParseDate(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range birthLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateJa renders a parseable date as "{year}年{month}月{day}日".
// Unparseable input yields the empty string.
func FormatDateJa(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), t.Month(), t.Day())
}

// FormatTodayJa renders the reference time as "{year}年{month}月{day}日現在",
// the long form stamped into both generated documents.
func FormatTodayJa(now time.Time) string {
	return fmt.Sprintf("%d年%d月%d日現在", now.Year(), now.Month(), now.Day())
}

// CalcAge computes age in whole years at the reference time using
// calendar-aware comparison: the year is not counted until the birthday
// has passed. Unparseable birth dates yield the empty string.
//
// The now parameter allows injecting a fixed time for testing.
func CalcAge(birth string, now time.Time) string {
	b, ok := ParseDate(birth)
	if !ok {
		return ""
	}
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return strconv.Itoa(age)
}

// MarkdownToText reduces markdown to plain text for print output: code
// fences are dropped, heading markers stripped, list markers replaced with
// the full-width bullet, link syntax collapsed to its label, inline code
// markers removed, and runs of blank lines compressed to one.
func MarkdownToText(markdown string) string {
	text := fencedCodeBlock.ReplaceAllString(markdown, "")
	text = headingMarker.ReplaceAllString(text, "")
	text = listMarker.ReplaceAllString(text, Bullet)
	text = linkSyntax.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "`", "")
	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// SplitParagraphs reduces markdown via MarkdownToText and splits the result
// on blank-line boundaries into non-empty trimmed paragraphs.
func SplitParagraphs(markdown string) []string {
	var out []string
	for _, block := range paragraphBoundary.Split(MarkdownToText(markdown), -1) {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// StripBullet removes one leading bullet glyph and surrounding space from a
// line produced by MarkdownToText.
func StripBullet(line string) string {
	return strings.TrimSpace(leadingBullet.ReplaceAllString(line, ""))
}

// IsBulletBlock reports whether every non-empty line of a paragraph starts
// with the bullet glyph; such blocks render as lists rather than prose.
func IsBulletBlock(block string) bool {
	lines := NonEmptyLines(block)
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, Bullet) {
			return false
		}
	}
	return true
}

// NonEmptyLines splits a block into trimmed, non-empty lines.
func NonEmptyLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// DedupeTags merges tag lists into one deduplicated list, preserving
// first-seen order across the inputs.
func DedupeTags(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, group := range groups {
		for _, tag := range group {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
