// Package langdetect names the language of fenced code blocks, either from
// the fence info string or, when that is empty, from the block body.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is reported when no language can be determined.
const Text = "text"

// candidates limits the enry classifier to languages commonly fenced in
// prose documents.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Resolve returns the language of a fenced block. The first word of a
// non-empty info string wins and is canonicalized through enry's alias
// table; otherwise the body is inspected.
func Resolve(info string, body []byte) string {
	if fields := strings.Fields(info); len(fields) > 0 {
		return FromInfo(fields[0])
	}
	return Detect(body)
}

// FromInfo canonicalizes a fence tag such as "golang" or "sh". Unknown tags
// are returned lowercased.
func FromInfo(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return Text
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	return tag
}

// Detect guesses the language of code content, returning Text when no
// strategy is confident.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	for _, rule := range rules {
		if rule.match(content) {
			return rule.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "Go Module":
		return "go"
	default:
		return strings.ToLower(strings.ReplaceAll(lang, " ", "-"))
	}
}
