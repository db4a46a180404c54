package dto

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// ContainsMarkup reports whether s holds anything the strict policy would strip:
// tags, comments or unterminated tags. Stray "<" or ">" and entities are plain text.
// The value itself is never rewritten.
func ContainsMarkup(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	// the tokenizer folds CR and CRLF into LF inside text
	plain := newlines.Replace(s)
	return html.UnescapeString(strictPolicy.Sanitize(plain)) != html.UnescapeString(plain)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Validate returns the first problem with the free-text fields, or "" when they can be stored as sent.
func (f MovieForm) Validate() string {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return "Title is required!"
	case ContainsMarkup(f.Title):
		return "Title must not contain markup!"
	case ContainsMarkup(f.StoryLine):
		return "StoryLine must not contain markup!"
	}
	return ""
}

// ValidateGenreName is the genre counterpart of MovieForm.Validate.
func ValidateGenreName(name string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Name is required!"
	case ContainsMarkup(name):
		return "Name must not contain markup!"
	}
	return ""
}
