package core

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of the bracketed prefix on every stored note.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is the central entity of the domain.
// It is a single line of user text stamped with the local time it was taken.
type Note struct {
	Timestamp time.Time
	Content   string
}

// String renders the note in its storage form: "[YYYY-MM-DD HH:MM:SS] content".
// A note without a timestamp (a foreign line read back from storage) renders
// as its raw content.
func (n Note) String() string {
	if n.Timestamp.IsZero() {
		return n.Content
	}
	return "[" + n.Timestamp.Format(TimestampLayout) + "] " + n.Content
}

// ParseNote decodes a stored line. It reports false if the line does not
// carry a well-formed timestamp prefix, in which case the returned Note
// holds the whole line as Content.
func ParseNote(line string) (Note, bool) {
	raw := Note{Content: line}

	// "[" + layout + "]"
	end := len(TimestampLayout) + 1
	if len(line) <= end || line[0] != '[' || line[end] != ']' {
		return raw, false
	}

	ts, err := time.ParseInLocation(TimestampLayout, line[1:end], time.Local)
	if err != nil {
		return raw, false
	}

	content := line[end+1:]
	if !strings.HasPrefix(content, " ") {
		return raw, false
	}

	return Note{Timestamp: ts, Content: content[1:]}, true
}

// sanitize folds line breaks into spaces so a note always occupies one line.
func sanitize(content string) string {
	if !strings.ContainsAny(content, "\r\n") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, content)
}
