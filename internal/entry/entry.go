package entry

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	quote     = `"`
	separator = ","
	fieldsNum = 3
)

// DateLayout is the short date format stamped on new entries.
const DateLayout = "01/02/2006"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid entry format")

// Entry is a single journal record. Identity is positional: the journal keeps
// entries in insertion order and has no other key.
type Entry struct {
	Date     string
	Prompt   string
	Response string
}

// New builds an entry from user input. A journal line holds exactly one
// entry, so line breaks inside a field are folded into spaces.
func New(date, prompt, response string) Entry {
	return Entry{
		Date:     singleLine(date),
		Prompt:   singleLine(prompt),
		Response: singleLine(response),
	}
}

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// FormatError reports a line that does not split into enough fields.
type FormatError struct {
	Line   string
	Fields int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid entry format: expected %d comma-separated fields, got %d", fieldsNum, e.Fields)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Encode renders the entry as one line of the journal file without a
// trailing newline. Every field is quoted with embedded quotes doubled.
func Encode(e Entry) string {
	var b strings.Builder
	for i, f := range []string{e.Date, e.Prompt, e.Response} {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(quote)
		b.WriteString(escape(f))
		b.WriteString(quote)
	}
	return b.String()
}

// Decode parses a line produced by Encode.
//
// The line is split on every comma, quoted or not, so a field holding a
// comma does not survive a round trip. Fields beyond the third are ignored.
func Decode(line string) (Entry, error) {
	parts := strings.Split(line, separator)
	if len(parts) < fieldsNum {
		return Entry{}, &FormatError{Line: line, Fields: len(parts)}
	}
	return Entry{
		Date:     unescape(parts[0]),
		Prompt:   unescape(parts[1]),
		Response: unescape(parts[2]),
	}, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, quote, quote+quote)
}

func unescape(s string) string {
	// a lone `"` both starts and ends with a quote but has nothing to strip
	if len(s) < 2 || !strings.HasPrefix(s, quote) || !strings.HasSuffix(s, quote) {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], quote+quote, quote)
}

// Display writes the entry in the layout used by the console and bot.
func (e Entry) Display(w io.Writer) {
	fmt.Fprintf(w, "📅 Date: %s\n", e.Date)
	fmt.Fprintf(w, "💡 Prompt: %s\n", e.Prompt)
	fmt.Fprintf(w, "💬 Response: %s\n", e.Response)
	fmt.Fprintln(w)
}

func (e Entry) String() string { return Encode(e) }
