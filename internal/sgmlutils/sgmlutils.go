// Package sgmlutils repairs the SGML tag soup of OFX statement bodies into
// well-formed XML text.
package sgmlutils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"fjacquet/ofx-csv/internal/parsererror"
)

var (
	// unclosedLeaf matches "<TAG>content" with no closing tag on the same
	// line. The content class is deliberately broad: payee and memo values
	// carry accented letters, currency signs and most ASCII punctuation.
	unclosedLeaf = regexp.MustCompile(
		"<([A-Za-z0-9.]+)>([\\wà-úÀ-Ú0-9.\\-_+, ;:\\[\\]'&/\\\\*(){|}!£$?=@€#%±§~`\"]+)$")

	// tagOnlyLine matches lines holding a single opening or closing tag.
	tagOnlyLine = regexp.MustCompile(`^<(/?[A-Za-z0-9.]+)>$`)

	// openingTag is used to break a one-line document apart. Closing tags
	// are left attached to their content.
	openingTag = regexp.MustCompile(`<[A-Za-z0-9._]+>`)

	// entityRef matches an XML entity reference following an ampersand.
	entityRef = regexp.MustCompile(`^#?[A-Za-z0-9]+;`)
)

// DecodeToUTF8 returns the statement bytes as a UTF-8 string. Byte sequences
// that are not valid UTF-8 are assumed to be Windows-1252, the encoding
// legacy OFX exporters actually emit regardless of the declared charset.
func DecodeToUTF8(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode statement bytes: %w", err)
	}
	return string(decoded), nil
}

// SplitDocument splits raw statement text into the header block and the
// markup body starting at the <OFX> root. The root tag is located
// case-insensitively.
func SplitDocument(content string) (string, string, error) {
	idx := indexRootTag(content)
	if idx < 0 {
		return "", "", &parsererror.MarkupSyntaxError{Detail: "missing <OFX> root element"}
	}
	return strings.TrimSpace(content[:idx]), strings.TrimSpace(content[idx:]), nil
}

func indexRootTag(content string) int {
	for i := 0; i+5 <= len(content); i++ {
		if strings.EqualFold(content[i:i+5], "<OFX>") {
			return i
		}
	}
	return -1
}

// ConvertToXML repairs an SGML statement body into well-formed XML:
// unclosed leaf elements gain closing tags, aggregates abandoned by a
// mismatched closer become self-closing, and bare ampersands are escaped.
func ConvertToXML(sgml string) string {
	sgml = EscapeBareAmpersands(sgml)
	sgml = strings.ReplaceAll(sgml, "\r\n", "\n")
	sgml = strings.ReplaceAll(sgml, "\r", "\n")

	// Some exporters send the whole body on one line. Re-introduce line
	// structure so the per-line repairs below have something to work on.
	if strings.Count(sgml, "\n") <= 1 {
		sgml = openingTag.ReplaceAllString(sgml, "\n$0")
	}

	lines := strings.Split(sgml, "\n")

	var stack []openElement

	for i, line := range lines {
		line = strings.TrimSpace(closeUnclosedTags(strings.TrimSpace(line)))
		lines[i] = line

		m := tagOnlyLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, closer := strings.CutPrefix(m[1], "/")
		if !closer {
			stack = append(stack, openElement{line: i, name: name})
			continue
		}

		// A closer with no opener anywhere below it must not unwind the
		// stack; leave it for the XML parser to reject.
		if !stackContains(stack, name) {
			continue
		}

		// Unwind to the matching opener, turning every aggregate opened
		// in between into a self-closing element.
		for len(stack) > 0 {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if last.name == name {
				break
			}
			lines[last.line] = "<" + last.name + "/>"
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// closeUnclosedTags appends the missing closing tag to a "<TAG>content"
// line. A line holding a lone <MEMO> open tag is a known exporter bug and
// becomes an explicit empty element.
func closeUnclosedTags(line string) string {
	if strings.HasSuffix(line, "<MEMO>") {
		return "<MEMO></MEMO>"
	}
	if m := unclosedLeaf.FindStringSubmatch(line); m != nil {
		return "<" + m[1] + ">" + m[2] + "</" + m[1] + ">"
	}
	return line
}

// EscapeBareAmpersands replaces every "&" that does not start an entity
// reference with "&amp;".
func EscapeBareAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !entityRef.MatchString(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

type openElement struct {
	line int
	name string
}

func stackContains(stack []openElement, name string) bool {
	for _, e := range stack {
		if e.name == name {
			return true
		}
	}
	return false
}
