package frontmatter

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrHasFrontmatter means the document already starts with a block.
	ErrHasFrontmatter = errors.New("frontmatter: already present")
	// ErrNoHeading means no top-level heading was found to derive a title from.
	ErrNoHeading = errors.New("frontmatter: no H1 found")
)

// headingRe matches a top-level heading: one '#', blanks, then text.
var headingRe = regexp.MustCompile(`(?m)^#[ \t]+(\S.*)$`)

// InsertTitle turns the first top-level heading of content into a
// frontmatter block. The heading line is removed together with its
// terminator and leading whitespace of the remaining text is dropped.
//
// Content is returned unchanged with ErrHasFrontmatter or ErrNoHeading when
// there is nothing to do.
func InsertTitle(content string) (string, error) {
	if HasFrontmatter(content) {
		return content, ErrHasFrontmatter
	}

	loc := headingRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, ErrNoHeading
	}
	title := strings.TrimSpace(content[loc[2]:loc[3]])

	end := loc[1]
	if end < len(content) && content[end] == '\n' {
		end++
	}
	rest := content[:loc[0]] + content[end:]

	return Block(title) + strings.TrimLeftFunc(rest, unicode.IsSpace), nil
}
