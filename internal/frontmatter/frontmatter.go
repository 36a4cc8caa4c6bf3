// Package frontmatter normalizes the YAML frontmatter block at the top of
// Markdown documents.
//
// A block opens with a Marker line as the very first line of a document and
// closes at the next bare Marker line. Only the title field is ever touched.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	fmparse "github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/starford/docfront/internal/apperr"
)

// Marker delimits a frontmatter block.
const Marker = "---"

const titlePrefix = "title:"

// Header holds the frontmatter fields docfront cares about.
type Header struct {
	Title string `yaml:"title"`
}

var yamlFormat = fmparse.NewFormat(Marker, Marker, yaml.Unmarshal)

// HasFrontmatter is the fast-path check: content starts with the marker.
func HasFrontmatter(content string) bool {
	return strings.HasPrefix(content, Marker)
}

// Block renders a minimal frontmatter block carrying title, followed by the
// blank separator line.
func Block(title string) string {
	return Marker + "\n" + titlePrefix + " " + title + "\n" + Marker + "\n\n"
}

// Parse decodes the leading YAML block of content. Content without a block
// yields an empty Header and the whole content as body.
func Parse(content []byte) (Header, []byte, error) {
	var h Header
	body, err := fmparse.Parse(bytes.NewReader(content), &h, yamlFormat)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", apperr.ErrInvalidFrontmatter, err)
	}
	return h, body, nil
}
