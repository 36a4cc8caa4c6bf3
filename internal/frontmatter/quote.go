package frontmatter

import "strings"

type scanState int

const (
	stateOutside scanState = iota
	stateInFrontmatter
)

// QuoteResult describes a QuoteTitles pass.
type QuoteResult struct {
	Content string
	Titles  int // title lines seen inside frontmatter
	Quoted  int // title lines rewritten
}

// Changed reports whether any line was rewritten.
func (r QuoteResult) Changed() bool {
	return r.Quoted > 0
}

// QuoteTitles wraps frontmatter title values containing a colon in double
// quotes so YAML does not read them as a mapping. Values already starting
// and ending with a double quote are left alone. Everything outside the
// block, and every other line inside it, passes through unchanged.
func QuoteTitles(content string) QuoteResult {
	lines := strings.SplitAfter(content, "\n")
	res := QuoteResult{}
	state := stateOutside

	for i, line := range lines {
		if strings.TrimSpace(line) == Marker {
			switch {
			case i == 0:
				state = stateInFrontmatter
			case state == stateInFrontmatter:
				state = stateOutside
			}
			continue
		}

		if state != stateInFrontmatter || !strings.HasPrefix(line, titlePrefix) {
			continue
		}
		res.Titles++

		value := strings.TrimSpace(line[len(titlePrefix):])
		if !needsQuotes(value) {
			continue
		}
		lines[i] = titlePrefix + ` "` + value + `"` + lineEnding(line)
		res.Quoted++
	}

	if res.Quoted == 0 {
		res.Content = content
		return res
	}
	res.Content = strings.Join(lines, "")
	return res
}

// needsQuotes only looks at the outer characters; escaped inner
// quotes and single-quoted scalars are not recognized.
func needsQuotes(value string) bool {
	if !strings.Contains(value, ":") {
		return false
	}
	return !(strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`))
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}
