// Package fixer applies frontmatter transformations to every document under
// a docs root, one file at a time.
package fixer

import (
	"errors"

	"github.com/starford/docfront/internal/frontmatter"
)

// Change is the result of applying a Fixer to one document.
type Change struct {
	Content    string
	Changed    bool
	SkipReason string
}

// Fixer transforms the full text of a single document.
type Fixer interface {
	Name() string
	Apply(content string) (Change, error)
}

// Inserter adds a title frontmatter block derived from the first H1.
type Inserter struct{}

func (Inserter) Name() string { return "insert-titles" }

func (Inserter) Apply(content string) (Change, error) {
	out, err := frontmatter.InsertTitle(content)
	switch {
	case errors.Is(err, frontmatter.ErrHasFrontmatter):
		return Change{Content: content}, nil
	case errors.Is(err, frontmatter.ErrNoHeading):
		return Change{Content: content, SkipReason: "no H1 found"}, nil
	case err != nil:
		return Change{}, err
	}
	return Change{Content: out, Changed: true}, nil
}

// QuoteFixer quotes frontmatter titles that contain a colon.
type QuoteFixer struct{}

func (QuoteFixer) Name() string { return "quote-titles" }

func (QuoteFixer) Apply(content string) (Change, error) {
	res := frontmatter.QuoteTitles(content)
	if res.Titles == 0 {
		return Change{Content: content, SkipReason: "no title line"}, nil
	}
	return Change{Content: res.Content, Changed: res.Changed()}, nil
}

// Checker validates that frontmatter decodes as YAML and carries a title.
// It never changes content.
type Checker struct{}

func (Checker) Name() string { return "check" }

func (Checker) Apply(content string) (Change, error) {
	if !frontmatter.HasFrontmatter(content) {
		return Change{Content: content, SkipReason: "no frontmatter"}, nil
	}
	h, _, err := frontmatter.Parse([]byte(content))
	if err != nil {
		return Change{}, err
	}
	if h.Title == "" {
		return Change{Content: content, SkipReason: "no title"}, nil
	}
	return Change{Content: content}, nil
}
