package frontmatter

import (
	"errors"
	"testing"

	"github.com/starford/docfront/internal/apperr"
)

func TestParse_Title(t *testing.T) {
	h, body, err := Parse([]byte("---\ntitle: \"Part One: The Beginning\"\n---\n\nBody\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Title != "Part One: The Beginning" {
		t.Errorf("title = %q", h.Title)
	}
	if len(body) == 0 {
		t.Error("expected body")
	}
}

func TestParse_UnquotedColonInvalid(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: Part One: The Beginning\n---\n"))
	if !errors.Is(err, apperr.ErrInvalidFrontmatter) {
		t.Fatalf("err = %v, want ErrInvalidFrontmatter", err)
	}
}

func TestParse_QuotedOutputIsValid(t *testing.T) {
	res := QuoteTitles("---\ntitle: Part One: The Beginning\n---\n")
	h, _, err := Parse([]byte(res.Content))
	if err != nil {
		t.Fatalf("quoted output should parse: %v", err)
	}
	if h.Title != "Part One: The Beginning" {
		t.Errorf("title = %q", h.Title)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	h, body, err := Parse([]byte("# Heading\ntext\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Title != "" {
		t.Errorf("title = %q, want empty", h.Title)
	}
	if string(body) != "# Heading\ntext\n" {
		t.Errorf("body = %q", body)
	}
}

func TestBlock(t *testing.T) {
	if got := Block("X"); got != "---\ntitle: X\n---\n\n" {
		t.Errorf("Block = %q", got)
	}
	if !HasFrontmatter(Block("X")) {
		t.Error("Block output should count as frontmatter")
	}
}
