package frontmatter

import (
	"errors"
	"testing"
)

func TestInsertTitle_HeadingBecomesTitle(t *testing.T) {
	got, err := InsertTitle("# Hello World\n\nBody text\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "---\ntitle: Hello World\n---\n\nBody text\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInsertTitle_ExistingFrontmatterUntouched(t *testing.T) {
	in := "---\ntitle: Kept\n---\n\n# Other\n"
	got, err := InsertTitle(in)
	if !errors.Is(err, ErrHasFrontmatter) {
		t.Fatalf("err = %v, want ErrHasFrontmatter", err)
	}
	if got != in {
		t.Errorf("content changed: %q", got)
	}
}

func TestInsertTitle_NoHeading(t *testing.T) {
	cases := []string{
		"",
		"Just prose.\n",
		"## Second level only\n",
		"#NoSpace\n",
		"#   \nbody\n",
		"  # indented\n",
	}
	for _, in := range cases {
		got, err := InsertTitle(in)
		if !errors.Is(err, ErrNoHeading) {
			t.Errorf("InsertTitle(%q) err = %v, want ErrNoHeading", in, err)
		}
		if got != in {
			t.Errorf("InsertTitle(%q) changed content to %q", in, got)
		}
	}
}

func TestInsertTitle_FirstHeadingOnly(t *testing.T) {
	in := "Intro line\n\n# First\ntext\n# Second\n"
	got, err := InsertTitle(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "---\ntitle: First\n---\n\nIntro line\n\ntext\n# Second\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInsertTitle_TrimsTitleAndCRLF(t *testing.T) {
	got, err := InsertTitle("#\t  Spaced Title  \r\n\r\nBody\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "---\ntitle: Spaced Title\n---\n\nBody\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInsertTitle_HeadingWithoutTrailingNewline(t *testing.T) {
	got, err := InsertTitle("# Only")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "---\ntitle: Only\n---\n\n" {
		t.Errorf("got %q", got)
	}
}

func TestInsertTitle_Idempotent(t *testing.T) {
	once, err := InsertTitle("# Title: With Colon\nbody\n")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := InsertTitle(once)
	if !errors.Is(err, ErrHasFrontmatter) {
		t.Fatalf("second pass err = %v", err)
	}
	if once != twice {
		t.Errorf("second pass changed content: %q -> %q", once, twice)
	}
}
