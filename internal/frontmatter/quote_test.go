package frontmatter

import "testing"

func TestQuoteTitles(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   string
		quoted int
	}{
		{
			name:   "colon gets quoted",
			in:     "---\ntitle: Part One: The Beginning\n---\nbody\n",
			want:   "---\ntitle: \"Part One: The Beginning\"\n---\nbody\n",
			quoted: 1,
		},
		{
			name: "already quoted",
			in:   "---\ntitle: \"Already: Quoted\"\n---\n",
			want: "---\ntitle: \"Already: Quoted\"\n---\n",
		},
		{
			name: "no colon",
			in:   "---\ntitle: Simple Title\n---\n",
			want: "---\ntitle: Simple Title\n---\n",
		},
		{
			name:   "single quotes are not recognized",
			in:     "---\ntitle: 'a: b'\n---\n",
			want:   "---\ntitle: \"'a: b'\"\n---\n",
			quoted: 1,
		},
		{
			name: "title in body untouched",
			in:   "---\ndescription: x\n---\ntitle: Body: Text\n",
			want: "---\ndescription: x\n---\ntitle: Body: Text\n",
		},
		{
			name: "no frontmatter",
			in:   "title: Not: Frontmatter\n---\ntitle: Still: Body\n---\n",
			want: "title: Not: Frontmatter\n---\ntitle: Still: Body\n---\n",
		},
		{
			name: "third marker does not reopen",
			in:   "---\ntitle: A\n---\n---\ntitle: B: C\n---\n",
			want: "---\ntitle: A\n---\n---\ntitle: B: C\n---\n",
		},
		{
			name:   "other fields and CRLF preserved",
			in:     "---\r\nslug: a:b\r\ntitle:   Deep: Dive   \r\n---\r\nbody\r\n",
			want:   "---\r\nslug: a:b\r\ntitle: \"Deep: Dive\"\r\n---\r\nbody\r\n",
			quoted: 1,
		},
		{
			name:   "no trailing newline",
			in:     "---\ntitle: x: y",
			want:   "---\ntitle: \"x: y\"",
			quoted: 1,
		},
		{
			name: "indented title is not a title line",
			in:   "---\n  title: a: b\n---\n",
			want: "---\n  title: a: b\n---\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := QuoteTitles(tc.in)
			if res.Content != tc.want {
				t.Errorf("content = %q, want %q", res.Content, tc.want)
			}
			if res.Quoted != tc.quoted {
				t.Errorf("quoted = %d, want %d", res.Quoted, tc.quoted)
			}
			if res.Changed() != (tc.quoted > 0) {
				t.Errorf("Changed() = %v", res.Changed())
			}
		})
	}
}

func TestQuoteTitles_CountsTitles(t *testing.T) {
	res := QuoteTitles("---\ntitle: Plain\n---\n")
	if res.Titles != 1 {
		t.Errorf("titles = %d, want 1", res.Titles)
	}
	res = QuoteTitles("---\nslug: plain\n---\n")
	if res.Titles != 0 {
		t.Errorf("titles = %d, want 0", res.Titles)
	}
}

func TestQuoteTitles_Idempotent(t *testing.T) {
	in := "---\ntitle: Part One: The Beginning\n---\n"
	once := QuoteTitles(in)
	twice := QuoteTitles(once.Content)
	if twice.Changed() {
		t.Errorf("second pass changed content: %q", twice.Content)
	}
	if twice.Content != once.Content {
		t.Errorf("content drifted: %q -> %q", once.Content, twice.Content)
	}
}
