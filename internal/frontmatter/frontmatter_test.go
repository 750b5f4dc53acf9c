package frontmatter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		record map[string]any
		body   string
	}{
		{
			"strings and arrays",
			"---\ntitle: \"Hello\"\ntags: [\"go\", \"web\"]\n---\nbody text",
			map[string]any{"title": "Hello", "tags": []string{"go", "web"}},
			"body text",
		},
		{
			"single quotes and unquoted values",
			"---\ntitle: 'Hi there'\nstatus: draft\n---\n",
			map[string]any{"title": "Hi there", "status": "draft"},
			"",
		},
		{
			"booleans convert unconditionally",
			"---\ndraft: true\narchived: false\nnote: \"true\"\n---\n",
			map[string]any{"draft": true, "archived": false, "note": true},
			"",
		},
		{
			"empty array",
			"---\ntags: []\n---\nx",
			map[string]any{"tags": []string{}},
			"x",
		},
		{
			"value containing a colon splits on the first",
			"---\nlink: \"https://example.com\"\n---\n",
			map[string]any{"link": "https://example.com"},
			"",
		},
		{
			"missing closing delimiter is all body",
			"---\ntitle: \"Hello\"\nno closing marker",
			map[string]any{},
			"---\ntitle: \"Hello\"\nno closing marker",
		},
		{
			"no header at all",
			"just some markdown\n\nwith paragraphs",
			map[string]any{},
			"just some markdown\n\nwith paragraphs",
		},
		{
			"malformed lines are skipped",
			"---\ntitle: \"ok\"\nthis line has no separator\n---\nb",
			map[string]any{"title": "ok"},
			"b",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			record, body := Parse(c.input)
			if body != c.body {
				t.Errorf("expected body %q, got %q", c.body, body)
			}

			got := map[string]any{}
			for _, k := range record.Keys() {
				v, _ := record.Get(k)
				got[k] = v
			}
			if diff := cmp.Diff(c.record, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	r := NewRecord()
	r.Set("title", "Hello")
	r.Set("tags", []string{"a", "b"})
	r.Set("draft", false)
	r.Set("empty", "")

	expected := "---\ntitle: \"Hello\"\ntags: [\"a\", \"b\"]\ndraft: false\n---\n"
	if got := Generate(r); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

// A parse of the generated text recovers every non-empty value; empty
// strings are dropped on generation, so the round trip is lossy for them.
func TestRoundTrip(t *testing.T) {
	r := NewRecord()
	r.Set("title", "Post")
	r.Set("tags", []string{"x"})
	r.Set("published", true)
	r.Set("coverImage", "")

	parsed, body := Parse(Generate(r) + "content")
	if body != "content" {
		t.Errorf("unexpected body %q", body)
	}

	if _, ok := parsed.Get("coverImage"); ok {
		t.Error("empty value survived the round trip")
	}

	if got := parsed.String("title"); got != "Post" {
		t.Errorf("expected title \"Post\", got %q", got)
	}
	if diff := cmp.Diff([]string{"x"}, parsed.Strings("tags")); diff != "" {
		t.Error(diff)
	}
	if !parsed.Bool("published") {
		t.Error("expected published to parse as true")
	}
}
