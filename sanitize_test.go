package notebook_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips tags and collapses whitespace",
			html: "<html>\n  <body><h1>Title</h1>\n<p>Some   text</p></body></html>",
			want: "Title Some text",
		},
		{
			name: "removes script blocks across lines and case",
			html: "<p>before</p><SCRIPT type=\"text/javascript\">\nvar x = '<p>no</p>';\n</SCRIPT><p>after</p>",
			want: "before after",
		},
		{
			name: "removes each script block separately",
			html: "<script>a()</script>keep<script>b()</script>",
			want: "keep",
		},
		{
			name: "removes style blocks",
			html: "<style>\nbody { color: red; }\n</style><div>visible</div>",
			want: "visible",
		},
		{
			name: "replaces tags with a space so words do not merge",
			html: "one<br>two<span>three</span>",
			want: "one two three",
		},
		{
			name: "keeps entities undecoded",
			html: "<p>Fish &amp; Chips&nbsp;Ltd</p>",
			want: "Fish &amp; Chips&nbsp;Ltd",
		},
		{
			name: "handles unbalanced markup",
			html: "<div><p>open <b>bold</div> tail <script>never closed",
			want: "open bold tail never closed",
		},
		{
			name: "leaves stray angle bracket without closing bracket",
			html: "<p>a < b</p>",
			want: "a < b",
		},
		{
			name: "empty input",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, notebook.Sanitize(tt.html))
		})
	}
}

func TestSanitize_IsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<html><head><style>p{}</style></head><body><p>Hello <b>world</b></p></body></html>",
		"a < b > c << d >> e",
		"<<script>>x</script>> y",
		"  plain\ttext\n\nwith   spaces ",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
	}

	for _, in := range inputs {
		once := notebook.Sanitize(in)
		assert.Equal(t, once, notebook.Sanitize(once), "input: %q", in)
	}
}

func TestSanitize_NoTagsRemain(t *testing.T) {
	t.Parallel()

	html := strings.Repeat("<div class=\"x\"><a href=\"/p\">link</a></div>", 100)
	got := notebook.Sanitize(html)

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", notebook.Truncate("abcdef", 3))
	assert.Equal(t, "abc", notebook.Truncate("abc", 3))
	assert.Equal(t, "abc", notebook.Truncate("abc", 10))
	assert.Equal(t, "abc", notebook.Truncate("abc", 0))
	assert.Equal(t, "héé", notebook.Truncate("hééllo", 3))
	assert.Equal(t, "日本", notebook.Truncate("日本語", 2))
	assert.Equal(t, 2, notebook.TextLen(notebook.Truncate("日本語", 2)))
}
