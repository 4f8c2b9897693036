package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as plain text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a> | <a href="/docs">Docs</a> | <a href="/blog">Blog</a></nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page. It explains how to install the tool and run it for the first time.</p>
<p>After installation, configure the server address and start the service with the serve command.</p>
</main>
<footer><p>Copyright 2024 Example Corp. All rights reserved.</p></footer>
</body>
</html>`

		text, err := trafilatura.NewExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "main content of the documentation page")
		assert.NotContains(t, text, "<p>")
		assert.NotContains(t, text, "All rights reserved")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractText("")

		require.Error(t, err)
		assert.Equal(t, notebook.EINVALID, notebook.ErrorCode(err))
	})
}
