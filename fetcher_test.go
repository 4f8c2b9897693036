package notebook_test

import (
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/stretchr/testify/assert"
)

func TestFetchResponse_ContentKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		html        bool
		text        bool
	}{
		{"text/html; charset=utf-8", true, true},
		{"TEXT/HTML", true, true},
		{"application/xhtml+xml", true, true},
		{"text/plain", false, true},
		{"application/json", false, true},
		{"application/pdf", false, false},
		{"image/png", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			resp := &notebook.FetchResponse{ContentType: tt.contentType}
			assert.Equal(t, tt.html, resp.IsHTML())
			assert.Equal(t, tt.text, resp.IsText())
		})
	}
}
