package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1 << 10, "1 KB"},
		{2048, "2 KB"},
		{1 << 20, "1 MB"},
		{5 << 20, "5 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}

func TestSanitizeExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.pdf", ".pdf"},
		{"REPORT.PDF", ".pdf"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"weird.p df", ""},
		{"trailing.", "."},
		{"traversal.././../x", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeExtension(tt.filename), "filename %q", tt.filename)
	}
}

func TestBuildAssetURL(t *testing.T) {
	assert.Equal(t, "/api/media/assets/abc-123/content", BuildAssetURL("abc-123"))
}
