package uploads

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestStorage_SavePNG(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, 1024)
	require.NoError(t, err)

	name, err := s.Save(context.Background(), "passport.PNG", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, "passport")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestStorage_SavePDF(t *testing.T) {
	s, err := NewStorage(t.TempDir(), 1024)
	require.NoError(t, err)

	name, err := s.Save(context.Background(), "id.pdf", strings.NewReader("%PDF-1.7\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestStorage_Rejects(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, 16)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "notes.txt", strings.NewReader("plain text file"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	_, err = s.Save(context.Background(), "big.png", bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorage_ExtensionFollowsContent(t *testing.T) {
	bmp := append([]byte("BM"), bytes.Repeat([]byte{0}, 32)...)

	tests := []struct {
		name     string
		filename string
		content  []byte
		ext      string
	}{
		{name: "bmp named as html", filename: "x.html", content: bmp, ext: ".bmp"},
		{name: "png named as exe", filename: "scan.exe", content: pngHeader, ext: ".png"},
		{name: "pdf without extension", filename: "document", content: []byte("%PDF-1.4\n"), ext: ".pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorage(t.TempDir(), 1024)
			require.NoError(t, err)

			name, err := s.Save(context.Background(), tt.filename, bytes.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.ext, filepath.Ext(name))
		})
	}
}
