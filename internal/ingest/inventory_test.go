package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInventory_ListOrderAndFiltering(t *testing.T) {
	dataDir := t.TempDir()
	uploadsDir := t.TempDir()

	writeFile(t, dataDir, "b_contract.pdf", "pdf bytes")
	writeFile(t, dataDir, "a_contract.html", "<html></html>")
	writeFile(t, dataDir, "notes.txt", "ignored")
	writeFile(t, dataDir, ".hidden.pdf", "ignored")
	writeFile(t, uploadsDir, "upload.htm", "<html></html>")

	inv := NewInventory(dataDir, uploadsDir, slog.New(slog.DiscardHandler))
	docs, err := inv.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Data root first in lexical order, then uploads.
	assert.Equal(t, "a_contract.html", docs[0].Identifier)
	assert.Equal(t, "b_contract.pdf", docs[1].Identifier)
	assert.Equal(t, "upload.htm", docs[2].Identifier)

	assert.Equal(t, SourceData, docs[0].Source)
	assert.Equal(t, SourceUpload, docs[2].Source)
	assert.Equal(t, constants.FormatHTML, docs[0].Format)
	assert.Equal(t, constants.FormatPDF, docs[1].Format)
}

func TestInventory_MissingRootIsEmpty(t *testing.T) {
	inv := NewInventory(filepath.Join(t.TempDir(), "nope"), "", slog.New(slog.DiscardHandler))
	docs, err := inv.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestInventory_Read(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, "doc.html", "<html>body</html>")

	inv := NewInventory(dataDir, "", slog.New(slog.DiscardHandler))
	docs, err := inv.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	raw, err := inv.Read(context.Background(), docs[0])
	require.NoError(t, err)
	assert.Equal(t, "<html>body</html>", string(raw))
}

func TestDocumentID_StableAndDistinct(t *testing.T) {
	a := DocumentID("/data/contract.pdf")
	b := DocumentID("/data/contract.pdf")
	c := DocumentID("/data/other.pdf")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt(".HTML"))
	assert.True(t, AllowedExt("htm"))
	assert.False(t, AllowedExt(".txt"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/a/.git"))
	assert.False(t, IsHidden("/a/doc.pdf"))
}
