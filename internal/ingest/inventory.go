package ingest

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// Source labels for where a document was discovered.
const (
	SourceData   = "data"
	SourceUpload = "upload"
)

// Inventory discovers documents on disk and serves their bytes. Listing is
// deterministic: the data directory first, then uploads, each walked in
// lexical order, so ingestion order is stable across runs.
type Inventory struct {
	dataDir    string
	uploadsDir string
	logger     *slog.Logger
}

func NewInventory(dataDir, uploadsDir string, logger *slog.Logger) *Inventory {
	return &Inventory{dataDir: dataDir, uploadsDir: uploadsDir, logger: logger}
}

// List walks both roots and returns every supported document, in ingestion
// order. A missing root is not an error; it contributes no documents.
func (inv *Inventory) List(ctx context.Context) ([]entity.Document, error) {
	var docs []entity.Document
	for _, root := range []struct {
		dir    string
		source string
	}{
		{inv.dataDir, SourceData},
		{inv.uploadsDir, SourceUpload},
	} {
		if root.dir == "" {
			continue
		}
		found, err := scanRoot(ctx, root.dir, root.source)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root.dir, err)
		}
		docs = append(docs, found...)
	}

	inv.logger.Debug("document inventory listed", slog.Int("count", len(docs)))
	return docs, nil
}

// Read returns a document's raw bytes.
func (inv *Inventory) Read(_ context.Context, doc entity.Document) ([]byte, error) {
	raw, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", doc.ID, err)
	}
	return raw, nil
}

func scanRoot(ctx context.Context, root, source string) ([]entity.Document, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var docs []entity.Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		format := constants.MapExtToFormat(filepath.Ext(path))
		if format == "" {
			return nil
		}
		docs = append(docs, entity.Document{
			ID:         DocumentID(path),
			Identifier: filepath.Base(path),
			Path:       path,
			Source:     source,
			Format:     format,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// DocumentID derives a stable document id from the file path. Identical
// paths always map to the same id, so re-running over the same corpus keys
// cells consistently.
func DocumentID(path string) string {
	sum := sha1.Sum([]byte(filepath.Clean(path)))
	return hex.EncodeToString(sum[:])[:16]
}

// AllowedExt reports whether a file extension is a supported document type.
func AllowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
