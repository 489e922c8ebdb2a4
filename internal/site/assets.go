package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogstack/internal/blog"
	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// CopyAssets copies image assets into the centralized <output>/images
// directory. Name clashes between subdirectories are resolved with _1, _2...
// suffixes. The returned map records original file name -> final file name so
// markdown image references can be rewritten.
func CopyAssets(assets []blog.File, outputDir string) (map[string]string, error) {
	imagesDir := filepath.Join(outputDir, "images")
	if err := os.MkdirAll(imagesDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	copied := make(map[string]string)
	for _, asset := range assets {
		fileName := asset.Name + asset.Extension
		dstPath := filepath.Join(imagesDir, fileName)

		counter := 1
		for {
			if _, err := os.Stat(dstPath); os.IsNotExist(err) {
				break
			}
			dstPath = filepath.Join(imagesDir, fmt.Sprintf("%s_%d%s", asset.Name, counter, asset.Extension))
			counter++
		}

		if err := copyFile(asset.Path, dstPath); err != nil {
			return nil, fmt.Errorf("failed to copy asset %s: %w", asset.RelativePath, err)
		}

		finalName := filepath.Base(dstPath)
		copied[fileName] = finalName
		slog.Info("Copied image", logfields.File(fileName), slog.String("target", "/images/"+finalName))
	}

	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
