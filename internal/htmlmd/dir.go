package htmlmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// ConvertDir converts every .html file in inputDir to Markdown in outputDir.
//
// Directories named *_files (the companion image directories browsers save
// next to HTML pages) are copied into outputDir first so image references
// keep resolving. Returns the number of converted files.
func ConvertDir(inputDir, outputDir string) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), "_files") {
			src := filepath.Join(inputDir, entry.Name())
			dst := filepath.Join(outputDir, entry.Name())
			if err := os.RemoveAll(dst); err != nil {
				return 0, fmt.Errorf("failed to replace image directory %s: %w", entry.Name(), err)
			}
			if err := copyTree(src, dst); err != nil {
				return 0, fmt.Errorf("failed to copy image directory %s: %w", entry.Name(), err)
			}
			slog.Info("Copied images", logfields.Name(entry.Name()))
		}
	}

	converted := 0
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(inputDir, entry.Name()))
		if err != nil {
			return converted, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		md, err := Convert(content, now)
		if err != nil {
			return converted, fmt.Errorf("failed to convert %s: %w", entry.Name(), err)
		}

		mdName := strings.TrimSuffix(entry.Name(), ".html") + ".md"
		if err := os.WriteFile(filepath.Join(outputDir, mdName), md, 0o644); err != nil {
			return converted, fmt.Errorf("failed to write %s: %w", mdName, err)
		}

		converted++
		slog.Info("Converted page", logfields.File(entry.Name()), slog.String("output", mdName))
	}

	return converted, nil
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o750)
		}
		return copyFile(path, target)
	})
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
