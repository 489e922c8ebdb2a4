package blog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// File represents a discovered markdown file or image asset.
type File struct {
	Path         string // absolute path to the file
	RelativePath string // path relative to the blogs directory
	Name         string // file name without extension
	Extension    string // file extension including the dot
	IsAsset      bool   // true for images, false for markdown
}

// imageExtensions are the asset types copied into the centralized images directory.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".svg": true, ".webp": true, ".bmp": true, ".ico": true,
}

// ErrNoBlogsDir is returned when the content repository has no blogs/ directory.
var ErrNoBlogsDir = fmt.Errorf("no 'blogs' directory found in repository")

// BlogsDir returns the blogs/ directory under a repository root, or
// ErrNoBlogsDir when it does not exist.
func BlogsDir(repoRoot string) (string, error) {
	blogsDir := filepath.Join(repoRoot, "blogs")
	if info, err := os.Stat(blogsDir); err != nil || !info.IsDir() {
		return "", ErrNoBlogsDir
	}
	return blogsDir, nil
}

// Discovery walks a blogs directory collecting markdown files and image assets.
type Discovery struct {
	blogsDir string
}

// NewDiscovery creates a discovery instance for the given blogs directory.
func NewDiscovery(blogsDir string) *Discovery {
	return &Discovery{blogsDir: blogsDir}
}

// Discover finds all markdown files and image assets under the blogs directory.
// Hidden files are skipped; anything that is neither markdown nor an image is
// ignored.
func (d *Discovery) Discover() ([]File, error) {
	var files []File

	err := filepath.Walk(d.blogsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(info.Name()))
		isMarkdown := ext == ".md"
		isAssetFile := imageExtensions[ext]
		if !isMarkdown && !isAssetFile {
			return nil
		}

		relPath, err := filepath.Rel(d.blogsDir, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}

		file := File{
			Path:         path,
			RelativePath: relPath,
			Name:         strings.TrimSuffix(info.Name(), filepath.Ext(info.Name())),
			Extension:    filepath.Ext(info.Name()),
			IsAsset:      isAssetFile,
		}
		files = append(files, file)

		fileType := "post"
		if isAssetFile {
			fileType = "asset"
		}
		slog.Debug("Discovered file", logfields.File(relPath), slog.String("type", fileType))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk blogs directory: %w", err)
	}

	slog.Info("Blog content discovered", logfields.Path(d.blogsDir), logfields.Count(len(files)))
	return files, nil
}

// Markdown filters discovery results down to markdown files.
func Markdown(files []File) []File {
	var out []File
	for _, f := range files {
		if !f.IsAsset {
			out = append(out, f)
		}
	}
	return out
}

// Assets filters discovery results down to image assets.
func Assets(files []File) []File {
	var out []File
	for _, f := range files {
		if f.IsAsset {
			out = append(out, f)
		}
	}
	return out
}
