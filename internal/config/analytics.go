package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// Analytics maps repository names to analytics tracking IDs.
type Analytics map[string]string

// LoadAnalytics reads a key=value analytics configuration file.
//
// Each line maps a repository name to its tracking ID. A missing file is not
// an error; it simply means no analytics snippets are injected.
func LoadAnalytics(path string) (Analytics, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("No analytics configuration found", logfields.Path(path))
		return Analytics{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded analytics configuration", logfields.Path(path), logfields.Count(len(values)))
	return Analytics(values), nil
}

// TrackingID returns the tracking ID configured for a repository, or the
// empty string when the repository has none.
func (a Analytics) TrackingID(repoName string) string {
	return a[repoName]
}
