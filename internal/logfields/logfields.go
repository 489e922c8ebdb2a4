package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRepo   = "repository"
	KeyPath   = "path"
	KeyFile   = "file"
	KeyName   = "name"
	KeyURL    = "url"
	KeyStatus = "status"
	KeyCount  = "count"
	KeyPort   = "port"
	KeyError  = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Repository(r string) slog.Attr { return slog.String(KeyRepo, r) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func File(f string) slog.Attr       { return slog.String(KeyFile, f) }
func Name(n string) slog.Attr       { return slog.String(KeyName, n) }
func URL(u string) slog.Attr        { return slog.String(KeyURL, u) }
func Status(s string) slog.Attr     { return slog.String(KeyStatus, s) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Port(p int) slog.Attr          { return slog.Int(KeyPort, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
