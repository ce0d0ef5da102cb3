package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

// fsLoader implements Loader over an fs.FS (embedded data or a directory).
type fsLoader struct {
	fsys   fs.FS
	source string
	logger zerolog.Logger
}

// NewFSLoader creates a loader reading documents from fsys. source is only
// used in log lines ("embedded", a directory path, ...).
func NewFSLoader(fsys fs.FS, source string, logger zerolog.Logger) Loader {
	return &fsLoader{
		fsys:   fsys,
		source: source,
		logger: logger.With().Str("component", "catalog-loader").Str("source", source).Logger(),
	}
}

// Load reads a document from the filesystem.
func (l *fsLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug().Str("document", name).Msg("catalog document missing")
			return nil, fmt.Errorf("%s from %s: %w", name, l.source, ErrNotFound)
		}
		l.logger.Error().Err(err).Str("document", name).Msg("failed to read catalog document")
		return nil, fmt.Errorf("failed to read %s from %s: %w", name, l.source, err)
	}

	l.logger.Debug().
		Str("document", name).
		Int("bytes", len(data)).
		Msg("catalog document loaded")

	return data, nil
}
