package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

const DEFAULT_EXTENSION = ".txt"

var (
	// ErrEmptyName means no target was chosen, e.g. the user cancelled
	// the file selection.
	ErrEmptyName = errors.New("[Storage] no name selected")
	ErrNotFound  = errors.New("[Storage] prompt not found")
)

// TextStore reads and writes whole prompt texts by name. Save overwrites
// whatever is stored under the name.
type TextStore interface {
	Load(ctx context.Context, name string) (string, error)
	Save(ctx context.Context, name string, text string) error
}

// NormalizeName trims the name and adds DEFAULT_EXTENSION when it has none.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if filepath.Ext(name) == "" {
		name += DEFAULT_EXTENSION
	}
	return name, nil
}
