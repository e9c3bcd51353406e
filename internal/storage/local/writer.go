// Package local writes generated IDSE files to a directory on disk.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"idsegen/internal/domain"
	"idsegen/internal/port"
)

type diskWriter struct {
	dir string
	log zerolog.Logger
}

// NewWriter creates a FileWriter that writes newline-joined files under dir,
// creating it if needed.
func NewWriter(dir string, log zerolog.Logger) (port.FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	return &diskWriter{dir: dir, log: log}, nil
}

func (w *diskWriter) WriteFile(ctx context.Context, nombre string, lineas []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contenido := strings.Join(lineas, "\n")
	ruta := filepath.Join(w.dir, nombre)
	if err := os.WriteFile(ruta, []byte(contenido), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrEscrituraArchivo, nombre, err)
	}

	w.log.Info().
		Str("archivo", ruta).
		Int("movimientos", len(lineas)).
		Int("bytes", len(contenido)).
		Msg("archivo IDSE generado")
	return nil
}
