package port

import "context"

// FileWriter persists one generated IDSE file. The core hands it a filename
// and the ordered 44-character lines; joining and I/O details belong to the
// adapter.
type FileWriter interface {
	WriteFile(ctx context.Context, nombre string, lineas []string) error
}
