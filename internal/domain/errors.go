package domain

import "errors"

var (
	ErrBatchMalformado    = errors.New("batch structurally malformed: missing 'empresa' list")
	ErrDemasiadasEmpresas = errors.New("batch exceeds the configured employer limit")
	ErrLineaInvalida      = errors.New("encoded line violates the 44-character contract")
	ErrEscrituraArchivo   = errors.New("writing output file failed")
)
