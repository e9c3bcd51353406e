package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"idsegen/internal/domain"
	"idsegen/internal/idsefile"
	"idsegen/internal/port"
	"idsegen/internal/validator"
)

// ArchivoGenerado describes one IDSE file handed to the writer.
type ArchivoGenerado struct {
	Nombre           string                `json:"nombre"`
	Tipo             domain.TipoMovimiento `json:"tipo"`
	Periodo          string                `json:"periodo"`
	RegistroPatronal string                `json:"registro_patronal"`
	Movimientos      int                   `json:"cantidad_movimientos"`
	Bytes            int                   `json:"tamano_bytes"`
}

// ProcessResult is the outcome of one full run: the validation report plus
// the metadata of every generated file.
type ProcessResult struct {
	Report   domain.BatchReport `json:"reporte"`
	Archivos []ArchivoGenerado  `json:"archivos"`
}

// Processor runs the validate → encode → group → write pipeline over one
// in-memory batch, synchronously and to completion.
type Processor struct {
	validator *validator.BatchValidator
	writer    port.FileWriter
	log       zerolog.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(v *validator.BatchValidator, w port.FileWriter, log zerolog.Logger) *Processor {
	return &Processor{validator: v, writer: w, log: log}
}

// Process validates the batch, encodes every accepted movement, partitions
// the lines into output groups and hands each (filename, lines) pair to the
// writer. Invalid movements never block the rest of the batch; only a
// structurally malformed batch or a writer failure aborts the run.
func (p *Processor) Process(ctx context.Context, batch *domain.Batch) (*ProcessResult, error) {
	res, err := p.validator.Validate(batch)
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("run_id", res.Report.RunID.String()).
		Int("empresas", res.Report.TotalEmpresas).
		Int("movimientos", res.Report.TotalMovimientos).
		Int("validos", res.Report.Validos).
		Int("invalidos", res.Report.Invalidos).
		Msg("validación completada")

	grupos, err := idsefile.Agrupar(res.Aceptados)
	if err != nil {
		// Only reachable through a regression in the encoder padding logic.
		return nil, fmt.Errorf("encoding accepted movements: %w", err)
	}

	archivos := make([]ArchivoGenerado, 0, len(grupos))
	for i := range grupos {
		g := &grupos[i]
		nombre := g.NombreArchivo()
		if err := p.writer.WriteFile(ctx, nombre, g.Lineas); err != nil {
			return nil, fmt.Errorf("writing %s: %w", nombre, err)
		}
		archivos = append(archivos, ArchivoGenerado{
			Nombre:           nombre,
			Tipo:             g.Tipo,
			Periodo:          g.Periodo.String(),
			RegistroPatronal: g.RegistroPatronal,
			Movimientos:      len(g.Lineas),
			Bytes:            len(strings.Join(g.Lineas, "\n")),
		})
	}

	p.log.Info().
		Str("run_id", res.Report.RunID.String()).
		Int("archivos", len(archivos)).
		Msg("procesamiento completado")

	return &ProcessResult{Report: res.Report, Archivos: archivos}, nil
}
