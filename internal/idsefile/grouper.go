package idsefile

import (
	"fmt"

	"idsegen/internal/domain"
)

// OutputGroup is one generated file: the accepted movements of a single
// (registro patronal, movement type, period) combination, encoded in
// validation-pass order.
type OutputGroup struct {
	RegistroPatronal string
	Tipo             domain.TipoMovimiento
	Periodo          domain.Periodo
	Lineas           []string
}

// NombreArchivo derives the deterministic filename for the group:
// IDSE_{ALT|MOD|BAJ}_{MMYYYY}_{registro_patronal}.txt
func (g *OutputGroup) NombreArchivo() string {
	return fmt.Sprintf("IDSE_%s_%s_%s.txt",
		domain.TipoMovimientoArchivo[g.Tipo], g.Periodo, g.RegistroPatronal)
}

// Contenido joins the group's lines into the file body.
func (g *OutputGroup) Contenido() string {
	contenido := ""
	for i, linea := range g.Lineas {
		if i > 0 {
			contenido += "\n"
		}
		contenido += linea
	}
	return contenido
}

type llaveGrupo struct {
	registroPatronal string
	tipo             domain.TipoMovimiento
	periodo          domain.Periodo
}

// Agrupar encodes every accepted movement and partitions the lines by
// (registro patronal, movement type, period). Line order within a group and
// group order both follow validation-pass order, so output is deterministic
// for a given batch. Every movement lands in exactly one group.
func Agrupar(aceptados []domain.Aceptado) ([]OutputGroup, error) {
	indices := make(map[llaveGrupo]int)
	var grupos []OutputGroup

	for _, a := range aceptados {
		linea, err := EncodeLinea(a)
		if err != nil {
			return nil, err
		}

		llave := llaveGrupo{
			registroPatronal: a.RegistroPatronal,
			tipo:             a.Movimiento.TipoMovimiento(),
			periodo:          a.Periodo(),
		}
		i, ok := indices[llave]
		if !ok {
			i = len(grupos)
			indices[llave] = i
			grupos = append(grupos, OutputGroup{
				RegistroPatronal: llave.registroPatronal,
				Tipo:             llave.tipo,
				Periodo:          llave.periodo,
			})
		}
		grupos[i].Lineas = append(grupos[i].Lineas, linea)
	}

	return grupos, nil
}
