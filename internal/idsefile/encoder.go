// Package idsefile renders accepted movements into the fixed-width IDSE
// flat-file format: 44-character positional lines grouped into one file per
// (registro patronal, movement type, period).
package idsefile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"idsegen/internal/domain"
)

var cien = decimal.NewFromInt(100)

// EncodeLinea renders one accepted movement as the exact 44-character
// positional record:
//
//	1-11  registro patronal, left-justified
//	12-22 NSS
//	23-24 movement type code (07 alta, 08 modificación, 09 baja)
//	25-26 termination reason code, 00 when not a baja
//	27-34 date as DDMMYYYY
//	35-44 SBC in centavos, zero-padded, 0000000000 for bajas
//
// Input is guaranteed well-formed by validation; a length other than 44 is a
// contract violation in the padding logic, not a data error.
func EncodeLinea(a domain.Aceptado) (string, error) {
	var sb strings.Builder
	sb.Grow(domain.LineaLongitud)

	emp := a.Movimiento.Trabajador()
	sb.WriteString(padRight(a.RegistroPatronal, domain.RegistroPatronalLongitud))
	sb.WriteString(padRight(emp.NSS, domain.NSSLongitud))
	sb.WriteString(domain.TipoMovimientoCodigo[a.Movimiento.TipoMovimiento()])
	sb.WriteString(codigoMotivo(a.Movimiento))
	sb.WriteString(a.Movimiento.Fecha().Format("02012006"))
	sb.WriteString(sbcCentavos(a.Movimiento))

	linea := sb.String()
	if len(linea) != domain.LineaLongitud {
		return "", fmt.Errorf("%w: %d caracteres para NSS %s", domain.ErrLineaInvalida, len(linea), emp.NSS)
	}
	return linea, nil
}

func codigoMotivo(m domain.Validado) string {
	if baja, ok := m.(domain.Baja); ok {
		return domain.MotivoBajaCodigo[baja.Motivo]
	}
	return "00"
}

func sbcCentavos(m domain.Validado) string {
	var sbc decimal.Decimal
	switch mov := m.(type) {
	case domain.Alta:
		sbc = mov.SBC
	case domain.Modificacion:
		sbc = mov.SBC
	default:
		return strings.Repeat("0", 10)
	}
	centavos := sbc.Mul(cien).IntPart()
	return fmt.Sprintf("%010d", centavos)
}

func padRight(s string, longitud int) string {
	if len(s) >= longitud {
		return s[:longitud]
	}
	return s + strings.Repeat(" ", longitud-len(s))
}

// Linea holds the decoded fields of one 44-character record.
type Linea struct {
	RegistroPatronal string
	NSS              string
	Tipo             domain.TipoMovimiento
	Motivo           domain.MotivoBaja
	Fecha            time.Time
	SBCCentavos      int64
}

// ParseLinea decodes a 44-character record back into its fields using the
// documented position table.
func ParseLinea(linea string) (*Linea, error) {
	if len(linea) != domain.LineaLongitud {
		return nil, fmt.Errorf("%w: %d caracteres", domain.ErrLineaInvalida, len(linea))
	}

	tipo, ok := domain.TipoMovimientoDesdeCodigo[linea[22:24]]
	if !ok {
		return nil, fmt.Errorf("código de tipo de movimiento desconocido: %q", linea[22:24])
	}

	var motivo domain.MotivoBaja
	if codigo := linea[24:26]; codigo != "00" {
		motivo, ok = domain.MotivoBajaDesdeCodigo[codigo]
		if !ok {
			return nil, fmt.Errorf("código de motivo de baja desconocido: %q", codigo)
		}
	}

	fecha, err := time.Parse("02012006", linea[26:34])
	if err != nil {
		return nil, fmt.Errorf("fecha inválida en línea IDSE: %w", err)
	}

	centavos, err := strconv.ParseInt(linea[34:44], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SBC inválido en línea IDSE: %w", err)
	}

	return &Linea{
		RegistroPatronal: strings.TrimRight(linea[0:11], " "),
		NSS:              strings.TrimRight(linea[11:22], " "),
		Tipo:             tipo,
		Motivo:           motivo,
		Fecha:            fecha,
		SBCCentavos:      centavos,
	}, nil
}

// ValidateContenido checks a generated file body: every non-empty line must
// be exactly 44 alphanumeric characters.
func ValidateContenido(contenido string) error {
	if strings.TrimSpace(contenido) == "" {
		return fmt.Errorf("contenido vacío")
	}
	for i, linea := range strings.Split(strings.TrimRight(contenido, "\n"), "\n") {
		if len(linea) != domain.LineaLongitud {
			return fmt.Errorf("línea %d: %d caracteres, se esperaban %d", i+1, len(linea), domain.LineaLongitud)
		}
		for _, r := range linea {
			if !esAlfanumerico(r) {
				return fmt.Errorf("línea %d: carácter no alfanumérico %q", i+1, r)
			}
		}
	}
	return nil
}

func esAlfanumerico(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
