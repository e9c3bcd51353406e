package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SBCMaximo is the contribution base salary ceiling enforced by the institute.
var SBCMaximo = decimal.RequireFromString("2089.12")

// Fixed field widths of the IDSE wire format.
const (
	NSSLongitud              = 11
	CURPLongitud             = 18
	RegistroPatronalLongitud = 11
	LineaLongitud            = 44
)

// FormatoFecha is the input date layout for fecha_movimiento.
const FormatoFecha = "2006-01-02"

// Empleado identifies the worker a movement belongs to.
type Empleado struct {
	NSS    string `json:"nss"`
	Nombre string `json:"nombre"`
	CURP   string `json:"curp,omitempty"`
}

// Movimiento is one submitted movement record, as parsed from the input
// batch. Fields are raw: validation decides whether they form an accepted
// movement.
type Movimiento struct {
	Tipo            TipoMovimiento   `json:"tipo"`
	Empleado        Empleado         `json:"empleado"`
	FechaMovimiento string           `json:"fecha_movimiento"`
	SBC             *decimal.Decimal `json:"sbc,omitempty"`
	Motivo          MotivoBaja       `json:"motivo,omitempty"`
}

// Empresa groups the movements submitted for one employer registration.
type Empresa struct {
	RegistroPatronal string       `json:"registro_patronal"`
	Nombre           string       `json:"nombre"`
	RFC              string       `json:"rfc,omitempty"`
	Movimientos      []Movimiento `json:"movimientos"`
}

// Batch is the full parsed submission. The JSON key "empresa" matches the
// institute's interchange format.
type Batch struct {
	Empresas []Empresa `json:"empresa"`
}

// Periodo is the month+year grouping key derived from a movement date.
type Periodo struct {
	Mes  time.Month
	Anio int
}

// PeriodoDe extracts the period of a movement date.
func PeriodoDe(t time.Time) Periodo {
	return Periodo{Mes: t.Month(), Anio: t.Year()}
}

// String renders the period as MMYYYY, the form used in filenames.
func (p Periodo) String() string {
	return fmt.Sprintf("%02d%04d", int(p.Mes), p.Anio)
}
