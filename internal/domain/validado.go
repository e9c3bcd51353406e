package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Validado is the movement variant produced by a successful validation pass.
// Each variant carries only the fields legal for its type: a Baja has no SBC
// and an Alta or Modificacion has no termination reason. The unexported
// marker keeps the set of variants closed.
type Validado interface {
	TipoMovimiento() TipoMovimiento
	Trabajador() Empleado
	Fecha() time.Time
	movimientoValidado()
}

// Alta is an accepted hire movement.
type Alta struct {
	Empleado        Empleado
	FechaMovimiento time.Time
	SBC             decimal.Decimal
}

func (a Alta) TipoMovimiento() TipoMovimiento { return TipoAlta }
func (a Alta) Trabajador() Empleado           { return a.Empleado }
func (a Alta) Fecha() time.Time               { return a.FechaMovimiento }
func (Alta) movimientoValidado()              {}

// Baja is an accepted termination movement.
type Baja struct {
	Empleado        Empleado
	FechaMovimiento time.Time
	Motivo          MotivoBaja
}

func (b Baja) TipoMovimiento() TipoMovimiento { return TipoBaja }
func (b Baja) Trabajador() Empleado           { return b.Empleado }
func (b Baja) Fecha() time.Time               { return b.FechaMovimiento }
func (Baja) movimientoValidado()              {}

// Modificacion is an accepted salary-change movement.
type Modificacion struct {
	Empleado        Empleado
	FechaMovimiento time.Time
	SBC             decimal.Decimal
}

func (m Modificacion) TipoMovimiento() TipoMovimiento { return TipoModificacion }
func (m Modificacion) Trabajador() Empleado           { return m.Empleado }
func (m Modificacion) Fecha() time.Time               { return m.FechaMovimiento }
func (Modificacion) movimientoValidado()              {}

// Aceptado pairs a validated movement with its employer and its original
// 1-based position within that employer's submitted list.
type Aceptado struct {
	RegistroPatronal string
	MovimientoIdx    int
	Movimiento       Validado
}

// Periodo returns the month+year group the movement belongs to.
func (a Aceptado) Periodo() Periodo {
	return PeriodoDe(a.Movimiento.Fecha())
}
