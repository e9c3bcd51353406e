package validator

import (
	"time"

	"idsegen/internal/domain"
)

// ValidateMovimiento runs every applicable field check against one movement
// and either returns the accepted variant or the full failure list — never
// both. Checks run in a fixed order and never short-circuit, so a single
// record can report several simultaneous problems: identity fields (NSS,
// CURP, registro patronal), then the date, then the type-specific fields.
func ValidateMovimiento(mov *domain.Movimiento, registroPatronal string, now time.Time) (domain.Validado, []domain.ValidationFailure) {
	var fails []domain.ValidationFailure
	add := func(f *domain.ValidationFailure) {
		if f != nil {
			fails = append(fails, *f)
		}
	}

	add(checkNSS(mov.Empleado.NSS))
	add(checkCURP(mov.Empleado.CURP))
	add(checkRegistroPatronal(registroPatronal))

	fecha, fechaFail := parseFecha(mov.FechaMovimiento)
	if fechaFail != nil {
		fails = append(fails, *fechaFail)
	} else {
		add(checkFechaFutura(fecha, mov.FechaMovimiento, now))
	}

	switch mov.Tipo {
	case domain.TipoAlta, domain.TipoModificacion:
		add(checkSBCRango(mov.SBC))
		add(checkMotivoAusente(mov.Motivo))
	case domain.TipoBaja:
		add(checkSBCAusente(mov.SBC))
		add(checkMotivoBaja(mov.Motivo))
	default:
		f := falla(domain.ErrorTipoInvalido, "tipo", string(mov.Tipo),
			"el tipo de movimiento debe ser uno de: alta, baja, modificacion")
		fails = append(fails, f)
	}

	if len(fails) > 0 {
		return nil, fails
	}

	switch mov.Tipo {
	case domain.TipoAlta:
		return domain.Alta{Empleado: mov.Empleado, FechaMovimiento: fecha, SBC: *mov.SBC}, nil
	case domain.TipoBaja:
		return domain.Baja{Empleado: mov.Empleado, FechaMovimiento: fecha, Motivo: mov.Motivo}, nil
	default:
		return domain.Modificacion{Empleado: mov.Empleado, FechaMovimiento: fecha, SBC: *mov.SBC}, nil
	}
}
