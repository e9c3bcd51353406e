package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"idsegen/internal/domain"
)

var (
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
	alnumPattern   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// falla builds a ValidationFailure without a movement index; the movement
// validator stamps the index on.
func falla(kind domain.ErrorKind, campo, valor, mensaje string) domain.ValidationFailure {
	return domain.ValidationFailure{Kind: kind, Campo: campo, Valor: valor, Mensaje: mensaje}
}

// checkNSS verifies the 11-digit numeric social security number.
func checkNSS(nss string) *domain.ValidationFailure {
	if len(nss) != domain.NSSLongitud {
		f := falla(domain.ErrorNSSInvalido, "empleado.nss", nss,
			fmt.Sprintf("el NSS debe tener exactamente %d dígitos (actual: %d)", domain.NSSLongitud, len(nss)))
		return &f
	}
	if !numericPattern.MatchString(nss) {
		f := falla(domain.ErrorNSSInvalido, "empleado.nss", nss,
			"el NSS debe contener solo dígitos numéricos")
		return &f
	}
	return nil
}

// checkCURP verifies the 18-character alphanumeric CURP. An empty CURP is
// allowed: the institute accepts movements without one.
func checkCURP(curp string) *domain.ValidationFailure {
	if curp == "" {
		return nil
	}
	if len(curp) != domain.CURPLongitud {
		f := falla(domain.ErrorCURPInvalido, "empleado.curp", curp,
			fmt.Sprintf("el CURP debe tener exactamente %d caracteres (actual: %d)", domain.CURPLongitud, len(curp)))
		return &f
	}
	if !alnumPattern.MatchString(curp) {
		f := falla(domain.ErrorCURPInvalido, "empleado.curp", curp,
			"el CURP debe contener solo caracteres alfanuméricos")
		return &f
	}
	return nil
}

// checkRegistroPatronal verifies the 11-character alphanumeric employer
// registration code.
func checkRegistroPatronal(registro string) *domain.ValidationFailure {
	if len(registro) != domain.RegistroPatronalLongitud {
		f := falla(domain.ErrorRegistroPatronalInvalido, "empresa.registro_patronal", registro,
			fmt.Sprintf("el registro patronal debe tener exactamente %d caracteres (actual: %d)", domain.RegistroPatronalLongitud, len(registro)))
		return &f
	}
	if !alnumPattern.MatchString(registro) {
		f := falla(domain.ErrorRegistroPatronalInvalido, "empresa.registro_patronal", registro,
			"el registro patronal debe contener solo caracteres alfanuméricos")
		return &f
	}
	return nil
}

// parseFecha parses the movement date, rejecting impossible calendar dates
// (time.Parse does not roll Feb 30 over into March).
func parseFecha(fecha string) (time.Time, *domain.ValidationFailure) {
	t, err := time.Parse(domain.FormatoFecha, fecha)
	if err != nil {
		f := falla(domain.ErrorFechaInvalida, "fecha_movimiento", fecha,
			"la fecha debe tener formato YYYY-MM-DD y ser una fecha real")
		return time.Time{}, &f
	}
	return t, nil
}

// checkFechaFutura rejects movement dates after the reference date.
func checkFechaFutura(t time.Time, fecha string, now time.Time) *domain.ValidationFailure {
	if t.After(now) {
		f := falla(domain.ErrorFechaFutura, "fecha_movimiento", fecha,
			"la fecha de movimiento no puede ser futura")
		return &f
	}
	return nil
}

// checkSBCRango verifies the contribution base salary for altas and
// modificaciones: required, strictly positive, and at most the legal ceiling.
func checkSBCRango(sbc *decimal.Decimal) *domain.ValidationFailure {
	if sbc == nil {
		f := falla(domain.ErrorSBCFueraDeRango, "sbc", "",
			"el SBC es requerido para altas y modificaciones")
		return &f
	}
	if sbc.Sign() <= 0 {
		f := falla(domain.ErrorSBCFueraDeRango, "sbc", sbc.String(),
			"el SBC debe ser mayor a 0")
		return &f
	}
	if sbc.GreaterThan(domain.SBCMaximo) {
		f := falla(domain.ErrorSBCFueraDeRango, "sbc", sbc.String(),
			fmt.Sprintf("el SBC no puede exceder $%s (actual: $%s)", domain.SBCMaximo.String(), sbc.String()))
		return &f
	}
	return nil
}

// checkSBCAusente verifies that a baja carries no contribution base salary.
func checkSBCAusente(sbc *decimal.Decimal) *domain.ValidationFailure {
	if sbc != nil {
		f := falla(domain.ErrorSBCNoPermitido, "sbc", sbc.String(),
			"las bajas no deben incluir SBC")
		return &f
	}
	return nil
}

// checkMotivoBaja verifies the termination reason on a baja.
func checkMotivoBaja(motivo domain.MotivoBaja) *domain.ValidationFailure {
	if motivo == "" {
		f := falla(domain.ErrorMotivoRequerido, "motivo", "",
			"el motivo es obligatorio para bajas")
		return &f
	}
	if !domain.MotivoBajaValido(motivo) {
		f := falla(domain.ErrorMotivoInvalido, "motivo", string(motivo),
			"el motivo de baja debe ser uno de: renuncia, despido, termino_contrato, invalidez, muerte")
		return &f
	}
	return nil
}

// checkMotivoAusente verifies that non-baja movements carry no termination
// reason.
func checkMotivoAusente(motivo domain.MotivoBaja) *domain.ValidationFailure {
	if motivo != "" {
		f := falla(domain.ErrorMotivoNoPermitido, "motivo", string(motivo),
			"el motivo solo se permite para bajas")
		return &f
	}
	return nil
}
