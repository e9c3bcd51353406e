package validator

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"idsegen/internal/domain"
)

// Default submission limits, recoverable via configuration.
const (
	DefaultMaxMovimientosPorEmpresa = 1000
	DefaultMaxEmpresas              = 100
)

// BatchValidator validates a full parsed batch. The zero value is not ready
// to use; construct it with NewBatchValidator.
type BatchValidator struct {
	maxMovimientosPorEmpresa int
	maxEmpresas              int

	// Now is the reference date for the future-date check. Tests pin it;
	// NewBatchValidator defaults it to time.Now().
	Now time.Time
}

// NewBatchValidator creates a BatchValidator with the given submission
// limits. Non-positive limits fall back to the defaults.
func NewBatchValidator(maxMovimientosPorEmpresa, maxEmpresas int) *BatchValidator {
	if maxMovimientosPorEmpresa <= 0 {
		maxMovimientosPorEmpresa = DefaultMaxMovimientosPorEmpresa
	}
	if maxEmpresas <= 0 {
		maxEmpresas = DefaultMaxEmpresas
	}
	return &BatchValidator{
		maxMovimientosPorEmpresa: maxMovimientosPorEmpresa,
		maxEmpresas:              maxEmpresas,
		Now:                      time.Now(),
	}
}

// Result carries the outcome of one validation pass: the accepted movements
// in validation-pass order and the report covering every submitted one.
type Result struct {
	Report    domain.BatchReport
	Aceptados []domain.Aceptado
}

// llaveUnicidad scopes the uniqueness rules to one employee of one employer
// within one period.
type llaveUnicidad struct {
	registroPatronal string
	nss              string
	periodo          domain.Periodo
}

// Validate runs the whole pass: per-movement field checks in submission
// order, then the cross-batch uniqueness rules over the accepted set. An
// invalid movement never blocks any other movement; only a structurally
// malformed batch produces an error.
func (v *BatchValidator) Validate(batch *domain.Batch) (*Result, error) {
	if batch == nil || batch.Empresas == nil {
		return nil, domain.ErrBatchMalformado
	}
	if len(batch.Empresas) > v.maxEmpresas {
		return nil, fmt.Errorf("%w: %d empresas, límite %d", domain.ErrDemasiadasEmpresas, len(batch.Empresas), v.maxEmpresas)
	}

	report := domain.BatchReport{
		RunID:         uuid.New(),
		TotalEmpresas: len(batch.Empresas),
	}

	type grupoEmpresa struct {
		registroPatronal string
		fallas           []domain.ValidationFailure
		aceptados        []domain.Aceptado
	}
	grupos := make([]*grupoEmpresa, 0, len(batch.Empresas))

	for i := range batch.Empresas {
		emp := &batch.Empresas[i]
		g := &grupoEmpresa{registroPatronal: emp.RegistroPatronal}
		grupos = append(grupos, g)

		report.TotalMovimientos += len(emp.Movimientos)

		if len(emp.Movimientos) > v.maxMovimientosPorEmpresa {
			g.fallas = append(g.fallas, domain.ValidationFailure{
				MovimientoIdx: 0,
				Kind:          domain.ErrorLimiteMovimientos,
				Campo:         "empresa.movimientos",
				Valor:         fmt.Sprintf("%d", len(emp.Movimientos)),
				Mensaje: fmt.Sprintf("la empresa excede el límite de %d movimientos (actual: %d); ningún movimiento fue procesado",
					v.maxMovimientosPorEmpresa, len(emp.Movimientos)),
			})
			continue
		}

		for j := range emp.Movimientos {
			idx := j + 1
			validado, fallas := ValidateMovimiento(&emp.Movimientos[j], emp.RegistroPatronal, v.Now)
			if len(fallas) > 0 {
				for k := range fallas {
					fallas[k].MovimientoIdx = idx
				}
				g.fallas = append(g.fallas, fallas...)
				continue
			}
			g.aceptados = append(g.aceptados, domain.Aceptado{
				RegistroPatronal: emp.RegistroPatronal,
				MovimientoIdx:    idx,
				Movimiento:       validado,
			})
		}
	}

	// Uniqueness pass over the accepted set. Submission order is the
	// tie-break: the first occurrence wins, later ones are rejected.
	altasVistas := make(map[llaveUnicidad]bool)
	bajasVistas := make(map[llaveUnicidad]bool)
	sbcVistos := make(map[llaveUnicidad]map[string]bool)

	var aceptados []domain.Aceptado
	for _, g := range grupos {
		for _, a := range g.aceptados {
			llave := llaveUnicidad{
				registroPatronal: a.RegistroPatronal,
				nss:              a.Movimiento.Trabajador().NSS,
				periodo:          a.Periodo(),
			}
			if f := revisarUnicidad(a, llave, altasVistas, bajasVistas, sbcVistos); f != nil {
				g.fallas = append(g.fallas, *f)
				continue
			}
			aceptados = append(aceptados, a)
		}
	}

	for _, g := range grupos {
		if len(g.fallas) == 0 {
			continue
		}
		// Uniqueness failures were appended after the field failures;
		// restore non-decreasing movement order for reporting.
		sort.SliceStable(g.fallas, func(i, j int) bool {
			return g.fallas[i].MovimientoIdx < g.fallas[j].MovimientoIdx
		})
		report.Errores = append(report.Errores, domain.EmpresaErrores{
			RegistroPatronal: g.registroPatronal,
			Errores:          g.fallas,
		})
	}

	report.Validos = len(aceptados)
	report.Invalidos = report.TotalMovimientos - report.Validos

	return &Result{Report: report, Aceptados: aceptados}, nil
}

// revisarUnicidad applies the per-(employer, employee, period) limits: at
// most one alta and one baja, and no two modificaciones with identical SBC.
func revisarUnicidad(
	a domain.Aceptado,
	llave llaveUnicidad,
	altasVistas, bajasVistas map[llaveUnicidad]bool,
	sbcVistos map[llaveUnicidad]map[string]bool,
) *domain.ValidationFailure {
	switch mov := a.Movimiento.(type) {
	case domain.Alta:
		if altasVistas[llave] {
			return &domain.ValidationFailure{
				MovimientoIdx: a.MovimientoIdx,
				Kind:          domain.ErrorDuplicadoAlta,
				Campo:         "empleado.nss",
				Valor:         llave.nss,
				Mensaje: fmt.Sprintf("solo se permite una alta por empleado por periodo (NSS %s, periodo %s)",
					llave.nss, llave.periodo),
			}
		}
		altasVistas[llave] = true
	case domain.Baja:
		if bajasVistas[llave] {
			return &domain.ValidationFailure{
				MovimientoIdx: a.MovimientoIdx,
				Kind:          domain.ErrorDuplicadoBaja,
				Campo:         "empleado.nss",
				Valor:         llave.nss,
				Mensaje: fmt.Sprintf("solo se permite una baja por empleado por periodo (NSS %s, periodo %s)",
					llave.nss, llave.periodo),
			}
		}
		bajasVistas[llave] = true
	case domain.Modificacion:
		// Canonical 2-decimal form so "1500.0" and "1500.00" collide.
		sbc := mov.SBC.StringFixed(2)
		if sbcVistos[llave][sbc] {
			return &domain.ValidationFailure{
				MovimientoIdx: a.MovimientoIdx,
				Kind:          domain.ErrorModificacionDuplicada,
				Campo:         "sbc",
				Valor:         sbc,
				Mensaje: fmt.Sprintf("modificaciones con el mismo SBC no permitidas para el empleado en el periodo (NSS %s, SBC $%s, periodo %s)",
					llave.nss, sbc, llave.periodo),
			}
		}
		if sbcVistos[llave] == nil {
			sbcVistos[llave] = make(map[string]bool)
		}
		sbcVistos[llave][sbc] = true
	}
	return nil
}
