package domain

import "github.com/google/uuid"

// ValidationFailure records one rule violation on one submitted movement.
// MovimientoIdx is the 1-based position within the employer's submitted list;
// 0 marks an employer-level failure. Values are never mutated after creation.
type ValidationFailure struct {
	MovimientoIdx int       `json:"movimiento_idx"`
	Kind          ErrorKind `json:"tipo"`
	Campo         string    `json:"campo"`
	Valor         string    `json:"valor"`
	Mensaje       string    `json:"mensaje"`
}

// EmpresaErrores groups the failures of one employer, in submission order.
type EmpresaErrores struct {
	RegistroPatronal string              `json:"registro_patronal"`
	Errores          []ValidationFailure `json:"errores"`
}

// BatchReport summarizes a single validation pass over a batch. It is built
// append-only during the pass and read-only afterward.
type BatchReport struct {
	RunID            uuid.UUID        `json:"run_id"`
	TotalEmpresas    int              `json:"total_empresas"`
	TotalMovimientos int              `json:"total_movimientos"`
	Validos          int              `json:"movimientos_validos"`
	Invalidos        int              `json:"movimientos_invalidos"`
	Errores          []EmpresaErrores `json:"errores"`
}

// ErroresDe returns the failures recorded for one employer, or nil.
func (r *BatchReport) ErroresDe(registroPatronal string) []ValidationFailure {
	for i := range r.Errores {
		if r.Errores[i].RegistroPatronal == registroPatronal {
			return r.Errores[i].Errores
		}
	}
	return nil
}

// TotalErrores counts every recorded failure across all employers.
func (r *BatchReport) TotalErrores() int {
	n := 0
	for i := range r.Errores {
		n += len(r.Errores[i].Errores)
	}
	return n
}
