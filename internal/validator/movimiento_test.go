package validator_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idsegen/internal/domain"
	"idsegen/internal/validator"
)

const registroValido = "B5510768108"

var fechaReferencia = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func altaValida() domain.Movimiento {
	return domain.Movimiento{
		Tipo: domain.TipoAlta,
		Empleado: domain.Empleado{
			NSS:    "12345678901",
			Nombre: "Juan Pérez García",
			CURP:   "PEGJ850301HDFRRN01",
		},
		FechaMovimiento: "2024-03-15",
		SBC:             dec("1500.00"),
	}
}

func bajaValida() domain.Movimiento {
	return domain.Movimiento{
		Tipo: domain.TipoBaja,
		Empleado: domain.Empleado{
			NSS:    "12345678901",
			Nombre: "Juan Pérez García",
			CURP:   "PEGJ850301HDFRRN01",
		},
		FechaMovimiento: "2024-03-20",
		Motivo:          domain.MotivoRenuncia,
	}
}

func validar(t *testing.T, mov domain.Movimiento) (domain.Validado, []domain.ValidationFailure) {
	t.Helper()
	return validator.ValidateMovimiento(&mov, registroValido, fechaReferencia)
}

func soloKinds(fallas []domain.ValidationFailure) []domain.ErrorKind {
	kinds := make([]domain.ErrorKind, 0, len(fallas))
	for _, f := range fallas {
		kinds = append(kinds, f.Kind)
	}
	return kinds
}

func TestValidateMovimiento_AltaValida(t *testing.T) {
	validado, fallas := validar(t, altaValida())
	require.Empty(t, fallas)
	require.NotNil(t, validado)

	alta, ok := validado.(domain.Alta)
	require.True(t, ok)
	assert.Equal(t, "12345678901", alta.Empleado.NSS)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), alta.FechaMovimiento)
	assert.True(t, alta.SBC.Equal(decimal.RequireFromString("1500.00")))
}

func TestValidateMovimiento_NSSCorto(t *testing.T) {
	mov := altaValida()
	mov.Empleado.NSS = "5554567890" // 10 digits

	validado, fallas := validar(t, mov)
	assert.Nil(t, validado)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorNSSInvalido, fallas[0].Kind)
	assert.Equal(t, "empleado.nss", fallas[0].Campo)
	assert.Equal(t, "5554567890", fallas[0].Valor)
	assert.Contains(t, fallas[0].Mensaje, "actual: 10")
}

func TestValidateMovimiento_NSSNoNumerico(t *testing.T) {
	mov := altaValida()
	mov.Empleado.NSS = "1234567890X"

	_, fallas := validar(t, mov)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorNSSInvalido, fallas[0].Kind)
	assert.Contains(t, fallas[0].Mensaje, "dígitos numéricos")
}

func TestValidateMovimiento_CURP(t *testing.T) {
	tests := []struct {
		name    string
		curp    string
		rechaza bool
	}{
		{"valida", "PEGJ850301HDFRRN01", false},
		{"vacia permitida", "", false},
		{"corta", "PEGJ850301", true},
		{"caracteres invalidos", "PEGJ850301HDFRRN0!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mov := altaValida()
			mov.Empleado.CURP = tt.curp
			_, fallas := validar(t, mov)
			if tt.rechaza {
				require.Len(t, fallas, 1)
				assert.Equal(t, domain.ErrorCURPInvalido, fallas[0].Kind)
				assert.Equal(t, "empleado.curp", fallas[0].Campo)
			} else {
				assert.Empty(t, fallas)
			}
		})
	}
}

func TestValidateMovimiento_RegistroPatronalInvalido(t *testing.T) {
	mov := altaValida()
	_, fallas := validator.ValidateMovimiento(&mov, "CORTO", fechaReferencia)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorRegistroPatronalInvalido, fallas[0].Kind)
	assert.Contains(t, fallas[0].Mensaje, "actual: 5")
}

func TestValidateMovimiento_FechaSinRollover(t *testing.T) {
	mov := altaValida()
	mov.FechaMovimiento = "2024-02-30"

	_, fallas := validar(t, mov)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorFechaInvalida, fallas[0].Kind)
	assert.Equal(t, "2024-02-30", fallas[0].Valor)
}

func TestValidateMovimiento_FechaMalFormada(t *testing.T) {
	for _, fecha := range []string{"15-03-2024", "2024-13-01", "no-es-fecha", ""} {
		mov := altaValida()
		mov.FechaMovimiento = fecha
		_, fallas := validar(t, mov)
		require.Len(t, fallas, 1, "fecha %q", fecha)
		assert.Equal(t, domain.ErrorFechaInvalida, fallas[0].Kind)
	}
}

func TestValidateMovimiento_FechaFutura(t *testing.T) {
	mov := altaValida()
	mov.FechaMovimiento = "2025-06-01" // after the reference date

	_, fallas := validar(t, mov)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorFechaFutura, fallas[0].Kind)
}

func TestValidateMovimiento_SBCLimites(t *testing.T) {
	tests := []struct {
		name    string
		sbc     *decimal.Decimal
		rechaza bool
	}{
		{"tope exacto aceptado", dec("2089.12"), false},
		{"sobre el tope", dec("2089.13"), true},
		{"cero", dec("0"), true},
		{"negativo", dec("-1.00"), true},
		{"faltante", nil, true},
		{"minimo valido", dec("0.01"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mov := altaValida()
			mov.SBC = tt.sbc
			validado, fallas := validar(t, mov)
			if tt.rechaza {
				require.Len(t, fallas, 1)
				assert.Equal(t, domain.ErrorSBCFueraDeRango, fallas[0].Kind)
				assert.Equal(t, "sbc", fallas[0].Campo)
			} else {
				require.Empty(t, fallas)
				require.NotNil(t, validado)
			}
		})
	}
}

func TestValidateMovimiento_BajaConSBC(t *testing.T) {
	mov := bajaValida()
	mov.SBC = dec("1200.00") // any value is forbidden on a baja

	_, fallas := validar(t, mov)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorSBCNoPermitido, fallas[0].Kind)
	assert.Equal(t, "1200", fallas[0].Valor[:4])
}

func TestValidateMovimiento_Motivo(t *testing.T) {
	t.Run("baja sin motivo", func(t *testing.T) {
		mov := bajaValida()
		mov.Motivo = ""
		_, fallas := validar(t, mov)
		require.Len(t, fallas, 1)
		assert.Equal(t, domain.ErrorMotivoRequerido, fallas[0].Kind)
	})

	t.Run("baja con motivo desconocido", func(t *testing.T) {
		mov := bajaValida()
		mov.Motivo = "jubilacion"
		_, fallas := validar(t, mov)
		require.Len(t, fallas, 1)
		assert.Equal(t, domain.ErrorMotivoInvalido, fallas[0].Kind)
	})

	t.Run("alta con motivo", func(t *testing.T) {
		mov := altaValida()
		mov.Motivo = domain.MotivoRenuncia
		_, fallas := validar(t, mov)
		require.Len(t, fallas, 1)
		assert.Equal(t, domain.ErrorMotivoNoPermitido, fallas[0].Kind)
	})

	t.Run("todos los motivos reconocidos", func(t *testing.T) {
		for motivo := range domain.MotivoBajaCodigo {
			mov := bajaValida()
			mov.Motivo = motivo
			validado, fallas := validar(t, mov)
			require.Empty(t, fallas, "motivo %s", motivo)
			require.NotNil(t, validado)
		}
	})
}

func TestValidateMovimiento_TipoDesconocido(t *testing.T) {
	mov := altaValida()
	mov.Tipo = "reingreso"

	_, fallas := validar(t, mov)
	require.Len(t, fallas, 1)
	assert.Equal(t, domain.ErrorTipoInvalido, fallas[0].Kind)
}

// A single record reports every simultaneous problem, in the fixed check
// order: identity fields, date, type-specific fields.
func TestValidateMovimiento_NoCortaEnPrimerError(t *testing.T) {
	mov := domain.Movimiento{
		Tipo: domain.TipoAlta,
		Empleado: domain.Empleado{
			NSS:  "123",
			CURP: "PEGJ850301", // both too short
		},
		FechaMovimiento: "2024-02-30", // impossible date
		SBC:             dec("9999.99"),
		Motivo:          domain.MotivoDespido, // forbidden on alta
	}

	validado, fallas := validator.ValidateMovimiento(&mov, "XX", fechaReferencia)
	assert.Nil(t, validado)
	assert.Equal(t, []domain.ErrorKind{
		domain.ErrorNSSInvalido,
		domain.ErrorCURPInvalido,
		domain.ErrorRegistroPatronalInvalido,
		domain.ErrorFechaInvalida,
		domain.ErrorSBCFueraDeRango,
		domain.ErrorMotivoNoPermitido,
	}, soloKinds(fallas))
}

func TestValidateMovimiento_BajaValida(t *testing.T) {
	validado, fallas := validar(t, bajaValida())
	require.Empty(t, fallas)

	baja, ok := validado.(domain.Baja)
	require.True(t, ok)
	assert.Equal(t, domain.MotivoRenuncia, baja.Motivo)
	assert.Equal(t, domain.TipoBaja, baja.TipoMovimiento())
}
