package domain

// TipoMovimiento represents the kind of workforce movement reported to IDSE.
type TipoMovimiento string

const (
	TipoAlta         TipoMovimiento = "alta"
	TipoBaja         TipoMovimiento = "baja"
	TipoModificacion TipoMovimiento = "modificacion"
)

// TipoMovimientoCodigo maps each movement type to its 2-digit IDSE wire code.
var TipoMovimientoCodigo = map[TipoMovimiento]string{
	TipoAlta:         "07",
	TipoModificacion: "08",
	TipoBaja:         "09",
}

// TipoMovimientoDesdeCodigo is the inverse of TipoMovimientoCodigo.
var TipoMovimientoDesdeCodigo = map[string]TipoMovimiento{
	"07": TipoAlta,
	"08": TipoModificacion,
	"09": TipoBaja,
}

// TipoMovimientoArchivo maps each movement type to the 3-letter code used in
// generated filenames.
var TipoMovimientoArchivo = map[TipoMovimiento]string{
	TipoAlta:         "ALT",
	TipoModificacion: "MOD",
	TipoBaja:         "BAJ",
}

// TipoMovimientoValido reports whether t is a recognized movement type.
func TipoMovimientoValido(t TipoMovimiento) bool {
	_, ok := TipoMovimientoCodigo[t]
	return ok
}

// MotivoBaja represents the termination reason on a baja movement.
type MotivoBaja string

const (
	MotivoRenuncia        MotivoBaja = "renuncia"
	MotivoDespido         MotivoBaja = "despido"
	MotivoTerminoContrato MotivoBaja = "termino_contrato"
	MotivoInvalidez       MotivoBaja = "invalidez"
	MotivoMuerte          MotivoBaja = "muerte"
)

// MotivoBajaCodigo maps each termination reason to its 2-digit IDSE code.
var MotivoBajaCodigo = map[MotivoBaja]string{
	MotivoRenuncia:        "01",
	MotivoDespido:         "02",
	MotivoTerminoContrato: "03",
	MotivoInvalidez:       "04",
	MotivoMuerte:          "05",
}

// MotivoBajaDesdeCodigo is the inverse of MotivoBajaCodigo.
var MotivoBajaDesdeCodigo = map[string]MotivoBaja{
	"01": MotivoRenuncia,
	"02": MotivoDespido,
	"03": MotivoTerminoContrato,
	"04": MotivoInvalidez,
	"05": MotivoMuerte,
}

// MotivoBajaValido reports whether m is a recognized termination reason.
func MotivoBajaValido(m MotivoBaja) bool {
	_, ok := MotivoBajaCodigo[m]
	return ok
}

// ErrorKind classifies a single validation failure.
type ErrorKind string

const (
	ErrorNSSInvalido              ErrorKind = "nss_invalido"
	ErrorCURPInvalido             ErrorKind = "curp_invalido"
	ErrorRegistroPatronalInvalido ErrorKind = "registro_patronal_invalido"
	ErrorFechaInvalida            ErrorKind = "fecha_invalida"
	ErrorFechaFutura              ErrorKind = "fecha_futura"
	ErrorTipoInvalido             ErrorKind = "tipo_invalido"
	ErrorSBCFueraDeRango          ErrorKind = "sbc_fuera_de_rango"
	ErrorSBCNoPermitido           ErrorKind = "sbc_no_permitido"
	ErrorMotivoRequerido          ErrorKind = "motivo_requerido"
	ErrorMotivoNoPermitido        ErrorKind = "motivo_no_permitido"
	ErrorMotivoInvalido           ErrorKind = "motivo_invalido"
	ErrorDuplicadoAlta            ErrorKind = "duplicado_alta"
	ErrorDuplicadoBaja            ErrorKind = "duplicado_baja"
	ErrorModificacionDuplicada    ErrorKind = "modificacion_duplicada"
	ErrorLimiteMovimientos        ErrorKind = "limite_movimientos_excedido"
)
