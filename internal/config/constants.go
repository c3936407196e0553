package config

// ConfigFileName is looked up by FindConfig.
const ConfigFileName = "gradual.yaml"

// ConfigFileNames are all recognized config file names, in lookup order.
var ConfigFileNames = []string{"gradual.yaml", "gradual.yml"}

// Binder names used by generated contract terms. Contracts are closed terms,
// so these never clash with user bindings.
const (
	ContractLabelParam = "l"
	ContractValueParam = "t"
	ContractFuncParam  = "f"
	ContractArgParam   = "x"
)

// Primitive operator names, used for printing and tracing.
const (
	IteOpName            = "ite"
	IsZeroOpName         = "isZero"
	IsNumOpName          = "isNum"
	IsBoolOpName         = "isBool"
	IsFunOpName          = "isFun"
	BlameOpName          = "blame"
	ChangePolarityOpName = "chngPol"
	GoDomOpName          = "goDom"
	GoCodomOpName        = "goCodom"
	TagOpName            = "tag"
	PlusOpName           = "+"
)

// Type names as printed by the types package.
const (
	DynTypeName  = "Dyn"
	NumTypeName  = "Num"
	BoolTypeName = "Bool"
)

// Trace colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultTracePrefix is prepended to every trace line.
const DefaultTracePrefix = "eval"
