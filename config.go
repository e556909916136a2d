package firescript

import "fmt"

// Config holds dotted-path settings. CompileSource reads
// ownership.enable_drops; no pass reads the other seeded settings.
type Config map[string]*cfgVal

// NewConfig returns a Config primed with the compiler's default
// settings.
func NewConfig() *Config {
	m := make(Config)
	m.SetString("resolver.import_root", "")
	m.SetBool("parser.defer_undefined_identifiers", false)
	m.SetBool("ownership.enable_drops", true)
	m.SetBool("semantic.strict_join", false)
	return &m
}

type cfgValType int

const (
	cfgValTypeUndefined cfgValType = iota
	cfgValTypeBool
	cfgValTypeString
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValTypeUndefined: "undefined",
		cfgValTypeBool:      "bool",
		cfgValTypeString:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asString string
}

// assignType locks v to vt the first time it is set and rejects any
// later assignment of a different type to the same path.
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValTypeUndefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	if (*c)[path] == nil {
		(*c)[path] = &cfgVal{}
	}
	(*c)[path].assignType(cfgValTypeBool)
	(*c)[path].asBool = v
}

func (c *Config) SetString(path string, v string) {
	if (*c)[path] == nil {
		(*c)[path] = &cfgVal{}
	}
	(*c)[path].assignType(cfgValTypeString)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeBool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeString)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}
