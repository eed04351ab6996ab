package blocks

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"emperror.dev/errors"
	"github.com/creasty/defaults"
)

// Config is a migrated, schema-shaped component config. Implementations are
// the per-kind structs in this package; the unexported method keeps the
// union closed.
type Config interface {
	Kind() Kind
	passthrough() *Passthrough
}

// Passthrough holds top-level fields the kind's schema does not declare so
// they survive a decode/encode cycle unchanged.
type Passthrough struct {
	unknown map[string]json.RawMessage
}

func (p *Passthrough) passthrough() *Passthrough { return p }

// Unknown returns a copy of the preserved fields.
func (p *Passthrough) Unknown() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(p.unknown))
	for k, v := range p.unknown {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// legacyAliaser is implemented by kinds that carry renamed fields. It runs
// after decoding and before defaults, with the raw top-level fields.
type legacyAliaser interface {
	applyLegacy(fields map[string]json.RawMessage)
}

// New returns the default config for kind.
func New(kind Kind) (Config, error) {
	return Migrate(kind, nil)
}

// Migrate turns a stored config of any vintage into the current shape for
// kind. It never fails for a known kind: malformed input, non-objects, and
// mistyped fields degrade to defaults. Migrate(Encode(Migrate(raw))) yields
// the same encoding as Migrate(raw).
func Migrate(kind Kind, raw []byte) (Config, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, errors.WithDetails(ErrUnknownKind, "kind", string(kind))
	}
	cfg := factory()

	fields := objectFields(raw)
	decodeLenient(cfg, fields)

	if a, ok := cfg.(legacyAliaser); ok {
		a.applyLegacy(fields)
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrapf(err, "apply defaults for %s", kind)
	}
	return cfg, nil
}

// Encode serialises cfg, merging back any preserved unknown fields. Declared
// fields win over preserved ones with the same name.
func Encode(cfg Config) ([]byte, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s config", cfg.Kind())
	}
	extra := cfg.passthrough().unknown
	if len(extra) == 0 {
		return b, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, errors.Wrapf(err, "merge %s config", cfg.Kind())
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Clone returns a deep copy of cfg by round-tripping through Encode.
func Clone(cfg Config) (Config, error) {
	b, err := Encode(cfg)
	if err != nil {
		return nil, err
	}
	return Migrate(cfg.Kind(), b)
}

func objectFields(raw []byte) map[string]json.RawMessage {
	fields := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return fields
	}
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// decodeLenient decodes declared fields one at a time so that a single
// mistyped field is dropped instead of discarding the whole config.
func decodeLenient(cfg Config, fields map[string]json.RawMessage) {
	t := reflect.TypeOf(cfg).Elem()
	known := declaredFields(t)

	pt := cfg.passthrough()
	pt.unknown = nil

	clean := make(map[string]json.RawMessage, len(fields))
	for name, value := range fields {
		if _, ok := known[name]; !ok {
			if pt.unknown == nil {
				pt.unknown = make(map[string]json.RawMessage)
			}
			pt.unknown[name] = value
			continue
		}
		trial := reflect.New(t).Interface()
		single, _ := json.Marshal(map[string]json.RawMessage{name: value})
		if err := json.Unmarshal(single, trial); err != nil {
			continue
		}
		clean[name] = value
	}

	b, _ := json.Marshal(clean)
	_ = json.Unmarshal(b, cfg)
}

var fieldCache sync.Map

// declaredFields maps json names to struct field indexes for t.
func declaredFields(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	out := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "" {
			continue
		}
		out[name] = i
	}
	fieldCache.Store(t, out)
	return out
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// Bool reads an optional flag, treating nil as false.
func Bool(b *bool) bool { return b != nil && *b }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
