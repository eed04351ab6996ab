package blocks

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/asaskevich/govalidator"
	"github.com/iancoleman/strcase"
)

// FieldError describes one rejected field. Path uses the same dotted form
// as editor operations, e.g. "images.2.url".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every problem found in a config.
type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Message
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsTransient reports whether ref is browser-local image data that cannot be
// served to anyone else.
func IsTransient(ref string) bool {
	ref = strings.TrimSpace(strings.ToLower(ref))
	return strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "blob:")
}

// Validate checks a config before it is saved. Image fields must not hold
// transient data, absolute links must be well formed, and emails must parse.
func Validate(cfg Config) error {
	v := reflect.ValueOf(cfg)
	var fields []FieldError
	walk(v, "", &fields)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Kind: cfg.Kind(), Fields: fields}
}

func walk(v reflect.Value, path string, out *[]FieldError) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), path, out)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), join(path, strconv.Itoa(i)), out)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous || !f.IsExported() {
				continue
			}
			name := jsonName(f)
			fieldPath := join(path, name)
			if rule := f.Tag.Get("lp"); rule != "" && v.Field(i).Kind() == reflect.String {
				if msg := check(rule, name, v.Field(i).String()); msg != "" {
					*out = append(*out, FieldError{Path: fieldPath, Message: msg})
				}
				continue
			}
			walk(v.Field(i), fieldPath, out)
		}
	}
}

func check(rule, name, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	label := fieldLabel(name)
	switch rule {
	case "image":
		if IsTransient(value) {
			return fmt.Sprintf("%s contains temporary data. Please upload the image properly.", label)
		}
		if isAbsolute(value) && !govalidator.IsURL(value) {
			return fmt.Sprintf("%s is not a valid image URL.", label)
		}
	case "link":
		if IsTransient(value) {
			return fmt.Sprintf("%s cannot point at temporary data.", label)
		}
		if isAbsolute(value) && !govalidator.IsURL(value) {
			return fmt.Sprintf("%s is not a valid URL.", label)
		}
	case "email":
		if !govalidator.IsEmail(value) {
			return fmt.Sprintf("%s is not a valid email address.", label)
		}
	}
	return ""
}

func isAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// fieldLabel turns "desktopImage" into "Desktop image".
func fieldLabel(name string) string {
	words := strcase.ToDelimited(name, ' ')
	if words == "" {
		return name
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

func join(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
