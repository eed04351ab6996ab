package blocks

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/oklog/ulid/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NewItemID generates ids for list items appended without one.
var NewItemID = func() string {
	return strings.ToLower(ulid.Make().String())
}

// The edit functions below never modify their input. Each encodes cfg,
// applies the change to the encoded document, and migrates the result into a
// fresh Config, so list edits always produce new slices.

// Set replaces the value at path, e.g. "title" or "agent.phone".
func Set(cfg Config, path string, value json.RawMessage) (Config, error) {
	t, err := resolve(cfg, path)
	if err != nil {
		return nil, err
	}
	if err := checkValue(t, value); err != nil {
		return nil, errors.WithDetails(err, "path", path)
	}
	return rewrite(cfg, func(doc []byte) ([]byte, error) {
		return sjson.SetRawBytes(doc, path, value)
	})
}

// Append adds item to the end of the list at path. Object items whose type
// declares an id get one when it is missing.
func Append(cfg Config, path string, item json.RawMessage) (Config, error) {
	elem, err := listElem(cfg, path)
	if err != nil {
		return nil, err
	}
	item, err = prepareItem(elem, item, "")
	if err != nil {
		return nil, errors.WithDetails(err, "path", path)
	}
	return rewrite(cfg, func(doc []byte) ([]byte, error) {
		return sjson.SetRawBytes(doc, path+".-1", item)
	})
}

// Update replaces the item at index. An item sent without an id keeps the id
// of the entry it replaces.
func Update(cfg Config, path string, index int, item json.RawMessage) (Config, error) {
	elem, err := listElem(cfg, path)
	if err != nil {
		return nil, err
	}
	return rewrite(cfg, func(doc []byte) ([]byte, error) {
		current, err := itemAt(doc, path, index)
		if err != nil {
			return nil, err
		}
		item, err := prepareItem(elem, item, current.Get("id").String())
		if err != nil {
			return nil, errors.WithDetails(err, "path", path)
		}
		return sjson.SetRawBytes(doc, path+"."+strconv.Itoa(index), item)
	})
}

// Remove deletes the item at index.
func Remove(cfg Config, path string, index int) (Config, error) {
	if _, err := listElem(cfg, path); err != nil {
		return nil, err
	}
	return rewrite(cfg, func(doc []byte) ([]byte, error) {
		if _, err := itemAt(doc, path, index); err != nil {
			return nil, err
		}
		return sjson.DeleteBytes(doc, path+"."+strconv.Itoa(index))
	})
}

// Move reorders the list at path, placing the item at from at position to.
func Move(cfg Config, path string, from, to int) (Config, error) {
	if _, err := listElem(cfg, path); err != nil {
		return nil, err
	}
	return rewrite(cfg, func(doc []byte) ([]byte, error) {
		items := gjson.GetBytes(doc, path).Array()
		if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
			return nil, errors.WithDetails(ErrIndexOutOfRange, "path", path, "from", from, "to", to, "len", len(items))
		}
		raws := make([]json.RawMessage, len(items))
		for i, it := range items {
			raws[i] = json.RawMessage(it.Raw)
		}
		moved := raws[from]
		raws = append(raws[:from:from], raws[from+1:]...)
		raws = append(raws[:to], append([]json.RawMessage{moved}, raws[to:]...)...)
		list, err := json.Marshal(raws)
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(doc, path, list)
	})
}

// Len returns the number of items in the list at path, or -1 when path is
// not a list of cfg.
func Len(cfg Config, path string) int {
	doc, err := Encode(cfg)
	if err != nil {
		return -1
	}
	res := gjson.GetBytes(doc, path)
	if !res.IsArray() {
		return -1
	}
	return len(res.Array())
}

func rewrite(cfg Config, apply func(doc []byte) ([]byte, error)) (Config, error) {
	doc, err := Encode(cfg)
	if err != nil {
		return nil, err
	}
	next, err := apply(doc)
	if err != nil {
		return nil, err
	}
	return Migrate(cfg.Kind(), next)
}

func itemAt(doc []byte, path string, index int) (gjson.Result, error) {
	items := gjson.GetBytes(doc, path).Array()
	if index < 0 || index >= len(items) {
		return gjson.Result{}, errors.WithDetails(ErrIndexOutOfRange, "path", path, "index", index, "len", len(items))
	}
	return items[index], nil
}

func listElem(cfg Config, path string) (reflect.Type, error) {
	t, err := resolve(cfg, path)
	if err != nil {
		return nil, err
	}
	if t.Kind() != reflect.Slice || t == rawMessageType {
		return nil, errors.WithDetails(ErrNotAList, "path", path)
	}
	return t.Elem(), nil
}

func prepareItem(elem reflect.Type, item json.RawMessage, keepID string) (json.RawMessage, error) {
	if err := checkValue(elem, item); err != nil {
		return nil, err
	}
	if !hasIDField(elem) {
		return item, nil
	}
	if gjson.GetBytes(item, "id").String() != "" {
		return item, nil
	}
	id := keepID
	if id == "" {
		id = NewItemID()
	}
	return sjson.SetBytes(item, "id", id)
}

func checkValue(t reflect.Type, value json.RawMessage) error {
	if !json.Valid(value) {
		return ErrInvalidValue
	}
	if err := json.Unmarshal(value, reflect.New(t).Interface()); err != nil {
		return errors.WithDetails(ErrInvalidValue, "reason", err.Error())
	}
	return nil
}

func hasIDField(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := declaredFields(t)["id"]
	return ok
}

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// FieldRule returns the lp rule ("image", "link", "email" or "") declared on
// the field at path.
func FieldRule(cfg Config, path string) (string, error) {
	_, rule, err := resolveField(cfg, path)
	return rule, err
}

// resolve walks path through cfg's declared schema and returns the type at
// its end. Unknown names are rejected, so edits cannot invent fields.
func resolve(cfg Config, path string) (reflect.Type, error) {
	t, _, err := resolveField(cfg, path)
	return t, err
}

func resolveField(cfg Config, path string) (reflect.Type, string, error) {
	if path == "" {
		return nil, "", errors.WithDetails(ErrUnknownField, "path", path)
	}
	t := reflect.TypeOf(cfg)
	rule := ""
	for _, seg := range strings.Split(path, ".") {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Slice:
			if _, err := strconv.Atoi(seg); err != nil {
				return nil, "", errors.WithDetails(ErrUnknownField, "path", path, "segment", seg)
			}
			t = t.Elem()
			rule = ""
		case reflect.Struct:
			idx, ok := declaredFields(t)[seg]
			if !ok {
				return nil, "", errors.WithDetails(ErrUnknownField, "path", path, "segment", seg)
			}
			f := t.Field(idx)
			t = f.Type
			rule = f.Tag.Get("lp")
		default:
			return nil, "", errors.WithDetails(ErrUnknownField, "path", path, "segment", seg)
		}
	}
	return t, rule, nil
}
