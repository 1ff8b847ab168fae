package cw20

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	errorsmod "cosmossdk.io/errors"
)

// structFields lists the json keys of a struct type. A field without
// omitempty is required.
type structFields struct {
	known    []string
	required []string
}

var fieldCache sync.Map // reflect.Type -> structFields

func fieldsOf(t reflect.Type) structFields {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(structFields)
	}
	var fs structFields
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			inner := fieldsOf(f.Type)
			fs.known = append(fs.known, inner.known...)
			fs.required = append(fs.required, inner.required...)
			continue
		}
		if !f.IsExported() || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fs.known = append(fs.known, name)
		if !strings.Contains(","+opts+",", ",omitempty,") {
			fs.required = append(fs.required, name)
		}
	}
	fieldCache.Store(t, fs)
	return fs
}

// CheckFields applies contract message field rules to the JSON object bz
// before it is decoded into a struct of type t. Every required key must be
// present and not null, and a key may only match a field with its exact
// spelling. Other unknown keys are ignored. A null object passes.
func CheckFields(bz []byte, t reflect.Type) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	fs := fieldsOf(t)
	for key := range raw {
		for _, name := range fs.known {
			if key != name && strings.EqualFold(key, name) {
				return errorsmod.Wrapf(ErrUnknownField, "%q, expected %q", key, name)
			}
		}
	}
	for _, name := range fs.required {
		v, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return errorsmod.Wrapf(ErrMissingField, "%q", name)
		}
	}
	return nil
}

// UnmarshalStrict decodes bz into the struct v points to after CheckFields
// accepts it. Callers pass a pointer to an alias type so their own
// UnmarshalJSON is not re-entered.
func UnmarshalStrict(bz []byte, v interface{}) error {
	if err := CheckFields(bz, reflect.TypeOf(v)); err != nil {
		return err
	}
	return json.Unmarshal(bz, v)
}

// checkUnionKeys fails unless bz is an object holding exactly one key and
// that key is one of known.
func checkUnionKeys(bz []byte, base error, known ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return errorsmod.Wrapf(base, "expected exactly one of %s; got %d keys", strings.Join(known, ", "), len(raw))
	}
	for key := range raw {
		for _, k := range known {
			if key == k {
				return nil
			}
		}
		return errorsmod.Wrapf(base, "unknown variant %q", key)
	}
	return nil
}
