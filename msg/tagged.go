package msg

import (
	"encoding/json"
	"reflect"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/baron-chain/cw20-bc/cw20"
)

// variantTag returns the only key of an externally tagged JSON object,
// provided it is one of known, together with the variant body.
func variantTag(bz []byte, known []string) (string, json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bz, &raw); err != nil {
		return "", nil, err
	}
	switch len(raw) {
	case 0:
		return "", nil, ErrEmptyMsg
	case 1:
	default:
		return "", nil, errorsmod.Wrapf(ErrMultipleVariants, "got %d keys", len(raw))
	}
	for tag, body := range raw {
		for _, k := range known {
			if tag == k {
				return tag, body, nil
			}
		}
		return "", nil, errorsmod.Wrapf(ErrUnknownVariant, "%q", tag)
	}
	return "", nil, ErrEmptyMsg
}

// decodeVariant decodes the externally tagged object bz into v, a pointer
// to a union struct, after checking the variant body against the fields of
// the type it decodes into.
func decodeVariant(bz []byte, known []string, v interface{}) error {
	tag, body, err := variantTag(bz, known)
	if err != nil {
		return err
	}
	if t, ok := variantType(reflect.TypeOf(v).Elem(), tag); ok {
		if err := cw20.CheckFields(body, t); err != nil {
			return errorsmod.Wrapf(err, "decode %s", tag)
		}
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return errorsmod.Wrapf(err, "decode %s", tag)
	}
	return nil
}

// variantType is the body type of the union field tagged tag.
func variantType(union reflect.Type, tag string) (reflect.Type, bool) {
	for i := 0; i < union.NumField(); i++ {
		f := union.Field(i)
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name == tag {
			return f.Type.Elem(), true
		}
	}
	return nil, false
}

// setTags collects the tags whose variant is present.
type setTags []string

func (s *setTags) add(tag string, present bool) {
	if present {
		*s = append(*s, tag)
	}
}

// one returns the single set tag or the error explaining why there is not
// exactly one.
func (s setTags) one() (string, error) {
	switch len(s) {
	case 0:
		return "", ErrEmptyMsg
	case 1:
		return s[0], nil
	default:
		return "", errorsmod.Wrapf(ErrMultipleVariants, "%v", []string(s))
	}
}
