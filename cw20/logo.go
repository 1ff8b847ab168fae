package cw20

import (
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

const (
	// LogoSizeCap is the largest embedded logo a token accepts, in bytes.
	LogoSizeCap = 5 * 1024

	MimeTypeSvg = "image/svg+xml"
	MimeTypePng = "image/png"
)

var (
	pngHeader   = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	xmlPrefix   = []byte("<?xml ")
	xmlPostfix  = []byte("?>")
	logoInfoTag = "embedded"
)

// Logo is either a URL pointing to an image or an image embedded in the
// contract. Exactly one of the fields is set.
type Logo struct {
	Url      *string       `json:"url,omitempty"`
	Embedded *EmbeddedLogo `json:"embedded,omitempty"`
}

// EmbeddedLogo holds raw image data, either SVG or PNG. Exactly one of
// the fields is non-nil. Both are base64 strings on the wire.
type EmbeddedLogo struct {
	Svg []byte
	Png []byte
}

func LogoFromURL(url string) Logo {
	return Logo{Url: &url}
}

func SvgLogo(data []byte) Logo {
	if data == nil {
		data = []byte{}
	}
	return Logo{Embedded: &EmbeddedLogo{Svg: data}}
}

func PngLogo(data []byte) Logo {
	if data == nil {
		data = []byte{}
	}
	return Logo{Embedded: &EmbeddedLogo{Png: data}}
}

// ValidateBasic checks that exactly one variant is set, recursively.
func (l Logo) ValidateBasic() error {
	switch {
	case l.Url != nil && l.Embedded != nil:
		return errorsmod.Wrap(ErrInvalidLogo, "both url and embedded are set")
	case l.Url != nil:
		return nil
	case l.Embedded != nil:
		return l.Embedded.ValidateBasic()
	default:
		return errorsmod.Wrap(ErrInvalidLogo, "expected one of url, embedded")
	}
}

// Verify checks an embedded logo's size and format. URL logos are not
// fetched and always pass.
func (l Logo) Verify() error {
	if err := l.ValidateBasic(); err != nil {
		return err
	}
	if l.Embedded == nil {
		return nil
	}
	return l.Embedded.Verify()
}

// Info returns the logo as reported by the marketing info query.
func (l Logo) Info() LogoInfo {
	if l.Url != nil {
		return LogoInfo{Url: *l.Url}
	}
	return LogoInfo{Embedded: true}
}

func (l *Logo) UnmarshalJSON(bz []byte) error {
	if err := checkUnionKeys(bz, ErrInvalidLogo, "url", "embedded"); err != nil {
		return err
	}
	type logo Logo
	var v logo
	if err := json.Unmarshal(bz, &v); err != nil {
		return err
	}
	if err := Logo(v).ValidateBasic(); err != nil {
		return err
	}
	*l = Logo(v)
	return nil
}

func (e EmbeddedLogo) ValidateBasic() error {
	switch {
	case e.Svg != nil && e.Png != nil:
		return errorsmod.Wrap(ErrInvalidLogo, "both svg and png are set")
	case e.Svg == nil && e.Png == nil:
		return errorsmod.Wrap(ErrInvalidLogo, "expected one of svg, png")
	}
	return nil
}

// Verify applies the size cap and the per-format header checks.
func (e EmbeddedLogo) Verify() error {
	if err := e.ValidateBasic(); err != nil {
		return err
	}
	if e.Svg != nil {
		return verifySvg(e.Svg)
	}
	return verifyPng(e.Png)
}

// MimeType is the content type served by the download logo query.
func (e EmbeddedLogo) MimeType() string {
	if e.Svg != nil {
		return MimeTypeSvg
	}
	return MimeTypePng
}

func (e EmbeddedLogo) Data() []byte {
	if e.Svg != nil {
		return e.Svg
	}
	return e.Png
}

func (e EmbeddedLogo) MarshalJSON() ([]byte, error) {
	if err := e.ValidateBasic(); err != nil {
		return nil, err
	}
	if e.Svg != nil {
		return json.Marshal(map[string][]byte{"svg": e.Svg})
	}
	return json.Marshal(map[string][]byte{"png": e.Png})
}

func (e *EmbeddedLogo) UnmarshalJSON(bz []byte) error {
	var raw map[string][]byte
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return errorsmod.Wrapf(ErrInvalidLogo, "expected exactly one of svg, png; got %d keys", len(raw))
	}
	var v EmbeddedLogo
	for k, data := range raw {
		if data == nil {
			data = []byte{}
		}
		switch k {
		case "svg":
			v.Svg = data
		case "png":
			v.Png = data
		default:
			return errorsmod.Wrapf(ErrInvalidLogo, "unknown embedded logo variant %q", k)
		}
	}
	*e = v
	return nil
}

// verifySvg requires an xml declaration as the first tag.
func verifySvg(data []byte) error {
	preamble := data
	if i := bytes.IndexByte(data, '>'); i >= 0 {
		preamble = data[:i+1]
	}
	if !bytes.HasPrefix(preamble, xmlPrefix) || !bytes.HasSuffix(preamble, xmlPostfix) {
		return ErrInvalidXmlPreamble
	}
	if len(data) > LogoSizeCap {
		return ErrLogoTooBig
	}
	return nil
}

func verifyPng(data []byte) error {
	if len(data) > LogoSizeCap {
		return ErrLogoTooBig
	}
	if !bytes.HasPrefix(data, pngHeader) {
		return ErrInvalidPngHeader
	}
	return nil
}

// LogoInfo is the logo as returned by the marketing info query: either
// {"url": "..."} or the bare string "embedded".
type LogoInfo struct {
	Url      string
	Embedded bool
}

func (l LogoInfo) MarshalJSON() ([]byte, error) {
	if l.Embedded {
		return json.Marshal(logoInfoTag)
	}
	return json.Marshal(struct {
		Url string `json:"url"`
	}{l.Url})
}

func (l *LogoInfo) UnmarshalJSON(bz []byte) error {
	var tag string
	if err := json.Unmarshal(bz, &tag); err == nil {
		if tag != logoInfoTag {
			return errorsmod.Wrapf(ErrInvalidLogo, "unknown logo info %q", tag)
		}
		*l = LogoInfo{Embedded: true}
		return nil
	}
	var v struct {
		Url *string `json:"url"`
	}
	if err := json.Unmarshal(bz, &v); err != nil {
		return err
	}
	if v.Url == nil {
		return errorsmod.Wrap(ErrInvalidLogo, "logo info must be \"embedded\" or carry a url")
	}
	*l = LogoInfo{Url: *v.Url}
	return nil
}
