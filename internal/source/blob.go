package source

import (
	"github.com/tidwall/gjson"
)

// Blob is an opaque JSON document addressed by dotted paths. The zero value
// is an empty mapping.
type Blob struct {
	raw string
}

// NewBlob wraps raw JSON. The caller guarantees it is valid.
func NewBlob(raw []byte) Blob {
	return Blob{raw: string(raw)}
}

// Empty reports whether the blob holds no document.
func (b Blob) Empty() bool {
	r := gjson.Parse(b.raw)
	if !r.IsObject() {
		return !r.Exists()
	}
	return len(r.Map()) == 0
}

// Raw returns the JSON text, "{}" for the zero value.
func (b Blob) Raw() string {
	if b.raw == "" {
		return "{}"
	}
	return b.raw
}

// Get returns the result at path.
func (b Blob) Get(path string) gjson.Result {
	return gjson.Get(b.raw, path)
}

// Int returns the integer at path; ok is false if absent or not a number.
func (b Blob) Int(path string) (int64, bool) {
	r := b.Get(path)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Int(), true
}

// Float returns the number at path; ok is false if absent or not a number.
func (b Blob) Float(path string) (float64, bool) {
	r := b.Get(path)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Float(), true
}

// String returns the string at path; ok is false if absent or not a string.
func (b Blob) String(path string) (string, bool) {
	r := b.Get(path)
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}
