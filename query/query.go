package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Params is an ordered query parameter bag. Keys encode in the order they
// were added. The zero value is an empty bag ready for use.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value any
}

// N creates an empty parameter bag.
func N() *Params {
	return &Params{}
}

// Add appends a key with the given value and returns the bag for chaining.
// The value may be a scalar (string, number, bool), nil, or a slice of
// scalars. A nil value drops the key at encode time; a slice contributes one
// pair per non-nil element.
func (p *Params) Add(key string, value any) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Len returns the number of keys in the bag, including keys that will not
// contribute to the encoded output.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// IsEmpty reports whether the bag holds no keys at all.
func (p *Params) IsEmpty() bool {
	return p.Len() == 0
}

// Encode serializes the bag into a query string without a leading "?".
// Nil values drop their key entirely. Slice values drop nil elements and
// repeat the key once per surviving element, preserving element order.
// Zero-value scalars (0, false, "") are kept. Returns "" when no key
// contributes a pair.
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, kv := range p.pairs {
		if kv.value == nil {
			continue
		}
		rv := reflect.ValueOf(kv.value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				el := rv.Index(i)
				if isNil(el) {
					continue
				}
				writePair(&b, kv.key, el.Interface())
			}
			continue
		}
		writePair(&b, kv.key, kv.value)
	}
	return b.String()
}

// writePair appends "key=value" to b, preceded by "&" when b is non-empty.
func writePair(b *strings.Builder, key string, value any) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(url.QueryEscape(key))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(format(value)))
}

// format renders a scalar value for the query string.
func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isNil reports whether a slice element is an absent value. Elements of
// interface or pointer kind holding nil are absent; everything else counts.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	default:
		return false
	}
}
