// Package query serializes ordered parameter bags into URL query strings.
//
// Unlike url.Values, a Params bag preserves insertion order, distinguishes
// absent values (nil, dropped entirely) from zero values (kept), and expands
// slice values into repeated keys:
//
//	q := query.N().
//	    Add("arr", []any{nil, 1}).
//	    Add("val", 2).
//	    Add("x", nil)
//
//	q.Encode() // "arr=1&val=2"
package query
