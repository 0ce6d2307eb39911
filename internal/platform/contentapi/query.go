package contentapi

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query is a flat parameter map. Scalar values produce one key; slices produce
// the key repeated once per element. Nil values are skipped.
type Query map[string]any

// Values converts q into url.Values.
func (q Query) Values() url.Values {
	v := url.Values{}
	for k, val := range q {
		switch x := val.(type) {
		case nil:
		case string:
			v.Set(k, x)
		case []string:
			for _, s := range x {
				v.Add(k, s)
			}
		case int:
			v.Set(k, strconv.Itoa(x))
		case []int:
			for _, n := range x {
				v.Add(k, strconv.Itoa(n))
			}
		case bool:
			v.Set(k, strconv.FormatBool(x))
		case fmt.Stringer:
			v.Set(k, x.String())
		default:
			v.Set(k, fmt.Sprint(x))
		}
	}
	return v
}

// Encode serializes q with keys in sorted order.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	return q.Values().Encode()
}
