package reservationapi

import (
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
}

// encodeParams keeps parameter order, unlike url.Values.Encode which sorts keys.
func encodeParams(params []param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
