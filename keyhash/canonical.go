package keyhash

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Canonical renders args as a deterministic byte payload.
//
// Each argument is written as its Go type followed by its JSON encoding, so
// int 1 and float64 1 stay distinct while map keys come out sorted. Values
// encoding/json rejects (funcs, channels, NaN, cyclic data) fall back to
// their %#v representation.
func Canonical(args ...any) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%T:", arg)
		b, err := json.Marshal(arg)
		if err != nil {
			fmt.Fprintf(&buf, "%#v", arg)
			continue
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
