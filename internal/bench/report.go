package bench

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// AppendResult appends "<Label>: Duration: <seconds> seconds\n" to dst.
// Seconds carry six significant digits.
func AppendResult(dst []byte, r Result) []byte {
	dst = append(dst, r.Label...)
	dst = append(dst, ": Duration: "...)
	dst = strconv.AppendFloat(dst, r.Duration.Seconds(), 'g', 6, 64)
	dst = append(dst, " seconds\n"...)
	return dst
}

// WriteResult writes one report line to w.
func WriteResult(w io.Writer, r Result) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = AppendResult(buf.B, r)
	_, err := buf.WriteTo(w)
	return err
}

// WriteReport writes one line per result to w, in order.
func WriteReport(w io.Writer, results []Result) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, r := range results {
		buf.B = AppendResult(buf.B, r)
	}
	_, err := buf.WriteTo(w)
	return err
}
