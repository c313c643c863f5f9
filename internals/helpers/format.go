package helper

import (
	"fmt"
	"strconv"
)

// FormatRupiah menampilkan harga dengan pemisah ribuan: 5000000 → "Rp 5.000.000".
func FormatRupiah(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return fmt.Sprintf("%sRp %s", sign, string(out))
}
