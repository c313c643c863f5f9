package helper

import "math"

const (
	DefaultPage  = 1
	WindowWidth  = 5 // jumlah maksimum tombol nomor halaman yang ditampilkan
	MinPerPage   = 5
	MaxPerPage   = 10
)

// Pagination adalah metadata halaman yang dikirim backend bersama daftar.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// PageCount menghitung jumlah halaman: ceil(total / perPage).
func PageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// ClampPerPage membatasi per_page ke rentang yang dipakai tiap layar.
func ClampPerPage(per int) int {
	if per < MinPerPage {
		return MinPerPage
	}
	if per > MaxPerPage {
		return MaxPerPage
	}
	return per
}

// Window mengembalikan nomor-nomor halaman yang ditampilkan: paling banyak
// `width` tombol, berpusat di halaman aktif, dijepit ke rentang [1, pageCount].
func Window(current, pageCount, width int) []int {
	if pageCount <= 0 || width <= 0 {
		return nil
	}
	if width > pageCount {
		width = pageCount
	}
	start := current - width/2
	if start < 1 {
		start = 1
	}
	if start+width-1 > pageCount {
		start = pageCount - width + 1
	}
	pages := make([]int, 0, width)
	for p := start; p < start+width; p++ {
		pages = append(pages, p)
	}
	return pages
}
