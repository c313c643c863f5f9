package view

import (
	helper "sewaaset_client/internals/helpers"
)

// State adalah potret lengkap sebuah daftar pada satu titik waktu.
// Renderer menerima state utuh dalam SATU panggilan — tidak ada render
// parsial, tidak ada dua komponen menulis ke container yang sama.
type State[T any] struct {
	Loading bool
	Items   []T
	Total   int
	Page    int
	PerPage int
	Err     *helper.ApiError
}

// Renderer menggambar satu potret state secara atomik.
type Renderer[T any] interface {
	Render(State[T])
}

// RendererFunc mengadaptasi fungsi biasa menjadi Renderer.
type RendererFunc[T any] func(State[T])

func (f RendererFunc[T]) Render(s State[T]) { f(s) }

// Empty melaporkan kondisi "tidak ada data" (bukan loading, bukan error).
func (s State[T]) Empty() bool {
	return !s.Loading && s.Err == nil && len(s.Items) == 0
}

// PageCount = ceil(total / perPage).
func (s State[T]) PageCount() int {
	return helper.PageCount(s.Total, s.PerPage)
}

// PageWindow mengembalikan nomor halaman yang ditampilkan (maks 5 tombol,
// berpusat di halaman aktif).
func (s State[T]) PageWindow() []int {
	return helper.Window(s.Page, s.PageCount(), helper.WindowWidth)
}

// HasPrev/HasNext menentukan enabled/disabled tombol Previous/Next.
// Tombol selalu dirender; di batas rentang tombol dinonaktifkan.
func (s State[T]) HasPrev() bool { return s.Page > 1 }
func (s State[T]) HasNext() bool { return s.Page < s.PageCount() }
