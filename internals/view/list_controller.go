package view

import (
	"context"
	"sort"
	"sync"

	helper "sewaaset_client/internals/helpers"
)

// FetchFunc mengambil satu halaman dari server: (items, total, error).
// Filter server-side dikirim sebagai query; filter client-side TIDAK lewat sini.
type FetchFunc[T any] func(ctx context.Context, page, perPage int, filters map[string]string) ([]T, int, error)

// ListController adalah view-model daftar per layar: satu instance per
// pemuatan halaman, dipegang by reference oleh fungsi render — tidak ada
// state mutable level package.
type ListController[T any] struct {
	mu sync.Mutex

	page    int
	perPage int

	serverFilters map[string]string
	clientFilters map[string]func(T) bool

	raw   []T // hasil fetch terakhir, sebelum filter client-side
	items []T
	total int

	// seq menandai tiap request; respons dengan seq lebih tua dari yang
	// sedang ditampilkan dibuang, supaya filter yang diketik cepat tidak
	// saling menimpa di luar urutan
	seq uint64

	resetPage bool

	fetch    FetchFunc[T]
	renderer Renderer[T]
}

func NewListController[T any](perPage int, fetch FetchFunc[T], r Renderer[T]) *ListController[T] {
	return &ListController[T]{
		page:          1,
		perPage:       helper.ClampPerPage(perPage),
		serverFilters: map[string]string{},
		clientFilters: map[string]func(T) bool{},
		fetch:         fetch,
		renderer:      r,
	}
}

// Load memuat halaman `page`. Placeholder loading dirender sinkron sebelum
// request berangkat; hasil yang datang terlambat (stale) dibuang.
func (lc *ListController[T]) Load(ctx context.Context, page int) error {
	lc.mu.Lock()
	if lc.resetPage {
		page = helper.DefaultPage
		lc.resetPage = false
	}
	if page < 1 {
		page = helper.DefaultPage
	}
	lc.page = page
	lc.seq++
	mySeq := lc.seq
	filters := make(map[string]string, len(lc.serverFilters))
	for k, v := range lc.serverFilters {
		filters[k] = v
	}
	perPage := lc.perPage
	lc.renderer.Render(State[T]{Loading: true, Page: page, PerPage: perPage, Total: lc.total})
	lc.mu.Unlock()

	items, total, err := lc.fetch(ctx, page, perPage, filters)

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if mySeq != lc.seq {
		return nil // sudah ada request yang lebih baru
	}
	if err != nil {
		lc.renderer.Render(State[T]{
			Page:    page,
			PerPage: perPage,
			Total:   lc.total,
			Err:     helper.AsApiError(err),
		})
		return err
	}
	lc.raw = items
	lc.total = total
	lc.items = lc.applyClientFilters(items)
	lc.render()
	return nil
}

// SetFilter menyetel filter server-side; filter apapun yang berubah membuat
// Load berikutnya kembali ke halaman 1.
func (lc *ListController[T]) SetFilter(key, value string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if value == "" {
		delete(lc.serverFilters, key)
	} else {
		lc.serverFilters[key] = value
	}
	lc.resetPage = true
}

// SetClientFilter menyetel filter client-side (mis. pencarian substring pada
// data yang sudah diambil). Semua filter client-side digabung dengan AND dan
// diterapkan ulang setiap selesai fetch. Filter yang berubah juga membuat
// Load berikutnya kembali ke halaman 1.
func (lc *ListController[T]) SetClientFilter(name string, pred func(T) bool) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if pred == nil {
		delete(lc.clientFilters, name)
	} else {
		lc.clientFilters[name] = pred
	}
	lc.resetPage = true
	// terapkan langsung ke data yang sudah ada, tanpa fetch ulang
	lc.items = lc.applyClientFilters(lc.raw)
	lc.render()
}

// GoToPage memuat halaman n jika berada dalam [1, PageCount]; di luar rentang
// TIDAK ada request yang diterbitkan (tombolnya memang dinonaktifkan).
func (lc *ListController[T]) GoToPage(ctx context.Context, n int) (bool, error) {
	lc.mu.Lock()
	pageCount := helper.PageCount(lc.total, lc.perPage)
	if n < 1 || n > pageCount {
		lc.mu.Unlock()
		return false, nil
	}
	lc.mu.Unlock()
	return true, lc.Load(ctx, n)
}

// Snapshot mengembalikan potret state saat ini (untuk render ulang dan test).
func (lc *ListController[T]) Snapshot() State[T] {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	items := make([]T, len(lc.items))
	copy(items, lc.items)
	return State[T]{
		Items:   items,
		Total:   lc.total,
		Page:    lc.page,
		PerPage: lc.perPage,
	}
}

func (lc *ListController[T]) render() {
	items := make([]T, len(lc.items))
	copy(items, lc.items)
	lc.renderer.Render(State[T]{
		Items:   items,
		Total:   lc.total,
		Page:    lc.page,
		PerPage: lc.perPage,
	})
}

func (lc *ListController[T]) applyClientFilters(in []T) []T {
	if len(lc.clientFilters) == 0 {
		return in
	}
	names := make([]string, 0, len(lc.clientFilters))
	for name := range lc.clientFilters {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]T, 0, len(in))
next:
	for _, item := range in {
		for _, name := range names {
			if !lc.clientFilters[name](item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
