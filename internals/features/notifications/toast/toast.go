package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind adalah jenis banner umpan balik.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// DefaultAutoDismiss: toast hilang sendiri setelah 5 detik kecuali diminta lain.
const DefaultAutoDismiss = 5 * time.Second

// Toast adalah satu banner yang sedang tampil.
type Toast struct {
	ID      string
	Message string
	Kind    Kind
}

// Surface menggambar tumpukan toast secara atomik (potret lengkap).
type Surface interface {
	RenderToasts([]Toast)
}

// Toaster mengelola tumpukan banner: toast baru MENUMPUK di atas yang lama,
// tidak menggantikannya, kecuali pemanggil memanggil Clear lebih dulu.
type Toaster struct {
	mu      sync.Mutex
	toasts  []Toast
	timers  map[string]*time.Timer
	surface Surface
}

func NewToaster(surface Surface) *Toaster {
	return &Toaster{timers: map[string]*time.Timer{}, surface: surface}
}

// Show menampilkan toast baru. autoDismiss 0 berarti tinggal sampai
// di-dismiss manual. Mengembalikan id untuk Dismiss.
func (t *Toaster) Show(message string, kind Kind, autoDismiss time.Duration) string {
	t.mu.Lock()
	id := uuid.NewString()
	t.toasts = append(t.toasts, Toast{ID: id, Message: message, Kind: kind})
	if autoDismiss > 0 {
		t.timers[id] = time.AfterFunc(autoDismiss, func() { t.Dismiss(id) })
	}
	t.render()
	t.mu.Unlock()
	return id
}

// Dismiss menghapus toast dari tumpukan DAN mematikan timernya sendiri —
// tidak ada timer bocor untuk toast yang sudah hilang.
func (t *Toaster) Dismiss(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			t.render()
			return
		}
	}
}

// Clear membuang semua toast beserta timernya.
func (t *Toaster) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.toasts = nil
	t.render()
}

// Active mengembalikan potret tumpukan saat ini.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)
	return out
}

func (t *Toaster) render() {
	if t.surface == nil {
		return
	}
	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)
	t.surface.RenderToasts(out)
}
