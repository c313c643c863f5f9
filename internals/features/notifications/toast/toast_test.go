package toast

import (
	"testing"
	"time"
)

type surfaceSpy struct {
	last []Toast
}

func (s *surfaceSpy) RenderToasts(ts []Toast) { s.last = ts }

func TestShow_ToastsStackNotReplace(t *testing.T) {
	surface := &surfaceSpy{}
	tr := NewToaster(surface)

	tr.Show("pengajuan terkirim", Success, 0)
	tr.Show("gagal memuat aset", Error, 0)
	tr.Show("sesi hampir habis", Warning, 0)

	active := tr.Active()
	if len(active) != 3 {
		t.Fatalf("ada %d toast; harus menumpuk jadi 3", len(active))
	}
	if active[0].Kind != Success || active[2].Kind != Warning {
		t.Fatalf("urutan tumpukan salah: %+v", active)
	}
	if len(surface.last) != 3 {
		t.Fatalf("render terakhir %d toast", len(surface.last))
	}
}

func TestDismiss_RemovesAndStopsTimer(t *testing.T) {
	tr := NewToaster(nil)
	id := tr.Show("auto", Info, time.Hour)

	tr.Dismiss(id)
	if len(tr.Active()) != 0 {
		t.Fatal("toast masih ada setelah dismiss")
	}
	if len(tr.timers) != 0 {
		t.Fatal("timer bocor setelah dismiss")
	}
	// dismiss dua kali tidak apa-apa
	tr.Dismiss(id)
}

func TestAutoDismiss_FiresOnce(t *testing.T) {
	tr := NewToaster(nil)
	tr.Show("cepat hilang", Info, 20*time.Millisecond)

	deadline := time.After(2 * time.Second)
	for len(tr.Active()) != 0 {
		select {
		case <-deadline:
			t.Fatal("toast tidak hilang sendiri")
		case <-time.After(5 * time.Millisecond):
		}
	}
	tr.mu.Lock()
	leaked := len(tr.timers)
	tr.mu.Unlock()
	if leaked != 0 {
		t.Fatalf("%d timer bocor", leaked)
	}
}

func TestClear_DropsEverything(t *testing.T) {
	surface := &surfaceSpy{}
	tr := NewToaster(surface)
	tr.Show("satu", Info, time.Hour)
	tr.Show("dua", Info, time.Hour)

	tr.Clear()
	if len(tr.Active()) != 0 || len(tr.timers) != 0 {
		t.Fatal("Clear menyisakan toast atau timer")
	}
	if len(surface.last) != 0 {
		t.Fatal("permukaan masih menampilkan toast")
	}
}
