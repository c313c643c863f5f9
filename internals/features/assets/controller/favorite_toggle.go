package controller

import (
	"context"
	"sync"

	helper "sewaaset_client/internals/helpers"
)

// FavoriteState adalah mesin status ikon hati pada satu kartu aset.
type FavoriteState int

const (
	NotFavorited FavoriteState = iota
	Favorited
	// Unavailable: server melaporkan asetnya sudah tidak tersedia.
	// Status terminal — bukan target toggle, kartu digreyout dan aksi
	// sewa ikut dinonaktifkan.
	Unavailable
)

// FavoriteCard menggambar ulang satu kartu secara atomik.
type FavoriteCard interface {
	RenderFavorite(state FavoriteState, count int, busy bool)
}

// FavoriteToggler adalah bagian AssetService yang dibutuhkan toggle.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, assetID int64, add bool) (int, error)
}

// FavoriteToggle: optimistic update — UI dibalik duluan, panggilan API
// mengonfirmasi atau membatalkannya.
type FavoriteToggle struct {
	mu      sync.Mutex
	assetID int64
	state   FavoriteState
	count   int
	busy    bool
	svc     FavoriteToggler
	card    FavoriteCard
}

func NewFavoriteToggle(assetID int64, favorited bool, count int, svc FavoriteToggler, card FavoriteCard) *FavoriteToggle {
	t := &FavoriteToggle{assetID: assetID, count: count, svc: svc, card: card}
	if favorited {
		t.state = Favorited
	}
	return t
}

// Toggle membalik status favorit. Selama panggilan berjalan kontrol
// dinonaktifkan (busy) supaya tidak ada submit ganda.
func (t *FavoriteToggle) Toggle(ctx context.Context) error {
	t.mu.Lock()
	if t.busy || t.state == Unavailable {
		t.mu.Unlock()
		return nil
	}
	prevState, prevCount := t.state, t.count

	// flip optimistik
	adding := t.state == NotFavorited
	if adding {
		t.state = Favorited
		t.count++
	} else {
		t.state = NotFavorited
		t.count--
	}
	t.busy = true
	t.render()
	t.mu.Unlock()

	total, err := t.svc.ToggleFavorite(ctx, t.assetID, adding)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	if err != nil {
		ae := helper.AsApiError(err)
		if ae.Status == 404 {
			// aset sudah tidak tersedia: paksa ke status terminal,
			// BUKAN sekadar revert yang masih bisa diklik
			t.state = Unavailable
			t.count = prevCount
			t.render()
			return err
		}
		t.state, t.count = prevState, prevCount
		t.render()
		return err
	}
	t.count = total
	t.render()
	return nil
}

// State mengembalikan status dan counter saat ini.
func (t *FavoriteToggle) State() (FavoriteState, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.count
}

// RentEnabled: aksi "sewa" pada kartu ikut mati saat aset tidak tersedia.
func (t *FavoriteToggle) RentEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state != Unavailable
}

func (t *FavoriteToggle) render() {
	t.card.RenderFavorite(t.state, t.count, t.busy)
}
