package controller_test

import (
	"context"
	"testing"

	"sewaaset_client/internals/features/assets/controller"
	helper "sewaaset_client/internals/helpers"
)

type togglerMock struct {
	fn func(ctx context.Context, assetID int64, add bool) (int, error)
	n  int
}

func (m *togglerMock) ToggleFavorite(ctx context.Context, assetID int64, add bool) (int, error) {
	m.n++
	return m.fn(ctx, assetID, add)
}

type cardSpy struct {
	state controller.FavoriteState
	count int
	busy  bool
	calls int
}

func (c *cardSpy) RenderFavorite(s controller.FavoriteState, count int, busy bool) {
	c.state, c.count, c.busy = s, count, busy
	c.calls++
}

func TestToggle_TwiceReturnsToOriginalState(t *testing.T) {
	serverCount := 3
	m := &togglerMock{fn: func(ctx context.Context, id int64, add bool) (int, error) {
		if add {
			serverCount++
		} else {
			serverCount--
		}
		return serverCount, nil
	}}
	card := &cardSpy{}
	tg := controller.NewFavoriteToggle(42, false, 3, m, card)

	if err := tg.Toggle(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s, n := tg.State(); s != controller.Favorited || n != 4 {
		t.Fatalf("setelah toggle pertama: state=%v count=%d", s, n)
	}
	if err := tg.Toggle(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s, n := tg.State(); s != controller.NotFavorited || n != 3 {
		t.Fatalf("dua kali toggle harus kembali ke awal: state=%v count=%d", s, n)
	}
}

func TestToggle_FailureReverts(t *testing.T) {
	m := &togglerMock{fn: func(ctx context.Context, id int64, add bool) (int, error) {
		return 0, &helper.ApiError{Kind: helper.ErrNetwork, Message: "putus"}
	}}
	card := &cardSpy{}
	tg := controller.NewFavoriteToggle(42, false, 7, m, card)

	if err := tg.Toggle(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if s, n := tg.State(); s != controller.NotFavorited || n != 7 {
		t.Fatalf("gagal jaringan harus revert: state=%v count=%d", s, n)
	}
	if !tg.RentEnabled() {
		t.Fatal("aksi sewa tidak boleh mati karena kegagalan jaringan biasa")
	}
}

func TestToggle_AssetUnavailableIsTerminal(t *testing.T) {
	m := &togglerMock{fn: func(ctx context.Context, id int64, add bool) (int, error) {
		return 0, &helper.ApiError{Kind: helper.ErrHTTP, Status: 404, Message: "asset not available"}
	}}
	card := &cardSpy{}
	tg := controller.NewFavoriteToggle(42, false, 2, m, card)

	if err := tg.Toggle(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	s, _ := tg.State()
	if s != controller.Unavailable {
		t.Fatalf("404 harus memaksa status Unavailable, dapat %v", s)
	}
	if tg.RentEnabled() {
		t.Fatal("aksi sewa harus ikut nonaktif pada kartu yang tidak tersedia")
	}

	// status terminal: toggle berikutnya tidak memanggil API lagi
	before := m.n
	_ = tg.Toggle(context.Background())
	if m.n != before {
		t.Fatal("toggle pada status terminal masih memanggil API")
	}
	if card.state != controller.Unavailable {
		t.Fatalf("kartu dirender %v; harus tetap Unavailable", card.state)
	}
}
