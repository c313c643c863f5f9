package controller_test

import (
	"context"
	"testing"

	"sewaaset_client/internals/features/assets/controller"
	"sewaaset_client/internals/features/assets/dto"
	"sewaaset_client/internals/features/assets/model"
	helper "sewaaset_client/internals/helpers"
)

type writerMock struct {
	createFn func(ctx context.Context, form dto.AssetForm) error
	updateFn func(ctx context.Context, id int64, form dto.AssetForm) error
	deleteFn func(ctx context.Context, id int64) error
	deletes  int
}

func (m *writerMock) Create(ctx context.Context, form dto.AssetForm) error {
	return m.createFn(ctx, form)
}
func (m *writerMock) Update(ctx context.Context, id int64, form dto.AssetForm) error {
	return m.updateFn(ctx, id, form)
}
func (m *writerMock) Delete(ctx context.Context, id int64) error {
	m.deletes++
	return m.deleteFn(ctx, id)
}

type modalSpy struct {
	closed          bool
	lastError       string
	fieldErrors     map[string]string
	buildingVisible bool
}

func (m *modalSpy) ShowError(msg string)                    { m.lastError = msg }
func (m *modalSpy) ShowFieldErrors(f map[string]string)     { m.fieldErrors = f }
func (m *modalSpy) Close()                                  { m.closed = true }
func (m *modalSpy) SetBuildingFieldsVisible(visible bool)   { m.buildingVisible = visible }

func TestSubmit_FailureKeepsModalOpen(t *testing.T) {
	m := &writerMock{createFn: func(ctx context.Context, form dto.AssetForm) error {
		return &helper.ApiError{Kind: helper.ErrApplication, Message: "nama aset sudah dipakai"}
	}}
	modal := &modalSpy{}
	refreshed := false
	p := controller.NewAssetFormPresenter(m, modal, func() { refreshed = true })
	p.OpenCreate()

	if err := p.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if modal.closed {
		t.Fatal("modal tidak boleh menutup saat submit gagal")
	}
	if refreshed {
		t.Fatal("daftar tidak boleh di-refresh seolah submit sukses")
	}
	if modal.lastError != "nama aset sudah dipakai" {
		t.Fatalf("error inline = %q", modal.lastError)
	}
}

func TestSubmit_ValidationErrorShownPerField(t *testing.T) {
	m := &writerMock{createFn: func(ctx context.Context, form dto.AssetForm) error {
		return &helper.ApiError{
			Kind:   helper.ErrValidation,
			Fields: map[string]string{"HargaSewa": "gt"},
		}
	}}
	modal := &modalSpy{}
	p := controller.NewAssetFormPresenter(m, modal, nil)
	p.OpenCreate()

	_ = p.Submit(context.Background())
	if modal.closed {
		t.Fatal("modal menutup pada validasi gagal")
	}
	if modal.fieldErrors["HargaSewa"] != "gt" {
		t.Fatalf("field errors = %v", modal.fieldErrors)
	}
}

func TestSubmit_SuccessClosesAndRefreshes(t *testing.T) {
	m := &writerMock{createFn: func(ctx context.Context, form dto.AssetForm) error { return nil }}
	modal := &modalSpy{}
	refreshed := false
	p := controller.NewAssetFormPresenter(m, modal, func() { refreshed = true })
	p.OpenCreate()

	if err := p.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !modal.closed || !refreshed {
		t.Fatalf("closed=%v refreshed=%v; keduanya harus true", modal.closed, refreshed)
	}
}

func TestSetAssetType_TogglesBuildingFieldsWithoutReset(t *testing.T) {
	modal := &modalSpy{}
	p := controller.NewAssetFormPresenter(&writerMock{}, modal, nil)
	p.OpenCreate()
	p.Form.Name = "Gudang Cakung"
	p.Form.Kecamatan = "Cakung"

	p.SetAssetType("bangunan")
	if !modal.buildingVisible {
		t.Fatal("blok field bangunan harus tampil untuk asset_type=bangunan")
	}
	p.SetAssetType("tanah")
	if modal.buildingVisible {
		t.Fatal("blok field bangunan harus sembunyi untuk asset_type=tanah")
	}
	if p.Form.Name != "Gudang Cakung" || p.Form.Kecamatan != "Cakung" {
		t.Fatal("ganti jenis aset mereset isian field lain")
	}
}

func TestOpenEdit_PopulatesFromEntity(t *testing.T) {
	modal := &modalSpy{}
	p := controller.NewAssetFormPresenter(&writerMock{}, modal, nil)
	kamar := 3
	p.OpenEdit(model.Asset{
		ID:         9,
		Name:       "Rumah Dinas",
		AssetType:  "bangunan",
		Kecamatan:  "Menteng",
		HargaSewa:  5000000,
		KamarTidur: &kamar,
	})
	if p.Form.Name != "Rumah Dinas" || p.Form.HargaSewa != 5000000 || *p.Form.KamarTidur != 3 {
		t.Fatalf("form tidak terisi dari entitas: %+v", p.Form)
	}
	if !modal.buildingVisible {
		t.Fatal("edit aset bangunan harus langsung menampilkan field bangunan")
	}
}

func TestDelete_RequiresExplicitConfirmation(t *testing.T) {
	m := &writerMock{deleteFn: func(ctx context.Context, id int64) error { return nil }}
	modal := &modalSpy{}
	p := controller.NewAssetFormPresenter(m, modal, nil)

	// tanpa RequestDelete, ConfirmDelete tidak melakukan apa-apa
	if err := p.ConfirmDelete(context.Background()); err != nil {
		t.Fatal(err)
	}
	if m.deletes != 0 {
		t.Fatal("DELETE berangkat tanpa langkah konfirmasi")
	}

	p.RequestDelete(9)
	p.CancelDelete()
	_ = p.ConfirmDelete(context.Background())
	if m.deletes != 0 {
		t.Fatal("DELETE berangkat padahal konfirmasi dibatalkan")
	}

	p.RequestDelete(9)
	if err := p.ConfirmDelete(context.Background()); err != nil {
		t.Fatal(err)
	}
	if m.deletes != 1 {
		t.Fatalf("deletes = %d", m.deletes)
	}
}
