package controller

import (
	"context"
	"sync"

	"sewaaset_client/internals/constants"
	"sewaaset_client/internals/features/assets/dto"
	"sewaaset_client/internals/features/assets/model"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// AssetModalView: modal form aset butuh satu kemampuan ekstra —
// menampilkan/menyembunyikan blok field bangunan secara reaktif.
type AssetModalView interface {
	view.ModalView
	SetBuildingFieldsVisible(visible bool)
}

// AssetWriter adalah bagian AssetService yang dibutuhkan form CRUD.
type AssetWriter interface {
	Create(ctx context.Context, form dto.AssetForm) error
	Update(ctx context.Context, id int64, form dto.AssetForm) error
	Delete(ctx context.Context, id int64) error
}

// AssetFormPresenter mengelola modal create/edit/delete aset.
type AssetFormPresenter struct {
	mu sync.Mutex

	Form   dto.AssetForm
	editID *int64

	pendingDelete *int64

	busy      bool
	modal     AssetModalView
	svc       AssetWriter
	onSuccess func() // selalu: refresh daftar asalnya
}

func NewAssetFormPresenter(svc AssetWriter, modal AssetModalView, onSuccess func()) *AssetFormPresenter {
	return &AssetFormPresenter{svc: svc, modal: modal, onSuccess: onSuccess}
}

// OpenCreate menyiapkan form kosong.
func (p *AssetFormPresenter) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form = dto.AssetForm{}
	p.editID = nil
	p.modal.SetBuildingFieldsVisible(false)
}

// OpenEdit mengisi form dari entitas yang ada.
func (p *AssetFormPresenter) OpenEdit(a model.Asset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := a.ID
	p.editID = &id
	p.Form = dto.AssetForm{
		Name:            a.Name,
		AssetType:       a.AssetType,
		Kecamatan:       a.Kecamatan,
		Alamat:          a.Alamat,
		LuasTanah:       a.LuasTanah,
		LuasBangunan:    a.LuasBangunan,
		HargaSewa:       a.HargaSewa,
		Sertifikat:      a.Sertifikat,
		JenisZona:       a.JenisZona,
		KamarTidur:      a.KamarTidur,
		KamarMandi:      a.KamarMandi,
		JumlahLantai:    a.JumlahLantai,
		DayaListrik:     a.DayaListrik,
		KondisiProperti: a.KondisiProperti,
		Deskripsi:       a.Deskripsi,
	}
	p.modal.SetBuildingFieldsVisible(a.IsBangunan())
}

// SetAssetType mengganti jenis aset: blok field bangunan muncul/hilang
// reaktif TANPA mereset isian field lain.
func (p *AssetFormPresenter) SetAssetType(t string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form.AssetType = t
	p.modal.SetBuildingFieldsVisible(t == constants.AssetTypeBangunan)
}

// Submit memvalidasi lalu mengirim form. Gagal → error inline, modal tetap
// terbuka. Sukses → modal menutup dan daftar asal di-refresh.
func (p *AssetFormPresenter) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil
	}
	p.busy = true
	form := p.Form
	editID := p.editID
	p.mu.Unlock()

	var err error
	if editID != nil {
		err = p.svc.Update(ctx, *editID, form)
	} else {
		err = p.svc.Create(ctx, form)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = false
	if err != nil {
		ae := helper.AsApiError(err)
		if ae.Kind == helper.ErrValidation {
			p.modal.ShowFieldErrors(ae.Fields)
		} else {
			p.modal.ShowError(ae.Message)
		}
		return err
	}
	p.modal.Close()
	if p.onSuccess != nil {
		p.onSuccess()
	}
	return nil
}

// RequestDelete membuka langkah konfirmasi; request DELETE baru berangkat
// dari ConfirmDelete.
func (p *AssetFormPresenter) RequestDelete(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingDelete = &id
}

func (p *AssetFormPresenter) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingDelete = nil
}

// ConfirmDelete mengeksekusi penghapusan yang sudah dikonfirmasi.
func (p *AssetFormPresenter) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if p.pendingDelete == nil || p.busy {
		p.mu.Unlock()
		return nil
	}
	id := *p.pendingDelete
	p.busy = true
	p.mu.Unlock()

	err := p.svc.Delete(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = false
	p.pendingDelete = nil
	if err != nil {
		p.modal.ShowError(helper.AsApiError(err).Message)
		return err
	}
	p.modal.Close()
	if p.onSuccess != nil {
		p.onSuccess()
	}
	return nil
}
