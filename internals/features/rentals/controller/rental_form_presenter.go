package controller

import (
	"context"
	"sync"
	"time"

	"sewaaset_client/internals/features/assets/model"
	"sewaaset_client/internals/features/rentals/dto"
	rentalservice "sewaaset_client/internals/features/rentals/service"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// RentalSubmitter adalah bagian RentalService yang dibutuhkan form pengajuan.
type RentalSubmitter interface {
	SubmitRequest(ctx context.Context, req dto.SubmitRentalRequest) error
}

// RentalFormPresenter mengelola modal pengajuan sewa sebuah aset.
// Input tanggal diberi batas bawah besok (tidak ada sewa mulai hari ini
// atau mundur) dan total biaya dihitung ulang reaktif untuk tampilan.
type RentalFormPresenter struct {
	mu sync.Mutex

	Form         dto.SubmitRentalRequest
	monthlyPrice int64

	busy      bool
	modal     view.ModalView
	svc       RentalSubmitter
	onSuccess func()
	now       func() time.Time
}

func NewRentalFormPresenter(svc RentalSubmitter, modal view.ModalView, onSuccess func()) *RentalFormPresenter {
	return &RentalFormPresenter{svc: svc, modal: modal, onSuccess: onSuccess, now: time.Now}
}

// WithClock mengganti sumber waktu (untuk test).
func (p *RentalFormPresenter) WithClock(now func() time.Time) *RentalFormPresenter {
	p.now = now
	return p
}

// Open menyiapkan form untuk satu aset.
func (p *RentalFormPresenter) Open(a model.Asset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form = dto.SubmitRentalRequest{AssetID: a.ID, TotalMonths: 1}
	p.monthlyPrice = a.HargaSewa
}

// MinStartDate adalah nilai `min` untuk widget tanggal.
func (p *RentalFormPresenter) MinStartDate() string {
	return rentalservice.MinStartDate(p.now()).Format(rentalservice.DateLayout)
}

func (p *RentalFormPresenter) SetStartDate(d string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form.StartDate = d
}

func (p *RentalFormPresenter) SetMonths(m int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form.TotalMonths = m
}

// TotalPreview: total biaya untuk tampilan; nilai berwenang dari server.
func (p *RentalFormPresenter) TotalPreview() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return rentalservice.TotalCost(p.monthlyPrice, p.Form.TotalMonths)
}

// EndDatePreview: tanggal selesai sewa untuk tampilan (bulan kalender).
func (p *RentalFormPresenter) EndDatePreview() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	start, err := time.Parse(rentalservice.DateLayout, p.Form.StartDate)
	if err != nil {
		return ""
	}
	return rentalservice.EndDate(start, p.Form.TotalMonths).Format(rentalservice.DateLayout)
}

// Submit mengirim pengajuan. Gagal → modal tetap terbuka dengan error inline.
func (p *RentalFormPresenter) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil
	}
	p.busy = true
	form := p.Form
	p.mu.Unlock()

	err := p.svc.SubmitRequest(ctx, form)

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
