package controller

import (
	"context"
	"sync"
	"time"

	"sewaaset_client/internals/features/rentals/dto"
	"sewaaset_client/internals/features/rentals/model"
	rentalservice "sewaaset_client/internals/features/rentals/service"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// ExtensionRequester adalah bagian RentalService untuk perpanjangan.
type ExtensionRequester interface {
	RequestExtension(ctx context.Context, transactionID int64, req dto.ExtensionRequest) error
}

// ExtensionPresenter mengelola modal pengajuan perpanjangan; biaya dihitung
// dari harga bulanan transaksi berjalan.
type ExtensionPresenter struct {
	mu sync.Mutex

	tx   model.RentalTransaction
	Form dto.ExtensionRequest

	busy      bool
	modal     view.ModalView
	svc       ExtensionRequester
	onSuccess func()
}

func NewExtensionPresenter(svc ExtensionRequester, modal view.ModalView, onSuccess func()) *ExtensionPresenter {
	return &ExtensionPresenter{svc: svc, modal: modal, onSuccess: onSuccess}
}

func (p *ExtensionPresenter) Open(tx model.RentalTransaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tx = tx
	p.Form = dto.ExtensionRequest{AdditionalMonths: 1}
}

func (p *ExtensionPresenter) SetMonths(m int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form.AdditionalMonths = m
}

func (p *ExtensionPresenter) SetNotes(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Form.Notes = s
}

// CostPreview: biaya perpanjangan untuk tampilan.
func (p *ExtensionPresenter) CostPreview() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return rentalservice.ExtensionCost(p.tx.MonthlyPrice, p.Form.AdditionalMonths)
}

// NewEndDatePreview: perkiraan tanggal selesai baru (bulan kalender dari
// current_end_date).
func (p *ExtensionPresenter) NewEndDatePreview() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	end, err := time.Parse(rentalservice.DateLayout, p.tx.CurrentEndDate)
	if err != nil {
		return ""
	}
	return rentalservice.EndDate(end, p.Form.AdditionalMonths).Format(rentalservice.DateLayout)
}

func (p *ExtensionPresenter) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil
	}
	p.busy = true
	id := p.tx.ID
	form := p.Form
	p.mu.Unlock()

	err := p.svc.RequestExtension(ctx, id, form)

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
