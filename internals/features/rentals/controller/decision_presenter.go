package controller

import (
	"context"
	"sync"

	"sewaaset_client/internals/constants"
	"sewaaset_client/internals/features/rentals/model"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// RequestDecider adalah bagian RentalService untuk persetujuan admin.
type RequestDecider interface {
	Approve(ctx context.Context, requestID int64, notes string) error
	Reject(ctx context.Context, requestID int64, reason string) error
}

type decisionKind int

const (
	decisionNone decisionKind = iota
	decisionApprove
	decisionReject
)

// DecisionPresenter mengelola modal approve/reject pengajuan.
// Keduanya destruktif: request baru berangkat setelah Confirm.
type DecisionPresenter struct {
	mu sync.Mutex

	request model.RentalRequest
	kind    decisionKind
	Notes   string
	Reason  string

	busy      bool
	modal     view.ModalView
	svc       RequestDecider
	onSuccess func()
}

func NewDecisionPresenter(svc RequestDecider, modal view.ModalView, onSuccess func()) *DecisionPresenter {
	return &DecisionPresenter{svc: svc, modal: modal, onSuccess: onSuccess}
}

// OpenApprove menyiapkan konfirmasi persetujuan.
func (p *DecisionPresenter) OpenApprove(req model.RentalRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.request = req
	p.kind = decisionApprove
	p.Notes, p.Reason = "", ""
}

// OpenReject menyiapkan konfirmasi penolakan (alasan wajib diisi).
func (p *DecisionPresenter) OpenReject(req model.RentalRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.request = req
	p.kind = decisionReject
	p.Notes, p.Reason = "", ""
}

func (p *DecisionPresenter) SetNotes(s string)  { p.mu.Lock(); p.Notes = s; p.mu.Unlock() }
func (p *DecisionPresenter) SetReason(s string) { p.mu.Lock(); p.Reason = s; p.mu.Unlock() }

// Cancel menutup langkah konfirmasi tanpa mengirim apa-apa.
func (p *DecisionPresenter) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kind = decisionNone
}

// Confirm mengeksekusi keputusan yang sedang terbuka.
// Status pengajuan dicek dulu di sisi klien: pengajuan yang sudah diproses
// tidak pernah berangkat ke server (server tetap penentu akhir).
func (p *DecisionPresenter) Confirm(ctx context.Context) error {
	p.mu.Lock()
	if p.busy || p.kind == decisionNone {
		p.mu.Unlock()
		return nil
	}
	target := constants.RequestApproved
	if p.kind == decisionReject {
		target = constants.RequestRejected
	}
	if !constants.CanTransitionRequest(p.request.Status, target) {
		p.kind = decisionNone
		p.mu.Unlock()
		p.modal.ShowError("Pengajuan sudah diproses dan tidak bisa diputuskan lagi")
		return &helper.ApiError{Kind: helper.ErrApplication, Message: "status pengajuan tidak bisa diubah"}
	}
	p.busy = true
	kind := p.kind
	id := p.request.ID
	notes, reason := p.Notes, p.Reason
	p.mu.Unlock()

	var err error
	if kind == decisionApprove {
		err = p.svc.Approve(ctx, id, notes)
	} else {
		err = p.svc.Reject(ctx, id, reason)
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
	p.kind = decisionNone
	p.modal.Close()
	if p.onSuccess != nil {
		p.onSuccess()
	}
	return nil
}
