package controller_test

import (
	"context"
	"testing"
	"time"

	"sewaaset_client/internals/constants"
	assetmodel "sewaaset_client/internals/features/assets/model"
	"sewaaset_client/internals/features/rentals/controller"
	"sewaaset_client/internals/features/rentals/dto"
	"sewaaset_client/internals/features/rentals/model"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

type submitterMock struct {
	fn func(ctx context.Context, req dto.SubmitRentalRequest) error
	n  int
}

func (m *submitterMock) SubmitRequest(ctx context.Context, req dto.SubmitRentalRequest) error {
	m.n++
	return m.fn(ctx, req)
}

type modalSpy struct {
	closed      bool
	lastError   string
	fieldErrors map[string]string
}

func (m *modalSpy) ShowError(msg string)                { m.lastError = msg }
func (m *modalSpy) ShowFieldErrors(f map[string]string) { m.fieldErrors = f }
func (m *modalSpy) Close()                              { m.closed = true }

func fixedNow() time.Time {
	return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
}

func TestRentalForm_CostAndEndDatePreview(t *testing.T) {
	p := controller.NewRentalFormPresenter(&submitterMock{}, &modalSpy{}, nil).WithClock(fixedNow)
	p.Open(assetmodel.Asset{ID: 5, HargaSewa: 5_000_000})
	p.SetStartDate("2024-01-15")
	p.SetMonths(6)

	if got := p.TotalPreview(); got != 30_000_000 {
		t.Fatalf("total preview = %d; want 30jt", got)
	}
	if got := p.EndDatePreview(); got != "2024-07-15" {
		t.Fatalf("end date preview = %s; want 2024-07-15 (bulan kalender)", got)
	}
	if got := p.MinStartDate(); got != "2024-01-11" {
		t.Fatalf("min tanggal widget = %s; harus besok", got)
	}
}

func TestRentalForm_FailureKeepsModalOpen(t *testing.T) {
	m := &submitterMock{fn: func(ctx context.Context, req dto.SubmitRentalRequest) error {
		return &helper.ApiError{Kind: helper.ErrApplication, Message: "aset sudah disewa"}
	}}
	modal := &modalSpy{}
	refreshed := false
	p := controller.NewRentalFormPresenter(m, modal, func() { refreshed = true }).WithClock(fixedNow)
	p.Open(assetmodel.Asset{ID: 5, HargaSewa: 5_000_000})
	p.SetStartDate("2024-01-15")

	if err := p.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if modal.closed || refreshed {
		t.Fatalf("closed=%v refreshed=%v; gagal submit tidak boleh menutup/refresh", modal.closed, refreshed)
	}
	if modal.lastError != "aset sudah disewa" {
		t.Fatalf("error inline = %q", modal.lastError)
	}
}

func TestRentalForm_SuccessClosesAndRefreshes(t *testing.T) {
	m := &submitterMock{fn: func(ctx context.Context, req dto.SubmitRentalRequest) error {
		if req.AssetID != 5 || req.TotalMonths != 3 {
			t.Errorf("payload: %+v", req)
		}
		return nil
	}}
	modal := &modalSpy{}
	refreshed := false
	p := controller.NewRentalFormPresenter(m, modal, func() { refreshed = true }).WithClock(fixedNow)
	p.Open(assetmodel.Asset{ID: 5, HargaSewa: 5_000_000})
	p.SetStartDate("2024-01-15")
	p.SetMonths(3)

	if err := p.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !modal.closed || !refreshed {
		t.Fatal("sukses submit harus menutup modal dan refresh daftar asal")
	}
}

type deciderMock struct {
	approveFn func(ctx context.Context, id int64, notes string) error
	rejectFn  func(ctx context.Context, id int64, reason string) error
	approves  int
	rejects   int
}

func (m *deciderMock) Approve(ctx context.Context, id int64, notes string) error {
	m.approves++
	return m.approveFn(ctx, id, notes)
}
func (m *deciderMock) Reject(ctx context.Context, id int64, reason string) error {
	m.rejects++
	return m.rejectFn(ctx, id, reason)
}

func TestDecision_NothingSentWithoutConfirm(t *testing.T) {
	m := &deciderMock{
		approveFn: func(ctx context.Context, id int64, notes string) error { return nil },
		rejectFn:  func(ctx context.Context, id int64, reason string) error { return nil },
	}
	p := controller.NewDecisionPresenter(m, view.NopModal{}, nil)

	// Confirm tanpa Open → no-op
	if err := p.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}
	p.OpenReject(model.RentalRequest{ID: 9, Status: constants.RequestPending})
	p.Cancel()
	_ = p.Confirm(context.Background())
	if m.approves+m.rejects != 0 {
		t.Fatal("keputusan terkirim tanpa konfirmasi")
	}
}

func TestDecision_ApproveFlow(t *testing.T) {
	var gotNotes string
	m := &deciderMock{approveFn: func(ctx context.Context, id int64, notes string) error {
		gotNotes = notes
		return nil
	}}
	modal := &modalSpy{}
	refreshed := false
	p := controller.NewDecisionPresenter(m, modal, func() { refreshed = true })

	p.OpenApprove(model.RentalRequest{ID: 9, UserName: "Budi", Status: constants.RequestPending})
	p.SetNotes("dokumen lengkap")
	if err := p.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotNotes != "dokumen lengkap" || !modal.closed || !refreshed {
		t.Fatalf("notes=%q closed=%v refreshed=%v", gotNotes, modal.closed, refreshed)
	}
}

func TestDecision_RejectFailureKeepsModalOpen(t *testing.T) {
	m := &deciderMock{rejectFn: func(ctx context.Context, id int64, reason string) error {
		return &helper.ApiError{
			Kind:   helper.ErrValidation,
			Fields: map[string]string{"Reason": "required"},
		}
	}}
	modal := &modalSpy{}
	p := controller.NewDecisionPresenter(m, modal, nil)

	p.OpenReject(model.RentalRequest{ID: 9, Status: constants.RequestPending})
	if err := p.Confirm(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if modal.closed {
		t.Fatal("modal menutup padahal penolakan gagal")
	}
	if modal.fieldErrors["Reason"] != "required" {
		t.Fatalf("field errors = %v", modal.fieldErrors)
	}
}

func TestDecision_RefusesAlreadyProcessedRequest(t *testing.T) {
	m := &deciderMock{
		approveFn: func(ctx context.Context, id int64, notes string) error { return nil },
		rejectFn:  func(ctx context.Context, id int64, reason string) error { return nil },
	}
	modal := &modalSpy{}
	p := controller.NewDecisionPresenter(m, modal, nil)

	// sudah disetujui → approve/reject tidak boleh berangkat ke server
	p.OpenApprove(model.RentalRequest{ID: 9, Status: constants.RequestApproved})
	if err := p.Confirm(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	p.OpenReject(model.RentalRequest{ID: 9, Status: constants.RequestCompleted})
	if err := p.Confirm(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if m.approves+m.rejects != 0 {
		t.Fatalf("keputusan terkirim %d kali untuk pengajuan yang sudah diproses", m.approves+m.rejects)
	}
	if modal.lastError == "" {
		t.Fatal("modal tidak menampilkan pesan penolakan")
	}
}

func TestExtension_CostPreviewUsesTransactionPrice(t *testing.T) {
	p := controller.NewExtensionPresenter(nil, &modalSpy{}, nil)
	p.Open(model.RentalTransaction{ID: 3, MonthlyPrice: 4_500_000, CurrentEndDate: "2024-06-01"})
	p.SetMonths(3)

	if got := p.CostPreview(); got != 13_500_000 {
		t.Fatalf("cost preview = %d", got)
	}
	if got := p.NewEndDatePreview(); got != "2024-09-01" {
		t.Fatalf("new end date = %s", got)
	}
}
