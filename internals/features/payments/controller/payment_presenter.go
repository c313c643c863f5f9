package controller

import (
	"context"
	"sync"

	"sewaaset_client/internals/features/payments/dto"
	helper "sewaaset_client/internals/helpers"
)

// PaymentCreator adalah bagian PaymentService yang dibutuhkan tombol bayar.
type PaymentCreator interface {
	CreatePayment(ctx context.Context, desc dto.PaymentDescriptor) (string, error)
}

// PayView menggambar status tombol "Bayar Sekarang" dan hasilnya.
type PayView interface {
	SetPayEnabled(enabled bool)
	ShowError(message string)
	OpenSnap(token string) // serahkan token ke widget pembayaran
}

// PaymentPresenter: tombol bayar dinonaktifkan SEGERA saat diklik dan baru
// aktif lagi setelah hasil terminal — tidak ada submit ganda selama panggilan
// masih berjalan.
type PaymentPresenter struct {
	mu   sync.Mutex
	busy bool

	svc  PaymentCreator
	view PayView
}

func NewPaymentPresenter(svc PaymentCreator, view PayView) *PaymentPresenter {
	return &PaymentPresenter{svc: svc, view: view}
}

// Pay membuat pembayaran untuk satu pengajuan yang sudah disetujui.
func (p *PaymentPresenter) Pay(ctx context.Context, desc dto.PaymentDescriptor) error {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil
	}
	p.busy = true
	p.mu.Unlock()
	p.view.SetPayEnabled(false)

	token, err := p.svc.CreatePayment(ctx, desc)

	p.mu.Lock()
	p.busy = false
	p.mu.Unlock()
	if err != nil {
		ae := helper.AsApiError(err)
		if ae.Kind == helper.ErrTimeout {
			p.view.ShowError("Pembayaran melebihi batas waktu, silakan coba lagi")
		} else {
			p.view.ShowError(ae.Message)
		}
		p.view.SetPayEnabled(true)
		return err
	}
	p.view.OpenSnap(token)
	return nil
}
