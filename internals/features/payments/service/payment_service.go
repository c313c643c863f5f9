package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/configs"
	"sewaaset_client/internals/features/payments/dto"
	helper "sewaaset_client/internals/helpers"
)

var validate = validator.New()

// PaymentService membungkus endpoint pembayaran backend (yang di belakangnya
// memanggil Midtrans — gateway-nya sendiri tidak pernah disentuh klien ini).
type PaymentService struct {
	api     *client.Client
	timeout time.Duration
}

func NewPaymentService(api *client.Client) *PaymentService {
	timeout := configs.PaymentTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PaymentService{api: api, timeout: timeout}
}

// WithTimeout mengganti batas waktu pembuatan pembayaran (untuk test).
func (s *PaymentService) WithTimeout(d time.Duration) *PaymentService {
	s.timeout = d
	return s
}

// CreatePayment membuat transaksi pembayaran dan mengembalikan snap token.
// Tiap percobaan dibatasi batas waktu sendiri (default 30 detik) supaya
// percobaan ulang tidak mewarisi deadline yang sudah habis; timeout diulang
// SATU kali lalu dilaporkan sebagai error timeout yang berbeda dari error
// jaringan/HTTP.
func (s *PaymentService) CreatePayment(ctx context.Context, desc dto.PaymentDescriptor) (string, error) {
	if err := validate.Struct(desc); err != nil {
		return "", helper.NewValidationError(err)
	}
	if desc.OrderID == "" {
		desc.OrderID = fmt.Sprintf("SEWA-%s", uuid.NewString())
	}

	env, err := s.api.Do(ctx, http.MethodPost, "/api/midtrans/create-payment", client.Params{
		Body:           desc,
		Retry:          &client.RetryOnTimeout,
		AttemptTimeout: s.timeout,
	})
	if err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", &helper.ApiError{Kind: helper.ErrApplication, Message: "Server tidak mengembalikan token pembayaran"}
	}
	return env.Token, nil
}

// VerifyPayment memverifikasi status pembayaran berdasarkan order id.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID string) error {
	body := dto.VerifyPaymentRequest{OrderID: orderID}
	if err := validate.Struct(body); err != nil {
		return helper.NewValidationError(err)
	}
	_, err := s.api.Post(ctx, "/api/midtrans/verify-payment", body)
	return err
}
