package dto

// PaymentDescriptor: body POST /api/midtrans/create-payment.
// OrderID diisi service (UUID) bila kosong supaya pembuatan pembayaran
// idempoten saat diulang setelah timeout.
type PaymentDescriptor struct {
	RentalRequestID int64  `json:"rental_request_id" validate:"required,gt=0"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	OrderID         string `json:"order_id"`
}

// VerifyPaymentRequest: body POST /api/midtrans/verify-payment.
type VerifyPaymentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}
