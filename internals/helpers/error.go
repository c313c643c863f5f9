package helper

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
)

// ErrKind menggolongkan kegagalan sesuai taksonominya:
// validasi (tidak pernah menyentuh jaringan), transport, timeout,
// status HTTP non-2xx, dan kegagalan aplikasi (success:false).
type ErrKind string

const (
	ErrValidation  ErrKind = "validation"
	ErrNetwork     ErrKind = "network"
	ErrTimeout     ErrKind = "timeout"
	ErrHTTP        ErrKind = "http"
	ErrApplication ErrKind = "application"
)

// ApiError adalah bentuk error ternormalisasi yang dilihat semua pemanggil.
// Satu pesan untuk pengguna, apapun sumber kegagalannya.
type ApiError struct {
	Kind    ErrKind
	Status  int    // status HTTP, 0 jika tidak relevan
	Message string
	Fields  map[string]string // hanya untuk Kind == ErrValidation
}

func (e *ApiError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ApiError) Kode() ErrKind { return e.Kind }

// KindOf mengekstrak golongan error; "" jika bukan ApiError.
func KindOf(err error) ErrKind {
	var ae *ApiError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// AsApiError mengembalikan *ApiError di dalam err, atau membungkusnya
// sebagai error jaringan generik.
func AsApiError(err error) *ApiError {
	var ae *ApiError
	if errors.As(err, &ae) {
		return ae
	}
	return &ApiError{Kind: ErrNetwork, Message: err.Error()}
}

// FromTransport menggolongkan kegagalan sebelum ada respons HTTP:
// context deadline / net timeout → ErrTimeout, sisanya ErrNetwork.
func FromTransport(err error) *ApiError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ApiError{Kind: ErrTimeout, Message: "Permintaan melebihi batas waktu"}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &ApiError{Kind: ErrTimeout, Message: "Permintaan melebihi batas waktu"}
	}
	return &ApiError{Kind: ErrNetwork, Message: "Gagal terhubung ke server"}
}

// FromEnvelope menggolongkan kegagalan setelah respons diterima.
// Amplop dengan success:false berwenang penuh, bahkan pada HTTP 200.
func FromEnvelope(status int, env *Envelope) *ApiError {
	kind := ErrApplication
	if status < 200 || status >= 300 {
		kind = ErrHTTP
	}
	return &ApiError{Kind: kind, Status: status, Message: env.ErrMessage()}
}

// GenericHTTP dipakai saat body non-2xx tidak bisa di-parse sebagai JSON.
func GenericHTTP(status int) *ApiError {
	return &ApiError{
		Kind:    ErrHTTP,
		Status:  status,
		Message: fmt.Sprintf("Server mengembalikan status %d", status),
	}
}

// ✅ Khusus error validasi (validator.v10): petakan per-field → tag
func ValidationFields(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": "Input tidak valid"}
	}
	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return fields
}

// NewValidationError membungkus kegagalan validasi form; tidak pernah
// dikirim ke jaringan.
func NewValidationError(err error) *ApiError {
	return &ApiError{
		Kind:    ErrValidation,
		Message: "Validasi gagal",
		Fields:  ValidationFields(err),
	}
}
