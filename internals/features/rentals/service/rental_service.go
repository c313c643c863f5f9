package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/features/rentals/dto"
	"sewaaset_client/internals/features/rentals/model"
	helper "sewaaset_client/internals/helpers"
)

var validate = validator.New()

// RentalService memetakan endpoint siklus sewa ke pemanggilan bertipe.
type RentalService struct {
	api *client.Client
	now func() time.Time
}

func NewRentalService(api *client.Client) *RentalService {
	return &RentalService{api: api, now: time.Now}
}

// WithClock mengganti sumber waktu (untuk test aturan "mulai besok").
func (s *RentalService) WithClock(now func() time.Time) *RentalService {
	s.now = now
	return s
}

// SubmitRequest mengajukan sewa. Validasi (termasuk tanggal mulai minimal
// besok) berjalan sebelum request berangkat.
func (s *RentalService) SubmitRequest(ctx context.Context, req dto.SubmitRentalRequest) error {
	if err := validate.Struct(req); err != nil {
		return helper.NewValidationError(err)
	}
	start, err := time.ParseInLocation(DateLayout, req.StartDate, s.now().Location())
	if err != nil {
		return &helper.ApiError{
			Kind:    helper.ErrValidation,
			Message: "Validasi gagal",
			Fields:  map[string]string{"StartDate": "format"},
		}
	}
	if start.Before(MinStartDate(s.now())) {
		return &helper.ApiError{
			Kind:    helper.ErrValidation,
			Message: "Validasi gagal",
			Fields:  map[string]string{"StartDate": "min_tomorrow"},
		}
	}
	_, err = s.api.Post(ctx, "/api/submit-rental-request", req)
	return err
}

// MyRequests mengambil daftar pengajuan milik user, dinormalkan ke skema
// kanonik.
func (s *RentalService) MyRequests(ctx context.Context, q dto.MyRequestsQuery) ([]model.RentalRequest, int, error) {
	env, err := s.api.Get(ctx, "/api/user-rental-requests", q.ToQuery())
	if err != nil {
		return nil, 0, err
	}
	var rows []model.RentalRequest
	if err := env.DecodeData(&rows); err != nil {
		return nil, 0, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data pengajuan tidak dikenali"}
	}
	for i := range rows {
		rows[i].Normalize()
	}
	total := env.Total
	if total == 0 {
		total = len(rows)
	}
	return rows, total, nil
}

// PendingRequests: antrian persetujuan admin (pengajuan status pending).
func (s *RentalService) PendingRequests(ctx context.Context, page, perPage int) ([]model.RentalRequest, int, error) {
	env, err := s.api.Get(ctx, "/api/admin/rental-requests", map[string]string{
		"status":   "pending",
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	})
	if err != nil {
		return nil, 0, err
	}
	var rows []model.RentalRequest
	if err := env.DecodeData(&rows); err != nil {
		return nil, 0, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data pengajuan tidak dikenali"}
	}
	for i := range rows {
		rows[i].Normalize()
	}
	total := env.Total
	if env.Pagination != nil && env.Pagination.Total > 0 {
		total = env.Pagination.Total
	}
	return rows, total, nil
}

// Approve menyetujui pengajuan.
func (s *RentalService) Approve(ctx context.Context, requestID int64, notes string) error {
	_, err := s.api.Post(ctx, fmt.Sprintf("/api/admin/rental-requests/%d/approve", requestID), dto.ApproveRequest{Notes: notes})
	return err
}

// Reject menolak pengajuan; alasan wajib (spasi saja dianggap kosong).
func (s *RentalService) Reject(ctx context.Context, requestID int64, reason string) error {
	body := dto.RejectRequest{Reason: strings.TrimSpace(reason)}
	if err := validate.Struct(body); err != nil {
		return helper.NewValidationError(err)
	}
	_, err := s.api.Post(ctx, fmt.Sprintf("/api/admin/rental-requests/%d/reject", requestID), body)
	return err
}

// Transactions mengambil daftar transaksi sewa milik user.
func (s *RentalService) Transactions(ctx context.Context, page, perPage int) ([]model.RentalTransaction, int, error) {
	env, err := s.api.Get(ctx, "/api/user/rental-transactions", map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	})
	if err != nil {
		return nil, 0, err
	}
	var rows []model.RentalTransaction
	if err := env.DecodeData(&rows); err != nil {
		return nil, 0, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data transaksi tidak dikenali"}
	}
	total := env.Total
	if env.Pagination != nil && env.Pagination.Total > 0 {
		total = env.Pagination.Total
	}
	if total == 0 {
		total = len(rows)
	}
	return rows, total, nil
}

// RequestExtension mengajukan perpanjangan transaksi berjalan.
func (s *RentalService) RequestExtension(ctx context.Context, transactionID int64, req dto.ExtensionRequest) error {
	if err := validate.Struct(req); err != nil {
		return helper.NewValidationError(err)
	}
	_, err := s.api.Post(ctx, fmt.Sprintf("/api/user/rental-transactions/%d/request-extension", transactionID), req)
	return err
}
