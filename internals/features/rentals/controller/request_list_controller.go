package controller

import (
	"context"

	"sewaaset_client/internals/features/rentals/dto"
	"sewaaset_client/internals/features/rentals/model"
	"sewaaset_client/internals/view"
)

// RequestLister adalah bagian RentalService untuk daftar-daftar sewa.
type RequestLister interface {
	MyRequests(ctx context.Context, q dto.MyRequestsQuery) ([]model.RentalRequest, int, error)
	PendingRequests(ctx context.Context, page, perPage int) ([]model.RentalRequest, int, error)
	Transactions(ctx context.Context, page, perPage int) ([]model.RentalTransaction, int, error)
}

// RequestListController: view-model daftar pengajuan milik user.
// status/activity_type/period adalah filter server-side.
type RequestListController struct {
	*view.ListController[model.RentalRequest]
}

func NewRequestListController(svc RequestLister, perPage int, r view.Renderer[model.RentalRequest]) *RequestListController {
	fetch := func(ctx context.Context, page, perPage int, filters map[string]string) ([]model.RentalRequest, int, error) {
		return svc.MyRequests(ctx, dto.MyRequestsQuery{
			Page:         page,
			PerPage:      perPage,
			Status:       filters["status"],
			ActivityType: filters["activity_type"],
			Period:       filters["period"],
		})
	}
	return &RequestListController{view.NewListController(perPage, fetch, r)}
}

func (c *RequestListController) FilterStatus(v string)       { c.SetFilter("status", v) }
func (c *RequestListController) FilterActivityType(v string) { c.SetFilter("activity_type", v) }
func (c *RequestListController) FilterPeriod(v string)       { c.SetFilter("period", v) }

// ApprovalQueueController: antrian persetujuan admin (pengajuan pending).
type ApprovalQueueController struct {
	*view.ListController[model.RentalRequest]
}

func NewApprovalQueueController(svc RequestLister, perPage int, r view.Renderer[model.RentalRequest]) *ApprovalQueueController {
	fetch := func(ctx context.Context, page, perPage int, _ map[string]string) ([]model.RentalRequest, int, error) {
		return svc.PendingRequests(ctx, page, perPage)
	}
	return &ApprovalQueueController{view.NewListController(perPage, fetch, r)}
}

// TransactionListController: daftar transaksi sewa milik user.
type TransactionListController struct {
	*view.ListController[model.RentalTransaction]
}

func NewTransactionListController(svc RequestLister, perPage int, r view.Renderer[model.RentalTransaction]) *TransactionListController {
	fetch := func(ctx context.Context, page, perPage int, _ map[string]string) ([]model.RentalTransaction, int, error) {
		return svc.Transactions(ctx, page, perPage)
	}
	return &TransactionListController{view.NewListController(perPage, fetch, r)}
}
