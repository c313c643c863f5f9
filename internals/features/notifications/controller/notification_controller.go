package controller

import (
	"context"
	"strconv"
	"sync"

	"sewaaset_client/internals/features/notifications/model"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// NotificationReader adalah bagian NotificationService yang dibutuhkan
// halaman notifikasi.
type NotificationReader interface {
	List(ctx context.Context, page, perPage int, onlyUnread bool) ([]model.Notification, int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

// NotificationListController: view-model daftar notifikasi admin.
// only_unread adalah filter server-side.
type NotificationListController struct {
	*view.ListController[model.Notification]
	mu   sync.Mutex
	busy map[int64]bool // tombol mark-read per baris nonaktif selama in-flight
	svc  NotificationReader
}

func NewNotificationListController(svc NotificationReader, perPage int, r view.Renderer[model.Notification]) *NotificationListController {
	fetch := func(ctx context.Context, page, perPage int, filters map[string]string) ([]model.Notification, int, error) {
		return svc.List(ctx, page, perPage, filters["only_unread"] == "true")
	}
	return &NotificationListController{
		ListController: view.NewListController(perPage, fetch, r),
		busy:           map[int64]bool{},
		svc:            svc,
	}
}

// FilterOnlyUnread menyalakan/mematikan filter belum-dibaca.
func (c *NotificationListController) FilterOnlyUnread(on bool) {
	c.SetFilter("only_unread", strconv.FormatBool(on))
}

// MarkRead menandai satu baris terbaca lalu memuat ulang halaman aktif.
// is_read hanya berubah mengikuti hasil server, tidak ditebak di muka.
func (c *NotificationListController) MarkRead(ctx context.Context, id int64) error {
	c.mu.Lock()
	if c.busy[id] {
		c.mu.Unlock()
		return nil
	}
	c.busy[id] = true
	c.mu.Unlock()

	err := c.svc.MarkRead(ctx, id)

	c.mu.Lock()
	delete(c.busy, id)
	c.mu.Unlock()
	if err != nil {
		return helper.AsApiError(err)
	}
	return c.Load(ctx, c.Snapshot().Page)
}

// MarkAllRead menandai semua terbaca lalu memuat ulang dari halaman 1.
func (c *NotificationListController) MarkAllRead(ctx context.Context) error {
	if err := c.svc.MarkAllRead(ctx); err != nil {
		return helper.AsApiError(err)
	}
	return c.Load(ctx, 1)
}
