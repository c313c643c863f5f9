package service

import (
	"context"
	"fmt"
	"strconv"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/features/notifications/model"
	helper "sewaaset_client/internals/helpers"
)

// NotificationService memetakan endpoint notifikasi admin.
type NotificationService struct {
	api *client.Client
}

func NewNotificationService(api *client.Client) *NotificationService {
	return &NotificationService{api: api}
}

// List mengambil satu halaman notifikasi; onlyUnread menyaring di server.
func (s *NotificationService) List(ctx context.Context, page, perPage int, onlyUnread bool) ([]model.Notification, int, error) {
	q := map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	}
	if onlyUnread {
		q["only_unread"] = "true"
	}
	env, err := s.api.Get(ctx, "/api/admin/notifications", q)
	if err != nil {
		return nil, 0, err
	}
	var rows []model.Notification
	if err := env.DecodeData(&rows); err != nil {
		return nil, 0, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data notifikasi tidak dikenali"}
	}
	total := env.Total
	if env.Pagination != nil && env.Pagination.Total > 0 {
		total = env.Pagination.Total
	}
	return rows, total, nil
}

// UnreadCount mengambil jumlah belum-dibaca untuk badge.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	env, err := s.api.Get(ctx, "/api/admin/notifications", map[string]string{
		"page":        "1",
		"per_page":    "1",
		"only_unread": "true",
	})
	if err != nil {
		return 0, err
	}
	if env.Pagination != nil && env.Pagination.Total > 0 {
		return env.Pagination.Total, nil
	}
	return env.Total, nil
}

// MarkRead menandai satu notifikasi terbaca.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	_, err := s.api.Post(ctx, fmt.Sprintf("/api/admin/notifications/%d/mark-read", id), nil)
	return err
}

// MarkAllRead menandai semua notifikasi terbaca.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	_, err := s.api.Post(ctx, "/api/admin/notifications/mark-all-read", nil)
	return err
}
