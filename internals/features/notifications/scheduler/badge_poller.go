package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// UnreadCounter adalah bagian NotificationService yang dibutuhkan poller.
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// BadgeView menerima jumlah belum-dibaca terbaru.
type BadgeView interface {
	SetUnreadCount(n int)
}

// StartBadgePoller menjalankan polling badge notifikasi di belakang layar.
// spec memakai format cron/v3 (mis. "@every 1m"). Kegagalan poll hanya
// dicatat; badge mempertahankan nilai terakhir yang berhasil.
func StartBadgePoller(spec string, svc UnreadCounter, badge BadgeView) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		n, err := svc.UnreadCount(ctx)
		if err != nil {
			log.Printf("[NOTIF] ⚠️ Gagal polling badge notifikasi: %v", err)
			return
		}
		badge.SetUnreadCount(n)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[NOTIF] ✅ Poller badge notifikasi berjalan (%s)", spec)
	return c, nil
}
