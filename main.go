package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/configs"
	"sewaaset_client/internals/constants"
	assetController "sewaaset_client/internals/features/assets/controller"
	assetModel "sewaaset_client/internals/features/assets/model"
	assetService "sewaaset_client/internals/features/assets/service"
	"sewaaset_client/internals/features/notifications/scheduler"
	notifService "sewaaset_client/internals/features/notifications/service"
	"sewaaset_client/internals/features/notifications/toast"
	helper "sewaaset_client/internals/helpers"
	"sewaaset_client/internals/view"
)

// consoleView menggambar daftar aset, tumpukan toast, dan badge notifikasi
// ke terminal. Satu potret state per render, tidak ada render parsial.
type consoleView struct{}

func (consoleView) Render(s view.State[assetModel.Asset]) {
	if s.Loading {
		fmt.Println("⏳ Memuat daftar aset...")
		return
	}
	if s.Err != nil {
		fmt.Printf("❌ %s\n", s.Err.Message)
		return
	}
	if s.Empty() {
		fmt.Println("Tidak ada aset yang cocok dengan filter.")
		return
	}

	fmt.Printf("\n=== Aset Tersedia (halaman %d/%d, total %d) ===\n", s.Page, s.PageCount(), s.Total)
	for _, a := range s.Items {
		fmt.Printf("  [%d] %-20s %-9s %-10s %s/bln\n",
			a.ID, a.Name, a.AssetType, a.Kecamatan, helper.FormatRupiah(a.HargaSewa))
	}

	var nav []string
	if s.HasPrev() {
		nav = append(nav, "< Prev")
	}
	for _, p := range s.PageWindow() {
		if p == s.Page {
			nav = append(nav, fmt.Sprintf("[%d]", p))
		} else {
			nav = append(nav, fmt.Sprintf("%d", p))
		}
	}
	if s.HasNext() {
		nav = append(nav, "Next >")
	}
	fmt.Println("  " + strings.Join(nav, "  "))
}

func (consoleView) RenderToasts(ts []toast.Toast) {
	for _, t := range ts {
		fmt.Printf("🔔 [%s] %s\n", t.Kind, t.Message)
	}
}

func (consoleView) SetUnreadCount(n int) {
	log.Printf("[NOTIF] 🔴 Badge belum dibaca: %d", n)
}

func main() {
	configs.LoadEnv()

	api := client.New()
	assets := assetService.NewAssetService(api)
	notifs := notifService.NewNotificationService(api)

	ui := consoleView{}
	toaster := toast.NewToaster(ui)

	// 🔑 preflight token: cek kadaluarsa + gating menu admin, tanpa verifikasi
	// tanda tangan (kunci ada di server)
	isAdmin := false
	if configs.AccessToken != "" {
		claims, err := helper.ParseClaims(configs.AccessToken)
		switch {
		case err != nil:
			log.Printf("⚠️ Access token tidak bisa dibaca: %v", err)
		case claims.IsExpired(time.Now()):
			log.Println("⚠️ Access token sudah kadaluarsa, silakan login ulang")
		default:
			isAdmin = claims.IsAdmin()
			log.Printf("✅ Login sebagai user %s (role %s)", claims.UserID, claims.Role)
		}
	}

	// ⏱ polling badge notifikasi hanya untuk admin
	var poller *cron.Cron
	if isAdmin {
		var err error
		poller, err = scheduler.StartBadgePoller(configs.NotifPollSpec, notifs, ui)
		if err != nil {
			log.Fatalf("poller badge gagal start: %v", err)
		}
	} else {
		log.Println(constants.RoleErrorAdmin("notifikasi"))
	}

	list := assetController.NewAssetListController(assets, 5, ui)

	ctx, cancel := context.WithTimeout(context.Background(), configs.APITimeout)
	defer cancel()

	// ✅ jelajah: halaman pertama, lalu filter, lalu pindah halaman
	if err := list.Load(ctx, 1); err != nil {
		toaster.Show(helper.AsApiError(err).Message, toast.Error, toast.DefaultAutoDismiss)
	}
	list.FilterAssetType("tanah")
	if err := list.Load(ctx, 1); err == nil {
		toaster.Show("Filter jenis aset: tanah", toast.Info, toast.DefaultAutoDismiss)
	}
	if moved, err := list.GoToPage(ctx, 2); err != nil {
		toaster.Show(helper.AsApiError(err).Message, toast.Error, toast.DefaultAutoDismiss)
	} else if !moved {
		fmt.Println("Halaman 2 di luar rentang, tetap di halaman 1.")
	}

	// tunggu Ctrl+C; poller tetap memperbarui badge selama proses hidup
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if poller != nil {
		select {
		case <-poller.Stop().Done():
		case <-time.After(5 * time.Second):
		}
	}
	toaster.Clear()
	log.Println("✅ Selesai.")
}
