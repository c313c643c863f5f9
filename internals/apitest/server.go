package apitest

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"sewaaset_client/internals/constants"
	assetDTO "sewaaset_client/internals/features/assets/dto"
	assetModel "sewaaset_client/internals/features/assets/model"
	notifModel "sewaaset_client/internals/features/notifications/model"
	paymentDTO "sewaaset_client/internals/features/payments/dto"
	rentalDTO "sewaaset_client/internals/features/rentals/dto"
	rentalModel "sewaaset_client/internals/features/rentals/model"
	rentalsvc "sewaaset_client/internals/features/rentals/service"
	helper "sewaaset_client/internals/helpers"
)

// Server adalah backend stub untuk tes integrasi: seluruh tabel endpoint
// dimainkan di atas Store in-memory, tanpa database dan tanpa Midtrans asli.
type Server struct {
	App     *fiber.App
	Store   *Store
	BaseURL string
}

// Start menjalankan stub di port loopback acak dan mengembalikan server
// yang sudah siap menerima request.
func Start() (*Server, error) {
	st := NewStore()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	s := &Server{App: app, Store: st}
	s.routes()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s.BaseURL = "http://" + ln.Addr().String()

	go func() {
		if err := app.Listener(ln); err != nil {
			log.Printf("[APITEST] server berhenti: %v", err)
		}
	}()
	return s, nil
}

// Shutdown mematikan server stub.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func ok(c *fiber.Ctx, body fiber.Map) error {
	body["success"] = true
	return c.JSON(body)
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

func pageParams(c *fiber.Ctx) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.Query("per_page", "10"))
	if perPage < 1 {
		perPage = 10
	}
	return page, perPage
}

func paginate[T any](rows []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func pagination(page, perPage, total int) fiber.Map {
	return fiber.Map{
		"page":        page,
		"per_page":    perPage,
		"total":       total,
		"total_pages": helper.PageCount(total, perPage),
	}
}

func (s *Server) routes() {
	app, st := s.App, s.Store

	// ---------- Aset ----------

	app.Get("/rental/api/assets/available", func(c *fiber.Ctx) error {
		st.hit("assets.available")
		page, perPage := pageParams(c)
		assetType := c.Query("asset_type")
		kecamatan := c.Query("kecamatan")
		minPrice, maxPrice := parsePriceRange(c.Query("price_range"))

		st.mu.Lock()
		var rows []assetModel.Asset
		for _, a := range st.assets {
			if a.Status != constants.AssetAvailable {
				continue
			}
			if assetType != "" && a.AssetType != assetType {
				continue
			}
			if kecamatan != "" && a.Kecamatan != kecamatan {
				continue
			}
			if minPrice > 0 && a.HargaSewa < minPrice {
				continue
			}
			if maxPrice > 0 && a.HargaSewa > maxPrice {
				continue
			}
			a.IsFavorite = st.favorites[a.ID]
			rows = append(rows, a)
		}
		st.mu.Unlock()

		total := len(rows)
		// backend lama mengirim daftar di key "assets", bukan "data"
		return ok(c, fiber.Map{
			"assets":     paginate(rows, page, perPage),
			"total":      total,
			"pagination": pagination(page, perPage, total),
		})
	})

	app.Get("/rental/api/assets/:id", func(c *fiber.Ctx) error {
		st.hit("assets.detail")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		st.mu.Lock()
		defer st.mu.Unlock()
		for _, a := range st.assets {
			if a.ID == id {
				a.IsFavorite = st.favorites[a.ID]
				return ok(c, fiber.Map{"data": a})
			}
		}
		return fail(c, fiber.StatusNotFound, "Aset tidak ditemukan")
	})

	app.Post("/rental/api/assets", func(c *fiber.Ctx) error {
		st.hit("assets.create")
		var form assetDTO.AssetForm
		if err := c.BodyParser(&form); err != nil {
			return fail(c, fiber.StatusBadRequest, "Body tidak valid")
		}
		if form.Name == "" || !constants.IsValidAssetType(form.AssetType) {
			return fail(c, fiber.StatusBadRequest, "Data aset tidak lengkap")
		}
		id := st.AddAsset(assetFromForm(form))
		return ok(c, fiber.Map{
			"message": "Aset berhasil ditambahkan",
			"data":    fiber.Map{"id": id},
		})
	})

	app.Put("/rental/api/assets/:id", func(c *fiber.Ctx) error {
		st.hit("assets.update")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		var form assetDTO.AssetForm
		if err := c.BodyParser(&form); err != nil {
			return fail(c, fiber.StatusBadRequest, "Body tidak valid")
		}
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.assets {
			if st.assets[i].ID == id {
				updated := assetFromForm(form)
				updated.ID = id
				updated.Status = st.assets[i].Status
				st.assets[i] = updated
				return ok(c, fiber.Map{"message": "Aset berhasil diperbarui"})
			}
		}
		return fail(c, fiber.StatusNotFound, "Aset tidak ditemukan")
	})

	app.Delete("/rental/api/assets/:id", func(c *fiber.Ctx) error {
		st.hit("assets.delete")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		st.mu.Lock()
		found := false
		for i := range st.assets {
			if st.assets[i].ID == id {
				st.assets = append(st.assets[:i], st.assets[i+1:]...)
				found = true
				break
			}
		}
		st.mu.Unlock()
		if !found {
			return fail(c, fiber.StatusNotFound, "Aset tidak ditemukan")
		}
		return ok(c, fiber.Map{"message": "Aset berhasil dihapus"})
	})

	app.Post("/api/toggle-favorite/:id", func(c *fiber.Ctx) error {
		st.hit("favorite.toggle")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		var body assetDTO.ToggleFavoriteRequest
		_ = c.BodyParser(&body)

		st.mu.Lock()
		defer st.mu.Unlock()
		exists := false
		for _, a := range st.assets {
			if a.ID == id {
				exists = true
				break
			}
		}
		if !exists {
			return fail(c, fiber.StatusNotFound, "Aset sudah tidak tersedia")
		}
		if body.Action == "add" {
			st.favorites[id] = true
		} else {
			delete(st.favorites, id)
		}
		total := len(st.favorites)
		return ok(c, fiber.Map{"total": total})
	})

	// ---------- Pengajuan sewa ----------

	app.Post("/api/submit-rental-request", func(c *fiber.Ctx) error {
		st.hit("rental.submit")
		var req rentalDTO.SubmitRentalRequest
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "Body tidak valid")
		}
		start, err := time.Parse(rentalsvc.DateLayout, req.StartDate)
		if err != nil || req.TotalMonths < 1 {
			return fail(c, fiber.StatusBadRequest, "Tanggal mulai tidak valid")
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		var asset *assetModel.Asset
		for i := range st.assets {
			if st.assets[i].ID == req.AssetID {
				asset = &st.assets[i]
				break
			}
		}
		if asset == nil {
			return fail(c, fiber.StatusNotFound, "Aset tidak ditemukan")
		}
		row := rentalModel.RentalRequest{
			ID:           st.nextReqID,
			UserID:       1,
			AssetID:      asset.ID,
			UserName:     "Pengguna Uji",
			AssetName:    asset.Name,
			Status:       constants.RequestPending,
			StartDate:    req.StartDate,
			EndDate:      rentalsvc.EndDate(start, req.TotalMonths).Format(rentalsvc.DateLayout),
			TotalMonths:  req.TotalMonths,
			MonthlyPrice: asset.HargaSewa,
			TotalPrice:   rentalsvc.TotalCost(asset.HargaSewa, req.TotalMonths),
			CreatedAt:    time.Now().Format(time.RFC3339),
		}
		st.nextReqID++
		st.requests = append(st.requests, row)
		st.notifications = append(st.notifications, notifModel.Notification{
			ID:          st.nextNotifID,
			Title:       "Pengajuan sewa baru",
			Message:     fmt.Sprintf("%s mengajukan sewa %s", row.UserName, row.AssetName),
			RelatedType: "rental_request",
			RelatedID:   row.ID,
			CreatedAt:   row.CreatedAt,
		})
		st.nextNotifID++
		return ok(c, fiber.Map{
			"message": "Pengajuan sewa berhasil dikirim",
			"data":    fiber.Map{"id": row.ID, "total_price": row.TotalPrice},
		})
	})

	app.Get("/api/user-rental-requests", func(c *fiber.Ctx) error {
		st.hit("rental.mine")
		status := c.Query("status")
		if status != "" && !constants.IsValidRequestStatus(status) {
			return fail(c, fiber.StatusBadRequest, "Status pengajuan tidak dikenal")
		}
		period := c.Query("period")
		page, perPage := pageParams(c)

		st.mu.Lock()
		var rows []rentalModel.RentalRequest
		for _, r := range st.requests {
			if status != "" && r.Status != status {
				continue
			}
			if period != "" && !strings.HasPrefix(r.StartDate, period) {
				continue
			}
			rows = append(rows, r)
		}
		legacy := st.legacyNames
		st.mu.Unlock()

		total := len(rows)
		pageRows := paginate(rows, page, perPage)
		if legacy {
			return ok(c, fiber.Map{
				"data":       legacyRequestRows(pageRows),
				"total":      total,
				"pagination": pagination(page, perPage, total),
			})
		}
		return ok(c, fiber.Map{
			"data":       pageRows,
			"total":      total,
			"pagination": pagination(page, perPage, total),
		})
	})

	app.Get("/api/admin/rental-requests", func(c *fiber.Ctx) error {
		st.hit("rental.adminQueue")
		status := c.Query("status")
		if status != "" && !constants.IsValidRequestStatus(status) {
			return fail(c, fiber.StatusBadRequest, "Status pengajuan tidak dikenal")
		}
		page, perPage := pageParams(c)

		st.mu.Lock()
		var rows []rentalModel.RentalRequest
		for _, r := range st.requests {
			if status != "" && r.Status != status {
				continue
			}
			rows = append(rows, r)
		}
		st.mu.Unlock()

		total := len(rows)
		return ok(c, fiber.Map{
			"data":       paginate(rows, page, perPage),
			"total":      total,
			"pagination": pagination(page, perPage, total),
		})
	})

	app.Post("/api/admin/rental-requests/:id/approve", func(c *fiber.Ctx) error {
		st.hit("rental.approve")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		var body rentalDTO.ApproveRequest
		_ = c.BodyParser(&body)

		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.requests {
			if st.requests[i].ID != id {
				continue
			}
			if st.requests[i].Status != constants.RequestPending {
				return fail(c, fiber.StatusConflict, "Pengajuan sudah diproses")
			}
			st.requests[i].Status = constants.RequestApproved
			st.requests[i].AdminNotes = body.Notes
			st.transactions = append(st.transactions, rentalModel.RentalTransaction{
				ID:              st.nextTrxID,
				RentalRequestID: id,
				AssetID:         st.requests[i].AssetID,
				Status:          constants.TransactionActive,
				PaymentStatus:   constants.PaymentUnpaid,
				StartDate:       st.requests[i].StartDate,
				CurrentEndDate:  st.requests[i].EndDate,
				MonthlyPrice:    st.requests[i].MonthlyPrice,
				RemainingAmount: st.requests[i].TotalPrice,
			})
			st.nextTrxID++
			return ok(c, fiber.Map{"message": "Pengajuan disetujui"})
		}
		return fail(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	})

	app.Post("/api/admin/rental-requests/:id/reject", func(c *fiber.Ctx) error {
		st.hit("rental.reject")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		var body rentalDTO.RejectRequest
		_ = c.BodyParser(&body)
		if strings.TrimSpace(body.Reason) == "" {
			return fail(c, fiber.StatusBadRequest, "Alasan penolakan wajib diisi")
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.requests {
			if st.requests[i].ID != id {
				continue
			}
			if st.requests[i].Status != constants.RequestPending {
				return fail(c, fiber.StatusConflict, "Pengajuan sudah diproses")
			}
			st.requests[i].Status = constants.RequestRejected
			st.requests[i].AdminNotes = body.Reason
			return ok(c, fiber.Map{"message": "Pengajuan ditolak"})
		}
		return fail(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	})

	// ---------- Transaksi ----------

	app.Get("/api/user/rental-transactions", func(c *fiber.Ctx) error {
		st.hit("trx.list")
		page, perPage := pageParams(c)
		st.mu.Lock()
		rows := append([]rentalModel.RentalTransaction(nil), st.transactions...)
		st.mu.Unlock()

		total := len(rows)
		return ok(c, fiber.Map{
			"data":       paginate(rows, page, perPage),
			"total":      total,
			"pagination": pagination(page, perPage, total),
		})
	})

	app.Post("/api/user/rental-transactions/:id/request-extension", func(c *fiber.Ctx) error {
		st.hit("trx.extend")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		var body rentalDTO.ExtensionRequest
		if err := c.BodyParser(&body); err != nil || body.AdditionalMonths < 1 {
			return fail(c, fiber.StatusBadRequest, "Jumlah bulan perpanjangan tidak valid")
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.transactions {
			tx := &st.transactions[i]
			if tx.ID != id {
				continue
			}
			prev, err := time.Parse(rentalsvc.DateLayout, tx.CurrentEndDate)
			if err != nil {
				return fail(c, fiber.StatusInternalServerError, "Tanggal transaksi rusak")
			}
			next := rentalsvc.EndDate(prev, body.AdditionalMonths)
			tx.ExtensionHistory = append(tx.ExtensionHistory, rentalModel.Extension{
				Date:             time.Now().Format(rentalsvc.DateLayout),
				AdditionalMonths: body.AdditionalMonths,
				PreviousEndDate:  tx.CurrentEndDate,
				NewEndDate:       next.Format(rentalsvc.DateLayout),
				AdminNotes:       body.Notes,
			})
			tx.CurrentEndDate = next.Format(rentalsvc.DateLayout)
			tx.ExtensionCount++
			tx.Status = constants.TransactionExtended
			tx.RemainingAmount += rentalsvc.ExtensionCost(tx.MonthlyPrice, body.AdditionalMonths)
			return ok(c, fiber.Map{"message": "Perpanjangan dicatat"})
		}
		return fail(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	})

	// ---------- Notifikasi ----------

	app.Get("/api/admin/notifications", func(c *fiber.Ctx) error {
		st.hit("notif.list")
		page, perPage := pageParams(c)
		onlyUnread := c.Query("only_unread") == "true"

		st.mu.Lock()
		var rows []notifModel.Notification
		for _, n := range st.notifications {
			if onlyUnread && n.IsRead {
				continue
			}
			rows = append(rows, n)
		}
		st.mu.Unlock()

		total := len(rows)
		return ok(c, fiber.Map{
			"data":       paginate(rows, page, perPage),
			"total":      total,
			"pagination": pagination(page, perPage, total),
		})
	})

	app.Post("/api/admin/notifications/:id/mark-read", func(c *fiber.Ctx) error {
		st.hit("notif.markRead")
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.notifications {
			if st.notifications[i].ID == id {
				st.notifications[i].IsRead = true
				return ok(c, fiber.Map{"message": "Notifikasi ditandai dibaca"})
			}
		}
		return fail(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	})

	app.Post("/api/admin/notifications/mark-all-read", func(c *fiber.Ctx) error {
		st.hit("notif.markAll")
		st.mu.Lock()
		for i := range st.notifications {
			st.notifications[i].IsRead = true
		}
		st.mu.Unlock()
		return ok(c, fiber.Map{"message": "Semua notifikasi ditandai dibaca"})
	})

	// ---------- Pembayaran ----------

	app.Post("/api/midtrans/create-payment", func(c *fiber.Ctx) error {
		st.hit("payment.create")
		if c.Get(fiber.HeaderAuthorization) == "" {
			return fail(c, fiber.StatusUnauthorized, "Harus login untuk membayar")
		}
		var desc paymentDTO.PaymentDescriptor
		if err := c.BodyParser(&desc); err != nil || desc.OrderID == "" {
			return fail(c, fiber.StatusBadRequest, "Order ID wajib diisi")
		}

		st.mu.Lock()
		delay := st.paymentDelay
		st.mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}

		st.mu.Lock()
		st.payments[desc.OrderID] = "pending"
		st.mu.Unlock()
		return ok(c, fiber.Map{"token": "SNAP-" + desc.OrderID})
	})

	app.Post("/api/midtrans/verify-payment", func(c *fiber.Ctx) error {
		st.hit("payment.verify")
		var body paymentDTO.VerifyPaymentRequest
		if err := c.BodyParser(&body); err != nil || body.OrderID == "" {
			return fail(c, fiber.StatusBadRequest, "Order ID wajib diisi")
		}
		st.mu.Lock()
		defer st.mu.Unlock()
		if _, known := st.payments[body.OrderID]; !known {
			return fail(c, fiber.StatusNotFound, "Order tidak dikenal")
		}
		st.payments[body.OrderID] = "settlement"
		return ok(c, fiber.Map{"message": "Pembayaran terverifikasi"})
	})
}

func parsePriceRange(raw string) (min, max int64) {
	if raw == "" {
		return 0, 0
	}
	parts := strings.SplitN(raw, "-", 2)
	min, _ = strconv.ParseInt(parts[0], 10, 64)
	if len(parts) == 2 {
		max, _ = strconv.ParseInt(parts[1], 10, 64)
	}
	return min, max
}

func assetFromForm(f assetDTO.AssetForm) assetModel.Asset {
	return assetModel.Asset{
		Name:            f.Name,
		AssetType:       f.AssetType,
		Kecamatan:       f.Kecamatan,
		Alamat:          f.Alamat,
		LuasTanah:       f.LuasTanah,
		LuasBangunan:    f.LuasBangunan,
		HargaSewa:       f.HargaSewa,
		Sertifikat:      f.Sertifikat,
		JenisZona:       f.JenisZona,
		KamarTidur:      f.KamarTidur,
		KamarMandi:      f.KamarMandi,
		JumlahLantai:    f.JumlahLantai,
		DayaListrik:     f.DayaListrik,
		KondisiProperti: f.KondisiProperti,
		Deskripsi:       f.Deskripsi,
		Status:          constants.AssetAvailable,
	}
}

// legacyRequestRows menserialisasi pengajuan memakai key lama nama_penyewa.
func legacyRequestRows(rows []rentalModel.RentalRequest) []fiber.Map {
	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"id":            r.ID,
			"user_id":       r.UserID,
			"asset_id":      r.AssetID,
			"nama_penyewa":  r.UserName,
			"asset_name":    r.AssetName,
			"status":        r.Status,
			"start_date":    r.StartDate,
			"end_date":      r.EndDate,
			"total_months":  r.TotalMonths,
			"monthly_price": r.MonthlyPrice,
			"total_price":   r.TotalPrice,
			"admin_notes":   r.AdminNotes,
			"created_at":    r.CreatedAt,
		})
	}
	return out
}
