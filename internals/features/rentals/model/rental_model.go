package model

// RentalRequest adalah pengajuan sewa milik server. Skema kanonik memakai
// user_name; serialisasi lama (nama_penyewa) hanya diterima sebagai alias
// decode dan dinormalkan lewat Normalize — tidak ada dua skema di dalam klien.
type RentalRequest struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	AssetID int64 `json:"asset_id"`

	UserName          string `json:"user_name,omitempty"`
	LegacyNamaPenyewa string `json:"nama_penyewa,omitempty"`
	AssetName         string `json:"asset_name,omitempty"`

	Status string `json:"status"`

	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`
	TotalMonths int    `json:"total_months"`

	MonthlyPrice int64 `json:"monthly_price"`
	TotalPrice   int64 `json:"total_price"` // nilai berwenang dari server

	AdminNotes string `json:"admin_notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Normalize memindahkan field alias lama ke skema kanonik.
func (r *RentalRequest) Normalize() {
	if r.UserName == "" && r.LegacyNamaPenyewa != "" {
		r.UserName = r.LegacyNamaPenyewa
	}
	r.LegacyNamaPenyewa = ""
}

// Extension adalah satu entri riwayat perpanjangan transaksi.
type Extension struct {
	Date             string `json:"date"`
	AdditionalMonths int    `json:"additional_months"`
	PreviousEndDate  string `json:"previous_end_date"`
	NewEndDate       string `json:"new_end_date"`
	AdminNotes       string `json:"admin_notes,omitempty"`
}

// RentalTransaction adalah rekaman sewa aktif/historis setelah pengajuan
// disetujui dan dibayar. current_end_date hanya maju lewat perpanjangan
// yang terekam di extension_history.
type RentalTransaction struct {
	ID              int64  `json:"id"`
	RentalRequestID int64  `json:"rental_request_id"`
	AssetID         int64  `json:"asset_id"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`

	StartDate      string `json:"start_date"`
	CurrentEndDate string `json:"current_end_date"`

	MonthlyPrice    int64 `json:"monthly_price"`
	PaidAmount      int64 `json:"paid_amount"`
	RemainingAmount int64 `json:"remaining_amount"`

	ExtensionCount   int         `json:"extension_count"`
	ExtensionHistory []Extension `json:"extension_history"`
}
