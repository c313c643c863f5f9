package dto

import "strconv"

// SubmitRentalRequest: body POST /api/submit-rental-request.
// start_date minimal besok; aturan itu dicek di service karena butuh jam
// saat ini, bukan sekadar tag.
type SubmitRentalRequest struct {
	AssetID     int64  `json:"asset_id" validate:"required,gt=0"`
	StartDate   string `json:"start_date" validate:"required"`
	TotalMonths int    `json:"total_months" validate:"required,gte=1"`
}

// MyRequestsQuery adalah filter daftar pengajuan milik user.
type MyRequestsQuery struct {
	Page         int
	PerPage      int
	Status       string
	ActivityType string
	Period       string
}

func (q MyRequestsQuery) ToQuery() map[string]string {
	out := map[string]string{}
	if q.Page > 0 {
		out["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		out["per_page"] = strconv.Itoa(q.PerPage)
	}
	if q.Status != "" {
		out["status"] = q.Status
	}
	if q.ActivityType != "" {
		out["activity_type"] = q.ActivityType
	}
	if q.Period != "" {
		out["period"] = q.Period
	}
	return out
}

// ApproveRequest: body persetujuan admin.
type ApproveRequest struct {
	Notes string `json:"notes,omitempty"`
}

// RejectRequest: body penolakan admin; alasan wajib diisi.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ExtensionRequest: body pengajuan perpanjangan transaksi.
type ExtensionRequest struct {
	AdditionalMonths int    `json:"additional_months" validate:"required,gte=1"`
	Notes            string `json:"notes"`
}
