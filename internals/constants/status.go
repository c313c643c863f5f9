package constants

// ==========================
// ✅ Status Aset
// ==========================
const (
	AssetAvailable   = "available"
	AssetRented      = "rented"
	AssetMaintenance = "maintenance"
	AssetReserved    = "reserved"
)

// Jenis aset: tanah saja atau tanah + bangunan
const (
	AssetTypeTanah    = "tanah"
	AssetTypeBangunan = "bangunan"
)

// ==========================
// ✅ Status Pengajuan Sewa
// ==========================
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestActive    = "active"
	RequestCompleted = "completed"
	RequestCancelled = "cancelled"
)

// ==========================
// ✅ Status Transaksi Sewa
// ==========================
const (
	TransactionActive     = "active"
	TransactionExtended   = "extended"
	TransactionCompleted  = "completed"
	TransactionTerminated = "terminated"
)

const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

var (
	AllAssetStatuses   = []string{AssetAvailable, AssetRented, AssetMaintenance, AssetReserved}
	AllAssetTypes      = []string{AssetTypeTanah, AssetTypeBangunan}
	AllRequestStatuses = []string{
		RequestPending,
		RequestApproved,
		RequestRejected,
		RequestActive,
		RequestCompleted,
		RequestCancelled,
	}
)

// requestTransitions memetakan status pengajuan ke status tujuan yang sah.
// Dipakai klien untuk menentukan aksi mana yang boleh ditampilkan;
// keputusan final tetap di server.
var requestTransitions = map[string][]string{
	RequestPending:  {RequestApproved, RequestRejected, RequestCancelled},
	RequestApproved: {RequestActive, RequestCancelled},
	RequestActive:   {RequestCompleted},
}

// CanTransitionRequest melaporkan apakah perpindahan status pengajuan sah.
func CanTransitionRequest(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidAssetType melaporkan apakah jenis aset dikenal.
func IsValidAssetType(t string) bool {
	for _, known := range AllAssetTypes {
		if known == t {
			return true
		}
	}
	return false
}

// IsValidRequestStatus melaporkan apakah status pengajuan dikenal.
func IsValidRequestStatus(s string) bool {
	for _, known := range AllRequestStatuses {
		if known == s {
			return true
		}
	}
	return false
}
