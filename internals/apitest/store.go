package apitest

import (
	"fmt"
	"sync"
	"time"

	"sewaaset_client/internals/constants"
	assetModel "sewaaset_client/internals/features/assets/model"
	notifModel "sewaaset_client/internals/features/notifications/model"
	rentalModel "sewaaset_client/internals/features/rentals/model"
)

// Store adalah state in-memory server stub: cukup untuk memainkan seluruh
// alur sewa (aset → pengajuan → persetujuan → pembayaran → notifikasi)
// tanpa database.
type Store struct {
	mu sync.Mutex

	assets      []assetModel.Asset
	nextAssetID int64

	favorites map[int64]bool // assetID → difavoritkan user uji

	requests     []rentalModel.RentalRequest
	nextReqID    int64
	nextTrxID    int64
	transactions []rentalModel.RentalTransaction

	notifications []notifModel.Notification
	nextNotifID   int64

	payments map[string]string // order_id → status

	paymentDelay time.Duration
	legacyNames  bool

	hits map[string]int
}

// SetPaymentDelay menunda handler create-payment; dipakai tes timeout.
func (st *Store) SetPaymentDelay(d time.Duration) {
	st.mu.Lock()
	st.paymentDelay = d
	st.mu.Unlock()
}

// SetLegacyNames membuat daftar pengajuan diserialisasi dengan key lama
// "nama_penyewa" (bukan "user_name"), meniru backend versi lama.
func (st *Store) SetLegacyNames(on bool) {
	st.mu.Lock()
	st.legacyNames = on
	st.mu.Unlock()
}

func NewStore() *Store {
	return &Store{
		nextAssetID: 1,
		nextReqID:   1,
		nextTrxID:   1,
		nextNotifID: 1,
		favorites:   map[int64]bool{},
		payments:    map[string]string{},
		hits:        map[string]int{},
	}
}

func (st *Store) hit(key string) {
	st.mu.Lock()
	st.hits[key]++
	st.mu.Unlock()
}

// Hits mengembalikan berapa kali endpoint bernama key dipanggil.
func (st *Store) Hits(key string) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.hits[key]
}

// AddAsset menyisipkan aset dan mengembalikan ID-nya.
func (st *Store) AddAsset(a assetModel.Asset) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	a.ID = st.nextAssetID
	st.nextAssetID++
	if a.Status == "" {
		a.Status = constants.AssetAvailable
	}
	st.assets = append(st.assets, a)
	return a.ID
}

// RemoveAsset menghapus aset; dipakai menyiapkan kasus 404 toggle-favorite.
func (st *Store) RemoveAsset(id int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.assets {
		if st.assets[i].ID == id {
			st.assets = append(st.assets[:i], st.assets[i+1:]...)
			return
		}
	}
}

// AddNotification menyisipkan notifikasi admin.
func (st *Store) AddNotification(n notifModel.Notification) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	n.ID = st.nextNotifID
	st.nextNotifID++
	if n.CreatedAt == "" {
		n.CreatedAt = time.Now().Format(time.RFC3339)
	}
	st.notifications = append(st.notifications, n)
	return n.ID
}

// AddTransaction menyisipkan transaksi aktif untuk tes perpanjangan.
func (st *Store) AddTransaction(tx rentalModel.RentalTransaction) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	tx.ID = st.nextTrxID
	st.nextTrxID++
	st.transactions = append(st.transactions, tx)
	return tx.ID
}

// SeedAssets mengisi n aset tersedia bergantian tanah/bangunan, harga
// berjenjang supaya filter rentang harga punya hasil yang bisa dicek.
func (st *Store) SeedAssets(n int) {
	for i := 1; i <= n; i++ {
		a := assetModel.Asset{
			Name:       fmt.Sprintf("Aset %02d", i),
			AssetType:  constants.AssetTypeTanah,
			Kecamatan:  "Cibinong",
			Alamat:     fmt.Sprintf("Jl. Raya No. %d", i),
			LuasTanah:  100 + float64(i)*10,
			HargaSewa:  int64(i) * 1_000_000,
			Sertifikat: "SHM",
			JenisZona:  "komersial",
		}
		if i%2 == 0 {
			a.AssetType = constants.AssetTypeBangunan
			a.Kecamatan = "Citeureup"
			lb := 80.0
			kt, km, lt, watt := 2, 1, 1, 2200
			kondisi := "baik"
			a.LuasBangunan = &lb
			a.KamarTidur = &kt
			a.KamarMandi = &km
			a.JumlahLantai = &lt
			a.DayaListrik = &watt
			a.KondisiProperti = &kondisi
		}
		st.AddAsset(a)
	}
}
