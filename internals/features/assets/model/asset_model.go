package model

import (
	"strings"

	"sewaaset_client/internals/constants"
)

// Asset adalah unit properti (tanah atau tanah+bangunan) milik server;
// klien hanya memegang salinan sekali pakai yang di-refresh tiap load.
type Asset struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AssetType string `json:"asset_type"` // tanah | bangunan
	Kecamatan string `json:"kecamatan"`
	Alamat    string `json:"alamat"`

	LuasTanah    float64  `json:"luas_tanah"`
	LuasBangunan *float64 `json:"luas_bangunan,omitempty"`

	HargaSewa  int64  `json:"harga_sewa"` // harga sewa per bulan
	Sertifikat string `json:"sertifikat"`
	JenisZona  string `json:"jenis_zona"`
	Status     string `json:"status"`

	// Field khusus bangunan
	KamarTidur      *int    `json:"kamar_tidur,omitempty"`
	KamarMandi      *int    `json:"kamar_mandi,omitempty"`
	JumlahLantai    *int    `json:"jumlah_lantai,omitempty"`
	DayaListrik     *int    `json:"daya_listrik,omitempty"`
	KondisiProperti *string `json:"kondisi_properti,omitempty"`

	Deskripsi  string `json:"deskripsi"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
}

// IsBangunan melaporkan apakah aset punya bangunan (field bangunan relevan).
func (a *Asset) IsBangunan() bool {
	return a.AssetType == constants.AssetTypeBangunan
}

// Tersedia melaporkan apakah aset bisa diajukan sewa.
func (a *Asset) Tersedia() bool {
	return a.Status == constants.AssetAvailable
}

// MatchName dipakai filter pencarian client-side (substring, case-insensitive).
func (a *Asset) MatchName(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), strings.ToLower(q))
}
