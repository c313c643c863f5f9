package dto

import "strconv"

// ListAvailableQuery adalah filter server-side daftar aset tersedia.
type ListAvailableQuery struct {
	Page       int
	PerPage    int
	AssetType  string
	Kecamatan  string
	PriceRange string // format "min-max", diteruskan apa adanya ke server
}

// ToQuery menserialisasi filter jadi query param; nilai kosong tidak dikirim.
func (q ListAvailableQuery) ToQuery() map[string]string {
	out := map[string]string{
		"page":     strconv.Itoa(q.Page),
		"per_page": strconv.Itoa(q.PerPage),
	}
	if q.AssetType != "" {
		out["asset_type"] = q.AssetType
	}
	if q.Kecamatan != "" {
		out["kecamatan"] = q.Kecamatan
	}
	if q.PriceRange != "" {
		out["price_range"] = q.PriceRange
	}
	return out
}

// AssetForm adalah isian form create/edit aset (CRUD admin).
// Field khusus bangunan hanya wajib saat asset_type = bangunan.
type AssetForm struct {
	Name      string `json:"name" validate:"required"`
	AssetType string `json:"asset_type" validate:"required,oneof=tanah bangunan"`
	Kecamatan string `json:"kecamatan" validate:"required"`
	Alamat    string `json:"alamat" validate:"required"`

	LuasTanah    float64  `json:"luas_tanah" validate:"gt=0"`
	LuasBangunan *float64 `json:"luas_bangunan,omitempty" validate:"omitempty,gt=0"`

	HargaSewa  int64  `json:"harga_sewa" validate:"gt=0"`
	Sertifikat string `json:"sertifikat" validate:"required"`
	JenisZona  string `json:"jenis_zona" validate:"required"`

	KamarTidur      *int    `json:"kamar_tidur,omitempty" validate:"required_if=AssetType bangunan,omitempty,gt=0"`
	KamarMandi      *int    `json:"kamar_mandi,omitempty" validate:"required_if=AssetType bangunan,omitempty,gt=0"`
	JumlahLantai    *int    `json:"jumlah_lantai,omitempty" validate:"required_if=AssetType bangunan,omitempty,gt=0"`
	DayaListrik     *int    `json:"daya_listrik,omitempty" validate:"required_if=AssetType bangunan,omitempty,gt=0"`
	KondisiProperti *string `json:"kondisi_properti,omitempty" validate:"required_if=AssetType bangunan"`

	Deskripsi string `json:"deskripsi"`
}

// ToggleFavoriteRequest: body POST /api/toggle-favorite/{assetId}.
type ToggleFavoriteRequest struct {
	Action string `json:"action"` // add | remove
	Note   string `json:"note,omitempty"`
}
