package controller

import (
	"context"

	"sewaaset_client/internals/features/assets/dto"
	"sewaaset_client/internals/features/assets/model"
	"sewaaset_client/internals/view"
)

// AssetLister adalah bagian AssetService yang dibutuhkan daftar aset.
type AssetLister interface {
	ListAvailable(ctx context.Context, q dto.ListAvailableQuery) ([]model.Asset, int, error)
}

// AssetListController adalah view-model halaman jelajah aset.
// asset_type / kecamatan / price_range dikirim ke server sebagai query;
// pencarian nama adalah filter client-side atas data yang sudah diambil.
type AssetListController struct {
	*view.ListController[model.Asset]
}

func NewAssetListController(svc AssetLister, perPage int, r view.Renderer[model.Asset]) *AssetListController {
	fetch := func(ctx context.Context, page, perPage int, filters map[string]string) ([]model.Asset, int, error) {
		return svc.ListAvailable(ctx, dto.ListAvailableQuery{
			Page:       page,
			PerPage:    perPage,
			AssetType:  filters["asset_type"],
			Kecamatan:  filters["kecamatan"],
			PriceRange: filters["price_range"],
		})
	}
	return &AssetListController{view.NewListController(perPage, fetch, r)}
}

func (c *AssetListController) FilterAssetType(v string)  { c.SetFilter("asset_type", v) }
func (c *AssetListController) FilterKecamatan(v string)  { c.SetFilter("kecamatan", v) }
func (c *AssetListController) FilterPriceRange(v string) { c.SetFilter("price_range", v) }

// SearchName memasang filter pencarian substring client-side; string kosong
// melepas filternya.
func (c *AssetListController) SearchName(q string) {
	if q == "" {
		c.SetClientFilter("search_name", nil)
		return
	}
	c.SetClientFilter("search_name", func(a model.Asset) bool { return a.MatchName(q) })
}
