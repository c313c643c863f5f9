package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/features/assets/dto"
	"sewaaset_client/internals/features/assets/model"
	helper "sewaaset_client/internals/helpers"
)

var validate = validator.New()

// AssetService memetakan endpoint aset ke pemanggilan bertipe.
type AssetService struct {
	api *client.Client
}

func NewAssetService(api *client.Client) *AssetService {
	return &AssetService{api: api}
}

// ListAvailable mengambil satu halaman aset tersedia.
func (s *AssetService) ListAvailable(ctx context.Context, q dto.ListAvailableQuery) ([]model.Asset, int, error) {
	env, err := s.api.Get(ctx, "/rental/api/assets/available", q.ToQuery())
	if err != nil {
		return nil, 0, err
	}
	var assets []model.Asset
	if err := env.DecodeData(&assets); err != nil {
		return nil, 0, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data aset tidak dikenali"}
	}
	total := env.Total
	if env.Pagination != nil && env.Pagination.Total > 0 {
		total = env.Pagination.Total
	}
	return assets, total, nil
}

// Detail mengambil satu aset.
func (s *AssetService) Detail(ctx context.Context, id int64) (*model.Asset, error) {
	env, err := s.api.Get(ctx, fmt.Sprintf("/rental/api/assets/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var asset model.Asset
	if err := env.DecodeData(&asset); err != nil {
		return nil, &helper.ApiError{Kind: helper.ErrApplication, Message: "Data aset tidak dikenali"}
	}
	return &asset, nil
}

// Create membuat aset baru. Validasi berjalan sebelum request berangkat;
// form yang gagal validasi tidak pernah menyentuh jaringan.
func (s *AssetService) Create(ctx context.Context, form dto.AssetForm) error {
	if err := validate.Struct(form); err != nil {
		return helper.NewValidationError(err)
	}
	_, err := s.api.Post(ctx, "/rental/api/assets", form)
	return err
}

// Update mengubah aset yang sudah ada.
func (s *AssetService) Update(ctx context.Context, id int64, form dto.AssetForm) error {
	if err := validate.Struct(form); err != nil {
		return helper.NewValidationError(err)
	}
	_, err := s.api.Put(ctx, fmt.Sprintf("/rental/api/assets/%d", id), form)
	return err
}

// Delete menghapus aset. Konfirmasi eksplisit ada di presenter, bukan di sini.
func (s *AssetService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/rental/api/assets/%d", id))
	return err
}

// ToggleFavorite menambah/menghapus relasi favorit dan mengembalikan
// counter favorit terbaru dari server.
func (s *AssetService) ToggleFavorite(ctx context.Context, assetID int64, add bool) (int, error) {
	action := "remove"
	if add {
		action = "add"
	}
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/toggle-favorite/%d", assetID), dto.ToggleFavoriteRequest{Action: action})
	if err != nil {
		return 0, err
	}
	return env.Total, nil
}
