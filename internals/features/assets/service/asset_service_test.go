package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sewaaset_client/internals/client"
	"sewaaset_client/internals/features/assets/dto"
	"sewaaset_client/internals/features/assets/service"
	helper "sewaaset_client/internals/helpers"
)

func newService(t *testing.T, handler http.HandlerFunc) (*service.AssetService, *int) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return service.NewAssetService(client.NewWithBase(srv.URL, srv.Client())), &hits
}

func TestCreate_NegativePriceRejectedBeforeNetwork(t *testing.T) {
	svc, hits := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	err := svc.Create(context.Background(), dto.AssetForm{
		Name:       "Tanah Kosong",
		AssetType:  "tanah",
		Kecamatan:  "Cakung",
		Alamat:     "Jl. Raya 1",
		LuasTanah:  120,
		HargaSewa:  -100,
		Sertifikat: "SHM",
		JenisZona:  "komersial",
	})
	if helper.KindOf(err) != helper.ErrValidation {
		t.Fatalf("kind = %s; harga negatif harus gagal validasi", helper.KindOf(err))
	}
	if *hits != 0 {
		t.Fatalf("server terpanggil %d kali; validasi gagal tidak boleh menyentuh jaringan", *hits)
	}
}

func TestCreate_BuildingFieldsRequiredForBangunan(t *testing.T) {
	svc, hits := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	err := svc.Create(context.Background(), dto.AssetForm{
		Name:       "Gudang",
		AssetType:  "bangunan",
		Kecamatan:  "Cakung",
		Alamat:     "Jl. Raya 2",
		LuasTanah:  300,
		HargaSewa:  7000000,
		Sertifikat: "SHGB",
		JenisZona:  "industri",
		// kamar_tidur dkk. sengaja kosong
	})
	ae := helper.AsApiError(err)
	if ae.Kind != helper.ErrValidation {
		t.Fatalf("kind = %s", ae.Kind)
	}
	if _, ok := ae.Fields["KamarTidur"]; !ok {
		t.Fatalf("field bangunan tidak tervalidasi: %v", ae.Fields)
	}
	if *hits != 0 {
		t.Fatal("request tetap berangkat")
	}
}

func TestListAvailable_DecodesAndCountsTotal(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("asset_type"); got != "tanah" {
			t.Errorf("asset_type = %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Tanah A","asset_type":"tanah","status":"available","harga_sewa":2000000}],"total":13}`))
	})

	assets, total, err := svc.ListAvailable(context.Background(), dto.ListAvailableQuery{
		Page: 1, PerPage: 6, AssetType: "tanah",
	})
	if err != nil {
		t.Fatal(err)
	}
	if total != 13 || len(assets) != 1 || assets[0].Name != "Tanah A" {
		t.Fatalf("assets=%v total=%d", assets, total)
	}
	if !assets[0].Tersedia() {
		t.Fatal("status available harus Tersedia()")
	}
}

func TestListAvailable_LegacyAssetsKey(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"assets":[{"id":2,"name":"Tanah B"}],"pagination":{"page":1,"per_page":6,"total":1,"total_pages":1}}`))
	})

	assets, total, err := svc.ListAvailable(context.Background(), dto.ListAvailableQuery{Page: 1, PerPage: 6})
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 1 || assets[0].ID != 2 || total != 1 {
		t.Fatalf("alias lama tidak dinormalkan: assets=%v total=%d", assets, total)
	}
}

func TestToggleFavorite_ReturnsServerTotal(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/toggle-favorite/42" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"total":5}`))
	})

	total, err := svc.ToggleFavorite(context.Background(), 42, true)
	if err != nil || total != 5 {
		t.Fatalf("total=%d err=%v", total, err)
	}
}
