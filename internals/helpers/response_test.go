package helper

import "testing"

func TestDecodeEnvelope_CanonicalData(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"success":true,"data":[{"id":1}],"total":1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Total != 1 {
		t.Fatalf("got %+v", env)
	}
	var rows []struct {
		ID int `json:"id"`
	}
	if err := env.DecodeData(&rows); err != nil || len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("DecodeData rows=%v err=%v", rows, err)
	}
}

func TestDecodeEnvelope_LegacyAssetsAlias(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"success":true,"assets":[{"id":7},{"id":8}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) == 0 {
		t.Fatal("alias assets tidak dinormalkan ke data")
	}
	var rows []struct {
		ID int `json:"id"`
	}
	if err := env.DecodeData(&rows); err != nil || len(rows) != 2 {
		t.Fatalf("rows=%v err=%v", rows, err)
	}
}

func TestErrMessage_Fallbacks(t *testing.T) {
	if got := (&Envelope{Error: "aset tidak tersedia"}).ErrMessage(); got != "aset tidak tersedia" {
		t.Fatalf("got %q", got)
	}
	if got := (&Envelope{Message: "gagal"}).ErrMessage(); got != "gagal" {
		t.Fatalf("got %q", got)
	}
	if got := (&Envelope{}).ErrMessage(); got == "" {
		t.Fatal("pesan default kosong")
	}
}

func TestFromEnvelope_Kinds(t *testing.T) {
	env := &Envelope{Error: "x"}
	if e := FromEnvelope(200, env); e.Kind != ErrApplication {
		t.Fatalf("status 200 success:false harus ErrApplication, dapat %s", e.Kind)
	}
	if e := FromEnvelope(403, env); e.Kind != ErrHTTP || e.Status != 403 {
		t.Fatalf("status 403 harus ErrHTTP, dapat %+v", e)
	}
}
