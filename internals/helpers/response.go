package helper

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Envelope adalah amplop respons kanonik backend: {success, data|error, ...}.
// Semua variasi bentuk lama (key "assets", pesan di "message") dinormalkan
// di sini, bukan di tiap pemanggil.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Assets     json.RawMessage `json:"assets,omitempty"` // alias lama untuk data
	Token      string          `json:"token,omitempty"`
	Total      int             `json:"total,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// DecodeEnvelope membaca body JSON menjadi Envelope dan langsung menormalkan
// alias key lama.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	env.Normalize()
	return &env, nil
}

// Normalize memindahkan payload dari key alias ke key kanonik "data".
func (e *Envelope) Normalize() {
	if len(e.Data) == 0 && len(e.Assets) > 0 {
		e.Data = e.Assets
		e.Assets = nil
	}
}

// DecodeData membaca isi "data" ke struct tujuan.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	return sonic.Unmarshal(e.Data, v)
}

// ErrMessage mengembalikan pesan error terbaik yang tersedia di amplop.
func (e *Envelope) ErrMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "Terjadi kesalahan pada server"
}
