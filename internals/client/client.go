package client

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"sewaaset_client/internals/configs"
	helper "sewaaset_client/internals/helpers"
)

// Client adalah pembungkus tipis di atas net/http untuk semua panggilan ke
// backend rental. Serialisasi query, decode amplop JSON, dan normalisasi error
// terjadi di sini — pemanggil hanya melihat Envelope atau *ApiError.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	retry   RetryPolicy
}

// RetryPolicy adalah satu-satunya mekanisme retry di seluruh klien.
// Tidak ada daftar endpoint cadangan di logika bisnis.
type RetryPolicy struct {
	MaxRetries  int
	ShouldRetry func(err error) bool
}

// NoRetry: kebijakan default, gagal langsung dilaporkan.
var NoRetry = RetryPolicy{}

// RetryOnTimeout: satu kali ulang hanya untuk kegagalan timeout
// (dipakai pembuatan pembayaran).
var RetryOnTimeout = RetryPolicy{
	MaxRetries: 1,
	ShouldRetry: func(err error) bool {
		return helper.KindOf(err) == helper.ErrTimeout
	},
}

// Params membawa opsi per-request.
type Params struct {
	Query map[string]string
	Body  interface{}
	Retry *RetryPolicy // override kebijakan klien untuk request ini

	// AttemptTimeout membatasi TIAP percobaan secara terpisah. Batas waktu
	// di context induk berlaku untuk keseluruhan; kalau dipakai bersama
	// retry, percobaan ulang akan mewarisi deadline yang sudah mati.
	AttemptTimeout time.Duration
}

// sharedTransport: pool koneksi yang sama untuk semua instance klien.
var sharedTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxConnsPerHost:     100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// New membuat klien dari konfigurasi global (configs.LoadEnv harus sudah jalan).
func New() *Client {
	return &Client{
		baseURL: strings.TrimRight(configs.APIBaseURL, "/"),
		http:    &http.Client{Transport: sharedTransport},
		token:   func() string { return configs.AccessToken },
		retry:   NoRetry,
	}
}

// NewWithBase dipakai test dan tooling: base URL eksplisit, http.Client opsional.
func NewWithBase(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Transport: sharedTransport}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		token:   func() string { return "" },
		retry:   NoRetry,
	}
}

// WithToken mengganti sumber access token (mis. dari session store).
func (c *Client) WithToken(fn func() string) *Client {
	c.token = fn
	return c
}

// Do menjalankan satu request dan mengembalikan amplop ternormalisasi.
// Amplop tetap dikembalikan bersama error supaya pemanggil bisa membaca
// field tambahan (mis. total) saat gagal.
func (c *Client) Do(ctx context.Context, method, path string, p Params) (*helper.Envelope, error) {
	policy := c.retry
	if p.Retry != nil {
		policy = *p.Retry
	}

	var env *helper.Envelope
	var err error
	for attempt := 0; ; attempt++ {
		env, err = c.once(ctx, method, path, p)
		if err == nil {
			return env, nil
		}
		if attempt >= policy.MaxRetries || policy.ShouldRetry == nil || !policy.ShouldRetry(err) {
			return env, err
		}
		log.Printf("[API] ⚠️ %s %s gagal (%v), ulang ke-%d", method, path, err, attempt+1)
	}
}

func (c *Client) once(ctx context.Context, method, path string, p Params) (*helper.Envelope, error) {
	if p.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.AttemptTimeout)
		defer cancel()
	}

	req, err := c.buildRequest(ctx, method, path, p)
	if err != nil {
		return nil, &helper.ApiError{Kind: helper.ErrNetwork, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// deadline dari context request menang atas error transport mentah
		if ctx.Err() == context.DeadlineExceeded {
			return nil, helper.FromTransport(context.DeadlineExceeded)
		}
		return nil, helper.FromTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, helper.FromTransport(err)
	}

	env, decErr := helper.DecodeEnvelope(body)
	if decErr != nil {
		// backend mengirim error terstruktur bahkan untuk 401/403;
		// body yang tidak bisa di-parse disintesis jadi error generik
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, helper.GenericHTTP(resp.StatusCode)
		}
		return nil, &helper.ApiError{
			Kind:    helper.ErrApplication,
			Status:  resp.StatusCode,
			Message: "Respons server tidak dikenali",
		}
	}

	// success:false berwenang penuh, bahkan pada HTTP 200;
	// status non-2xx adalah sinyal gagal yang independen
	if !env.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return env, helper.FromEnvelope(resp.StatusCode, env)
	}
	return env, nil
}

func (c *Client) buildRequest(ctx context.Context, method, path string, p Params) (*http.Request, error) {
	u := c.baseURL + path
	if len(p.Query) > 0 {
		q := url.Values{}
		for k, v := range p.Query {
			if v == "" {
				continue // nilai kosong tidak dikirim
			}
			q.Set(k, v)
		}
		if enc := q.Encode(); enc != "" {
			u += "?" + enc
		}
	}

	var body io.Reader
	if p.Body != nil {
		b, err := sonic.Marshal(p.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// ===== shortcut per method =====

func (c *Client) Get(ctx context.Context, path string, query map[string]string) (*helper.Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, Params{Query: query})
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*helper.Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, Params{Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*helper.Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, Params{Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (*helper.Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, Params{})
}
