package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	APIBaseURL     string
	AccessToken    string
	APITimeout     time.Duration
	PaymentTimeout time.Duration
	NotifPollSpec  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	APIBaseURL = GetEnv("API_BASE_URL", "http://localhost:5000")
	AccessToken = GetEnv("ACCESS_TOKEN")
	APITimeout = secondsEnv("API_TIMEOUT_SECONDS", 10)
	PaymentTimeout = secondsEnv("PAYMENT_TIMEOUT_SECONDS", 30)
	NotifPollSpec = GetEnv("NOTIF_POLL_SPEC", "@every 1m")

	if AccessToken == "" {
		log.Println("⚠️ ACCESS_TOKEN belum diset, hanya endpoint publik yang bisa diakses")
	} else {
		log.Println("✅ ACCESS_TOKEN berhasil dimuat.")
	}
	log.Printf("✅ API base URL: %s", APIBaseURL)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func secondsEnv(key string, def int) time.Duration {
	raw := GetEnv(key)
	if raw == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %ds", key, raw, def)
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}
