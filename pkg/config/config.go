package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config menggabungkan konfigurasi aplikasi (dibaca via Viper dari env dan opsional file).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

// AppConfig konfigurasi umum aplikasi.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// HTTPConfig konfigurasi server HTTP lokal.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr mengembalikan alamat listen (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig konfigurasi penyimpanan lokal (file bbolt).
type StoreConfig struct {
	Path string
}

// Load membaca konfigurasi dari variabel lingkungan (dan opsional dari file).
// Env vars lebih diprioritaskan. Nama yang dikenali: APP_ENV, HTTP_PORT, STORE_PATH, dst.
func Load() (*Config, error) {
	v := viper.New()

	// Opsional: file konfigurasi (.env atau config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // abaikan error jika file tidak ada

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // abaikan error jika file tidak ada

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "toko-pos"),
		},
		HTTP: HTTPConfig{
			// Kasir satu mesin: listen hanya di loopback kecuali diubah
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "toko.db"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
