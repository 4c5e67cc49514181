package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	TLSCert  string
	TLSKey   string

	CORSOrigin string
	RateLimit  float64 // requests per second per IP
	RateBurst  int

	// TablesFile replaces the embedded reference tables when set.
	TablesFile string
	// ReportLocale is the BCP 47 tag used to format numbers in PDF reports.
	ReportLocale string
}

// Load reads .env files (when present) into the environment and returns
// FromEnv.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		TLSCert:      os.Getenv("TLS_CERT"),
		TLSKey:       os.Getenv("TLS_KEY"),
		CORSOrigin:   envOr("CORS_ORIGIN", "*"),
		RateLimit:    envFloat("RATE_LIMIT", 1),
		RateBurst:    envInt("RATE_BURST", 3),
		TablesFile:   os.Getenv("TABLES_FILE"),
		ReportLocale: envOr("REPORT_LOCALE", "fr-CA"),
	}
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envFloat(k string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
