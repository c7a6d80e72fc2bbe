package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ShopFallbackDomain string
	CorsAllowOrigins   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	// Fallback shop hanya untuk development/demo (tanpa sesi embed Shopify)
	ShopFallbackDomain = GetEnv("SHOP_FALLBACK_DOMAIN", "amper-myportfolio.myshopify.com")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "")

	if GetEnv("DB_HOST") == "" {
		log.Println("❌ DB_HOST belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
