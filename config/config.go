package config

import (
	"log"
	"os"

	"github.com/thanushwork/dhaloesh-fastfood-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// godotenv must run before the env-backed vars below resolve; a missing
// .env file is fine.
var _ = godotenv.Load()

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "dhaloesh_fastfood_secret_2024"))

// Bootstrap admin account. AdminPassword is accepted at login regardless of
// the stored hash so the back-office stays reachable after a reseed.
var (
	AdminEmail    = getEnv("ADMIN_EMAIL", "admin@dhaloesh.com")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
)

// UPI payee details used to build payment links
var (
	UPIAddress = getEnv("UPI_VPA", "thanushkannan@sbi")
	UPIPayee   = getEnv("UPI_PAYEE", "Thanush")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database and migrates the schema. DB_DRIVER selects
// "postgres" (DB_DSN) or the default embedded sqlite file (DB_PATH).
func InitDB() {
	var dialector gorm.Dialector
	switch getEnv("DB_DRIVER", "sqlite") {
	case "postgres":
		dialector = postgres.Open(getEnv("DB_DSN", "host=localhost user=postgres dbname=dhaloesh_fastfood sslmode=disable"))
	default:
		dialector = sqlite.Open(getEnv("DB_PATH", "dhaloesh_fastfood.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs schema auto-migration on the given connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
}
