package config

import (
	"os"
	"strconv"
)

// Config carries everything the binaries read from the environment. Both
// entrypoints build their dependency graph from one of these instead of
// scattering os.Getenv calls.
type Config struct {
	CartsTable           string
	OrdersTable          string
	ProductsTable        string
	CategoriesTable      string
	OffersTable          string
	DeletedProductsTable string

	NotificationsQueueURL string

	AdminEmail   string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	// ReportCron is the schedule for the daily order report.
	ReportCron string

	RunLocal   bool
	ListenAddr string
}

// FromEnv loads configuration, applying defaults for optional values.
func FromEnv() Config {
	return Config{
		CartsTable:           getenv("CARTS_TABLE", "carts"),
		OrdersTable:          getenv("ORDERS_TABLE", "orders"),
		ProductsTable:        getenv("PRODUCTS_TABLE", "products"),
		CategoriesTable:      getenv("CATEGORIES_TABLE", "categories"),
		OffersTable:          getenv("OFFERS_TABLE", "offers"),
		DeletedProductsTable: getenv("DELETED_PRODUCTS_TABLE", "deleted_products"),

		NotificationsQueueURL: os.Getenv("NOTIFICATIONS_QUEUE_URL"),

		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		ReportCron: getenv("REPORT_CRON", "59 23 * * *"),

		RunLocal:   os.Getenv("RUN_LOCAL") == "true",
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
