package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// JWTSecret is read per call so tests can swap the env before issuing tokens.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func PaystackSecretKey() string {
	return os.Getenv("PAYSTACK_SECRET_KEY")
}

func PaystackBaseURL() string {
	url := os.Getenv("PAYSTACK_BASE_URL")
	if url == "" {
		url = "https://api.paystack.co"
	}
	return url
}

// PlatformSubaccount receives the 20% platform share of every split charge.
func PlatformSubaccount() string {
	return os.Getenv("PAYSTACK_PLATFORM_SUBACCOUNT")
}

func AppHost() string {
	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "http://localhost:3000"
	}
	return host
}

const DATE_PARSE_FORMAT = "2006-01-02"
const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"
