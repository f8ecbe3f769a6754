package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"waitlist"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"waitlist"`
	DBName     string `envconfig:"DB_NAME" default:"waitlist"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HR" default:"24"`

	// Seed admin account
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`

	// Rate limiting for the public signup endpoint
	SignupRateLimit    int `envconfig:"SIGNUP_RATE_LIMIT" default:"10"`
	SignupRateWindowMs int `envconfig:"SIGNUP_RATE_WINDOW_MS" default:"60000"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
