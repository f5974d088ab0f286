package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	RazorpayKeyID     string
	RazorpayKeySecret string

	UploadDir string

	// Progression loop tuning.
	SchedulerTick  time.Duration
	OrderDwellTime time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		UploadDir: os.Getenv("UPLOAD_DIR"),

		SchedulerTick:  durationEnv("SCHEDULER_TICK_SECONDS", 60) * time.Second,
		OrderDwellTime: durationEnv("ORDER_DWELL_MINUTES", 5) * time.Minute,
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}

	return cfg
}

func durationEnv(key string, def int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(def)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(def)
	}
	return time.Duration(n)
}
