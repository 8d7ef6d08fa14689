package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	URL             string
	DbHOST          string
	DbPORT          string
	DbUSER          string
	DbPASSWORD      string
	DbNAME          string
	DbSSLMODE       string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns DATABASE_URL when it is set, otherwise a key/value
// connection string assembled from the DB_* parts.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerPort    int
	DB            DB
	Log           Log
	JWTSecretKey  string
	TokenDuration time.Duration
	BcryptCost    int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func LoadDB() DB {
	return DB{
		URL:             getEnv("DATABASE_URL", ""),
		DbHOST:          getEnv("DB_HOST", "localhost"),
		DbPORT:          getEnv("DB_PORT", "5432"),
		DbUSER:          getEnv("DB_USER", "postgres"),
		DbPASSWORD:      getEnv("DB_PASSWORD", "password"),
		DbNAME:          getEnv("DB_NAME", "blog"),
		DbSSLMODE:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

func LoadLog() Log {
	return Log{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("PORT", 5000),
		DB:            LoadDB(),
		Log:           LoadLog(),
		JWTSecretKey:  getEnv("JWT_SECRET", ""),
		TokenDuration: getEnvAsDuration("TOKEN_DURATION", time.Hour),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
	}
}
