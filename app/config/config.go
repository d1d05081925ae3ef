package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the process configuration. The store handle is opened once
// via OpenDB, owned by the caller, and closed at shutdown.
type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
}

// Load reads configuration from a .env file (if present) and the
// environment. DATABASE_URL selects Postgres; otherwise the engine runs on
// a local SQLite file, which is all a single school needs.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SCHOOL_DB_PATH", "school.db"),
	}
}

// OpenDB opens and pings the configured store.
func (c *Config) OpenDB() (*sql.DB, error) {
	if c.DatabaseURL != "" {
		log.Println("Using PostgreSQL database")
		db, err := sql.Open("postgres", c.DatabaseURL)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}

	log.Printf("Using SQLite database at %s", c.SQLitePath)
	dsn := c.SQLitePath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
