package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				return pool, nil
			}
		}
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist. The unique
// constraints on users.username and applications(user_id, job_id) are
// the backstop for the duplicate pre-checks in the services.
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('user', 'admin')) DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		company TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		age TEXT NOT NULL DEFAULT '',
		salary TEXT NOT NULL DEFAULT '',
		bonus TEXT NOT NULL DEFAULT '',
		detail TEXT NOT NULL DEFAULT '',
		interview TEXT NOT NULL DEFAULT '',
		document TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		shift TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		ho_ten TEXT NOT NULL DEFAULT '',
		gioi_tinh TEXT NOT NULL DEFAULT '',
		hinh_thuc TEXT NOT NULL DEFAULT '',
		ngay_sinh TEXT NOT NULL DEFAULT '',
		cccd TEXT NOT NULL DEFAULT '',
		noi_cap TEXT NOT NULL DEFAULT '',
		ngay_cap TEXT NOT NULL DEFAULT '',
		so_dien_thoai TEXT NOT NULL DEFAULT '',
		que_quan TEXT NOT NULL DEFAULT '',
		cong_ty TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, job_id)
	);

	CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications(user_id);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	return nil
}
