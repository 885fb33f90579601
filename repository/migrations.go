package repository

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when it does not exist yet
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS tribes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id SERIAL PRIMARY KEY,
			room_number TEXT NOT NULL,
			tribe_id INTEGER NOT NULL REFERENCES tribes(id)
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			contact_person TEXT,
			phone TEXT,
			email TEXT,
			address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS expense_categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			entry_date DATE NOT NULL,
			estimated_payment_date DATE NOT NULL,
			actual_payment_date DATE,
			tribe_id INTEGER NOT NULL REFERENCES tribes(id),
			room_id INTEGER NOT NULL REFERENCES rooms(id),
			rent_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			services_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL,
			comments TEXT,
			bank_account TEXT,
			document_urls TEXT[],
			document_ids TEXT[],
			document_url TEXT,
			document_id TEXT,
			created_by TEXT NOT NULL,
			updated_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			due_date DATE NOT NULL,
			payment_date DATE,
			supplier_id INTEGER NOT NULL,
			category_id INTEGER NOT NULL,
			tribe_id INTEGER,
			room_id INTEGER,
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pendiente',
			invoice_number TEXT,
			description TEXT,
			bank_account TEXT,
			document_urls TEXT[],
			document_ids TEXT[],
			document_url TEXT,
			document_id TEXT,
			created_by TEXT NOT NULL,
			updated_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_info (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			password_hash TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS current_user_sessions (
			session_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			email TEXT NOT NULL,
			username TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run migration: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
