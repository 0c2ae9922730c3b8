package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it is missing and seeds the defaults.
// Everything is idempotent so it runs at every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS transport_routes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			driver VARCHAR(255),
			vehicle VARCHAR(20),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS fee_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			admission_no VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			grade VARCHAR(20) NOT NULL,
			section VARCHAR(10) NOT NULL,
			fee_group_id UUID REFERENCES fee_groups(id),
			transport_route_id UUID REFERENCES transport_routes(id),
			father_contact VARCHAR(20),
			guardian_contact VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS fee_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS fee_masters (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fee_type_id UUID NOT NULL REFERENCES fee_types(id),
			fee_group_id UUID NOT NULL REFERENCES fee_groups(id),
			amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
			due_date DATE NOT NULL,
			grade VARCHAR(20) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS fee_receipts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			receipt_no VARCHAR(50) UNIQUE NOT NULL,
			student_id UUID NOT NULL REFERENCES students(id),
			student_name VARCHAR(255) NOT NULL,
			grade VARCHAR(20) NOT NULL,
			section VARCHAR(10) NOT NULL,
			amount_paid NUMERIC(12,2) NOT NULL CHECK (amount_paid > 0),
			discount NUMERIC(12,2) NOT NULL DEFAULT 0,
			discount_reason TEXT,
			penalty NUMERIC(12,2) NOT NULL DEFAULT 0,
			penalty_reason TEXT,
			payment_date TIMESTAMP WITH TIME ZONE NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			session VARCHAR(10) NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS hostel_rooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			number VARCHAR(50) UNIQUE NOT NULL,
			capacity INT NOT NULL DEFAULT 1,
			monthly_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS hostel_allotments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			room_id UUID NOT NULL REFERENCES hostel_rooms(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS book_issues (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			book_title VARCHAR(255) NOT NULL,
			issued_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			returned_at TIMESTAMP WITH TIME ZONE,
			late_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			damage_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS damage_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID REFERENCES students(id),
			item_name VARCHAR(255) NOT NULL,
			reported_by VARCHAR(255),
			notes TEXT,
			reported_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS payroll_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			staff_name VARCHAR(255) NOT NULL,
			designation VARCHAR(100),
			month VARCHAR(7) NOT NULL,
			basic_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
			allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
			deduction NUMERIC(12,2) NOT NULL DEFAULT 0,
			net_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
			generated_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS asset_purchases (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			cost NUMERIC(12,2) NOT NULL CHECK (cost > 0),
			supplier VARCHAR(255),
			purchase_date TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create table: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_grade ON students(grade)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_masters_grade ON fee_masters(grade)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_receipts_student ON fee_receipts(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_receipts_session ON fee_receipts(session)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_receipts_payment_date ON fee_receipts(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_hostel_allotments_student ON hostel_allotments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_book_issues_student ON book_issues(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_damage_reports_student ON damage_reports(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payroll_records_month ON payroll_records(month)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			// Duplicate index errors on older PG versions are not fatal.
			log.Printf("Index migration warning: %v", err)
		}
	}

	seeds := []string{
		`INSERT INTO roles (name) VALUES ('admin') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name) VALUES ('accountant') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO fee_groups (name, description) VALUES ('General', 'Default cohort') ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding data: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
