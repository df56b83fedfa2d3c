// Package main заполняет БД тестовыми данными для локальной разработки и e2e-тестов.
// Идемпотентен: если администратор уже существует, вставки пропускаются.
package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"org-admin-service/internal/config"
	"org-admin-service/internal/repository"
)

const (
	devOrgID       = "6f1d2a3b-0c4e-4b5a-9d6e-7f8091a2b3c4"
	devAdminID     = "1a2b3c4d-5e6f-4a1b-8c2d-3e4f5a6b7c8d"
	devMemberID    = "9e8d7c6b-5a4f-4e3d-9c2b-1a0f9e8d7c6b"
	devAdminEmail  = "admin@example.com"
	devMemberEmail = "member@example.com"
	devPassword    = "password123"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	var exists bool
	err = db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, devAdminEmail).Scan(&exists)
	if err != nil {
		log.Fatalf("check seed: %v", err)
	}
	if exists {
		log.Println("seed data already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	_, err = db.Pool.Exec(ctx, `
INSERT INTO organizations (id, name, address)
VALUES ($1, 'Acme Inc.', '1 Main St')
`, devOrgID)
	if err != nil {
		log.Fatalf("insert organization: %v", err)
	}

	_, err = db.Pool.Exec(ctx, `
INSERT INTO users (id, email, username, role, organization_id, password_hash)
VALUES
    ($1, $3, 'Alice', 'ADMIN',  $5, $6),
    ($2, $4, 'Bob',   'MEMBER', $5, $6)
`, devAdminID, devMemberID, devAdminEmail, devMemberEmail, devOrgID, string(hash))
	if err != nil {
		log.Fatalf("insert users: %v", err)
	}

	// Пара бронирований: одно в текущем году, одно в прошлом
	now := time.Now().UTC()
	thisYear := time.Date(now.Year(), time.March, 10, 9, 0, 0, 0, time.UTC)
	prevYear := time.Date(now.Year()-1, time.June, 5, 9, 0, 0, 0, time.UTC)

	_, err = db.Pool.Exec(ctx, `
INSERT INTO desk_schedules (id, user_id, desk_name, starts_at, ends_at)
VALUES
    ('b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e', $1, 'desk-12', $2, $3),
    ('c2d3e4f5-a6b7-4c8d-9e0f-1a2b3c4d5e6f', $1, 'desk-12', $4, $5)
`, devMemberID, thisYear, thisYear.Add(9*time.Hour), prevYear, prevYear.Add(9*time.Hour))
	if err != nil {
		log.Fatalf("insert desk schedules: %v", err)
	}

	log.Println("seed data inserted")
}
