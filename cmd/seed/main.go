// seed inserts a handful of member accounts into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dominioncity/engage-backend/internal/auth"
	"github.com/dominioncity/engage-backend/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const seedPassword = "longpassword"

type memberSpec struct {
	firstname string
	lastname  string
	email     string
	phone     string
	points    int
}

var members = []memberSpec{
	{"Jane", "Doe", "jane@test.local", "5551234567", 0},
	{"John", "Smith", "john@test.local", "5557654321", 120},
	{"Mary", "Okon", "mary@test.local", "5550001122", 45},
	{"Peter", "Akpan", "peter@test.local", "5559988776", 300},
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	var inserted, skipped int
	for _, m := range members {
		hash, err := auth.HashPassword(seedPassword)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}

		var id int64
		err = pool.QueryRow(ctx, `
			INSERT INTO users (firstname, lastname, email, phone_number, password_hash, points, date_registered)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (email) DO NOTHING
			RETURNING id`,
			m.firstname, m.lastname, m.email, m.phone, hash, m.points, time.Now().UTC(),
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("insert member %s: %v", m.email, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Members created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Printf("  Password for all seed accounts: %s\n", seedPassword)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in as a seed member:")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/login \\")
	fmt.Println("      -d 'username=jane@test.local' -d 'password=longpassword'")
	fmt.Println("    # → {\"access_token\":\"eyJ...\",\"token_type\":\"Bearer\"}")
	fmt.Println()
	fmt.Println("  Step 2 — award yourself some points:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/points/50 -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    # → {\"message\":\"Points added successfully\",\"user_id\":1,\"total_points\":50}")
	fmt.Println()
	fmt.Println("  Step 3 — or register a fresh account:")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/signup \\")
	fmt.Println("      -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"firstname\":\"Ada\",\"lastname\":\"Eno\",\"email\":\"ada@test.local\",\"phone_number\":\"5553334455\",\"password\":\"longpassword\"}'")
}
