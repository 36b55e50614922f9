// Package main provides a tool to seed the database with cafe catalog data.
//
// This reads a JSON file of cafes and inserts them through the catalog
// services so tag weights end up the same as if members had applied the
// tags through the API.
//
// Usage:
//
//	DATABASE_PATH=~/Cuppa/cuppa.db go run ./cmd/seed -file cafes.json
//	DATABASE_PATH=~/Cuppa/cuppa.db go run ./cmd/seed -file cafes.json --create-admin
package main

import (
	"context"
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/id"
	"github.com/cuppaapp/cuppa-server/internal/service"
	"github.com/cuppaapp/cuppa-server/internal/store"
	"github.com/cuppaapp/cuppa-server/internal/store/sqlite"
)

var (
	seedFile    = flag.String("file", "cafes.json", "JSON file of cafes to import")
	createAdmin = flag.Bool("create-admin", false, "Create an admin user (admin@cuppa.local / changeme-now)")
)

type seedCafe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Tags         []string `json:"tags"`
	ImageURLs    []string `json:"image_urls"`
	OpeningHours string   `json:"opening_hours"`
	MenuURL      string   `json:"menu_url"`
	PhoneNumber  string   `json:"phone_number"`
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Cuppa/cuppa.db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	s, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *createAdmin {
		createAdminUser(ctx, s)
	}

	data, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *seedFile, err)
	}

	var cafes []seedCafe
	if err := json.Unmarshal(data, &cafes); err != nil {
		log.Fatalf("Failed to parse %s: %v", *seedFile, err)
	}

	fmt.Printf("Importing %d cafes\n", len(cafes))

	tagService := service.NewTagService(s, nil)
	cafeService := service.NewCafeService(s, tagService, nil)

	imported := 0
	for _, sc := range cafes {
		cafe, err := cafeService.CreateCafe(ctx, service.CreateCafeRequest{
			Name:         sc.Name,
			Description:  sc.Description,
			Address:      sc.Address,
			Latitude:     sc.Latitude,
			Longitude:    sc.Longitude,
			Tags:         sc.Tags,
			ImageURLs:    sc.ImageURLs,
			OpeningHours: sc.OpeningHours,
			MenuURL:      sc.MenuURL,
			PhoneNumber:  sc.PhoneNumber,
		})
		if err != nil {
			log.Printf("Skipping %q: %v", sc.Name, err)
			continue
		}
		fmt.Printf("  %s (%s) tags=%v\n", cafe.Name, cafe.ID, cafe.Tags)
		imported++
	}

	fmt.Printf("\nImported %d/%d cafes\n", imported, len(cafes))

	tags, err := s.ListTags(ctx)
	if err != nil {
		log.Fatalf("Failed to list tags: %v", err)
	}
	fmt.Printf("Tag weights after import:\n")
	for _, t := range tags {
		fmt.Printf("  %-20s %d\n", t.Name, t.Weight)
	}
}

func createAdminUser(ctx context.Context, s store.Store) {
	const email = "admin@cuppa.local"
	const password = "changeme-now"

	if _, err := s.GetUserByEmail(ctx, email); err == nil {
		fmt.Printf("Admin user %s already exists\n", email)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	user := &domain.User{
		ID:           id.MustGenerate("user"),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	user.InitTimestamps()

	if err := s.CreateUser(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Printf("Created admin user %s (change the password)\n", email)
}
