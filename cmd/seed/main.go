package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"bookstack/internal/config"
	"bookstack/internal/db"
	"bookstack/internal/model"
	"bookstack/internal/repository"
)

type seedBook struct {
	title, author, genre, published string
}

var seedBooks = []seedBook{
	{"The Hobbit", "J. R. R. Tolkien", "Fantasy", "1937-09-21"},
	{"Dune", "Frank Herbert", "Science Fiction", "1965-08-01"},
	{"The Name of the Wind", "Patrick Rothfuss", "Fantasy", "2007-03-27"},
	{"Snow Crash", "Neal Stephenson", "Science Fiction", "1992-06-01"},
	{"Pride and Prejudice", "Jane Austen", "Romance", "1813-01-28"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Book{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	books := repository.NewBookRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte("seed-password"), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	admin := &model.User{
		Email:        "admin@bookstack.local",
		PhoneNumber:  "+10000000000",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		FirstName:    "Seed",
		LastName:     "Admin",
	}
	if existing, err := users.FindByEmail(ctx, admin.Email); err == nil {
		admin = existing
		log.Printf("Admin user already present: %s", admin.Email)
	} else if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	} else {
		log.Printf("Created admin user %s", admin.Email)
	}

	created := 0
	for _, b := range seedBooks {
		book := &model.Book{
			Title:           b.title,
			Author:          b.author,
			Genre:           b.genre,
			PublicationDate: b.published,
			CreatedBy:       admin.ID,
		}
		if err := books.Create(ctx, book); err != nil {
			log.Printf("Skipping %q: %v", b.title, err)
			continue
		}
		created++
	}

	log.Printf("Seed complete: %d books created", created)
}
