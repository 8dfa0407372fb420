package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"adventura/internal/activities"
	"adventura/internal/availability"
	"adventura/internal/shared/config"
	"adventura/internal/shared/database"
	"adventura/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Adventura Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"bookings",
		"availability_slots",
		"activities",
		"clients",
		"providers",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	providerID, _, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	activityIDs, err := s.SeedActivities(providerID)
	if err != nil {
		return fmt.Errorf("failed to seed activities: %w", err)
	}

	if err := s.SeedAvailability(activityIDs); err != nil {
		return fmt.Errorf("failed to seed availability: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates an admin, a provider with a business profile, and two clients
func (s *Seeder) SeedUsers() (uuid.UUID, []uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@adventura.io", users.RoleAdmin},
		{"provider", "Asha", "Rao", "asha@trailsandtides.io", users.RoleProvider},
		{"client1", "Diego", "Mora", "diego.mora@example.com", users.RoleClient},
		{"client2", "Lena", "Koch", "lena.koch@example.com", users.RoleClient},
	}

	userIDs := make(map[string]uuid.UUID)
	for _, userData := range usersData {
		user := users.User{
			ID:           uuid.New(),
			Email:        userData.email,
			PasswordHash: string(hashedPassword),
			FirstName:    userData.firstName,
			LastName:     userData.lastName,
			Role:         userData.role,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return uuid.Nil, nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	provider := users.Provider{
		ID:           uuid.New(),
		UserID:       userIDs["provider"],
		BusinessName: "Trails & Tides Adventures",
		CreatedAt:    time.Now(),
	}
	if err := s.db.PostgreSQL.Create(&provider).Error; err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to create provider profile: %w", err)
	}
	fmt.Printf("    ✅ Created provider: %s\n", provider.BusinessName)

	var clientIDs []uuid.UUID
	for _, key := range []string{"client1", "client2"} {
		client := users.Client{
			ID:        uuid.New(),
			UserID:    userIDs[key],
			Phone:     "+1-555-0100",
			CreatedAt: time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&client).Error; err != nil {
			return uuid.Nil, nil, fmt.Errorf("failed to create client profile: %w", err)
		}
		clientIDs = append(clientIDs, client.ID)
	}
	fmt.Printf("    ✅ Created %d client profiles\n", len(clientIDs))

	return provider.ID, clientIDs, nil
}

// SeedActivities creates one recurring and one one-time activity
func (s *Seeder) SeedActivities(providerID uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🏞️ Seeding activities...")

	eventDate := time.Now().AddDate(0, 0, 14)

	activitiesData := []activities.Activity{
		{
			ID:                 uuid.New(),
			ProviderID:         providerID,
			Name:               "Sunrise Kayak Tour",
			Description:        "Two-hour guided kayak tour along the coast",
			Location:           "Harbor Dock 4",
			Price:              45.00,
			Capacity:           8,
			ListingKind:        activities.ListingRecurring,
			FromTime:           "6:00 AM",
			ToTime:             "8:00 AM",
			AvailabilityStatus: true,
		},
		{
			ID:                 uuid.New(),
			ProviderID:         providerID,
			Name:               "Full Moon Night Hike",
			Description:        "One-off guided hike under the full moon",
			Location:           "Ridgeline Trailhead",
			Price:              30.00,
			Capacity:           20,
			ListingKind:        activities.ListingOneTime,
			EventDate:          &eventDate,
			AvailabilityStatus: true,
		},
	}

	var activityIDs []uuid.UUID
	for i := range activitiesData {
		if err := s.db.PostgreSQL.Create(&activitiesData[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create activity %s: %w", activitiesData[i].Name, err)
		}
		activityIDs = append(activityIDs, activitiesData[i].ID)
		fmt.Printf("    ✅ Created activity: %s (%s)\n", activitiesData[i].Name, activitiesData[i].ListingKind)
	}

	return activityIDs, nil
}

// SeedAvailability creates a week of slots for the recurring activity
func (s *Seeder) SeedAvailability(activityIDs []uuid.UUID) error {
	fmt.Println("  📅 Seeding availability slots...")

	if len(activityIDs) == 0 {
		return nil
	}
	recurringID := activityIDs[0]

	slotLabels := []string{"6:00 AM", "10:00 AM", "4:00 PM"}
	created := 0

	for day := 1; day <= 7; day++ {
		date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
		for _, label := range slotLabels {
			slot := availability.AvailabilitySlot{
				ID:             uuid.New(),
				ActivityID:     recurringID,
				Date:           date,
				Slot:           label,
				SeatsRemaining: 8,
			}
			if err := s.db.PostgreSQL.Create(&slot).Error; err != nil {
				return fmt.Errorf("failed to create slot %s %s: %w", date, label, err)
			}
			created++
		}
	}

	fmt.Printf("    ✅ Created %d availability slots\n", created)
	return nil
}
