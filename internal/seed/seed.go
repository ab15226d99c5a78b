// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

var skillPool = []string{
	"Guitar", "Chess", "Cooking", "Photography", "Spanish", "French",
	"Woodworking", "Yoga", "Painting", "Piano", "Gardening", "Pottery",
	"Baking", "Knitting", "Go Programming", "Public Speaking", "Juggling",
	"Salsa Dancing", "Calligraphy", "Bike Repair",
}

var availabilityPool = []string{
	"weekends", "weekday evenings", "flexible", "mornings",
}

// Run seeds the database with demo users, profiles, and a spread of swap
// requests between them.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%s_%d@example.com", gofakeit.Username(), i),
			Password: string(hashed),
			Role:     models.RoleUser,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)

		profile := &models.SkillProfile{
			UserID:       user.ID,
			SkillOffered: skillPool[r.Intn(len(skillPool))],
			SkillWanted:  skillPool[r.Intn(len(skillPool))],
			Availability: availabilityPool[r.Intn(len(availabilityPool))],
			IsPublic:     r.Intn(10) > 1, // most profiles public
			Location:     gofakeit.City(),
		}
		if err := db.Create(profile).Error; err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}

	// A handful of pending requests between random pairs.
	numRequests := opts.NumUsers / 2
	for i := 0; i < numRequests; i++ {
		sender := users[r.Intn(len(users))]
		receiver := users[r.Intn(len(users))]
		request := &models.SwapRequest{
			SenderID:   sender.ID,
			ReceiverID: receiver.ID,
			Skill:      skillPool[r.Intn(len(skillPool))],
			Status:     models.SwapStatusPending,
		}
		if err := db.Create(request).Error; err != nil {
			return fmt.Errorf("seed swap request: %w", err)
		}
	}

	log.Printf("Seeded %d users with profiles and %d swap requests", len(users), numRequests)
	return nil
}

// Clean removes all seeded rows. Order matters for foreign keys.
func Clean(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM feedback",
		"DELETE FROM swap_requests",
		"DELETE FROM skill_profiles",
		"DELETE FROM users",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}
	return nil
}
