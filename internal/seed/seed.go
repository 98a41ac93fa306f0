package seed

import (
	"fmt"
	"log"
	"math/rand"

	"skillswap/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumSwaps    int
	ShouldClean bool
}

// skillCatalog is the default set of catalog skills, grouped by category.
var skillCatalog = map[string][]string{
	"Technology": {
		"Python", "Go", "JavaScript", "SQL", "Web Design", "Photoshop",
		"Excel", "Data Analysis", "Linux",
	},
	"Music": {
		"Guitar", "Piano", "Singing", "Music Production", "Drums",
	},
	"Languages": {
		"Spanish", "French", "German", "Japanese", "Mandarin",
	},
	"Lifestyle": {
		"Cooking", "Baking", "Yoga", "Photography", "Gardening",
		"Public Speaking", "Creative Writing", "Chess",
	},
}

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d swaps...", opts.NumUsers, opts.NumSwaps)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	skills, err := SeedSkillCatalog(db)
	if err != nil {
		return fmt.Errorf("failed to seed skill catalog: %w", err)
	}
	log.Printf("%d catalog skills available", len(skills))

	factory := NewFactory(db)

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	associations, err := createAssociations(factory, users, skills)
	if err != nil {
		return fmt.Errorf("failed to create skill associations: %w", err)
	}
	log.Printf("%d skill associations created", len(associations))

	swaps, err := createSwaps(factory, users, associations, opts.NumSwaps)
	if err != nil {
		return fmt.Errorf("failed to create swaps: %w", err)
	}
	log.Printf("%d swap requests created", len(swaps))

	if err := createRatings(factory, swaps); err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedSkillCatalog inserts the default skill catalog, skipping names that
// already exist. Safe to run repeatedly.
func SeedSkillCatalog(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	for category, names := range skillCatalog {
		for _, name := range names {
			var skill models.Skill
			err := db.Where(models.Skill{Name: name}).
				Attrs(models.Skill{Category: category}).
				FirstOrCreate(&skill).Error
			if err != nil {
				return nil, err
			}
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE ratings, swap_requests, user_skills, skills, admin_messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	// Always include a known admin and a known member for manual testing
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	fixed := []models.User{
		{Name: "Admin", Email: "admin@example.com", Password: string(hashedPassword), IsAdmin: true, IsPublic: false},
		{Name: "Test User", Email: "test@example.com", Password: string(hashedPassword), Location: "Springfield", IsPublic: true},
	}
	for i := range fixed {
		if err := db.Where(models.User{Email: fixed[i].Email}).FirstOrCreate(&fixed[i]).Error; err == nil {
			users = append(users, fixed[i])
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// createAssociations gives every user a few offered and wanted skills, keyed
// so association lookups during swap creation stay simple.
func createAssociations(factory *Factory, users []models.User, skills []models.Skill) (map[uint][]models.UserSkill, error) {
	associations := make(map[uint][]models.UserSkill, len(users))

	for i := range users {
		user := &users[i]
		offered := factory.r.Intn(3) + 1
		wanted := factory.r.Intn(3) + 1

		picked := factory.r.Perm(len(skills))
		idx := 0
		for j := 0; j < offered && idx < len(picked); j++ {
			assoc, err := factory.CreateAssociation(user, &skills[picked[idx]], models.SkillRoleOffered)
			idx++
			if err != nil {
				continue
			}
			associations[user.ID] = append(associations[user.ID], *assoc)
		}
		for j := 0; j < wanted && idx < len(picked); j++ {
			if _, err := factory.CreateAssociation(user, &skills[picked[idx]], models.SkillRoleWanted); err != nil {
				log.Printf("Failed to create wanted association: %v", err)
			}
			idx++
		}
	}
	return associations, nil
}

func createSwaps(factory *Factory, users []models.User, associations map[uint][]models.UserSkill, count int) ([]models.SwapRequest, error) {
	if len(users) < 2 {
		return nil, nil
	}

	statuses := []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusAccepted,
		models.SwapStatusRejected,
		models.SwapStatusCancelled,
	}

	swaps := make([]models.SwapRequest, 0, count)
	for i := 0; i < count; i++ {
		requester := &users[factory.r.Intn(len(users))]
		recipient := &users[factory.r.Intn(len(users))]
		if requester.ID == recipient.ID {
			continue
		}

		offered := offeredAssociation(factory.r, associations[requester.ID])
		requested := offeredAssociation(factory.r, associations[recipient.ID])
		if offered == nil || requested == nil {
			continue
		}

		swap, err := factory.CreateSwap(requester, recipient, offered, requested, statuses[factory.r.Intn(len(statuses))])
		if err != nil {
			// Duplicate pending pairs are expected with random pairing
			continue
		}
		swaps = append(swaps, *swap)
	}
	return swaps, nil
}

// createRatings rates roughly half of the accepted swaps from each side.
func createRatings(factory *Factory, swaps []models.SwapRequest) error {
	for i := range swaps {
		swap := &swaps[i]
		if swap.Status != models.SwapStatusAccepted {
			continue
		}
		if factory.r.Float32() < 0.5 {
			if _, err := factory.CreateRating(swap, swap.RequesterID); err != nil {
				log.Printf("Failed to create rating: %v", err)
			}
		}
		if factory.r.Float32() < 0.5 {
			if _, err := factory.CreateRating(swap, swap.RecipientID); err != nil {
				log.Printf("Failed to create rating: %v", err)
			}
		}
	}
	return nil
}

func offeredAssociation(r *rand.Rand, assocs []models.UserSkill) *models.UserSkill {
	offered := make([]models.UserSkill, 0, len(assocs))
	for _, a := range assocs {
		if a.Role == models.SkillRoleOffered {
			offered = append(offered, a)
		}
	}
	if len(offered) == 0 {
		return nil
	}
	return &offered[r.Intn(len(offered))]
}
