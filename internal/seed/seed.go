// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"spotted/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPlaces   int
	NumPosts    int
	ShouldClean bool
}

var placeKinds = []string{
	"Cafe", "Bar", "Bookstore", "Gym", "Park", "Bakery", "Record Store",
	"Diner", "Library", "Market", "Pub", "Laundromat",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d places, %d posts...",
		opts.NumUsers, opts.NumPlaces, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	places, err := createPlaces(db, opts.NumPlaces)
	if err != nil {
		return fmt.Errorf("failed to create places: %w", err)
	}
	log.Printf("✓ %d places created", len(places))

	favorites, err := createFavorites(db, r, users, places)
	if err != nil {
		return fmt.Errorf("failed to create favorites: %w", err)
	}
	log.Printf("✓ %d favorite locations created", favorites)

	checkIns, err := createCheckIns(db, r, users, places)
	if err != nil {
		return fmt.Errorf("failed to create check-ins: %w", err)
	}
	log.Printf("✓ %d check-ins created", checkIns)

	posts, err := createPosts(db, r, users, places, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createPushTokens(db, users); err != nil {
		return fmt.Errorf("failed to create push tokens: %w", err)
	}
	log.Printf("✓ push tokens created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	tables := []string{
		"match_notifications", "conversations", "responses", "posts",
		"check_ins", "favorite_locations", "blocks", "push_tokens",
		"notification_preferences", "places", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPlaces(db *gorm.DB, count int) ([]models.Place, error) {
	places := make([]models.Place, 0, count)
	for i := 0; i < count; i++ {
		kind := placeKinds[i%len(placeKinds)]
		place := models.Place{
			Name:            fmt.Sprintf("%s %s", gofakeit.LastName(), kind),
			ExternalPlaceID: fmt.Sprintf("gp-%s", gofakeit.UUID()),
			Address:         gofakeit.Street() + ", " + gofakeit.City(),
			Latitude:        gofakeit.Latitude(),
			Longitude:       gofakeit.Longitude(),
		}
		if err := db.Create(&place).Error; err != nil {
			return nil, err
		}
		places = append(places, place)
	}
	return places, nil
}

func createFavorites(db *gorm.DB, r *rand.Rand, users []models.User, places []models.Place) (int, error) {
	created := 0
	for _, user := range users {
		// Roughly a third of users have regular spots.
		if r.Intn(3) != 0 {
			continue
		}
		count := 1 + r.Intn(3)
		for i := 0; i < count; i++ {
			place := places[r.Intn(len(places))]
			favorite := models.FavoriteLocation{
				UserID:  user.ID,
				PlaceID: place.ExternalPlaceID,
			}
			if err := db.Where("user_id = ? AND place_id = ?", user.ID, place.ExternalPlaceID).
				FirstOrCreate(&favorite).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createCheckIns(db *gorm.DB, r *rand.Rand, users []models.User, places []models.Place) (int, error) {
	created := 0
	now := time.Now().UTC()
	for _, user := range users {
		count := r.Intn(5)
		for i := 0; i < count; i++ {
			place := places[r.Intn(len(places))]
			arrived := now.Add(-time.Duration(r.Intn(14*24)) * time.Hour)
			checkIn := models.CheckIn{
				UserID:      user.ID,
				LocationID:  place.ID,
				CheckedInAt: arrived,
				Verified:    r.Intn(4) != 0,
			}
			// Most visits have a recorded departure; the rest rely on the
			// default presence duration.
			if r.Intn(5) != 0 {
				left := arrived.Add(time.Duration(30+r.Intn(150)) * time.Minute)
				checkIn.CheckedOutAt = &left
			}
			if checkIn.Verified {
				accuracy := 5 + r.Float64()*45
				checkIn.AccuracyMeters = &accuracy
			}
			if err := db.Create(&checkIn).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createPosts(db *gorm.DB, r *rand.Rand, users []models.User, places []models.Place, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		producer := users[r.Intn(len(users))]
		place := places[r.Intn(len(places))]
		post := models.Post{
			Note:              gofakeit.Sentence(12),
			TargetDescription: gofakeit.Sentence(6),
			ProducerID:        producer.ID,
			LocationID:        place.ID,
			IsActive:          true,
			CreatedAt:         now.Add(-time.Duration(r.Intn(40*24)) * time.Hour),
		}
		// Some sightings are posted well after they happened.
		if r.Intn(2) == 0 {
			sighting := post.CreatedAt.Add(-time.Duration(r.Intn(48)) * time.Hour)
			post.SightingDate = &sighting
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createPushTokens(db *gorm.DB, users []models.User) error {
	platforms := []string{"ios", "android"}
	for i, user := range users {
		token := models.PushToken{
			UserID:   user.ID,
			Token:    gofakeit.UUID(),
			Platform: platforms[i%len(platforms)],
		}
		if err := db.Create(&token).Error; err != nil {
			return err
		}
	}
	return nil
}
