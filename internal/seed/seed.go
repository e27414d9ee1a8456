// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// seedPassword is the password every generated account gets.
const seedPassword = "password123"

var tagPool = []string{
	"go", "databases", "web", "design", "devops", "testing",
	"travel", "music", "food", "books", "fitness", "photography",
}

// Seeder populates the database with generated content.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run seeds users, posts, comments, and likes per opts.
func (s *Seeder) Run(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Printf("Seeding complete. All accounts use the password %q.", seedPassword)
	return nil
}

// ClearAll removes all seeded content. Children go first since the schema
// carries no cascading deletes.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"likes", "comments", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	// One digest shared by every account; bcrypt per user would dominate
	// seeding time.
	digest, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: digest,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.r.Intn(len(users))]
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			Tags:    s.randomTags(),
			UserID:  author.ID,
		}
		// realistic created_at spread over the last 90 days
		post.CreatedAt = time.Now().Add(-time.Duration(s.r.Intn(90*24)) * time.Hour)
		posts = append(posts, post)
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// createEngagement attaches a few comments and likes to every post. A post
// may collect several likes from the same user; the schema keeps them all.
func (s *Seeder) createEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	var comments []*models.Comment
	var likes []*models.Like
	for _, post := range posts {
		for i := 0; i < s.r.Intn(4); i++ {
			comments = append(comments, &models.Comment{
				Content: gofakeit.Sentence(8),
				PostID:  post.ID,
				UserID:  users[s.r.Intn(len(users))].ID,
			})
		}
		for i := 0; i < s.r.Intn(6); i++ {
			likes = append(likes, &models.Like{
				PostID: post.ID,
				UserID: users[s.r.Intn(len(users))].ID,
			})
		}
	}

	if len(comments) > 0 {
		if err := s.db.Create(&comments).Error; err != nil {
			return err
		}
	}
	if len(likes) > 0 {
		if err := s.db.Create(&likes).Error; err != nil {
			return err
		}
	}
	log.Printf("✓ %d comments and %d likes created", len(comments), len(likes))
	return nil
}

func (s *Seeder) randomTags() string {
	count := 1 + s.r.Intn(3)
	picked := make([]string, 0, count)
	for _, idx := range s.r.Perm(len(tagPool))[:count] {
		picked = append(picked, tagPool[idx])
	}
	return strings.Join(picked, ",")
}
