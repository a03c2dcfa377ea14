package db

import (
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	"blogapi/models"
)

// DemoPassword is the plain-text password shared by all seeded users.
const DemoPassword = "P@22w0rd"

const (
	seedUserCount    = 5
	seedPostsPerUser = 5
)

var seedWords = []string{
	"amber", "birch", "cedar", "delta", "ember",
	"fjord", "grove", "harbor", "iris", "juniper",
	"kestrel", "lagoon", "meadow", "nimbus", "orchid",
}

func randomWord(rng *rand.Rand) string {
	return seedWords[rng.Intn(len(seedWords))]
}

// Seed inserts a fixed-size sample dataset: five users, each with five
// posts. Usernames and post bodies look deterministic-ish but are
// randomized; every user gets the same demo password so any of them can
// be used to log in during development. The demo hash is computed once
// here rather than at package load.
func Seed(gdb *gorm.DB) error {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	rng := rand.New(rand.NewSource(rand.Int63()))

	for i := 0; i < seedUserCount; i++ {
		u := models.User{
			Username:     fmt.Sprintf("%s_%s%d", randomWord(rng), randomWord(rng), rng.Intn(100)),
			Email:        fmt.Sprintf("%s%d@example.com", randomWord(rng), rng.Intn(1000)),
			PasswordHash: hash,
		}
		if err := gdb.Create(&u).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		for j := 0; j < seedPostsPerUser; j++ {
			p := models.Post{
				Title:    fmt.Sprintf("The %s of %s", randomWord(rng), randomWord(rng)),
				Content:  fmt.Sprintf("Notes on %s, %s and %s.", randomWord(rng), randomWord(rng), randomWord(rng)),
				AuthorID: u.ID,
			}
			if err := gdb.Create(&p).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}
	return nil
}
