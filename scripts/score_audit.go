// Score drift audit.
//
// Submission scores are frozen at submit time, so editing a quiz after
// the fact leaves stored scores computed against an older answer key.
// This script recomputes every submission against the current questions
// and reports the rows that differ. It never writes anything.
//
// Usage: go run scripts/score_audit.go
package main

import (
	"fmt"
	"log"

	"github.com/BizzNEST/BizzTEST/internal/config"
	"github.com/BizzNEST/BizzTEST/internal/repository"
	"github.com/BizzNEST/BizzTEST/internal/scoring"
	"github.com/BizzNEST/BizzTEST/pkg/database"
	"github.com/BizzNEST/BizzTEST/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewSubmissionRepository(db)
	subs, err := repo.ListSubmissions("")
	if err != nil {
		log.Fatalf("Failed to list submissions: %v", err)
	}

	drifted := 0
	for _, sub := range subs {
		if sub.Quiz == nil {
			continue
		}
		live := scoring.Score(sub.Quiz.Questions, sub.AnswerMap())
		if live.EarnedPoints != sub.Score || live.TotalPoints != sub.TotalPoints {
			drifted++
			fmt.Printf("%s  %-20s  stored %g/%g  live %g/%g\n",
				sub.ID, sub.StudentName,
				sub.Score, sub.TotalPoints,
				live.EarnedPoints, live.TotalPoints)
		}
	}

	fmt.Printf("checked %d submissions, %d drifted\n", len(subs), drifted)
}
