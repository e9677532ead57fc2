package database

import (
	"fmt"
	"log"

	"github.com/BizzNEST/BizzTEST/internal/config"
	"github.com/BizzNEST/BizzTEST/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.DBName,
		db.Charset,
		db.ParseTime,
	)

	logMode := logger.Info
	if cfg.Server.Mode == "release" {
		logMode = logger.Warn
	}

	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Schema changes are automatic outside release mode; production
	// runs them explicitly via the -migrate flags.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = conn.AutoMigrate(
			&model.User{},
			&model.Quiz{},
			&model.Question{},
			&model.Submission{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		seedSampleQuiz(conn)
	}

	return conn, nil
}

// seedSampleQuiz inserts a demo quiz on a fresh database so the UI has
// something to show before the first author signs in.
func seedSampleQuiz(db *gorm.DB) {
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count > 0 {
		return
	}

	quiz := &model.Quiz{
		Title:       "Design Fundamentals Sample Quiz",
		Description: "A short sample covering UX research and graphic design basics.",
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}

		questions := []model.Question{
			{
				QuizID:           quiz.ID,
				Type:             model.SingleChoice,
				Prompt:           "Which type of graphic scales from a business card to a billboard without losing quality?",
				CorrectAnswer:    "2",
				Points:           1,
				HasCorrectAnswer: true,
				Order:            0,
			},
			{
				QuizID:           quiz.ID,
				Type:             model.MultiChoice,
				Prompt:           "Which of the following are qualitative research methods? Select all that apply.",
				CorrectAnswer:    "0,2",
				Points:           2,
				HasCorrectAnswer: true,
				Order:            1,
			},
			{
				QuizID:           quiz.ID,
				Type:             model.TrueFalse,
				Prompt:           "Adjustment Layers in Photoshop allow non-destructive editing.",
				CorrectAnswer:    "true",
				Points:           1,
				HasCorrectAnswer: true,
				Order:            2,
			},
			{
				QuizID:           quiz.ID,
				Type:             model.ShortAnswer,
				Prompt:           "Which color model is primarily used for designs intended for digital screens?",
				CorrectAnswer:    "RGB",
				Points:           1,
				HasCorrectAnswer: true,
				Order:            3,
			},
			{
				QuizID: quiz.ID,
				Type:   model.FileUpload,
				Prompt: "Upload a screenshot of your rebranded logo draft.",
				Points: 3,
				Order:  4,
			},
		}
		questions[0].SetOptions([]string{"Raster Graphic", "Pixel-based Graphic", "Vector Graphic", "Bitmap Image"})
		questions[1].SetOptions([]string{"Usability testing with think-aloud protocols", "A/B testing of layouts", "Contextual interviews", "Bounce-rate analytics"})

		return tx.Create(&questions).Error
	})

	if err != nil {
		log.Printf("sample quiz seed skipped: %v", err)
	}
}
