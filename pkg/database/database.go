package database

import (
	"fmt"
	"log"

	"studyshare_backend/internal/config"
	"studyshare_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Resource{},
		&model.ResourceRequest{},
		&model.Tutor{},
		&model.TutorRequest{},
		&model.Post{},
	); err != nil {
		return err
	}

	return seedCategories(db)
}

// seedCategories inserts the default subject categories on first boot.
func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.Category{
		{Name: "Mathematics", Description: "Calculus, algebra, statistics and discrete math", Icon: "sigma"},
		{Name: "Computer Science", Description: "Programming, algorithms, systems and theory", Icon: "cpu"},
		{Name: "Physics", Description: "Mechanics, electromagnetism and quantum physics", Icon: "atom"},
		{Name: "Chemistry", Description: "Organic, inorganic and physical chemistry", Icon: "flask"},
		{Name: "Biology", Description: "Cell biology, genetics and physiology", Icon: "dna"},
		{Name: "Economics", Description: "Micro, macro and econometrics", Icon: "trending-up"},
		{Name: "Languages", Description: "Language courses and linguistics", Icon: "globe"},
	}
	for i := range defaults {
		if err := db.Create(&defaults[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
