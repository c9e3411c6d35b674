package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db             *gorm.DB
	technologyRepo *TechnologyRepo
	tagRepo        *TagRepo
	projectRepo    *ProjectRepo
	blogPostRepo   *BlogPostRepo
	skillRepo      *SkillRepo
	contactRepo    *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		technologyRepo: NewTechnologyRepo(db),
		tagRepo:        NewTagRepo(db),
		projectRepo:    NewProjectRepo(db),
		blogPostRepo:   NewBlogPostRepo(db),
		skillRepo:      NewSkillRepo(db),
		contactRepo:    NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// Migrate creates or updates the schema for every model
func (d Database) Migrate(ctx context.Context) error {
	return models.AutoMigrate(d.db.WithContext(ctx))
}

// Ping checks that the database answers queries
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}
