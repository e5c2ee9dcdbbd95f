package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/slug"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create inserts a category. A caller-supplied slug must be free; an
// auto-derived one is disambiguated against the full existing-slug set.
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	var slugValue string
	if req.Slug != nil {
		slugValue = *req.Slug
		if !slug.IsValid(slugValue) {
			return nil, apperr.Validation("Validation failed", map[string]string{
				"slug": "must contain only lowercase letters, numbers and hyphens",
			})
		}

		var existing models.Category
		if err := s.db.Where("slug = ?", slugValue).First(&existing).Error; err == nil {
			return nil, apperr.Conflict(fmt.Sprintf("Category with slug '%s' already exists", slugValue))
		}
	} else {
		slugValue = slug.Generate(req.Name)

		var existing models.Category
		if err := s.db.Where("slug = ?", slugValue).First(&existing).Error; err == nil {
			existingSlugs, err := s.allSlugs(uuid.Nil)
			if err != nil {
				return nil, apperr.Internal("failed to load slugs", err)
			}
			slugValue = slug.MakeUnique(slugValue, existingSlugs)
		}
	}

	category := models.Category{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: slugValue,
	}

	if err := s.db.Create(&category).Error; err != nil {
		// Concurrent creates can both pass the check above; the unique index
		// on slug is the actual source of truth.
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(fmt.Sprintf("Category with slug '%s' already exists", slugValue))
		}
		return nil, apperr.Internal("failed to create category", err)
	}

	return &category, nil
}

func (s *CategoryService) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Preload("Items").Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, apperr.Internal("failed to list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) FindOne(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Items").Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Category with ID %s not found", id))
		}
		return nil, apperr.Internal("failed to load category", err)
	}
	return &category, nil
}

func (s *CategoryService) FindBySlug(slugValue string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Items").Where("slug = ?", slugValue).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Category with slug '%s' not found", slugValue))
		}
		return nil, apperr.Internal("failed to load category", err)
	}
	return &category, nil
}

// Update renames a category. A new name without an explicit slug regenerates
// the slug, disambiguated against every other category's slug; an explicit
// slug held by a different category is a conflict.
func (s *CategoryService) Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Slug != nil:
		if !slug.IsValid(*req.Slug) {
			return nil, apperr.Validation("Validation failed", map[string]string{
				"slug": "must contain only lowercase letters, numbers and hyphens",
			})
		}
		var existing models.Category
		if err := s.db.Where("slug = ?", *req.Slug).First(&existing).Error; err == nil && existing.ID != id {
			return nil, apperr.Conflict(fmt.Sprintf("Category with slug '%s' already exists", *req.Slug))
		}
		category.Slug = *req.Slug
	case req.Name != nil:
		newSlug := slug.Generate(*req.Name)
		if newSlug != category.Slug {
			var existing models.Category
			err := s.db.Where("slug = ?", newSlug).First(&existing).Error
			if err == nil && existing.ID != id {
				otherSlugs, serr := s.allSlugs(id)
				if serr != nil {
					return nil, apperr.Internal("failed to load slugs", serr)
				}
				category.Slug = slug.MakeUnique(newSlug, otherSlugs)
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				category.Slug = newSlug
			}
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.db.Omit(clause.Associations).Save(category).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(fmt.Sprintf("Category with slug '%s' already exists", category.Slug))
		}
		return nil, apperr.Internal("failed to update category", err)
	}

	return category, nil
}

// Remove deletes a category; its items go with it via the store-level cascade.
func (s *CategoryService) Remove(id uuid.UUID) error {
	category, err := s.FindOne(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperr.Internal("failed to delete category", err)
	}
	return nil
}

// allSlugs returns every category slug, excluding the given id (uuid.Nil
// excludes nothing).
func (s *CategoryService) allSlugs(exclude uuid.UUID) ([]string, error) {
	var slugs []string
	q := s.db.Model(&models.Category{})
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}
