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

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

func (s *ItemService) Create(req *dto.CreateItemRequest) (*models.Item, error) {
	categoryID, err := s.verifyCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}

	var slugValue string
	if req.Slug != nil {
		slugValue = *req.Slug
		if !slug.IsValid(slugValue) {
			return nil, apperr.Validation("Validation failed", map[string]string{
				"slug": "must contain only lowercase letters, numbers and hyphens",
			})
		}

		var existing models.Item
		if err := s.db.Where("slug = ?", slugValue).First(&existing).Error; err == nil {
			return nil, apperr.Conflict(fmt.Sprintf("Item with slug '%s' already exists", slugValue))
		}
	} else {
		slugValue = slug.Generate(req.Name)

		var existing models.Item
		if err := s.db.Where("slug = ?", slugValue).First(&existing).Error; err == nil {
			existingSlugs, err := s.allSlugs(uuid.Nil)
			if err != nil {
				return nil, apperr.Internal("failed to load slugs", err)
			}
			slugValue = slug.MakeUnique(slugValue, existingSlugs)
		}
	}

	item := models.Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slugValue,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  categoryID,
	}

	if err := s.db.Create(&item).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(fmt.Sprintf("Item with slug '%s' already exists", slugValue))
		}
		return nil, apperr.Internal("failed to create item", err)
	}

	return &item, nil
}

func (s *ItemService) FindAll() ([]models.Item, error) {
	var items []models.Item
	err := s.db.Preload("Category").Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, apperr.Internal("failed to list items", err)
	}
	return items, nil
}

func (s *ItemService) FindOne(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Category").Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Item with ID %s not found", id))
		}
		return nil, apperr.Internal("failed to load item", err)
	}
	return &item, nil
}

func (s *ItemService) FindBySlug(slugValue string) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Category").Where("slug = ?", slugValue).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Item with slug '%s' not found", slugValue))
		}
		return nil, apperr.Internal("failed to load item", err)
	}
	return &item, nil
}

// FindByCategory lists a category's items newest-first; the category must exist.
func (s *ItemService) FindByCategory(categoryID string) ([]models.Item, error) {
	id, err := s.verifyCategory(categoryID)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := s.db.Preload("Category").Where("category_id = ?", id).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, apperr.Internal("failed to list items", err)
	}
	return items, nil
}

func (s *ItemService) Update(id uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error) {
	item, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		categoryID, err := s.verifyCategory(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		item.CategoryID = categoryID
	}

	switch {
	case req.Slug != nil:
		if !slug.IsValid(*req.Slug) {
			return nil, apperr.Validation("Validation failed", map[string]string{
				"slug": "must contain only lowercase letters, numbers and hyphens",
			})
		}
		var existing models.Item
		if err := s.db.Where("slug = ?", *req.Slug).First(&existing).Error; err == nil && existing.ID != id {
			return nil, apperr.Conflict(fmt.Sprintf("Item with slug '%s' already exists", *req.Slug))
		}
		item.Slug = *req.Slug
	case req.Name != nil:
		newSlug := slug.Generate(*req.Name)
		if newSlug != item.Slug {
			var existing models.Item
			err := s.db.Where("slug = ?", newSlug).First(&existing).Error
			if err == nil && existing.ID != id {
				otherSlugs, serr := s.allSlugs(id)
				if serr != nil {
					return nil, apperr.Internal("failed to load slugs", serr)
				}
				item.Slug = slug.MakeUnique(newSlug, otherSlugs)
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				item.Slug = newSlug
			}
		}
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := s.db.Omit(clause.Associations).Save(item).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(fmt.Sprintf("Item with slug '%s' already exists", item.Slug))
		}
		return nil, apperr.Internal("failed to update item", err)
	}

	return item, nil
}

func (s *ItemService) Remove(id uuid.UUID) error {
	item, err := s.FindOne(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return apperr.Internal("failed to delete item", err)
	}
	return nil
}

// verifyCategory resolves categoryID and confirms the category exists; every
// create or update that touches categoryId goes through it first.
func (s *ItemService) verifyCategory(categoryID string) (uuid.UUID, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return uuid.Nil, apperr.Validation("Validation failed", map[string]string{
			"categoryId": "must be a valid UUID",
		})
	}

	var category models.Category
	if err := s.db.Select("id").Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperr.NotFound(fmt.Sprintf("Category with ID %s not found", id))
		}
		return uuid.Nil, apperr.Internal("failed to load category", err)
	}
	return id, nil
}

func (s *ItemService) allSlugs(exclude uuid.UUID) ([]string, error) {
	var slugs []string
	q := s.db.Model(&models.Item{})
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}
