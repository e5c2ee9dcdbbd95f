package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category, err := NewCategoryService(db).Create(&dto.CreateCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func TestItemCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	item, err := svc.Create(&dto.CreateItemRequest{
		Name:        "iPhone 15 Pro",
		Description: strptr("Titanium design"),
		Price:       999.99,
		CategoryID:  category.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Slug != "iphone-15-pro" {
		t.Errorf("expected slug 'iphone-15-pro', got %q", item.Slug)
	}
	if item.CategoryID != category.ID {
		t.Error("expected item bound to category")
	}
}

func TestItemCreateUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)

	_, err := svc.Create(&dto.CreateItemRequest{
		Name:       "Orphan",
		Price:      10,
		CategoryID: uuid.New().String(),
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found kind, got %v", apperr.KindOf(err))
	}

	// No insert happened.
	var count int64
	db.Model(&models.Item{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no items persisted, got %d", count)
	}
}

func TestItemSlugDisambiguation(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	first, err := svc.Create(&dto.CreateItemRequest{
		Name: "Pixel 9", Price: 799, CategoryID: category.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Slug != "pixel-9" {
		t.Errorf("expected slug 'pixel-9', got %q", first.Slug)
	}

	// Slug collisions are global across items, regardless of category.
	other := createCategory(t, db, "Refurbished")
	second, err := svc.Create(&dto.CreateItemRequest{
		Name: "Pixel 9", Price: 599, CategoryID: other.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if second.Slug != "pixel-9-1" {
		t.Errorf("expected slug 'pixel-9-1', got %q", second.Slug)
	}
}

func TestItemCreateProvidedSlugConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	if _, err := svc.Create(&dto.CreateItemRequest{
		Name: "A", Slug: strptr("phone"), Price: 1, CategoryID: category.ID.String(),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(&dto.CreateItemRequest{
		Name: "B", Slug: strptr("phone"), Price: 2, CategoryID: category.ID.String(),
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict kind, got %v", apperr.KindOf(err))
	}
}

func TestItemFindBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	if _, err := svc.Create(&dto.CreateItemRequest{
		Name: "Galaxy S24", Price: 899, CategoryID: category.ID.String(),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	item, err := svc.FindBySlug("galaxy-s24")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if item.Category == nil || item.Category.ID != category.ID {
		t.Error("expected category preloaded")
	}

	if _, err := svc.FindBySlug("nope"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found kind, got %v", apperr.KindOf(err))
	}
}

func TestItemFindByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	phones := createCategory(t, db, "Phones")
	tablets := createCategory(t, db, "Tablets")

	a, _ := svc.Create(&dto.CreateItemRequest{Name: "One", Price: 1, CategoryID: phones.ID.String()})
	svc.Create(&dto.CreateItemRequest{Name: "Two", Price: 2, CategoryID: phones.ID.String()})
	svc.Create(&dto.CreateItemRequest{Name: "Pad", Price: 3, CategoryID: tablets.ID.String()})

	db.Model(a).Update("created_at", a.CreatedAt.Add(-time.Second))

	items, err := svc.FindByCategory(phones.ID.String())
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Slug != "two" {
		t.Error("expected newest item first")
	}

	if _, err := svc.FindByCategory(uuid.New().String()); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found kind for unknown category, got %v", apperr.KindOf(err))
	}
}

func TestItemUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	item, err := svc.Create(&dto.CreateItemRequest{
		Name: "Old Name", Price: 100, CategoryID: category.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := 149.99
	updated, err := svc.Update(item.ID, &dto.UpdateItemRequest{
		Name:  strptr("New Name"),
		Price: &price,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "new-name" {
		t.Errorf("expected regenerated slug 'new-name', got %q", updated.Slug)
	}
	if updated.Price != price {
		t.Errorf("expected price %v, got %v", price, updated.Price)
	}
}

func TestItemUpdateMoveToUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	item, err := svc.Create(&dto.CreateItemRequest{
		Name: "Thing", Price: 5, CategoryID: category.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	missing := uuid.New().String()
	_, err = svc.Update(item.ID, &dto.UpdateItemRequest{CategoryID: &missing})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found kind, got %v", apperr.KindOf(err))
	}
}

func TestItemRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	category := createCategory(t, db, "Phones")

	item, err := svc.Create(&dto.CreateItemRequest{
		Name: "Short Lived", Price: 5, CategoryID: category.ID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Remove(item.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := svc.FindOne(item.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found after remove, got %v", apperr.KindOf(err))
	}
}
