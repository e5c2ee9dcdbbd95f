package validation

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
)

func TestStructValid(t *testing.T) {
	req := dto.RegisterRequest{Email: "a@example.com", Password: "long-enough"}
	if err := Struct(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestStructDetails(t *testing.T) {
	req := dto.RegisterRequest{Email: "not-an-email", Password: "short"}
	err := Struct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if ae.Kind != apperr.KindValidation {
		t.Errorf("expected validation kind, got %v", ae.Kind)
	}
	if _, ok := ae.Details["email"]; !ok {
		t.Errorf("expected email detail, got %v", ae.Details)
	}
	if _, ok := ae.Details["password"]; !ok {
		t.Errorf("expected password detail, got %v", ae.Details)
	}
}

func TestStructItemRules(t *testing.T) {
	req := dto.CreateItemRequest{Name: "Thing", Price: -5, CategoryID: "nope"}
	err := Struct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if _, ok := ae.Details["price"]; !ok {
		t.Errorf("expected price detail, got %v", ae.Details)
	}
	if _, ok := ae.Details["categoryID"]; !ok {
		t.Errorf("expected categoryID detail, got %v", ae.Details)
	}
}
