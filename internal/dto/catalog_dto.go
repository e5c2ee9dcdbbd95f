package dto

type CreateCategoryRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=255"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
}

type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  string  `json:"categoryId" validate:"required,uuid"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug        *string  `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID  *string  `json:"categoryId,omitempty" validate:"omitempty,uuid"`
}
