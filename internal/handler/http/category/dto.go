// Package category provides the HTTP handlers for the category hierarchy:
// listing, tree assembly, search, and the guarded write operations.
package category

import (
	"newsdesk/internal/domain/entity"
	catUC "newsdesk/internal/usecase/category"
)

// DTO is the JSON projection of a category.
type DTO struct {
	CategoryID         int64   `json:"categoryId"`
	CategoryName       string  `json:"categoryName"`
	Description        *string `json:"description,omitempty"`
	ParentCategoryID   *int64  `json:"parentCategoryId,omitempty"`
	ParentCategoryName string  `json:"parentCategoryName,omitempty"`
	IsActive           bool    `json:"isActive"`
}

// ViewDTO extends DTO with the usage counts and deletability shown on the
// management listing.
type ViewDTO struct {
	DTO
	NewsArticleCount int64 `json:"newsArticleCount"`
	SubCategoryCount int64 `json:"subCategoryCount"`
	CanDelete        bool  `json:"canDelete"`
}

// DetailDTO pairs a category with its direct subcategories.
type DetailDTO struct {
	DTO
	SubCategories []DTO `json:"subCategories"`
}

func toDTO(c *entity.Category, parentName string) DTO {
	return DTO{
		CategoryID:         c.ID,
		CategoryName:       c.Name,
		Description:        c.Description,
		ParentCategoryID:   c.ParentID,
		ParentCategoryName: parentName,
		IsActive:           c.IsActive,
	}
}

func toViewDTO(v catUC.View) ViewDTO {
	return ViewDTO{
		DTO:              toDTO(v.Category, v.ParentName),
		NewsArticleCount: v.NewsArticleCount,
		SubCategoryCount: v.SubCategoryCount,
		CanDelete:        v.CanDelete,
	}
}

func toViewDTOs(views []catUC.View) []ViewDTO {
	out := make([]ViewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toViewDTO(v))
	}
	return out
}

func toDTOs(categories []*entity.Category) []DTO {
	out := make([]DTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toDTO(c, ""))
	}
	return out
}
