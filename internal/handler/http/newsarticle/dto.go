// Package newsarticle provides the HTTP handlers for the article lifecycle:
// the public feed, the management listings, and the creator-guarded writes.
package newsarticle

import (
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

// TagDTO is the JSON projection of a tag attached to an article.
type TagDTO struct {
	TagID   int64  `json:"tagId"`
	TagName string `json:"tagName"`
}

// DTO is the full JSON projection of an article.
type DTO struct {
	NewsArticleID int64    `json:"newsArticleId"`
	Title         string   `json:"title"`
	Headline      *string  `json:"headline,omitempty"`
	Content       string   `json:"content"`
	Source        *string  `json:"source,omitempty"`
	CategoryID    int64    `json:"categoryId"`
	CategoryName  string   `json:"categoryName"`
	Status        bool     `json:"status"`
	StatusText    string   `json:"statusText"`
	CreatedByID   int64    `json:"createdById"`
	CreatedByName string   `json:"createdByName"`
	CreatedDate   string   `json:"createdDate"`
	ModifiedDate  *string  `json:"modifiedDate,omitempty"`
	Tags          []TagDTO `json:"tags"`
}

// DetailDTO adds the caller's mutation rights to the full projection.
type DetailDTO struct {
	DTO
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// ListItemDTO is the management-listing projection: truncated content and
// a tag count instead of the full payload.
type ListItemDTO struct {
	NewsArticleID int64  `json:"newsArticleId"`
	Title         string `json:"title"`
	Preview       string `json:"preview"`
	CategoryID    int64  `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	Status        bool   `json:"status"`
	StatusText    string `json:"statusText"`
	CreatedByName string `json:"createdByName"`
	CreatedDate   string `json:"createdDate"`
	TagCount      int    `json:"tagCount"`
	CanEdit       bool   `json:"canEdit"`
	CanDelete     bool   `json:"canDelete"`
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toTagDTOs(tags []entity.Tag) []TagDTO {
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDTO{TagID: t.ID, TagName: t.Name})
	}
	return out
}

func toDTO(item repository.ArticleWithRelations) DTO {
	a := item.Article
	var modified *string
	if a.ModifiedDate != nil {
		s := formatDate(*a.ModifiedDate)
		modified = &s
	}
	return DTO{
		NewsArticleID: a.ID,
		Title:         a.Title,
		Headline:      a.Headline,
		Content:       a.Content,
		Source:        a.Source,
		CategoryID:    a.CategoryID,
		CategoryName:  item.CategoryName,
		Status:        a.Status,
		StatusText:    a.StatusText(),
		CreatedByID:   a.CreatedByID,
		CreatedByName: item.CreatedByName,
		CreatedDate:   formatDate(a.CreatedDate),
		ModifiedDate:  modified,
		Tags:          toTagDTOs(item.Tags),
	}
}

func toDTOs(items []repository.ArticleWithRelations) []DTO {
	out := make([]DTO, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}
	return out
}

func toListItemDTO(item artUC.ListItem) ListItemDTO {
	a := item.Article
	return ListItemDTO{
		NewsArticleID: a.ID,
		Title:         a.Title,
		Preview:       item.Preview,
		CategoryID:    a.CategoryID,
		CategoryName:  item.CategoryName,
		Status:        a.Status,
		StatusText:    a.StatusText(),
		CreatedByName: item.CreatedByName,
		CreatedDate:   formatDate(a.CreatedDate),
		TagCount:      item.TagCount,
		CanEdit:       item.CanEdit,
		CanDelete:     item.CanDelete,
	}
}

func toListItemDTOs(items []artUC.ListItem) []ListItemDTO {
	out := make([]ListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toListItemDTO(item))
	}
	return out
}
