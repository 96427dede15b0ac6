package category

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
)

// TreeNode is one node of the category hierarchy with its live article
// count and its subcategories nested recursively.
type TreeNode struct {
	ID               int64       `json:"categoryId"`
	Name             string      `json:"categoryName"`
	Description      *string     `json:"categoryDescription,omitempty"`
	IsActive         bool        `json:"isActive"`
	NewsArticleCount int64       `json:"newsArticleCount"`
	SubCategories    []*TreeNode `json:"subCategories"`
}

// Tree assembles the full category hierarchy: roots first, each node
// carrying its descendants and article count. One SELECT for the categories,
// one for the counts; assembly happens in memory.
func (s *Service) Tree(ctx context.Context) ([]*TreeNode, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := s.Repo.ArticleCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles per category: %w", err)
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Category)
	}
	return BuildTree(categories, counts), nil
}

// BuildTree turns a flat, name-ordered category slice into a forest. It is
// a pure function: nodes are grouped by parent id and attached depth-first,
// preserving the input order inside each sibling group. The stored
// hierarchy is acyclic, so the recursion terminates.
func BuildTree(categories []*entity.Category, articleCounts map[int64]int64) []*TreeNode {
	childrenByParent := make(map[int64][]*entity.Category, len(categories))
	roots := make([]*entity.Category, 0, len(categories))
	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], c)
	}

	var build func(c *entity.Category) *TreeNode
	build = func(c *entity.Category) *TreeNode {
		node := &TreeNode{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			IsActive:         c.IsActive,
			NewsArticleCount: articleCounts[c.ID],
			SubCategories:    []*TreeNode{},
		}
		for _, child := range childrenByParent[c.ID] {
			node.SubCategories = append(node.SubCategories, build(child))
		}
		return node
	}

	forest := make([]*TreeNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}
	return forest
}
