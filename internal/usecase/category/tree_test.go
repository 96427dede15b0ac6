package category_test

import (
	"context"
	"testing"

	"newsdesk/internal/domain/entity"
	catUC "newsdesk/internal/usecase/category"
)

func TestBuildTree(t *testing.T) {
	t.Parallel()

	// Name-ordered input, two roots, one nested chain.
	categories := []*entity.Category{
		{ID: 3, Name: "Football", ParentID: idPtr(1), IsActive: true},
		{ID: 2, Name: "Politics", IsActive: true},
		{ID: 1, Name: "Sports", IsActive: true},
		{ID: 4, Name: "Transfers", ParentID: idPtr(3), IsActive: false},
	}
	counts := map[int64]int64{1: 2, 4: 7}

	forest := catUC.BuildTree(categories, counts)
	if len(forest) != 2 {
		t.Fatalf("roots=%d want 2", len(forest))
	}
	if forest[0].Name != "Politics" || forest[1].Name != "Sports" {
		t.Fatalf("root order: %s, %s", forest[0].Name, forest[1].Name)
	}

	sports := forest[1]
	if sports.NewsArticleCount != 2 || len(sports.SubCategories) != 1 {
		t.Fatalf("sports node: %+v", sports)
	}
	football := sports.SubCategories[0]
	if football.Name != "Football" || len(football.SubCategories) != 1 {
		t.Fatalf("football node: %+v", football)
	}
	transfers := football.SubCategories[0]
	if transfers.NewsArticleCount != 7 || transfers.IsActive {
		t.Fatalf("transfers node: %+v", transfers)
	}
	if len(transfers.SubCategories) != 0 {
		t.Fatalf("leaf has children: %+v", transfers.SubCategories)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	t.Parallel()

	forest := catUC.BuildTree(nil, nil)
	if len(forest) != 0 {
		t.Fatalf("want empty forest, got %d", len(forest))
	}
}

// Tree nodes must mirror SubCategories exactly: every node's children equal
// the repository's direct-children answer for that node.
func TestService_Tree_MatchesSubCategories(t *testing.T) {
	repo := newStub()
	root := repo.add(&entity.Category{Name: "Sports", IsActive: true})
	repo.add(&entity.Category{Name: "Football", ParentID: idPtr(root.ID), IsActive: true})
	repo.add(&entity.Category{Name: "Tennis", ParentID: idPtr(root.ID), IsActive: true})
	svc := catUC.Service{Repo: repo}

	forest, err := svc.Tree(context.Background())
	if err != nil {
		t.Fatalf("Tree err=%v", err)
	}

	var verify func(node *catUC.TreeNode)
	verify = func(node *catUC.TreeNode) {
		children, err := svc.SubCategories(context.Background(), node.ID)
		if err != nil {
			t.Fatalf("SubCategories(%d) err=%v", node.ID, err)
		}
		if len(children) != len(node.SubCategories) {
			t.Fatalf("node %d: tree has %d children, repo has %d",
				node.ID, len(node.SubCategories), len(children))
		}
		for i, child := range node.SubCategories {
			if child.ID != children[i].ID {
				t.Fatalf("node %d child %d: tree=%d repo=%d",
					node.ID, i, child.ID, children[i].ID)
			}
			verify(child)
		}
	}
	for _, root := range forest {
		verify(root)
	}
}
