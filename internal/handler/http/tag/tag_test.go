package tag_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"newsdesk/internal/domain/entity"
	handlertag "newsdesk/internal/handler/http/tag"
	tagUC "newsdesk/internal/usecase/tag"
)

type stubRepo struct {
	tags []*entity.Tag
}

func (r *stubRepo) List(context.Context) ([]*entity.Tag, error) {
	out := append([]*entity.Tag(nil), r.tags...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubRepo) SearchByName(ctx context.Context, term string) ([]*entity.Tag, error) {
	all, _ := r.List(ctx)
	var out []*entity.Tag
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Name), strings.ToLower(term)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubRepo) GetOrCreate(_ context.Context, name string) (*entity.Tag, error) {
	for _, t := range r.tags {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	t := &entity.Tag{ID: int64(len(r.tags) + 1), Name: name}
	r.tags = append(r.tags, t)
	return t, nil
}

func (r *stubRepo) SyncArticleTags(context.Context, int64, []int64) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func TestListHandler(t *testing.T) {
	repo := &stubRepo{tags: []*entity.Tag{
		{ID: 1, Name: "politics"},
		{ID: 2, Name: "economy"},
	}}
	h := handlertag.ListHandler{Svc: &tagUC.Service{Repo: repo}}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/tags", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var data []struct {
		TagName string `json:"tagName"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 2 || data[0].TagName != "economy" {
		t.Errorf("data = %+v, want sorted by name", data)
	}
}

func TestSearchHandler_BlankTermListsAll(t *testing.T) {
	repo := &stubRepo{tags: []*entity.Tag{{ID: 1, Name: "golang"}}}
	h := handlertag.SearchHandler{Svc: &tagUC.Service{Repo: repo}}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/tags/search?keyword=", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var data []struct {
		TagName string `json:"tagName"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 1 {
		t.Errorf("len(data) = %d, want 1", len(data))
	}
}
