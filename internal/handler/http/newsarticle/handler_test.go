package newsarticle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	handlerart "newsdesk/internal/handler/http/newsarticle"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

type stubRepo struct {
	articles   map[int64]*entity.Article
	tags       map[int64][]entity.Tag
	categories map[int64]*entity.Category
	accounts   map[int64]string
	nextID     int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		articles:   map[int64]*entity.Article{},
		tags:       map[int64][]entity.Tag{},
		categories: map[int64]*entity.Category{},
		accounts:   map[int64]string{},
		nextID:     1,
	}
}

func (r *stubRepo) add(a entity.Article) *entity.Article {
	a.ID = r.nextID
	r.nextID++
	clone := a
	r.articles[clone.ID] = &clone
	return &clone
}

func (r *stubRepo) hydrate(a *entity.Article) repository.ArticleWithRelations {
	item := repository.ArticleWithRelations{
		Article:       a,
		CreatedByName: r.accounts[a.CreatedByID],
		Tags:          r.tags[a.ID],
	}
	if c, ok := r.categories[a.CategoryID]; ok {
		item.CategoryName = c.Name
	}
	if item.Tags == nil {
		item.Tags = []entity.Tag{}
	}
	return item
}

func (r *stubRepo) newestFirst() []*entity.Article {
	out := make([]*entity.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *stubRepo) ListActive(context.Context) ([]repository.ArticleWithRelations, error) {
	var out []repository.ArticleWithRelations
	for _, a := range r.newestFirst() {
		c, ok := r.categories[a.CategoryID]
		if a.Status && ok && c.IsActive {
			out = append(out, r.hydrate(a))
		}
	}
	return out, nil
}

func (r *stubRepo) List(context.Context) ([]repository.ArticleWithRelations, error) {
	var out []repository.ArticleWithRelations
	for _, a := range r.newestFirst() {
		out = append(out, r.hydrate(a))
	}
	return out, nil
}

func (r *stubRepo) ListByCreator(_ context.Context, accountID int64) ([]repository.ArticleWithRelations, error) {
	var out []repository.ArticleWithRelations
	for _, a := range r.newestFirst() {
		if a.CreatedByID == accountID {
			out = append(out, r.hydrate(a))
		}
	}
	return out, nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (*repository.ArticleWithRelations, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	item := r.hydrate(a)
	return &item, nil
}

func (r *stubRepo) Search(_ context.Context, term string) ([]repository.ArticleWithRelations, error) {
	var out []repository.ArticleWithRelations
	for _, a := range r.newestFirst() {
		if strings.Contains(strings.ToLower(a.Title), strings.ToLower(term)) {
			out = append(out, r.hydrate(a))
		}
	}
	return out, nil
}

func (r *stubRepo) Create(_ context.Context, a *entity.Article, tagIDs []int64) error {
	a.ID = r.nextID
	r.nextID++
	clone := *a
	r.articles[clone.ID] = &clone
	for _, id := range tagIDs {
		r.tags[clone.ID] = append(r.tags[clone.ID], entity.Tag{ID: id})
	}
	return nil
}

func (r *stubRepo) Update(_ context.Context, a *entity.Article, tagIDs []int64) error {
	clone := *a
	r.articles[clone.ID] = &clone
	r.tags[clone.ID] = nil
	for _, id := range tagIDs {
		r.tags[clone.ID] = append(r.tags[clone.ID], entity.Tag{ID: id})
	}
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	delete(r.articles, id)
	delete(r.tags, id)
	return nil
}

func (r *stubRepo) SetStatus(_ context.Context, id int64, status bool) error {
	if a, ok := r.articles[id]; ok {
		a.Status = status
	}
	return nil
}

type categoryGetterFunc func(ctx context.Context, id int64) (*entity.Category, error)

func (f categoryGetterFunc) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return f(ctx, id)
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, names []string) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(names))
	for i, name := range names {
		out = append(out, &entity.Tag{ID: int64(i + 1), Name: name})
	}
	return out, nil
}

func newService(repo *stubRepo) *artUC.Service {
	return &artUC.Service{
		Repo: repo,
		Categories: categoryGetterFunc(func(_ context.Context, id int64) (*entity.Category, error) {
			return repo.categories[id], nil
		}),
		Tags: stubResolver{},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func asCaller(r *http.Request, id *entity.Identity) *http.Request {
	return r.WithContext(auth.WithIdentity(r.Context(), id))
}

func staff(id int64) *entity.Identity {
	return &entity.Identity{AccountID: id, Role: entity.RoleStaff}
}

func seeded() *stubRepo {
	repo := newStubRepo()
	repo.categories[1] = &entity.Category{ID: 1, Name: "Politics", IsActive: true}
	repo.accounts[7] = "Alice"
	repo.accounts[8] = "Bob"
	repo.add(entity.Article{
		Title: "Budget passes", Content: "The vote went through.",
		CategoryID: 1, Status: true, CreatedByID: 7, UpdatedByID: 7,
		CreatedDate: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	})
	repo.add(entity.Article{
		Title: "Draft piece", Content: "Unpublished notes.",
		CategoryID: 1, Status: false, CreatedByID: 7, UpdatedByID: 7,
		CreatedDate: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
	})
	return repo
}

func TestListActiveHandler_PublicFeed(t *testing.T) {
	h := handlerart.ListActiveHandler{Svc: newService(seeded())}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/newsarticles/active", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	var data []struct {
		Title        string `json:"title"`
		CategoryName string `json:"categoryName"`
		Tags         []any  `json:"tags"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("len(data) = %d, want 1 (inactive article excluded)", len(data))
	}
	if data[0].Title != "Budget passes" || data[0].CategoryName != "Politics" {
		t.Errorf("data[0] = %+v", data[0])
	}
	if data[0].Tags == nil {
		t.Error("tags is null, want []")
	}
}

func TestGetHandler_OwnerSeesRights(t *testing.T) {
	h := handlerart.GetHandler{Svc: newService(seeded())}
	req := asCaller(httptest.NewRequest("GET", "/newsarticles/2", nil), staff(7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		CanEdit   bool `json:"canEdit"`
		CanDelete bool `json:"canDelete"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.CanEdit || !data.CanDelete {
		t.Errorf("rights = %+v, want both true for the creator", data)
	}
}

func TestGetHandler_NonOwnerBlockedFromInactive(t *testing.T) {
	h := handlerart.GetHandler{Svc: newService(seeded())}
	req := asCaller(httptest.NewRequest("GET", "/newsarticles/2", nil), staff(8))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", rec.Code, rec.Body.String())
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	h := handlerart.GetHandler{Svc: newService(seeded())}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/newsarticles/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateHandler_RequiresIdentity(t *testing.T) {
	h := handlerart.CreateHandler{Svc: newService(seeded())}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/newsarticles", strings.NewReader(`{}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateHandler_RecordsPublish(t *testing.T) {
	repo := seeded()
	published := 0
	h := handlerart.CreateHandler{Svc: newService(repo), Published: func() { published++ }}
	body := `{"title":"Breaking","content":"Something happened.","categoryId":1,"status":true,"tags":["go"]}`
	req := asCaller(httptest.NewRequest("POST", "/newsarticles", strings.NewReader(body)), staff(7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if published != 1 {
		t.Errorf("published = %d, want 1", published)
	}
	// The response is the hydrated detail view, not a bare id.
	var data struct {
		NewsArticleID int64  `json:"newsArticleId"`
		Title         string `json:"title"`
		CategoryName  string `json:"categoryName"`
		Tags          []any  `json:"tags"`
		CanEdit       bool   `json:"canEdit"`
		CanDelete     bool   `json:"canDelete"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.NewsArticleID == 0 {
		t.Error("newsArticleId = 0, want assigned id")
	}
	if data.Title != "Breaking" || data.CategoryName != "Politics" {
		t.Errorf("detail = %+v", data)
	}
	if len(data.Tags) != 1 {
		t.Errorf("len(tags) = %d, want 1", len(data.Tags))
	}
	if !data.CanEdit || !data.CanDelete {
		t.Errorf("rights = %+v, want both true for the creator", data)
	}
}

func TestCreateHandler_InactiveCategoryRejected(t *testing.T) {
	repo := seeded()
	repo.categories[2] = &entity.Category{ID: 2, Name: "Archive", IsActive: false}
	h := handlerart.CreateHandler{Svc: newService(repo)}
	body := `{"title":"T","content":"C","categoryId":2,"status":false}`
	req := asCaller(httptest.NewRequest("POST", "/newsarticles", strings.NewReader(body)), staff(7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHandler_NonOwnerForbidden(t *testing.T) {
	h := handlerart.UpdateHandler{Svc: newService(seeded())}
	body := `{"title":"Hijack","content":"C","categoryId":1,"status":true}`
	req := asCaller(httptest.NewRequest("PUT", "/newsarticles/1", strings.NewReader(body)), staff(8))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHandler_ReturnsDetail(t *testing.T) {
	h := handlerart.UpdateHandler{Svc: newService(seeded())}
	body := `{"title":"Budget revised","content":"Amended.","categoryId":1,"status":true,"tags":["finance"]}`
	req := asCaller(httptest.NewRequest("PUT", "/newsarticles/1", strings.NewReader(body)), staff(7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		NewsArticleID int64  `json:"newsArticleId"`
		Title         string `json:"title"`
		ModifiedDate  string `json:"modifiedDate"`
		Tags          []any  `json:"tags"`
		CanEdit       bool   `json:"canEdit"`
		CanDelete     bool   `json:"canDelete"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.NewsArticleID != 1 || data.Title != "Budget revised" {
		t.Errorf("detail = %+v", data)
	}
	if data.ModifiedDate == "" {
		t.Error("modifiedDate missing after update")
	}
	if len(data.Tags) != 1 {
		t.Errorf("len(tags) = %d, want 1", len(data.Tags))
	}
	if !data.CanEdit || !data.CanDelete {
		t.Errorf("rights = %+v, want both true for the creator", data)
	}
}

func TestDeleteHandler_OwnerOnly(t *testing.T) {
	repo := seeded()
	h := handlerart.DeleteHandler{Svc: newService(repo)}

	req := asCaller(httptest.NewRequest("DELETE", "/newsarticles/1", nil), staff(8))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner: status = %d, want 403", rec.Code)
	}

	req = asCaller(httptest.NewRequest("DELETE", "/newsarticles/1", nil), staff(7))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner: status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if _, still := repo.articles[1]; still {
		t.Error("article still present after delete")
	}
}

func TestMyArticlesHandler_FiltersByCreator(t *testing.T) {
	repo := seeded()
	repo.add(entity.Article{
		Title: "Bob's piece", Content: "By Bob.", CategoryID: 1,
		Status: true, CreatedByID: 8, UpdatedByID: 8,
		CreatedDate: time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC),
	})

	h := handlerart.MyArticlesHandler{Svc: newService(repo)}
	req := asCaller(httptest.NewRequest("GET", "/newsarticles/my-articles", nil), staff(8))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var data []struct {
		Title   string `json:"title"`
		CanEdit bool   `json:"canEdit"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 1 || data[0].Title != "Bob's piece" || !data[0].CanEdit {
		t.Errorf("data = %+v", data)
	}
}

type stubVerifier struct{ identity *entity.Identity }

func (v stubVerifier) Verify(string) (*entity.Identity, error) { return v.identity, nil }

// Admins reach the my-articles listing too; with the out-of-band admin id
// it simply comes back empty.
func TestRegister_MyArticlesAllowsAdmin(t *testing.T) {
	mux := http.NewServeMux()
	admin := &entity.Identity{AccountID: 0, Role: entity.RoleAdmin}
	handlerart.Register(mux, newService(seeded()), stubVerifier{admin}, nil)

	req := httptest.NewRequest("GET", "/newsarticles/my-articles", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var data []any
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("len(data) = %d, want 0 for the out-of-band admin", len(data))
	}
}

func TestToggleStatusHandler(t *testing.T) {
	repo := seeded()
	published := 0
	h := handlerart.ToggleStatusHandler{Svc: newService(repo), Published: func() { published++ }}
	req := asCaller(httptest.NewRequest("PATCH", "/newsarticles/2/toggle-status", nil), staff(7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.Status {
		t.Error("status = false, want true after toggling a draft")
	}
	if published != 1 {
		t.Errorf("published = %d, want 1", published)
	}
}
