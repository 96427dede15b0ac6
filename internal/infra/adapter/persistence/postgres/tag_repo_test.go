package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/postgres"
)

func tagRows(tags ...entity.Tag) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"tag_id", "tag_name", "note"})
	for _, t := range tags {
		rows.AddRow(t.ID, t.Name, t.Note)
	}
	return rows
}

func TestTagRepo_GetOrCreate_Existing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Tag{ID: 1, Name: "golang"}
	mock.ExpectQuery(`lower\(tag_name\) = lower\(\$1\)`).
		WithArgs("golang").
		WillReturnRows(tagRows(*want))

	repo := postgres.NewTagRepo(db)
	got, err := repo.GetOrCreate(context.Background(), "  golang  ")
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_GetOrCreate_Inserts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`lower\(tag_name\) = lower\(\$1\)`).
		WithArgs("rust").
		WillReturnRows(tagRows())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tags`)).
		WithArgs("rust").
		WillReturnRows(tagRows(entity.Tag{ID: 2, Name: "rust"}))

	repo := postgres.NewTagRepo(db)
	got, err := repo.GetOrCreate(context.Background(), "rust")
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if got.ID != 2 || got.Name != "rust" {
		t.Fatalf("got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// A concurrent insert wins between the lookup and the INSERT: ON CONFLICT
// DO NOTHING yields no row, and the repo falls back to re-fetching.
func TestTagRepo_GetOrCreate_LostRace(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`lower\(tag_name\) = lower\(\$1\)`).
		WithArgs("ai").
		WillReturnRows(tagRows())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tags`)).
		WithArgs("ai").
		WillReturnRows(tagRows())
	mock.ExpectQuery(`lower\(tag_name\) = lower\(\$1\)`).
		WithArgs("ai").
		WillReturnRows(tagRows(entity.Tag{ID: 9, Name: "ai"}))

	repo := postgres.NewTagRepo(db)
	got, err := repo.GetOrCreate(context.Background(), "ai")
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if got.ID != 9 {
		t.Fatalf("ID=%d want 9", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_SyncArticleTags(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM news_tags`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_tags`)).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_tags`)).
		WithArgs(int64(5), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := postgres.NewTagRepo(db)
	if err := repo.SyncArticleTags(context.Background(), 5, []int64{1, 3}); err != nil {
		t.Fatalf("SyncArticleTags err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_SearchByName(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`tag_name ILIKE`).
		WithArgs("%go%").
		WillReturnRows(tagRows(entity.Tag{ID: 1, Name: "golang"}))

	repo := postgres.NewTagRepo(db)
	got, err := repo.SearchByName(context.Background(), "go")
	if err != nil || len(got) != 1 {
		t.Fatalf("SearchByName err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_SearchByName_EscapesLikeMetacharacters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// "100%" must match the literal substring, not everything.
	mock.ExpectQuery(`tag_name ILIKE`).
		WithArgs(`%100\%%`).
		WillReturnRows(tagRows())

	repo := postgres.NewTagRepo(db)
	if _, err := repo.SearchByName(context.Background(), "100%"); err != nil {
		t.Fatalf("SearchByName err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
