package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rentaid/internal/common"
	"rentaid/internal/database"
	"rentaid/internal/domain/application"
)

func newTestRepo(t *testing.T) *ApplicationRepository {
	t.Helper()
	db, err := database.Open(database.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewApplicationRepository(db)
}

func testApplication(fullName, city string, rent float64, receiving string) application.Application {
	age := int64(34)
	return application.Application{
		FullName:         fullName,
		Phone:            "555-0100",
		Email:            "jane@example.com",
		DateOfBirth:      "1990-04-01",
		Gender:           "Female",
		Age:              &age,
		City:             city,
		SSN:              "123-45-6789",
		PastDueRent:      &rent,
		AppliedBefore:    "No",
		ReceivingSS:      receiving,
		VerifiedIdentity: "Yes",
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testApplication("Jane Doe", "Springfield", 100, "Yes"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(ctx, testApplication("John Doe", "Shelbyville", 200, "No"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID <= 0 || second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
	if first.SubmittedAt.IsZero() {
		t.Fatal("expected server-assigned timestamp")
	}

	loaded, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.FullName != "Jane Doe" || loaded.City != "Springfield" {
		t.Fatalf("unexpected record: %+v", loaded)
	}
	if loaded.Age == nil || *loaded.Age != 34 {
		t.Fatalf("expected age 34, got %v", loaded.Age)
	}
	if loaded.PastDueRent == nil || *loaded.PastDueRent != 100 {
		t.Fatalf("expected rent 100, got %v", loaded.PastDueRent)
	}
	if loaded.MothersMaidenName != nil || loaded.LicenseFront != nil || loaded.LicenseBack != nil {
		t.Fatalf("expected absent optional fields to be nil: %+v", loaded)
	}
	if !loaded.SubmittedAt.Equal(first.SubmittedAt) {
		t.Fatalf("expected stored timestamp %v, got %v", first.SubmittedAt, loaded.SubmittedAt)
	}
}

func TestCreatePersistsNullNumerics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	app := testApplication("Jane Doe", "Springfield", 0, "Yes")
	app.Age = nil
	app.PastDueRent = nil
	created, err := repo.Create(ctx, app)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	loaded, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Age != nil || loaded.PastDueRent != nil {
		t.Fatalf("expected null numerics, got %+v", loaded)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetByID(context.Background(), 42)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Delete(ctx, 999); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}

	created, err := repo.Create(ctx, testApplication("Jane Doe", "Springfield", 100, "Yes"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testApplication("Jane Doe", "Springfield", 100, "Yes"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(ctx, testApplication("John Roe", "Shelbyville", 200, "No")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	matches, err := repo.Search(ctx, "spring")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != created.ID {
		t.Fatalf("expected one Springfield match, got %+v", matches)
	}

	matches, err = repo.Search(ctx, "nowhere")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	withPercent := testApplication("100% Sure LLC", "Springfield", 100, "Yes")
	created, err := repo.Create(ctx, withPercent)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(ctx, testApplication("Jane Doe", "Springfield", 200, "No")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	matches, err := repo.Search(ctx, "0% s")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != created.ID {
		t.Fatalf("expected percent to match literally, got %+v", matches)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"First", "Second", "Third"} {
		created, err := repo.Create(ctx, testApplication(name, "Springfield", 100, "Yes"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, created.ID)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(items))
	}
	for i := range items {
		if items[i].ID != ids[len(ids)-1-i] {
			t.Fatalf("expected newest first, got order %+v", items)
		}
	}
}

func TestStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if empty.TotalApplications != 0 || empty.TotalRentOwed != 0 || empty.AvgRentOwed != 0 || empty.ReceivingSocialSecurity != 0 {
		t.Fatalf("expected zero stats on empty table, got %+v", empty)
	}

	for i, rent := range []float64{100, 200, 300} {
		receiving := "Yes"
		if i == 1 {
			receiving = "No"
		}
		if _, err := repo.Create(ctx, testApplication("Jane Doe", "Springfield", rent, receiving)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalApplications != 3 {
		t.Fatalf("expected count 3, got %d", stats.TotalApplications)
	}
	if stats.TotalRentOwed != 600 {
		t.Fatalf("expected sum 600, got %v", stats.TotalRentOwed)
	}
	if stats.AvgRentOwed != 200 {
		t.Fatalf("expected average 200, got %v", stats.AvgRentOwed)
	}
	if stats.ReceivingSocialSecurity != 2 {
		t.Fatalf("expected 2 receiving social security, got %d", stats.ReceivingSocialSecurity)
	}
}
