package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{
		ID:         "req-1",
		ClientID:   "client-1",
		TargetRole: "Backend Developer",
		FileName:   "resume.pdf",
		MimeType:   "application/pdf",
		Source:     "ai",
		Status:     "job-ready",
		DurationMs: 1250,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analysis_requests").
		WithArgs(rec.ID, rec.ClientID, rec.TargetRole, rec.FileName, rec.MimeType, rec.Source, rec.Status, rec.DurationMs, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "client_id", "target_role", "file_name", "mime_type", "source", "status", "duration_ms", "created_at"}).
		AddRow("req-2", "client-1", "Data Engineer", "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "fallback", "almost-there", int64(90), now).
		AddRow("req-1", "client-1", "Backend Developer", "resume.pdf", "application/pdf", "ai", "job-ready", int64(1250), now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, client_id, target_role").
		WithArgs("client-1", 20, 0).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), "client-1", 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "req-2" || records[0].Source != "fallback" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
