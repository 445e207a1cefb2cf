package history

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Save(ctx context.Context, rec Record) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO analysis_requests (id, client_id, target_role, file_name, mime_type, source, status, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.ClientID, rec.TargetRole, rec.FileName, rec.MimeType, rec.Source, rec.Status, rec.DurationMs, rec.CreatedAt,
	)
	return err
}

func (r *PGRepo) List(ctx context.Context, clientID string, limit, offset int) ([]Record, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, client_id, target_role, file_name, mime_type, source, status, duration_ms, created_at
		FROM analysis_requests
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		clientID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.TargetRole, &rec.FileName, &rec.MimeType, &rec.Source, &rec.Status, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
