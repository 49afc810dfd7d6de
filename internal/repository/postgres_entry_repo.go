package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

// PostgresEntryRepo는 PostgreSQL을 사용하는 업무시간 기록 리포지토리.
type PostgresEntryRepo struct {
	db *sql.DB
}

// NewPostgresEntryRepo는 PostgresEntryRepo를 생성한다.
func NewPostgresEntryRepo(db *sql.DB) *PostgresEntryRepo {
	return &PostgresEntryRepo{db: db}
}

const entryColumns = `id, user_id, author_name, name, level, project_name,
	discipline, activity, sub_activity, role, hours, date`

// scanEntry는 한 행을 TimeEntry로 읽어 들인다.
func scanEntry(row interface{ Scan(...any) error }) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{}
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.AuthorName, &entry.Name,
		&entry.Level, &entry.ProjectName, &entry.Discipline,
		&entry.Activity, &entry.SubActivity, &entry.Role,
		&entry.Hours, &entry.Date,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByID는 지정 ID의 기록을 조회한다. 존재하지 않으면 nil을 반환한다.
func (r *PostgresEntryRepo) FindByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	entry, err := scanEntry(r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM time_entries WHERE id = $1`,
		id,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("기록 조회에 실패했습니다: %w", err)
	}

	return entry, nil
}

// ListByUserID는 지정 사용자의 기록을 date 내림차순(최신 우선)으로 반환한다.
func (r *PostgresEntryRepo) ListByUserID(ctx context.Context, userID string) ([]*model.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+entryColumns+`
		 FROM time_entries
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("기록 목록 조회에 실패했습니다: %w", err)
	}
	defer rows.Close()

	var entries []*model.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("기록 읽기에 실패했습니다: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("기록 목록 순회에 실패했습니다: %w", err)
	}

	return entries, nil
}

// Create는 기록을 생성한다.
func (r *PostgresEntryRepo) Create(ctx context.Context, entry *model.TimeEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO time_entries (id, user_id, author_name, name, level, project_name,
		                           discipline, activity, sub_activity, role, hours, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.ID, entry.UserID, entry.AuthorName, entry.Name,
		entry.Level, entry.ProjectName, entry.Discipline,
		entry.Activity, entry.SubActivity, entry.Role,
		entry.Hours, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("기록 생성에 실패했습니다: %w", err)
	}
	return nil
}

// Update는 기록의 편집 가능한 전 필드를 치환한다. ID와 UserID는 변경하지 않는다.
func (r *PostgresEntryRepo) Update(ctx context.Context, entry *model.TimeEntry) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE time_entries SET
		    name = $2, level = $3, project_name = $4, discipline = $5,
		    activity = $6, sub_activity = $7, role = $8, hours = $9, date = $10
		 WHERE id = $1`,
		entry.ID, entry.Name, entry.Level, entry.ProjectName, entry.Discipline,
		entry.Activity, entry.SubActivity, entry.Role, entry.Hours, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("기록 갱신에 실패했습니다: %w", err)
	}
	return nil
}

// Delete는 지정 ID의 기록을 삭제한다.
func (r *PostgresEntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM time_entries WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("기록 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// DeleteByUserID는 지정 사용자의 모든 기록을 삭제한다.
func (r *PostgresEntryRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM time_entries WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("사용자 기록 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// compile-time interface check
var _ EntryRepository = (*PostgresEntryRepo)(nil)
