package repository

import (
	"context"
	"fmt"

	"job_portal/internal/model"
)

// ApplicationRepository defines operations for application data
type ApplicationRepository interface {
	Exists(ctx context.Context, userID, jobID int) (bool, error)
	Create(ctx context.Context, app *model.Application) error
	FindByUser(ctx context.Context, userID int) ([]model.UserApplication, error)
}

type applicationRepository struct {
	db DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Exists reports whether the user already applied to the job
func (r *applicationRepository) Exists(ctx context.Context, userID, jobID int) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`
	if err := r.db.QueryRow(ctx, sql, userID, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return exists, nil
}

// Create inserts the applicant record; applied_at is assigned by the
// store. A racing duplicate surfaces as ErrDuplicate via the
// UNIQUE(user_id, job_id) constraint.
func (r *applicationRepository) Create(ctx context.Context, a *model.Application) error {
	sql := `INSERT INTO applications
              (user_id, job_id, ho_ten, gioi_tinh, hinh_thuc, ngay_sinh, cccd, noi_cap, ngay_cap, so_dien_thoai, que_quan, cong_ty)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            RETURNING id, applied_at`
	err := r.db.QueryRow(ctx, sql,
		a.UserID, a.JobID, a.FullName, a.Gender, a.EmploymentType, a.BirthDate,
		a.NationalID, a.IssuePlace, a.IssueDate, a.Phone, a.Hometown, a.Company,
	).Scan(&a.ID, &a.AppliedAt)
	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByUser returns the user's applications joined with the job
// posting's public fields, most recent first.
func (r *applicationRepository) FindByUser(ctx context.Context, userID int) ([]model.UserApplication, error) {
	sql := `SELECT j.id, j.company, j.image, j.type, j.address, j.salary, j.detail, a.applied_at
            FROM applications a
            JOIN companies j ON a.job_id = j.id
            WHERE a.user_id = $1
            ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications by user: %w", err)
	}
	defer rows.Close()

	apps := make([]model.UserApplication, 0)
	for rows.Next() {
		var ua model.UserApplication
		if err := rows.Scan(
			&ua.JobID, &ua.Company, &ua.Image, &ua.Type, &ua.Address,
			&ua.Salary, &ua.Detail, &ua.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, ua)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}
