package repository

import (
	"context"
	"fmt"

	"job_portal/internal/model"
)

const companyColumns = `id, company, image, type, address, age, salary, bonus, detail, interview, document, note, shift`

// CompanyRepository defines operations for job-posting data
type CompanyRepository interface {
	FindAll(ctx context.Context) ([]model.Company, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id int) error
}

type companyRepository struct {
	db DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) list(ctx context.Context, order string) ([]model.Company, error) {
	sql := fmt.Sprintf(`SELECT %s FROM companies ORDER BY id %s`, companyColumns, order)
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]model.Company, 0)
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(
			&c.ID, &c.Company, &c.Image, &c.Type, &c.Address, &c.Age, &c.Salary,
			&c.Bonus, &c.Detail, &c.Interview, &c.Document, &c.Note, &c.Shift,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}

// FindAll returns every company in insertion order (public job listing)
func (r *companyRepository) FindAll(ctx context.Context) ([]model.Company, error) {
	return r.list(ctx, "ASC")
}

// FindAllNewestFirst returns every company ordered by id descending
// (admin listing, most recently created first).
func (r *companyRepository) FindAllNewestFirst(ctx context.Context) ([]model.Company, error) {
	return r.list(ctx, "DESC")
}

// Create inserts a new company and fills in the generated id
func (r *companyRepository) Create(ctx context.Context, c *model.Company) error {
	sql := `INSERT INTO companies (company, image, type, address, age, salary, bonus, detail, interview, document, note, shift)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		c.Company, c.Image, c.Type, c.Address, c.Age, c.Salary,
		c.Bonus, c.Detail, c.Interview, c.Document, c.Note, c.Shift,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// Update overwrites all twelve attributes. A missing id is a silent
// no-op; the contract does not signal "not found" here.
func (r *companyRepository) Update(ctx context.Context, c *model.Company) error {
	sql := `UPDATE companies SET
              company = $1, image = $2, type = $3, address = $4, age = $5, salary = $6,
              bonus = $7, detail = $8, interview = $9, document = $10, note = $11, shift = $12
            WHERE id = $13`
	_, err := r.db.Exec(ctx, sql,
		c.Company, c.Image, c.Type, c.Address, c.Age, c.Salary,
		c.Bonus, c.Detail, c.Interview, c.Document, c.Note, c.Shift, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// Delete removes a company; missing ids are a silent no-op
func (r *companyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
