package service

import (
	"context"
	"errors"
	"fmt"

	"job_portal/internal/model"
	"job_portal/internal/repository"
)

var ErrAlreadyApplied = errors.New("user already applied to this job")

// JobService covers the public job listing, application submission and
// the admin company CRUD surface.
type JobService interface {
	ListJobs(ctx context.Context) ([]model.Company, error)
	Apply(ctx context.Context, req model.ApplyRequest) (*model.Application, error)
	ListUserApplications(ctx context.Context, userID int) ([]model.UserApplication, error)

	// Admin methods
	ListCompaniesAdmin(ctx context.Context) ([]model.Company, error)
	CreateCompany(ctx context.Context, req model.CompanyRequest) (*model.Company, error)
	UpdateCompany(ctx context.Context, id int, req model.CompanyRequest) error
	DeleteCompany(ctx context.Context, id int) error
}

type jobService struct {
	companyRepo     repository.CompanyRepository
	applicationRepo repository.ApplicationRepository
}

// NewJobService creates a new JobService
func NewJobService(companyRepo repository.CompanyRepository, applicationRepo repository.ApplicationRepository) JobService {
	return &jobService{
		companyRepo:     companyRepo,
		applicationRepo: applicationRepo,
	}
}

// ListJobs returns every job posting for the public listing
func (s *jobService) ListJobs(ctx context.Context) ([]model.Company, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return companies, nil
}

// Apply persists one application per (user, job) pair. The pre-check
// gives the friendly conflict answer; the unique constraint closes the
// race between two identical requests.
func (s *jobService) Apply(ctx context.Context, req model.ApplyRequest) (*model.Application, error) {
	exists, err := s.applicationRepo.Exists(ctx, req.UserID, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &model.Application{
		UserID:         req.UserID,
		JobID:          req.JobID,
		FullName:       req.FullName,
		Gender:         req.Gender,
		EmploymentType: req.EmploymentType,
		BirthDate:      req.BirthDate,
		NationalID:     req.NationalID,
		IssuePlace:     req.IssuePlace,
		IssueDate:      req.IssueDate,
		Phone:          req.Phone,
		Hometown:       req.Hometown,
		Company:        req.Company,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// ListUserApplications returns the user's applications, most recent
// first. Zero applications is an empty list, not an error.
func (s *jobService) ListUserApplications(ctx context.Context, userID int) ([]model.UserApplication, error) {
	apps, err := s.applicationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user applications: %w", err)
	}
	return apps, nil
}

// --- Admin methods ---

// ListCompaniesAdmin returns every company, most recently created first
func (s *jobService) ListCompaniesAdmin(ctx context.Context) ([]model.Company, error) {
	companies, err := s.companyRepo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for admin: %w", err)
	}
	return companies, nil
}

// CreateCompany inserts a new posting and returns it with the generated id
func (s *jobService) CreateCompany(ctx context.Context, req model.CompanyRequest) (*model.Company, error) {
	company := req.ToCompany(0)
	if err := s.companyRepo.Create(ctx, &company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

// UpdateCompany overwrites all attributes; a missing id silently succeeds
func (s *jobService) UpdateCompany(ctx context.Context, id int, req model.CompanyRequest) error {
	company := req.ToCompany(id)
	if err := s.companyRepo.Update(ctx, &company); err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// DeleteCompany removes a posting; a missing id silently succeeds
func (s *jobService) DeleteCompany(ctx context.Context, id int) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
