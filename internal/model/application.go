package model

import "time"

// Application is one user's submission for one job posting.
// The applicant fields keep the Vietnamese wire names the frontend sends.
type Application struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	JobID          int       `json:"job_id"`
	FullName       string    `json:"ho_ten"`
	Gender         string    `json:"gioi_tinh"`
	EmploymentType string    `json:"hinh_thuc"`
	BirthDate      string    `json:"ngay_sinh"`
	NationalID     string    `json:"cccd"`
	IssuePlace     string    `json:"noi_cap"`
	IssueDate      string    `json:"ngay_cap"`
	Phone          string    `json:"so_dien_thoai"`
	Hometown       string    `json:"que_quan"`
	Company        string    `json:"cong_ty"`
	AppliedAt      time.Time `json:"applied_at"`
}

// ApplyRequest is the body of POST /api/apply.
// user_id and job_id are required; the applicant fields pass through.
type ApplyRequest struct {
	UserID         int    `json:"user_id"`
	JobID          int    `json:"job_id"`
	FullName       string `json:"ho_ten"`
	Gender         string `json:"gioi_tinh"`
	EmploymentType string `json:"hinh_thuc"`
	BirthDate      string `json:"ngay_sinh"`
	NationalID     string `json:"cccd"`
	IssuePlace     string `json:"noi_cap"`
	IssueDate      string `json:"ngay_cap"`
	Phone          string `json:"so_dien_thoai"`
	Hometown       string `json:"que_quan"`
	Company        string `json:"cong_ty"`
}

// UserApplication is one row of GET /api/user/:userId/applications:
// the job posting's public fields joined with the submission timestamp.
type UserApplication struct {
	JobID     int       `json:"id"`
	Company   string    `json:"company"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	Address   string    `json:"address"`
	Salary    string    `json:"salary"`
	Detail    string    `json:"detail"`
	AppliedAt time.Time `json:"applied_at"`
}
