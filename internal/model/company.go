package model

// Company represents a job posting managed by administrators.
// All descriptive attributes are free-form text filled in by the admin UI.
type Company struct {
	ID        int    `json:"id"`
	Company   string `json:"company"`
	Image     string `json:"image"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	Age       string `json:"age"`
	Salary    string `json:"salary"`
	Bonus     string `json:"bonus"`
	Detail    string `json:"detail"`
	Interview string `json:"interview"`
	Document  string `json:"document"`
	Note      string `json:"note"`
	Shift     string `json:"shift"`
}

// CompanyRequest is the body of the admin create/update endpoints.
// Every attribute is written as-is; the store enforces nothing beyond types.
type CompanyRequest struct {
	Company   string `json:"company"`
	Image     string `json:"image"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	Age       string `json:"age"`
	Salary    string `json:"salary"`
	Bonus     string `json:"bonus"`
	Detail    string `json:"detail"`
	Interview string `json:"interview"`
	Document  string `json:"document"`
	Note      string `json:"note"`
	Shift     string `json:"shift"`
}

// ToCompany builds a Company from the request with the given id (0 for inserts).
func (r *CompanyRequest) ToCompany(id int) Company {
	return Company{
		ID:        id,
		Company:   r.Company,
		Image:     r.Image,
		Type:      r.Type,
		Address:   r.Address,
		Age:       r.Age,
		Salary:    r.Salary,
		Bonus:     r.Bonus,
		Detail:    r.Detail,
		Interview: r.Interview,
		Document:  r.Document,
		Note:      r.Note,
		Shift:     r.Shift,
	}
}
