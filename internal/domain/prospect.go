package domain

type Prospect struct {
	CompanyName  string `json:"company_name"`
	Industry     string `json:"industry"`
	CompanySize  string `json:"company_size"`
	Location     string `json:"location"`
	JobTitle     string `json:"job_title"`
	SalaryMin    int    `json:"salary_min"`
	SalaryMax    int    `json:"salary_max"`
	DaysOpen     int    `json:"days_open"`
	ContactName  string `json:"contact_name"`
	ContactTitle string `json:"contact_title"`
	TierScore    int    `json:"tier_score"` // 0-100, higher is better
}
