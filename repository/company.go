package repository

import (
	"hotel-reservation/models/company"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	*Repository[company.Company]
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{Repository: New[company.Company](db)}
}

// ByUserName resolves the company owned by an account.
func (r *CompanyRepository) ByUserName(userName string) (*company.Company, error) {
	return r.GetOne(Where("user_name = ?", userName))
}
