package repositories

import (
	"errors"
	"log"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
)

// CompanyRepository manages the singleton company-info document.
type CompanyRepository struct {
	Store *docstore.Store
}

func NewCompanyRepository(store *docstore.Store) *CompanyRepository {
	return &CompanyRepository{Store: store}
}

// Get returns the company profile, or nil when none has been saved yet.
func (r *CompanyRepository) Get() *models.CompanyInfo {
	var info models.CompanyInfo
	if err := r.Store.Load(docstore.CompanyInfo, &info); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Company] load failed: %v", err)
		}
		return nil
	}
	return &info
}

// Save overwrites the whole profile.
func (r *CompanyRepository) Save(info models.CompanyInfo) error {
	return r.Store.WithLock(docstore.CompanyInfo, func() error {
		return r.Store.Save(docstore.CompanyInfo, info)
	})
}
