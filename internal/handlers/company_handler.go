package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/pkg/utils"
)

type CompanyHandler struct {
	Repo *repositories.CompanyRepository
}

func NewCompanyHandler(repo *repositories.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{Repo: repo}
}

// GetCompanyInfo returns the profile or JSON null when never saved.
func (h *CompanyHandler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.Get())
}

// SaveCompanyInfo overwrites the singleton profile document.
func (h *CompanyHandler) SaveCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var info models.CompanyInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		utils.Result(w, errors.New("Invalid request body"))
		return
	}
	utils.Result(w, h.Repo.Save(info))
}
