package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/pkg/utils"
)

type ContactHandler struct {
	Repo *repositories.ContactRepository
}

func NewContactHandler(repo *repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

// ListContacts returns {data, totalRecords} for the filter window.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.List(listOptions(r)))
}

// SaveContact creates or replaces a contact.
func (h *ContactHandler) SaveContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utils.Result(w, errors.New("Invalid request body"))
		return
	}
	utils.Result(w, h.Repo.Save(contact))
}

// DeleteContact removes a contact by id.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		utils.Result(w, errors.New("Invalid contact ID"))
		return
	}
	utils.Result(w, h.Repo.Delete(id))
}
