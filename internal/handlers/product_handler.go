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

type ProductHandler struct {
	Repo *repositories.ProductRepository
}

func NewProductHandler(repo *repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.List(listOptions(r)))
}

func (h *ProductHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.Result(w, errors.New("Invalid request body"))
		return
	}
	utils.Result(w, h.Repo.Save(product))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		utils.Result(w, errors.New("Invalid product ID"))
		return
	}
	utils.Result(w, h.Repo.Delete(id))
}
