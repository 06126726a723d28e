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

type PurchaseOrderHandler struct {
	Repo *repositories.PurchaseOrderRepository
}

func NewPurchaseOrderHandler(repo *repositories.PurchaseOrderRepository) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{Repo: repo}
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.List(listOptions(r)))
}

func (h *PurchaseOrderHandler) SavePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var po models.PurchaseOrder
	if err := json.NewDecoder(r.Body).Decode(&po); err != nil {
		utils.Result(w, errors.New("Invalid request body"))
		return
	}
	utils.Result(w, h.Repo.Save(po))
}

func (h *PurchaseOrderHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		utils.Result(w, errors.New("Invalid purchase order ID"))
		return
	}
	utils.Result(w, h.Repo.Delete(id))
}
