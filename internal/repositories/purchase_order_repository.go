package repositories

import (
	"errors"
	"log"
	"time"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
	"invoice-backend/internal/timeutil"
)

type PurchaseOrderRepository struct {
	Store *docstore.Store
	Now   func() time.Time
}

func NewPurchaseOrderRepository(store *docstore.Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{Store: store, Now: timeutil.Now}
}

// List returns purchase orders matching the global filter across
// sellerName, sellerGst and notes. Lenient on failure.
func (r *PurchaseOrderRepository) List(opts query.Options) query.Result[models.PurchaseOrder] {
	var purchases []models.PurchaseOrder
	if err := r.Store.Load(docstore.Purchases, &purchases); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Purchases] load failed: %v", err)
		}
		return query.Result[models.PurchaseOrder]{Data: []models.PurchaseOrder{}}
	}
	return query.Apply(purchases, opts, func(po models.PurchaseOrder) []string {
		return []string{po.SellerName, po.SellerGst, po.Notes}
	})
}

// All returns the full purchase history. A missing document is an empty
// collection; a corrupt one is an error.
func (r *PurchaseOrderRepository) All() ([]models.PurchaseOrder, error) {
	var purchases []models.PurchaseOrder
	if err := r.Store.Load(docstore.Purchases, &purchases); err != nil {
		if errors.Is(err, docstore.ErrCollectionMissing) {
			return []models.PurchaseOrder{}, nil
		}
		return nil, err
	}
	return purchases, nil
}

// Save creates or replaces the purchase order wholesale.
func (r *PurchaseOrderRepository) Save(po models.PurchaseOrder) error {
	if po.SellerName == "" {
		return ErrNameRequired
	}
	return r.Store.WithLock(docstore.Purchases, func() error {
		var purchases []models.PurchaseOrder
		if err := r.Store.Load(docstore.Purchases, &purchases); err != nil && !errors.Is(err, docstore.ErrCollectionMissing) {
			return err
		}

		if po.ID != 0 {
			idx := -1
			for i := range purchases {
				if purchases[i].ID == po.ID {
					idx = i
					break
				}
			}
			if idx == -1 {
				return ErrPurchaseOrderNotFound
			}
			purchases[idx] = po
		} else {
			po.ID = r.Now().UnixMilli()
			purchases = append(purchases, po)
		}

		return r.Store.Save(docstore.Purchases, purchases)
	})
}

// Delete removes the purchase order by id.
func (r *PurchaseOrderRepository) Delete(id int64) error {
	return r.Store.WithLock(docstore.Purchases, func() error {
		var purchases []models.PurchaseOrder
		if err := r.Store.Load(docstore.Purchases, &purchases); err != nil {
			if errors.Is(err, docstore.ErrCollectionMissing) {
				return ErrFileNotFound
			}
			return err
		}

		kept := purchases[:0]
		for _, po := range purchases {
			if po.ID != id {
				kept = append(kept, po)
			}
		}
		return r.Store.Save(docstore.Purchases, kept)
	})
}
