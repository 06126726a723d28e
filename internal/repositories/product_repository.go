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

type ProductRepository struct {
	Store *docstore.Store
	Now   func() time.Time
}

func NewProductRepository(store *docstore.Store) *ProductRepository {
	return &ProductRepository{Store: store, Now: timeutil.Now}
}

// List returns products matching the global filter across name and
// description. Lenient on failure.
func (r *ProductRepository) List(opts query.Options) query.Result[models.Product] {
	var products []models.Product
	if err := r.Store.Load(docstore.Products, &products); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Products] load failed: %v", err)
		}
		return query.Result[models.Product]{Data: []models.Product{}}
	}
	return query.Apply(products, opts, func(p models.Product) []string {
		return []string{p.Name, p.Description}
	})
}

// All returns the full product snapshot. A missing document is an empty
// collection; a corrupt one is an error.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.Store.Load(docstore.Products, &products); err != nil {
		if errors.Is(err, docstore.ErrCollectionMissing) {
			return []models.Product{}, nil
		}
		return nil, err
	}
	return products, nil
}

// Save creates or replaces the product wholesale.
func (r *ProductRepository) Save(product models.Product) error {
	if product.Name == "" {
		return ErrNameRequired
	}
	return r.Store.WithLock(docstore.Products, func() error {
		var products []models.Product
		if err := r.Store.Load(docstore.Products, &products); err != nil && !errors.Is(err, docstore.ErrCollectionMissing) {
			return err
		}

		if product.ID != 0 {
			idx := -1
			for i := range products {
				if products[i].ID == product.ID {
					idx = i
					break
				}
			}
			if idx == -1 {
				return ErrProductNotFound
			}
			products[idx] = product
		} else {
			product.ID = r.Now().UnixMilli()
			products = append(products, product)
		}

		return r.Store.Save(docstore.Products, products)
	})
}

// Update runs fn against the full collection under the collection lock and
// persists the result only when fn reports that something changed. The
// invoice finalizer uses this for its stock deduction.
func (r *ProductRepository) Update(fn func(products []models.Product) (changed bool, err error)) error {
	return r.Store.WithLock(docstore.Products, func() error {
		var products []models.Product
		if err := r.Store.Load(docstore.Products, &products); err != nil {
			if errors.Is(err, docstore.ErrCollectionMissing) {
				return nil // nothing to update against
			}
			return err
		}

		changed, err := fn(products)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return r.Store.Save(docstore.Products, products)
	})
}

// Delete removes the product by id.
func (r *ProductRepository) Delete(id int64) error {
	return r.Store.WithLock(docstore.Products, func() error {
		var products []models.Product
		if err := r.Store.Load(docstore.Products, &products); err != nil {
			if errors.Is(err, docstore.ErrCollectionMissing) {
				return ErrFileNotFound
			}
			return err
		}

		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return r.Store.Save(docstore.Products, kept)
	})
}
