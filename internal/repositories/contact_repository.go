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

type ContactRepository struct {
	Store *docstore.Store
	Now   func() time.Time
}

func NewContactRepository(store *docstore.Store) *ContactRepository {
	return &ContactRepository{Store: store, Now: timeutil.Now}
}

// List returns contacts matching the global filter across name, email,
// phone and gstin. Reads are lenient: any load failure degrades to an empty
// result rather than an error.
func (r *ContactRepository) List(opts query.Options) query.Result[models.Contact] {
	var contacts []models.Contact
	if err := r.Store.Load(docstore.Contacts, &contacts); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Contacts] load failed: %v", err)
		}
		return query.Result[models.Contact]{Data: []models.Contact{}}
	}
	return query.Apply(contacts, opts, func(c models.Contact) []string {
		return []string{c.Name, c.Email, c.Phone, c.GSTIN}
	})
}

// Save creates the contact when it carries no id (assigning the creation
// timestamp as id) or replaces the matching record wholesale.
func (r *ContactRepository) Save(contact models.Contact) error {
	if contact.Name == "" {
		return ErrNameRequired
	}
	return r.Store.WithLock(docstore.Contacts, func() error {
		var contacts []models.Contact
		if err := r.Store.Load(docstore.Contacts, &contacts); err != nil && !errors.Is(err, docstore.ErrCollectionMissing) {
			return err
		}

		if contact.ID != 0 {
			idx := -1
			for i := range contacts {
				if contacts[i].ID == contact.ID {
					idx = i
					break
				}
			}
			if idx == -1 {
				return ErrContactNotFound
			}
			contacts[idx] = contact
		} else {
			contact.ID = r.Now().UnixMilli()
			contacts = append(contacts, contact)
		}

		return r.Store.Save(docstore.Contacts, contacts)
	})
}

// Delete removes the contact by id. A missing backing document is an error;
// a present document without the id is not.
func (r *ContactRepository) Delete(id int64) error {
	return r.Store.WithLock(docstore.Contacts, func() error {
		var contacts []models.Contact
		if err := r.Store.Load(docstore.Contacts, &contacts); err != nil {
			if errors.Is(err, docstore.ErrCollectionMissing) {
				return ErrFileNotFound
			}
			return err
		}

		kept := contacts[:0]
		for _, c := range contacts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		return r.Store.Save(docstore.Contacts, kept)
	})
}
