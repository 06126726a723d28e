package repositories

import "errors"

// Error strings are part of the wire contract: they travel verbatim in the
// {success:false, error} envelope the UI displays, so they keep the exact
// capitalized form the UI has always shown.
var (
	ErrFileNotFound          = errors.New("File not found")
	ErrContactNotFound       = errors.New("Contact not found")
	ErrProductNotFound       = errors.New("Product not found")
	ErrInvoiceNotFound       = errors.New("Invoice not found")
	ErrPurchaseOrderNotFound = errors.New("Purchase Order not found")

	ErrNameRequired     = errors.New("Name is required")
	ErrCustomerRequired = errors.New("Customer is required")
)
