package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"invoice-backend/internal/config"
	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

const seedCount = 50

func main() {
	dataDir := flag.String("data-dir", "", "Document store directory (overrides config)")
	yes := flag.Bool("yes", false, "Skip confirmation prompt")
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("   Seed Document Store for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will OVERWRITE existing data!")
	fmt.Println()
	fmt.Printf("This will write %d contacts, %d products and %d invoices.\n", seedCount, seedCount, seedCount)
	fmt.Println()

	if !*yes {
		fmt.Print("Type 'yes' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Seed cancelled.")
			return
		}
	}

	godotenv.Load()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.Store.Dir = *dataDir
	}
	store := docstore.New(cfg.Store.Dir)

	fmt.Println()
	fmt.Printf("Seeding %s ...\n", store.Dir())

	now := timeutil.Now()
	contacts := generateContacts(now)
	products := generateProducts(now)
	invoices := generateInvoices(now, contacts, products)

	if err := store.Save(docstore.Contacts, contacts); err != nil {
		log.Fatalf("Failed to write contacts: %v", err)
	}
	fmt.Println("  - Wrote contacts.json")
	if err := store.Save(docstore.Products, products); err != nil {
		log.Fatalf("Failed to write products: %v", err)
	}
	fmt.Println("  - Wrote products.json")
	if err := store.Save(docstore.Invoices, invoices); err != nil {
		log.Fatalf("Failed to write invoices: %v", err)
	}
	fmt.Println("  - Wrote invoices.json")

	fmt.Println()
	fmt.Printf("Successfully seeded %d entries for contacts, products, and invoices.\n", seedCount)
}

func generateContacts(now time.Time) []models.Contact {
	base := now.UnixMilli()
	contacts := make([]models.Contact, 0, seedCount)
	for i := 1; i <= seedCount; i++ {
		contacts = append(contacts, models.Contact{
			ID:       base + int64(i),
			Name:     fmt.Sprintf("Customer %d", i),
			Phone:    fmt.Sprintf("98765432%02d", i),
			Email:    fmt.Sprintf("customer%d@example.com", i),
			GSTIN:    fmt.Sprintf("27AAAAA000%dZ%d", i, i),
			Address1: fmt.Sprintf("%d Main St, Sector %d", i, i%10),
			Address2: fmt.Sprintf("City %d, State %d", i%5, i%2),
		})
	}
	return contacts
}

func generateProducts(now time.Time) []models.Product {
	base := now.UnixMilli() + 1000
	products := make([]models.Product, 0, seedCount)
	for i := 1; i <= seedCount; i++ {
		products = append(products, models.Product{
			ID:          base + int64(i),
			Name:        fmt.Sprintf("Product %d", i),
			Description: fmt.Sprintf("High quality product %d for various uses.", i),
			TotalUnits:  rand.Intn(100) + 10,
			UnitPrice:   float64(rand.Intn(5000) + 100),
		})
	}
	return products
}

// generateInvoices walks one invoice per day backwards from today; every
// fifth invoice stays a draft.
func generateInvoices(now time.Time, contacts []models.Contact, products []models.Product) []models.Invoice {
	base := now.UnixMilli() + 2000
	invoices := make([]models.Invoice, 0, seedCount)

	for i := 1; i <= seedCount; i++ {
		contact := contacts[rand.Intn(len(contacts))]

		items := make([]models.InvoiceItem, 0, 3)
		subtotal := 0.0
		for j := 0; j < rand.Intn(3)+1; j++ {
			product := products[rand.Intn(len(products))]
			quantity := rand.Intn(5) + 1
			amount := product.UnitPrice * float64(quantity)
			subtotal += amount
			items = append(items, models.InvoiceItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Description: product.Description,
				Quantity:    quantity,
				UnitPrice:   product.UnitPrice,
				Amount:      amount,
			})
		}

		taxRate := 18.0
		taxAmount := subtotal * (taxRate / 100)
		date := now.AddDate(0, 0, -(seedCount - i))

		status := models.StatusFinalized
		if i%5 == 0 {
			status = models.StatusDraft
		}

		invoices = append(invoices, models.Invoice{
			ID:            base + int64(i),
			InvoiceNumber: fmt.Sprintf("INV-%s-%02d", timeutil.DateStamp(date), i),
			Date:          date,
			DueDate:       date.AddDate(0, 0, 15),
			CustomerID:    contact.ID,
			CustomerName:  contact.Name,
			Items:         items,
			TaxType:       "GST",
			TaxRate:       taxRate,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			Total:         subtotal + taxAmount,
			Notes:         fmt.Sprintf("Auto-generated mock invoice %d", i),
			Status:        status,
		})
	}
	return invoices
}
