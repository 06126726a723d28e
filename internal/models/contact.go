package models

// Contact is a customer record. GSTIN and the address lines are free text;
// nothing is validated beyond the name.
type Contact struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	GSTIN    string `json:"gstin"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
}
