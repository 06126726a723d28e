package models

// CompanyInfo is the singleton business profile printed on invoices. It has
// no id and no history; saving overwrites the whole document.
type CompanyInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	GSTIN    string `json:"gstin"`
	BankName string `json:"bankName"`
	IFSC     string `json:"ifsc"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Message  string `json:"message"`
}
