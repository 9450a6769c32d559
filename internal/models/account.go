package models

// Account is a row of the accounts table.
type Account struct {
	AccountID    string `db:"account_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
