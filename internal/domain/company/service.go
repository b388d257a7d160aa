package company

import "context"

// CompanyService removes a tenant's whole hierarchy.
type CompanyService interface {
	// DeleteAll deletes every timecard, employee and department of company
	// in a single transaction.
	DeleteAll(ctx context.Context, company string) (DeleteSummary, error)
}

// Transactor runs fn inside one storage transaction carried by ctx.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
