package repomanager

import (
	"context"
	"database/sql"

	"cantina-pos/internal/dbx"
	"cantina-pos/internal/server/repositories/customers"
	"cantina-pos/internal/server/repositories/products"
	"cantina-pos/internal/server/repositories/sales"
	"cantina-pos/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repository code inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
	Customers(db dbx.DBTX) customers.Repository
	Sales(db dbx.DBTX) sales.Repository
}
