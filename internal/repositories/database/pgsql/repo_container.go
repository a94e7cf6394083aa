package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfessionalRepo: newPgxProfessionalRepository(dbPool),
		ServiceRepo:      newPgxServiceRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		VaultRepo:        newPgxVaultRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
