package services

import (
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/platform/config"
)

// NewServiceContainer wires all application services against the repository
// provider. The drawer cutover date comes from configuration.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Professional: NewProfessionalService(repos.ProfessionalRepo),
		Catalog:      NewCatalogService(repos.ServiceRepo, repos.ProductRepo),
		Sale:         NewSaleService(repos.SaleRepo, repos.ProfessionalRepo, repos.ServiceRepo, repos.ProductRepo),
		Transaction:  NewTransactionService(repos.TransactionRepo),
		CashFlow:     NewCashFlowService(repos.TransactionRepo, repos.SaleRepo, cfg.CashFlowStartDate),
		Payroll:      NewPayrollService(repos.SaleRepo, repos.TransactionRepo),
		Vault:        NewVaultService(repos.VaultRepo),
		Client:       NewClientService(repos.SaleRepo),
		User:         NewUserService(repos.UserRepo),
	}
}
