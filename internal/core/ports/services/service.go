package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Professional ProfessionalSvcFacade
	Catalog      CatalogSvcFacade
	Sale         SaleSvcFacade
	Transaction  TransactionSvcFacade
	CashFlow     CashFlowSvcFacade
	Payroll      PayrollSvcFacade
	Vault        VaultSvcFacade
	Client       ClientSvcFacade
	User         UserSvcFacade
}
