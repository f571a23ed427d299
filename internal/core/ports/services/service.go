package services

// ServiceContainer holds instances of all the application services.
// It is the entry point for service functionality used by the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingService
}
