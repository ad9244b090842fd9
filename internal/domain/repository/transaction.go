package repository

import "context"

// RepositoryFactory provides access to all repositories within a transaction.
// Every repository obtained from the same factory shares one transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	VendorRepo() VendorRepository
	CustomerRepo() CustomerRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
	OfferRepo() OfferRepository
	FavoriteRepo() FavoriteRepository
	ChatRepo() ChatRepository
}

// TransactionManager defines the interface for transaction management.
// It runs the given function inside a single database transaction and
// commits when the function returns nil, rolling back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}
