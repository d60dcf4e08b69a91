package domain

import "context"

type SubnetRepository interface {
	List(ctx context.Context) ([]Subnet, error)
	ListSummaries(ctx context.Context) ([]SubnetSummary, error)
	FindByID(ctx context.Context, id int64) (Subnet, error)
	Create(ctx context.Context, record SubnetRecord) (Subnet, error)
	Update(ctx context.Context, id int64, record SubnetRecord) (Subnet, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type IPRepository interface {
	List(ctx context.Context, filter AddressFilter) ([]IPAddress, error)
	FindByID(ctx context.Context, id IPAddressID) (IPAddress, error)
	// ReplacePool atomically swaps a subnet's address rows for the
	// planned set. When a pool exists and regenerate is false it fails
	// with ErrPoolExists and writes nothing.
	ReplacePool(ctx context.Context, subnetID int64, regenerate bool, addrs []PoolAddress) (count int, regenerated bool, err error)
	// Assign and Release are conditional updates: they only move an
	// address out of the expected starting state and report
	// ErrInvalidState otherwise.
	Assign(ctx context.Context, id IPAddressID, input AssignInput) (IPAddress, error)
	Release(ctx context.Context, id IPAddressID) (IPAddress, error)
	CountBySubnet(ctx context.Context, subnetID int64) (AddressCounts, error)
}
