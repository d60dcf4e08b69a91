package domain

import "context"

type NetworkService interface {
	ListSubnets(ctx context.Context) ([]SubnetSummary, error)
	CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error)
	GetSubnet(ctx context.Context, id int64) (Subnet, error)
	UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error)
	DeleteSubnet(ctx context.Context, id int64) error
	CheckOverlap(ctx context.Context, cidr string, excludeID int64) ([]SubnetRef, error)
	GeneratePool(ctx context.Context, subnetID int64, regenerate bool) (PoolResult, error)
	ListAddresses(ctx context.Context, filter AddressFilter) ([]IPAddress, error)
	GetAddress(ctx context.Context, id IPAddressID) (IPAddress, error)
	AssignAddress(ctx context.Context, id IPAddressID, input AssignInput) (IPAddress, error)
	ReleaseAddress(ctx context.Context, id IPAddressID) (IPAddress, error)
	Utilization(ctx context.Context, subnetID int64) (Utilization, error)
}
