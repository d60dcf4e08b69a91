package domain

import "net/netip"

type CreateSubnetInput struct {
	RouterID       int64
	CIDR           string
	Type           string
	AllocationMode string
	Name           string
	Description    string
	Gateway        string
}

type UpdateSubnetInput struct {
	RouterID       int64
	CIDR           string
	Type           string
	AllocationMode string
	Name           string
	Description    string
	Gateway        string
	// Regenerate acknowledges that changing the CIDR of a subnet with a
	// generated pool rebuilds that pool, dropping existing assignments.
	Regenerate bool
}

// SubnetRecord is the validated form handed to the repository.
type SubnetRecord struct {
	RouterID       int64
	CIDR           netip.Prefix
	Type           SubnetType
	AllocationMode AllocationMode
	Name           string
	Description    string
	Gateway        netip.Addr
}

type AssignInput struct {
	CustomerID int64
	ServiceID  int64
}

// AddressFilter narrows address listings. Zero values mean "no filter".
type AddressFilter struct {
	SubnetID int64
	Status   AddressStatus
	// Search matches the address text or the bound customer's display
	// name, case-insensitively.
	Search string
}
