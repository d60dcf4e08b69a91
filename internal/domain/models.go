package domain

import (
	"net/netip"
	"time"
)

type IPAddressID string

type SubnetType string

const (
	SubnetPublic  SubnetType = "public"
	SubnetPrivate SubnetType = "private"
	SubnetCGNAT   SubnetType = "cgnat"
	SubnetIPv6    SubnetType = "ipv6"
)

type AllocationMode string

const (
	AllocationDynamic AllocationMode = "dynamic"
	AllocationStatic  AllocationMode = "static"
)

type AddressStatus string

const (
	StatusAvailable AddressStatus = "available"
	StatusAssigned  AddressStatus = "assigned"
	StatusReserved  AddressStatus = "reserved"
)

// Reserved-address reasons set at pool generation time.
const (
	ReservedNetwork   = "network"
	ReservedBroadcast = "broadcast"
	ReservedGateway   = "gateway"
)

type Subnet struct {
	ID             int64
	RouterID       int64
	CIDR           netip.Prefix
	Type           SubnetType
	AllocationMode AllocationMode
	Name           string
	Description    string
	// Gateway overrides the convention-derived gateway when set.
	Gateway   netip.Addr
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Binding ties an assigned address to a customer service. It is non-nil
// exactly when the address status is assigned.
type Binding struct {
	CustomerID int64
	ServiceID  int64
	Since      time.Time
}

// CustomerRef carries display fields joined from the customers table.
// It is read-only here; customer records are owned elsewhere.
type CustomerRef struct {
	FirstName    string
	LastName     string
	BusinessName string
}

// DisplayName is the name shown in address listings and matched by
// search: business name when present, otherwise "first last".
func (c CustomerRef) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type IPAddress struct {
	ID             IPAddressID
	SubnetID       int64
	Address        netip.Addr
	Status         AddressStatus
	ReservedReason string
	Binding        *Binding
	Customer       *CustomerRef
	LastSeenAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AddressCounts aggregates a subnet's pool by status.
type AddressCounts struct {
	Total     int
	Assigned  int
	Reserved  int
	Available int
}

// SubnetSummary is a subnet with its pool counts, as shown in listings.
type SubnetSummary struct {
	Subnet
	Counts AddressCounts
}

// SubnetRef identifies a conflicting subnet in overlap reports.
type SubnetRef struct {
	ID   int64
	Name string
	CIDR string
}

// Utilization is the assigned/total ratio for a subnet.
type Utilization struct {
	Total    int
	Assigned int
	Free     int
	Percent  int
}

// PoolResult reports the outcome of a pool (re)generation.
type PoolResult struct {
	Count       int
	Reserved    int
	Available   int
	Regenerated bool
}
