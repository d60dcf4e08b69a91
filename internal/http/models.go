package http

import (
	"time"

	"github.com/ispnetops/ipam/internal/domain"
)

// SubnetResponse is the client view of a subnet, also used in Swagger.
type SubnetResponse struct {
	ID             int64     `json:"id" example:"1"`
	RouterID       int64     `json:"router_id" example:"3"`
	CIDR           string    `json:"cidr" example:"192.168.1.0/24"`
	Type           string    `json:"type" example:"private"`
	AllocationMode string    `json:"allocation_mode" example:"static"`
	Name           string    `json:"name" example:"Office LAN"`
	Description    string    `json:"description" example:"Head office access subnet"`
	Gateway        string    `json:"gateway,omitempty" example:"192.168.1.1"`
	CreatedAt      time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// SubnetSummaryResponse adds pool counts for listings.
type SubnetSummaryResponse struct {
	SubnetResponse
	Total     int `json:"total" example:"256"`
	Assigned  int `json:"assigned" example:"12"`
	Reserved  int `json:"reserved" example:"2"`
	Available int `json:"available" example:"242"`
}

// CreateSubnetRequest is the payload accepted when creating a subnet.
type CreateSubnetRequest struct {
	RouterID       int64  `json:"router_id" example:"3" validate:"required"`
	CIDR           string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	Type           string `json:"type" example:"private"`
	AllocationMode string `json:"allocation_mode" example:"static"`
	Name           string `json:"name" example:"Office LAN"`
	Description    string `json:"description"`
	Gateway        string `json:"gateway" example:"192.168.1.1"`
}

// UpdateSubnetRequest is the payload accepted when updating a subnet.
// Shrinking or moving the CIDR of a subnet with a generated pool is
// refused unless regenerate is set, because the pool must be rebuilt.
type UpdateSubnetRequest struct {
	RouterID       int64  `json:"router_id" example:"3"`
	CIDR           string `json:"cidr" example:"192.168.1.0/25"`
	Type           string `json:"type" example:"private"`
	AllocationMode string `json:"allocation_mode" example:"static"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Gateway        string `json:"gateway"`
	Regenerate     bool   `json:"regenerate"`
}

// CheckOverlapRequest asks whether a candidate CIDR collides with the
// existing inventory, optionally ignoring one subnet during edits.
type CheckOverlapRequest struct {
	CIDR      string `json:"cidr" example:"10.0.0.0/24" validate:"required"`
	ExcludeID int64  `json:"exclude_id,omitempty" example:"7"`
}

type CheckOverlapResponse struct {
	Overlaps bool                `json:"overlaps"`
	Subnets  []SubnetRefResponse `json:"subnets"`
}

type SubnetRefResponse struct {
	ID   int64  `json:"id" example:"7"`
	Name string `json:"name" example:"Office LAN"`
	CIDR string `json:"cidr" example:"192.168.1.0/24"`
}

// GenerateIPsRequest gates destructive pool rebuilds: regenerate must
// be set explicitly once a pool exists.
type GenerateIPsRequest struct {
	Regenerate bool `json:"regenerate"`
}

type GenerateIPsResponse struct {
	Count       int  `json:"count" example:"256"`
	Reserved    int  `json:"reserved" example:"2"`
	Available   int  `json:"available" example:"254"`
	Regenerated bool `json:"regenerated"`
}

type UtilizationResponse struct {
	Total    int `json:"total" example:"256"`
	Assigned int `json:"assigned" example:"64"`
	Free     int `json:"free" example:"192"`
	Percent  int `json:"percent" example:"25"`
}

// AssignRequest binds an available address to a customer service.
type AssignRequest struct {
	CustomerID int64 `json:"customer_id" example:"42" validate:"required"`
	ServiceID  int64 `json:"service_id" example:"7" validate:"required"`
}

// IPResponse is the client view of one address row, including the
// denormalized customer display fields.
type IPResponse struct {
	ID             string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SubnetID       int64      `json:"subnet_id" example:"4"`
	Address        string     `json:"address" example:"192.168.1.10"`
	Status         string     `json:"status" example:"available"`
	ReservedReason string     `json:"reserved_reason,omitempty" example:"broadcast"`
	CustomerID     *int64     `json:"customer_id,omitempty" example:"42"`
	ServiceID      *int64     `json:"service_id,omitempty" example:"7"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
	FirstName      string     `json:"first_name,omitempty" example:"Ada"`
	LastName       string     `json:"last_name,omitempty" example:"Lovelace"`
	BusinessName   string     `json:"business_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ErrorResponse is the envelope for error messages. Alignment errors
// carry a suggested CIDR for one-click correction; overlap errors carry
// the conflicting subnets.
type ErrorResponse struct {
	Error         string              `json:"error" example:"subnet not found"`
	SuggestedCIDR string              `json:"suggested_cidr,omitempty" example:"192.168.1.0/24"`
	Subnets       []SubnetRefResponse `json:"subnets,omitempty"`
}

func subnetToResponse(s domain.Subnet) SubnetResponse {
	resp := SubnetResponse{
		ID:             s.ID,
		RouterID:       s.RouterID,
		CIDR:           s.CIDR.String(),
		Type:           string(s.Type),
		AllocationMode: string(s.AllocationMode),
		Name:           s.Name,
		Description:    s.Description,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Gateway.IsValid() {
		resp.Gateway = s.Gateway.String()
	}
	return resp
}

func summariesToResponse(summaries []domain.SubnetSummary) []SubnetSummaryResponse {
	out := make([]SubnetSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, SubnetSummaryResponse{
			SubnetResponse: subnetToResponse(s.Subnet),
			Total:          s.Counts.Total,
			Assigned:       s.Counts.Assigned,
			Reserved:       s.Counts.Reserved,
			Available:      s.Counts.Available,
		})
	}
	return out
}

func refsToResponse(refs []domain.SubnetRef) []SubnetRefResponse {
	out := make([]SubnetRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, SubnetRefResponse(ref))
	}
	return out
}

func ipToResponse(ip domain.IPAddress) IPResponse {
	resp := IPResponse{
		ID:             string(ip.ID),
		SubnetID:       ip.SubnetID,
		Address:        ip.Address.String(),
		Status:         string(ip.Status),
		ReservedReason: ip.ReservedReason,
		CreatedAt:      ip.CreatedAt,
		UpdatedAt:      ip.UpdatedAt,
	}
	if ip.Binding != nil {
		resp.CustomerID = &ip.Binding.CustomerID
		resp.ServiceID = &ip.Binding.ServiceID
		if !ip.Binding.Since.IsZero() {
			since := ip.Binding.Since
			resp.AssignedAt = &since
		}
	}
	if !ip.LastSeenAt.IsZero() {
		lastSeen := ip.LastSeenAt
		resp.LastSeenAt = &lastSeen
	}
	if ip.Customer != nil {
		resp.FirstName = ip.Customer.FirstName
		resp.LastName = ip.Customer.LastName
		resp.BusinessName = ip.Customer.BusinessName
	}
	return resp
}

func ipsToResponse(ips []domain.IPAddress) []IPResponse {
	out := make([]IPResponse, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ipToResponse(ip))
	}
	return out
}
