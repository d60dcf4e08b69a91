package domain

import (
	"context"
	"fmt"
	"math"
	"net/netip"

	"github.com/ispnetops/ipam/internal/cidr"
)

type networkService struct {
	subnets SubnetRepository
	ips     IPRepository
	gateway GatewayConvention
}

func NewNetworkService(subnets SubnetRepository, ips IPRepository, gateway GatewayConvention) NetworkService {
	if gateway == "" {
		gateway = GatewayFirstUsable
	}
	return &networkService{
		subnets: subnets,
		ips:     ips,
		gateway: gateway,
	}
}

func (s *networkService) ListSubnets(ctx context.Context) ([]SubnetSummary, error) {
	return s.subnets.ListSummaries(ctx)
}

func (s *networkService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	record, network, err := s.validateSubnet(input.RouterID, input.CIDR, input.Type, input.AllocationMode, input.Name, input.Description, input.Gateway)
	if err != nil {
		return Subnet{}, err
	}

	conflicts, err := s.findOverlaps(ctx, network, 0)
	if err != nil {
		return Subnet{}, err
	}
	if len(conflicts) > 0 {
		return Subnet{}, &OverlapError{Conflicts: conflicts}
	}

	return s.subnets.Create(ctx, record)
}

func (s *networkService) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	return s.subnets.FindByID(ctx, id)
}

func (s *networkService) UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
	current, err := s.subnets.FindByID(ctx, id)
	if err != nil {
		return Subnet{}, err
	}

	record, network, err := s.validateSubnet(input.RouterID, input.CIDR, input.Type, input.AllocationMode, input.Name, input.Description, input.Gateway)
	if err != nil {
		return Subnet{}, err
	}

	conflicts, err := s.findOverlaps(ctx, network, id)
	if err != nil {
		return Subnet{}, err
	}
	if len(conflicts) > 0 {
		return Subnet{}, &OverlapError{Conflicts: conflicts}
	}

	// A CIDR change invalidates a generated pool: its rows would no
	// longer all lie inside the subnet's range. Refuse unless the caller
	// explicitly accepts a rebuild, then regenerate in the same pipeline.
	rebuildPool := false
	if record.CIDR != current.CIDR {
		counts, err := s.ips.CountBySubnet(ctx, id)
		if err != nil {
			return Subnet{}, err
		}
		if counts.Total > 0 {
			if !input.Regenerate {
				return Subnet{}, fmt.Errorf("%w: cidr change requires pool regeneration", ErrPoolExists)
			}
			rebuildPool = true
		}
	}

	subnet, err := s.subnets.Update(ctx, id, record)
	if err != nil {
		return Subnet{}, err
	}

	if rebuildPool {
		plan, err := PlanPool(subnet, s.gateway)
		if err != nil {
			return Subnet{}, err
		}
		if _, _, err := s.ips.ReplacePool(ctx, id, true, plan.Addresses); err != nil {
			return Subnet{}, err
		}
	}

	return subnet, nil
}

func (s *networkService) DeleteSubnet(ctx context.Context, id int64) error {
	deleted, err := s.subnets.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *networkService) CheckOverlap(ctx context.Context, rawCIDR string, excludeID int64) ([]SubnetRef, error) {
	network, err := cidr.Validate(rawCIDR)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.findOverlaps(ctx, network, excludeID)
}

func (s *networkService) GeneratePool(ctx context.Context, subnetID int64, regenerate bool) (PoolResult, error) {
	subnet, err := s.subnets.FindByID(ctx, subnetID)
	if err != nil {
		return PoolResult{}, err
	}

	plan, err := PlanPool(subnet, s.gateway)
	if err != nil {
		return PoolResult{}, err
	}

	count, regenerated, err := s.ips.ReplacePool(ctx, subnetID, regenerate, plan.Addresses)
	if err != nil {
		return PoolResult{}, err
	}

	return PoolResult{
		Count:       count,
		Reserved:    plan.Reserved,
		Available:   plan.Available,
		Regenerated: regenerated,
	}, nil
}

func (s *networkService) ListAddresses(ctx context.Context, filter AddressFilter) ([]IPAddress, error) {
	switch filter.Status {
	case "", StatusAvailable, StatusAssigned, StatusReserved:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
	}
	if filter.SubnetID != 0 {
		if _, err := s.subnets.FindByID(ctx, filter.SubnetID); err != nil {
			return nil, err
		}
	}
	return s.ips.List(ctx, filter)
}

func (s *networkService) GetAddress(ctx context.Context, id IPAddressID) (IPAddress, error) {
	return s.ips.FindByID(ctx, id)
}

func (s *networkService) AssignAddress(ctx context.Context, id IPAddressID, input AssignInput) (IPAddress, error) {
	if input.CustomerID <= 0 || input.ServiceID <= 0 {
		return IPAddress{}, fmt.Errorf("%w: customer and service ids are required", ErrInvalidInput)
	}
	return s.ips.Assign(ctx, id, input)
}

func (s *networkService) ReleaseAddress(ctx context.Context, id IPAddressID) (IPAddress, error) {
	return s.ips.Release(ctx, id)
}

func (s *networkService) Utilization(ctx context.Context, subnetID int64) (Utilization, error) {
	if _, err := s.subnets.FindByID(ctx, subnetID); err != nil {
		return Utilization{}, err
	}

	counts, err := s.ips.CountBySubnet(ctx, subnetID)
	if err != nil {
		return Utilization{}, err
	}

	return Utilization{
		Total:    counts.Total,
		Assigned: counts.Assigned,
		Free:     counts.Total - counts.Assigned,
		Percent:  percentOf(counts.Assigned, counts.Total),
	}, nil
}

func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// validateSubnet runs the full create/update validation pipeline and
// returns the record to persist plus the canonical network used for
// overlap checks.
func (s *networkService) validateSubnet(routerID int64, rawCIDR, rawType, rawMode, name, description, rawGateway string) (SubnetRecord, cidr.Network, error) {
	if routerID <= 0 {
		return SubnetRecord{}, cidr.Network{}, fmt.Errorf("%w: router id is required", ErrInvalidInput)
	}

	network, err := cidr.Validate(rawCIDR)
	if err != nil {
		return SubnetRecord{}, cidr.Network{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	subnetType, err := parseSubnetType(rawType)
	if err != nil {
		return SubnetRecord{}, cidr.Network{}, err
	}

	mode, err := parseAllocationMode(rawMode)
	if err != nil {
		return SubnetRecord{}, cidr.Network{}, err
	}

	var gateway netip.Addr
	if rawGateway != "" {
		gateway, err = netip.ParseAddr(rawGateway)
		if err != nil {
			return SubnetRecord{}, cidr.Network{}, fmt.Errorf("%w: invalid gateway %q", ErrInvalidInput, rawGateway)
		}
		gateway = gateway.Unmap()
		if !network.Contains(gateway) || gateway == network.Network || gateway == network.Broadcast {
			return SubnetRecord{}, cidr.Network{}, fmt.Errorf("%w: gateway %s not usable in %s", ErrInvalidInput, gateway, network)
		}
	}

	return SubnetRecord{
		RouterID:       routerID,
		CIDR:           network.Prefix,
		Type:           subnetType,
		AllocationMode: mode,
		Name:           name,
		Description:    description,
		Gateway:        gateway,
	}, network, nil
}

// findOverlaps is the fast-path overlap check; the database exclusion
// constraint remains the source of truth under concurrent creates.
func (s *networkService) findOverlaps(ctx context.Context, candidate cidr.Network, excludeID int64) ([]SubnetRef, error) {
	existing, err := s.subnets.List(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := []SubnetRef{}
	for _, other := range existing {
		if excludeID != 0 && other.ID == excludeID {
			continue
		}
		otherNetwork, err := cidr.FromPrefix(other.CIDR)
		if err != nil {
			// Non-IPv4 rows (ipv6 label subnets) cannot intersect an
			// IPv4 candidate.
			continue
		}
		if cidr.Overlaps(candidate, otherNetwork) {
			conflicts = append(conflicts, SubnetRef{
				ID:   other.ID,
				Name: other.Name,
				CIDR: other.CIDR.String(),
			})
		}
	}
	return conflicts, nil
}

func parseSubnetType(raw string) (SubnetType, error) {
	switch SubnetType(raw) {
	case "":
		return SubnetPrivate, nil
	case SubnetPublic, SubnetPrivate, SubnetCGNAT, SubnetIPv6:
		return SubnetType(raw), nil
	}
	return "", fmt.Errorf("%w: unknown subnet type %q", ErrInvalidInput, raw)
}

func parseAllocationMode(raw string) (AllocationMode, error) {
	switch AllocationMode(raw) {
	case "":
		return AllocationStatic, nil
	case AllocationDynamic, AllocationStatic:
		return AllocationMode(raw), nil
	}
	return "", fmt.Errorf("%w: unknown allocation mode %q", ErrInvalidInput, raw)
}
