package domain

import (
	"context"
	"log/slog"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

// NewLoggingNetworkService decorates a NetworkService with structured
// logging. A nil logger disables the decoration.
func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) ListSubnets(ctx context.Context) ([]SubnetSummary, error) {
	subnets, err := s.next.ListSubnets(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list subnets failed", "err", err.Error())
	}
	return subnets, err
}

func (s *loggingNetworkService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	subnet, err := s.next.CreateSubnet(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create subnet failed", "cidr", input.CIDR, "err", err.Error())
		return Subnet{}, err
	}

	s.logger.InfoContext(ctx, "subnet created", "id", subnet.ID, "cidr", subnet.CIDR.String())
	return subnet, nil
}

func (s *loggingNetworkService) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	subnet, err := s.next.GetSubnet(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get subnet failed", "id", id, "err", err.Error())
	}
	return subnet, err
}

func (s *loggingNetworkService) UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
	subnet, err := s.next.UpdateSubnet(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update subnet failed", "id", id, "cidr", input.CIDR, "err", err.Error())
		return Subnet{}, err
	}

	s.logger.InfoContext(ctx, "subnet updated", "id", subnet.ID, "cidr", subnet.CIDR.String())
	return subnet, nil
}

func (s *loggingNetworkService) DeleteSubnet(ctx context.Context, id int64) error {
	err := s.next.DeleteSubnet(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete subnet failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "subnet deleted", "id", id)
	return nil
}

func (s *loggingNetworkService) CheckOverlap(ctx context.Context, cidr string, excludeID int64) ([]SubnetRef, error) {
	conflicts, err := s.next.CheckOverlap(ctx, cidr, excludeID)
	if err != nil {
		s.logger.ErrorContext(ctx, "overlap check failed", "cidr", cidr, "err", err.Error())
	}
	return conflicts, err
}

func (s *loggingNetworkService) GeneratePool(ctx context.Context, subnetID int64, regenerate bool) (PoolResult, error) {
	result, err := s.next.GeneratePool(ctx, subnetID, regenerate)
	if err != nil {
		s.logger.ErrorContext(ctx, "generate pool failed", "subnet_id", subnetID, "regenerate", regenerate, "err", err.Error())
		return PoolResult{}, err
	}

	s.logger.InfoContext(ctx, "pool generated", "subnet_id", subnetID, "count", result.Count, "regenerated", result.Regenerated)
	return result, nil
}

func (s *loggingNetworkService) ListAddresses(ctx context.Context, filter AddressFilter) ([]IPAddress, error) {
	ips, err := s.next.ListAddresses(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "list addresses failed", "subnet_id", filter.SubnetID, "err", err.Error())
	}
	return ips, err
}

func (s *loggingNetworkService) GetAddress(ctx context.Context, id IPAddressID) (IPAddress, error) {
	ip, err := s.next.GetAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get address failed", "ip_id", string(id), "err", err.Error())
	}
	return ip, err
}

func (s *loggingNetworkService) AssignAddress(ctx context.Context, id IPAddressID, input AssignInput) (IPAddress, error) {
	ip, err := s.next.AssignAddress(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "assign address failed", "ip_id", string(id), "customer_id", input.CustomerID, "err", err.Error())
		return IPAddress{}, err
	}

	s.logger.InfoContext(ctx, "address assigned", "ip", ip.Address.String(), "customer_id", input.CustomerID, "service_id", input.ServiceID)
	return ip, nil
}

func (s *loggingNetworkService) ReleaseAddress(ctx context.Context, id IPAddressID) (IPAddress, error) {
	ip, err := s.next.ReleaseAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "release address failed", "ip_id", string(id), "err", err.Error())
		return IPAddress{}, err
	}

	s.logger.InfoContext(ctx, "address released", "ip", ip.Address.String())
	return ip, nil
}

func (s *loggingNetworkService) Utilization(ctx context.Context, subnetID int64) (Utilization, error) {
	utilization, err := s.next.Utilization(ctx, subnetID)
	if err != nil {
		s.logger.ErrorContext(ctx, "utilization failed", "subnet_id", subnetID, "err", err.Error())
	}
	return utilization, err
}
