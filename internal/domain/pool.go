package domain

import (
	"fmt"
	"net"
	"net/netip"

	gocidr "github.com/apparentlymart/go-cidr/cidr"

	"github.com/ispnetops/ipam/internal/cidr"
)

// GatewayConvention selects which usable address becomes the gateway
// when a subnet does not carry an explicit override.
type GatewayConvention string

const (
	GatewayFirstUsable GatewayConvention = "first-usable"
	GatewayLastUsable  GatewayConvention = "last-usable"
)

func ParseGatewayConvention(s string) (GatewayConvention, error) {
	switch GatewayConvention(s) {
	case "":
		return GatewayFirstUsable, nil
	case GatewayFirstUsable, GatewayLastUsable:
		return GatewayConvention(s), nil
	}
	return "", fmt.Errorf("unknown gateway convention %q", s)
}

// PoolAddress is one planned row of a subnet's address inventory.
type PoolAddress struct {
	Address        netip.Addr
	Status         AddressStatus
	ReservedReason string
}

// PoolPlan is the full planned inventory for one subnet.
type PoolPlan struct {
	Gateway   netip.Addr
	Addresses []PoolAddress
	Total     int
	Reserved  int
	Available int
}

// PlanPool enumerates every address of the subnet from network to
// broadcast, reserving the network and broadcast addresses and leaving
// the rest available. A gateway that deviates from the first-usable
// default gets its own reserved row; the conventional first-usable
// gateway stays a convention, matching the dashboard's counts. The
// function is pure; persistence happens in the repository.
func PlanPool(subnet Subnet, conv GatewayConvention) (PoolPlan, error) {
	network, err := cidr.FromPrefix(subnet.CIDR)
	if err != nil {
		return PoolPlan{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	gateway, err := gatewayFor(subnet, network, conv)
	if err != nil {
		return PoolPlan{}, err
	}
	reserveGateway := gateway != network.FirstUsable

	plan := PoolPlan{
		Gateway:   gateway,
		Addresses: make([]PoolAddress, 0, network.Hosts),
	}
	for addr := network.Network; network.Contains(addr); addr = addr.Next() {
		entry := PoolAddress{Address: addr, Status: StatusAvailable}
		switch {
		case addr == network.Network:
			entry.Status = StatusReserved
			entry.ReservedReason = ReservedNetwork
		case addr == network.Broadcast:
			entry.Status = StatusReserved
			entry.ReservedReason = ReservedBroadcast
		case reserveGateway && addr == gateway:
			entry.Status = StatusReserved
			entry.ReservedReason = ReservedGateway
		}
		if entry.Status == StatusReserved {
			plan.Reserved++
		}
		plan.Addresses = append(plan.Addresses, entry)
	}

	plan.Total = len(plan.Addresses)
	plan.Available = plan.Total - plan.Reserved
	return plan, nil
}

// gatewayFor resolves the subnet's gateway: the explicit override when
// present, otherwise the address the convention designates.
func gatewayFor(subnet Subnet, network cidr.Network, conv GatewayConvention) (netip.Addr, error) {
	if subnet.Gateway.IsValid() {
		gw := subnet.Gateway.Unmap()
		if !network.Contains(gw) || gw == network.Network || gw == network.Broadcast {
			return netip.Addr{}, fmt.Errorf("%w: gateway %s not usable in %s", ErrInvalidInput, gw, network)
		}
		return gw, nil
	}

	ipNet := prefixToIPNet(network.Prefix)
	hostNum := 1
	if conv == GatewayLastUsable {
		hostNum = int(gocidr.AddressCount(ipNet)) - 2
	}
	ip, err := gocidr.Host(ipNet, hostNum)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: derive gateway for %s: %w", ErrInvalidInput, network, err)
	}

	gw, ok := netip.AddrFromSlice(ip.To4())
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: derive gateway for %s", ErrInvalidInput, network)
	}
	return gw, nil
}

func prefixToIPNet(p netip.Prefix) *net.IPNet {
	return &net.IPNet{
		IP:   net.IP(p.Masked().Addr().AsSlice()),
		Mask: net.CIDRMask(p.Bits(), 32),
	}
}
