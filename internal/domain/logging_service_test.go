package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"strings"
	"testing"
)

type stubNetworkService struct {
	NetworkService

	createSubnetFn func(context.Context, CreateSubnetInput) (Subnet, error)
	generatePoolFn func(context.Context, int64, bool) (PoolResult, error)
	assignFn       func(context.Context, IPAddressID, AssignInput) (IPAddress, error)
}

func (s stubNetworkService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	return s.createSubnetFn(ctx, input)
}

func (s stubNetworkService) GeneratePool(ctx context.Context, subnetID int64, regenerate bool) (PoolResult, error) {
	return s.generatePoolFn(ctx, subnetID, regenerate)
}

func (s stubNetworkService) AssignAddress(ctx context.Context, id IPAddressID, input AssignInput) (IPAddress, error) {
	return s.assignFn(ctx, id, input)
}

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestNewLoggingNetworkServiceWithNilLoggerReturnsNext(t *testing.T) {
	next := stubNetworkService{}
	if svc := NewLoggingNetworkService(nil, next); svc == nil {
		t.Fatal("expected next service back, got nil")
	}
	if svc := NewLoggingNetworkService(slog.Default(), nil); svc != nil {
		t.Fatal("expected nil when next is nil")
	}
}

func TestLoggingServiceLogsSubnetCreation(t *testing.T) {
	logger, buf := newCapturedLogger()
	svc := NewLoggingNetworkService(logger, stubNetworkService{
		createSubnetFn: func(context.Context, CreateSubnetInput) (Subnet, error) {
			return Subnet{ID: 4, CIDR: netip.MustParsePrefix("10.0.0.0/24")}, nil
		},
	})

	_, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{CIDR: "10.0.0.0/24"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "subnet created") {
		t.Fatalf("expected creation log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "10.0.0.0/24") {
		t.Fatalf("expected cidr in log, got %q", buf.String())
	}
}

func TestLoggingServiceLogsGenerateFailure(t *testing.T) {
	logger, buf := newCapturedLogger()
	svc := NewLoggingNetworkService(logger, stubNetworkService{
		generatePoolFn: func(context.Context, int64, bool) (PoolResult, error) {
			return PoolResult{}, ErrPoolExists
		},
	})

	_, err := svc.GeneratePool(context.Background(), 9, false)
	if !errors.Is(err, ErrPoolExists) {
		t.Fatalf("expected ErrPoolExists, got %v", err)
	}
	if !strings.Contains(buf.String(), "generate pool failed") {
		t.Fatalf("expected failure log, got %q", buf.String())
	}
}

func TestLoggingServicePassesThroughAssignResult(t *testing.T) {
	logger, _ := newCapturedLogger()
	svc := NewLoggingNetworkService(logger, stubNetworkService{
		assignFn: func(_ context.Context, id IPAddressID, input AssignInput) (IPAddress, error) {
			return IPAddress{
				ID:      id,
				Address: netip.MustParseAddr("10.0.0.10"),
				Status:  StatusAssigned,
				Binding: &Binding{CustomerID: input.CustomerID, ServiceID: input.ServiceID},
			}, nil
		},
	})

	ip, err := svc.AssignAddress(context.Background(), IPAddressID("ip-1"), AssignInput{CustomerID: 42, ServiceID: 7})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ip.Binding == nil || ip.Binding.CustomerID != 42 {
		t.Fatalf("unexpected binding: %+v", ip.Binding)
	}
}
