package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/ispnetops/ipam/internal/cidr"
	"github.com/ispnetops/ipam/internal/domain"
)

type stubNetworkService struct {
	listSubnetsFn    func(ctx context.Context) ([]domain.SubnetSummary, error)
	createSubnetFn   func(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error)
	getSubnetFn      func(ctx context.Context, id int64) (domain.Subnet, error)
	updateSubnetFn   func(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error)
	deleteSubnetFn   func(ctx context.Context, id int64) error
	checkOverlapFn   func(ctx context.Context, cidr string, excludeID int64) ([]domain.SubnetRef, error)
	generatePoolFn   func(ctx context.Context, subnetID int64, regenerate bool) (domain.PoolResult, error)
	listAddressesFn  func(ctx context.Context, filter domain.AddressFilter) ([]domain.IPAddress, error)
	getAddressFn     func(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error)
	assignAddressFn  func(ctx context.Context, id domain.IPAddressID, input domain.AssignInput) (domain.IPAddress, error)
	releaseAddressFn func(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error)
	utilizationFn    func(ctx context.Context, subnetID int64) (domain.Utilization, error)
}

func (s *stubNetworkService) ListSubnets(ctx context.Context) ([]domain.SubnetSummary, error) {
	return s.listSubnetsFn(ctx)
}

func (s *stubNetworkService) CreateSubnet(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
	return s.createSubnetFn(ctx, input)
}

func (s *stubNetworkService) GetSubnet(ctx context.Context, id int64) (domain.Subnet, error) {
	return s.getSubnetFn(ctx, id)
}

func (s *stubNetworkService) UpdateSubnet(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error) {
	return s.updateSubnetFn(ctx, id, input)
}

func (s *stubNetworkService) DeleteSubnet(ctx context.Context, id int64) error {
	return s.deleteSubnetFn(ctx, id)
}

func (s *stubNetworkService) CheckOverlap(ctx context.Context, cidr string, excludeID int64) ([]domain.SubnetRef, error) {
	return s.checkOverlapFn(ctx, cidr, excludeID)
}

func (s *stubNetworkService) GeneratePool(ctx context.Context, subnetID int64, regenerate bool) (domain.PoolResult, error) {
	return s.generatePoolFn(ctx, subnetID, regenerate)
}

func (s *stubNetworkService) ListAddresses(ctx context.Context, filter domain.AddressFilter) ([]domain.IPAddress, error) {
	return s.listAddressesFn(ctx, filter)
}

func (s *stubNetworkService) GetAddress(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
	return s.getAddressFn(ctx, id)
}

func (s *stubNetworkService) AssignAddress(ctx context.Context, id domain.IPAddressID, input domain.AssignInput) (domain.IPAddress, error) {
	return s.assignAddressFn(ctx, id, input)
}

func (s *stubNetworkService) ReleaseAddress(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
	return s.releaseAddressFn(ctx, id)
}

func (s *stubNetworkService) Utilization(ctx context.Context, subnetID int64) (domain.Utilization, error) {
	return s.utilizationFn(ctx, subnetID)
}

type stubHealthChecker struct {
	pingFn func(ctx context.Context) error
}

func (s stubHealthChecker) Ping(ctx context.Context) error {
	if s.pingFn == nil {
		return nil
	}
	return s.pingFn(ctx)
}

func newTestAPI(service domain.NetworkService) *API {
	return NewAPI(slog.New(slog.DiscardHandler), stubHealthChecker{}, service, nil)
}

func testSubnet() domain.Subnet {
	now := time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)
	return domain.Subnet{
		ID:             1,
		RouterID:       3,
		CIDR:           netip.MustParsePrefix("192.168.1.0/24"),
		Type:           domain.SubnetPrivate,
		AllocationMode: domain.AllocationStatic,
		Name:           "Office LAN",
		Gateway:        netip.MustParseAddr("192.168.1.1"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHandleReadyzReportsUnavailableDB(t *testing.T) {
	api := newTestAPI(&stubNetworkService{})
	api.Health = stubHealthChecker{pingFn: func(ctx context.Context) error {
		return errors.New("connection refused")
	}}

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestHandleListSubnetsIncludesCounts(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		listSubnetsFn: func(ctx context.Context) ([]domain.SubnetSummary, error) {
			return []domain.SubnetSummary{{
				Subnet: testSubnet(),
				Counts: domain.AddressCounts{Total: 256, Assigned: 12, Reserved: 2, Available: 242},
			}}, nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subnets", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	summaries := decodeBody[[]SubnetSummaryResponse](t, rec)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 subnet, got %d", len(summaries))
	}
	if summaries[0].CIDR != "192.168.1.0/24" {
		t.Fatalf("unexpected cidr: %s", summaries[0].CIDR)
	}
	if summaries[0].Available != 242 {
		t.Fatalf("unexpected available count: %d", summaries[0].Available)
	}
}

func TestHandleCreateSubnetReturnsCreated(t *testing.T) {
	var got domain.CreateSubnetInput
	api := newTestAPI(&stubNetworkService{
		createSubnetFn: func(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
			got = input
			return testSubnet(), nil
		},
	})

	body := strings.NewReader(`{"router_id":3,"cidr":"192.168.1.0/24","type":"private","name":"Office LAN"}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.CIDR != "192.168.1.0/24" || got.RouterID != 3 {
		t.Fatalf("unexpected input forwarded to service: %+v", got)
	}

	resp := decodeBody[SubnetResponse](t, rec)
	if resp.Gateway != "192.168.1.1" {
		t.Fatalf("unexpected gateway: %s", resp.Gateway)
	}
}

func TestHandleCreateSubnetAlignmentErrorCarriesSuggestion(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		createSubnetFn: func(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
			return domain.Subnet{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput,
				&cidr.AlignmentError{Input: "192.168.1.5/24", Suggested: "192.168.1.0/24"})
		},
	})

	body := strings.NewReader(`{"router_id":3,"cidr":"192.168.1.5/24"}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.SuggestedCIDR != "192.168.1.0/24" {
		t.Fatalf("expected suggested cidr, got %+v", resp)
	}
}

func TestHandleCreateSubnetOverlapListsConflicts(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		createSubnetFn: func(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
			return domain.Subnet{}, &domain.OverlapError{Conflicts: []domain.SubnetRef{
				{ID: 7, Name: "Office LAN", CIDR: "192.168.1.0/24"},
			}}
		},
	})

	body := strings.NewReader(`{"router_id":3,"cidr":"192.168.1.128/25"}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", body))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if len(resp.Subnets) != 1 || resp.Subnets[0].ID != 7 {
		t.Fatalf("expected conflicting subnet in response, got %+v", resp)
	}
}

func TestHandleGetSubnetNotFound(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		getSubnetFn: func(ctx context.Context, id int64) (domain.Subnet, error) {
			return domain.Subnet{}, domain.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subnets/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleGetSubnetRejectsNonNumericID(t *testing.T) {
	api := newTestAPI(&stubNetworkService{})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subnets/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleUpdateSubnetForwardsRegenerate(t *testing.T) {
	var got domain.UpdateSubnetInput
	api := newTestAPI(&stubNetworkService{
		updateSubnetFn: func(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error) {
			got = input
			return testSubnet(), nil
		},
	})

	body := strings.NewReader(`{"router_id":3,"cidr":"192.168.1.0/25","regenerate":true}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/subnets/1", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !got.Regenerate {
		t.Fatal("expected regenerate flag to reach the service")
	}
}

func TestHandleUpdateSubnetStalePoolConflicts(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		updateSubnetFn: func(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error) {
			return domain.Subnet{}, fmt.Errorf("%w: cidr change requires pool regeneration", domain.ErrPoolExists)
		},
	})

	body := strings.NewReader(`{"router_id":3,"cidr":"192.168.1.0/25"}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/subnets/1", body))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleGetAddress(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		getAddressFn: func(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
			if id != "550e8400-e29b-41d4-a716-446655440000" {
				t.Fatalf("unexpected id: %s", id)
			}
			return domain.IPAddress{
				ID:       id,
				SubnetID: 4,
				Address:  netip.MustParseAddr("192.168.1.10"),
				Status:   domain.StatusAvailable,
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ip-addresses/550e8400-e29b-41d4-a716-446655440000", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[IPResponse](t, rec)
	if resp.Address != "192.168.1.10" || resp.Status != "available" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleGetAddressNotFound(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		getAddressFn: func(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
			return domain.IPAddress{}, domain.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ip-addresses/550e8400-e29b-41d4-a716-446655440000", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDeleteSubnetReturnsNoContent(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		deleteSubnetFn: func(ctx context.Context, id int64) error {
			if id != 4 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/subnets/4", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestHandleCheckOverlapForwardsExclusion(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		checkOverlapFn: func(ctx context.Context, candidate string, excludeID int64) ([]domain.SubnetRef, error) {
			if candidate != "10.0.0.0/24" || excludeID != 7 {
				t.Fatalf("unexpected arguments: %s %d", candidate, excludeID)
			}
			return nil, nil
		},
	})

	body := strings.NewReader(`{"cidr":"10.0.0.0/24","exclude_id":7}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets/check-overlap", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[CheckOverlapResponse](t, rec)
	if resp.Overlaps {
		t.Fatalf("expected no overlap, got %+v", resp)
	}
}

func TestHandleGenerateIPsAcceptsEmptyBody(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		generatePoolFn: func(ctx context.Context, subnetID int64, regenerate bool) (domain.PoolResult, error) {
			if regenerate {
				t.Fatal("expected regenerate to default to false")
			}
			return domain.PoolResult{Count: 256, Reserved: 2, Available: 254}, nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets/1/generate-ips", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[GenerateIPsResponse](t, rec)
	if resp.Count != 256 || resp.Available != 254 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}

func TestHandleGenerateIPsExistingPoolConflicts(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		generatePoolFn: func(ctx context.Context, subnetID int64, regenerate bool) (domain.PoolResult, error) {
			return domain.PoolResult{}, domain.ErrPoolExists
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets/1/generate-ips", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleGenerateIPsForwardsRegenerate(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		generatePoolFn: func(ctx context.Context, subnetID int64, regenerate bool) (domain.PoolResult, error) {
			if !regenerate {
				t.Fatal("expected regenerate to be forwarded")
			}
			return domain.PoolResult{Count: 256, Reserved: 2, Available: 254, Regenerated: true}, nil
		},
	})

	body := strings.NewReader(`{"regenerate":true}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subnets/1/generate-ips", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody[GenerateIPsResponse](t, rec); !resp.Regenerated {
		t.Fatalf("expected regenerated flag, got %+v", resp)
	}
}

func TestHandleUtilization(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		utilizationFn: func(ctx context.Context, subnetID int64) (domain.Utilization, error) {
			return domain.Utilization{Total: 256, Assigned: 64, Free: 192, Percent: 25}, nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subnets/1/utilization", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[UtilizationResponse](t, rec)
	if resp.Percent != 25 || resp.Free != 192 {
		t.Fatalf("unexpected utilization: %+v", resp)
	}
}

func TestHandleListAddressesForwardsFilters(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		listAddressesFn: func(ctx context.Context, filter domain.AddressFilter) ([]domain.IPAddress, error) {
			if filter.SubnetID != 4 || filter.Status != domain.StatusAssigned || filter.Search != "lovelace" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ip-addresses?subnet_id=4&status=assigned&search=lovelace", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleListAddressesRejectsBadSubnetID(t *testing.T) {
	api := newTestAPI(&stubNetworkService{})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ip-addresses?subnet_id=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAssignAddressReturnsBinding(t *testing.T) {
	assignedAt := time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)
	api := newTestAPI(&stubNetworkService{
		assignAddressFn: func(ctx context.Context, id domain.IPAddressID, input domain.AssignInput) (domain.IPAddress, error) {
			if id != "550e8400-e29b-41d4-a716-446655440000" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.CustomerID != 42 || input.ServiceID != 7 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return domain.IPAddress{
				ID:       id,
				SubnetID: 4,
				Address:  netip.MustParseAddr("192.168.1.10"),
				Status:   domain.StatusAssigned,
				Binding:  &domain.Binding{CustomerID: 42, ServiceID: 7, Since: assignedAt},
				Customer: &domain.CustomerRef{FirstName: "Ada", LastName: "Lovelace"},
			}, nil
		},
	})

	body := strings.NewReader(`{"customer_id":42,"service_id":7}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ip-addresses/550e8400-e29b-41d4-a716-446655440000/assign", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[IPResponse](t, rec)
	if resp.Status != "assigned" || resp.CustomerID == nil || *resp.CustomerID != 42 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.FirstName != "Ada" {
		t.Fatalf("expected customer display fields, got %+v", resp)
	}
}

func TestHandleAssignAddressNotAvailableConflicts(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		assignAddressFn: func(ctx context.Context, id domain.IPAddressID, input domain.AssignInput) (domain.IPAddress, error) {
			return domain.IPAddress{}, fmt.Errorf("%w: address is not available", domain.ErrInvalidState)
		},
	})

	body := strings.NewReader(`{"customer_id":42,"service_id":7}`)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ip-addresses/550e8400-e29b-41d4-a716-446655440000/assign", body))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleReleaseAddressNotFound(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		releaseAddressFn: func(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
			return domain.IPAddress{}, domain.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ip-addresses/550e8400-e29b-41d4-a716-446655440000/release", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	api := newTestAPI(&stubNetworkService{
		listSubnetsFn: func(ctx context.Context) ([]domain.SubnetSummary, error) {
			return nil, errors.New("pq: relation does not exist")
		},
	})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subnets", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if strings.Contains(resp.Error, "relation") {
		t.Fatalf("internal error leaked to client: %q", resp.Error)
	}
}
