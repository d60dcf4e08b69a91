package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ispnetops/ipam/internal/auth"
	"github.com/ispnetops/ipam/internal/domain"
)

// HealthChecker is what /readyz needs from the database pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Health        HealthChecker
	Service       domain.NetworkService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.NetworkService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		Health:        health,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)

	mux.HandleFunc("GET /api/v1/subnets", a.handleListSubnets)
	mux.HandleFunc("POST /api/v1/subnets", a.handleCreateSubnet)
	mux.HandleFunc("POST /api/v1/subnets/check-overlap", a.handleCheckOverlap)
	mux.HandleFunc("GET /api/v1/subnets/{id}", a.handleGetSubnet)
	mux.HandleFunc("PUT /api/v1/subnets/{id}", a.handleUpdateSubnet)
	mux.HandleFunc("DELETE /api/v1/subnets/{id}", a.handleDeleteSubnet)
	mux.HandleFunc("POST /api/v1/subnets/{id}/generate-ips", a.handleGenerateIPs)
	mux.HandleFunc("GET /api/v1/subnets/{id}/utilization", a.handleUtilization)

	mux.HandleFunc("GET /api/v1/ip-addresses", a.handleListAddresses)
	mux.HandleFunc("GET /api/v1/ip-addresses/{id}", a.handleGetAddress)
	mux.HandleFunc("POST /api/v1/ip-addresses/{id}/assign", a.handleAssignAddress)
	mux.HandleFunc("POST /api/v1/ip-addresses/{id}/release", a.handleReleaseAddress)

	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return a.authMiddleware(mux)
}
