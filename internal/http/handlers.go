package http

import (
	"errors"
	"net/http"

	"github.com/ispnetops/ipam/internal/cidr"
	"github.com/ispnetops/ipam/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List subnets with pool counts
// @Tags subnets
// @Produce json
// @Success 200 {array} SubnetSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets [get]
func (a *API) handleListSubnets(w http.ResponseWriter, r *http.Request) {
	summaries, err := a.Service.ListSubnets(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, summariesToResponse(summaries))
}

// @Summary Create subnet
// @Description Validates the CIDR, rejects overlaps with existing subnets, then persists.
// @Tags subnets
// @Accept json
// @Produce json
// @Param subnet body CreateSubnetRequest true "Subnet payload"
// @Success 201 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse "Validation failure; alignment errors carry suggested_cidr"
// @Failure 409 {object} ErrorResponse "Overlap with existing subnets"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets [post]
func (a *API) handleCreateSubnet(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	subnet, err := a.Service.CreateSubnet(r.Context(), domain.CreateSubnetInput{
		RouterID:       req.RouterID,
		CIDR:           req.CIDR,
		Type:           req.Type,
		AllocationMode: req.AllocationMode,
		Name:           req.Name,
		Description:    req.Description,
		Gateway:        req.Gateway,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, subnetToResponse(subnet))
}

// @Summary Get subnet by ID
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [get]
func (a *API) handleGetSubnet(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	subnet, err := a.Service.GetSubnet(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, subnetToResponse(subnet))
}

// @Summary Update subnet
// @Description Runs the same validation pipeline as create, ignoring the subnet itself in the overlap check. A CIDR change on a subnet with a generated pool is refused with 409 unless regenerate is set, in which case the pool is rebuilt and existing assignments are dropped.
// @Tags subnets
// @Accept json
// @Produce json
// @Param id path int true "Subnet ID"
// @Param subnet body UpdateSubnetRequest true "Subnet payload"
// @Success 200 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [put]
func (a *API) handleUpdateSubnet(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	req, err := decode[UpdateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	subnet, err := a.Service.UpdateSubnet(r.Context(), id, domain.UpdateSubnetInput{
		RouterID:       req.RouterID,
		CIDR:           req.CIDR,
		Type:           req.Type,
		AllocationMode: req.AllocationMode,
		Name:           req.Name,
		Description:    req.Description,
		Gateway:        req.Gateway,
		Regenerate:     req.Regenerate,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, subnetToResponse(subnet))
}

// @Summary Delete subnet
// @Description Deletes the subnet and cascades deletion of its address pool.
// @Tags subnets
// @Param id path int true "Subnet ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [delete]
func (a *API) handleDeleteSubnet(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Service.DeleteSubnet(r.Context(), id); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Check a candidate CIDR for overlaps
// @Description Interactive pre-submit validation; does not persist anything.
// @Tags subnets
// @Accept json
// @Produce json
// @Param payload body CheckOverlapRequest true "Candidate CIDR"
// @Success 200 {object} CheckOverlapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/check-overlap [post]
func (a *API) handleCheckOverlap(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CheckOverlapRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	conflicts, err := a.Service.CheckOverlap(r.Context(), req.CIDR, req.ExcludeID)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, CheckOverlapResponse{
		Overlaps: len(conflicts) > 0,
		Subnets:  refsToResponse(conflicts),
	})
}

// @Summary Generate the subnet's address pool
// @Description Builds the full address inventory. Refused with 409 when a pool exists unless regenerate is set; regeneration deletes all rows including assignments.
// @Tags subnets
// @Accept json
// @Produce json
// @Param id path int true "Subnet ID"
// @Param payload body GenerateIPsRequest false "Regeneration flag"
// @Success 200 {object} GenerateIPsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Pool already exists and regenerate not set"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id}/generate-ips [post]
func (a *API) handleGenerateIPs(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	var req GenerateIPsRequest
	if r.ContentLength > 0 {
		req, err = decode[GenerateIPsRequest](r)
		defer r.Body.Close()
		if err != nil {
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
			return
		}
	}

	result, err := a.Service.GeneratePool(r.Context(), id, req.Regenerate)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, GenerateIPsResponse{
		Count:       result.Count,
		Reserved:    result.Reserved,
		Available:   result.Available,
		Regenerated: result.Regenerated,
	})
}

// @Summary Subnet utilization
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} UtilizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id}/utilization [get]
func (a *API) handleUtilization(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	utilization, err := a.Service.Utilization(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, UtilizationResponse(utilization))
}

// @Summary List addresses
// @Description Filter by subnet, status, or a case-insensitive search over the address text and customer display name.
// @Tags addresses
// @Produce json
// @Param subnet_id query int false "Subnet ID"
// @Param status query string false "available | assigned | reserved"
// @Param search query string false "Substring match"
// @Success 200 {array} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ip-addresses [get]
func (a *API) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	filter := domain.AddressFilter{
		Status: domain.AddressStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("subnet_id"); raw != "" {
		id, err := parseQueryInt64(raw)
		if err != nil {
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
			return
		}
		filter.SubnetID = id
	}

	ips, err := a.Service.ListAddresses(r.Context(), filter)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(ips))
}

// @Summary Get one address
// @Tags addresses
// @Produce json
// @Param id path string true "Address UUID"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ip-addresses/{id} [get]
func (a *API) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	ip, err := a.Service.GetAddress(r.Context(), domain.IPAddressID(r.PathValue("id")))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

// @Summary Assign an address to a customer service
// @Description Only available addresses can be assigned; a stale view yields 409.
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address UUID"
// @Param payload body AssignRequest true "Customer binding"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Address not available"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ip-addresses/{id}/assign [post]
func (a *API) handleAssignAddress(w http.ResponseWriter, r *http.Request) {
	req, err := decode[AssignRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	ip, err := a.Service.AssignAddress(r.Context(), domain.IPAddressID(r.PathValue("id")), domain.AssignInput{
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

// @Summary Release an assigned address
// @Tags addresses
// @Produce json
// @Param id path string true "Address UUID"
// @Success 200 {object} IPResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Address not assigned"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ip-addresses/{id}/release [post]
func (a *API) handleReleaseAddress(w http.ResponseWriter, r *http.Request) {
	ip, err := a.Service.ReleaseAddress(r.Context(), domain.IPAddressID(r.PathValue("id")))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

// respondError is the single place translating engine errors to HTTP
// statuses. Validation-class errors surface their message verbatim;
// they are user-correctable.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		alignErr   *cidr.AlignmentError
		overlapErr *domain.OverlapError
	)
	switch {
	case errors.As(err, &alignErr):
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{
			Error:         alignErr.Error(),
			SuggestedCIDR: alignErr.Suggested,
		})
	case errors.As(err, &overlapErr):
		a.respond(w, r, http.StatusConflict, ErrorResponse{
			Error:   overlapErr.Error(),
			Subnets: refsToResponse(overlapErr.Conflicts),
		})
	case errors.Is(err, domain.ErrPoolExists):
		a.respond(w, r, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		a.respond(w, r, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		a.respond(w, r, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		a.Logger.ErrorContext(r.Context(), "unhandled error", "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
