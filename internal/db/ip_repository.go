package db

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ispnetops/ipam/internal/domain"
)

const ipColumns = `ip.id, ip.subnet_id, ip.address, ip.status, ip.reserved_reason,
	ip.customer_id, ip.service_id, ip.assigned_at, ip.last_seen_at, ip.created_at, ip.updated_at,
	c.first_name, c.last_name, c.business_name`

const ipFrom = ` FROM ip_addresses ip LEFT JOIN customers c ON c.id = ip.customer_id `

type IPRepository struct {
	pool *pgxpool.Pool
}

func NewIPRepository(pool *pgxpool.Pool) *IPRepository {
	return &IPRepository{pool: pool}
}

func (r *IPRepository) List(ctx context.Context, filter domain.AddressFilter) ([]domain.IPAddress, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ipColumns+ipFrom+`
		WHERE ($1::bigint = 0 OR ip.subnet_id = $1)
		  AND ($2::text = '' OR ip.status = $2)
		  AND ($3::text = ''
		       OR host(ip.address) ILIKE '%' || $3 || '%'
		       OR c.business_name ILIKE '%' || $3 || '%'
		       OR (c.first_name || ' ' || c.last_name) ILIKE '%' || $3 || '%')
		ORDER BY ip.address`,
		filter.SubnetID, string(filter.Status), filter.Search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.IPAddress{}
	for rows.Next() {
		ip, err := scanIP(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ip)
	}
	return out, rows.Err()
}

func (r *IPRepository) FindByID(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
	rowID, err := parseAddressID(id)
	if err != nil {
		return domain.IPAddress{}, fmt.Errorf("%w: invalid ip id", domain.ErrInvalidInput)
	}

	row := r.pool.QueryRow(ctx, `SELECT `+ipColumns+ipFrom+`WHERE ip.id = $1`, rowID)
	ip, err := scanIP(row)
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

// ReplacePool swaps a subnet's address inventory inside one
// transaction. The subnet row is locked first so concurrent generation
// requests serialize, and a concurrent assign sees either the old pool
// or the new one in full.
func (r *IPRepository) ReplacePool(ctx context.Context, subnetID int64, regenerate bool, addrs []domain.PoolAddress) (int, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback(ctx)

	var lockedID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM subnets WHERE id = $1 FOR UPDATE`, subnetID).Scan(&lockedID); err != nil {
		if isNoRows(err) {
			return 0, false, domain.ErrNotFound
		}
		return 0, false, err
	}

	var existing int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM ip_addresses WHERE subnet_id = $1`, subnetID).Scan(&existing); err != nil {
		return 0, false, err
	}
	if existing > 0 && !regenerate {
		return 0, false, domain.ErrPoolExists
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ip_addresses WHERE subnet_id = $1`, subnetID); err != nil {
		return 0, false, err
	}

	copyRows := make([][]any, 0, len(addrs))
	for _, addr := range addrs {
		var reason any
		if addr.ReservedReason != "" {
			reason = addr.ReservedReason
		}
		copyRows = append(copyRows, []any{
			pgtype.UUID{Bytes: uuid.New(), Valid: true},
			subnetID,
			addr.Address,
			string(addr.Status),
			reason,
		})
	}

	inserted, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"ip_addresses"},
		[]string{"id", "subnet_id", "address", "status", "reserved_reason"},
		pgx.CopyFromRows(copyRows),
	)
	if err != nil {
		return 0, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, err
	}
	return int(inserted), existing > 0, nil
}

// Assign moves an address from available to assigned in one conditional
// update, so two concurrent assigns against the same row cannot both
// succeed.
func (r *IPRepository) Assign(ctx context.Context, id domain.IPAddressID, input domain.AssignInput) (domain.IPAddress, error) {
	rowID, err := parseAddressID(id)
	if err != nil {
		return domain.IPAddress{}, fmt.Errorf("%w: invalid ip id", domain.ErrInvalidInput)
	}

	row := r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE ip_addresses
			SET status = 'assigned', customer_id = $2, service_id = $3,
			    assigned_at = now(), last_seen_at = now(), updated_at = now()
			WHERE id = $1 AND status = 'available'
			RETURNING *
		)
		SELECT `+ipColumns+` FROM updated ip LEFT JOIN customers c ON c.id = ip.customer_id`,
		rowID, input.CustomerID, input.ServiceID,
	)

	ip, err := scanIP(row)
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, r.stateError(ctx, rowID)
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

// Release is the symmetric conditional update from assigned back to
// available, clearing the customer binding.
func (r *IPRepository) Release(ctx context.Context, id domain.IPAddressID) (domain.IPAddress, error) {
	rowID, err := parseAddressID(id)
	if err != nil {
		return domain.IPAddress{}, fmt.Errorf("%w: invalid ip id", domain.ErrInvalidInput)
	}

	row := r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE ip_addresses
			SET status = 'available', customer_id = NULL, service_id = NULL,
			    assigned_at = NULL, updated_at = now()
			WHERE id = $1 AND status = 'assigned'
			RETURNING *
		)
		SELECT `+ipColumns+` FROM updated ip LEFT JOIN customers c ON c.id = ip.customer_id`,
		rowID,
	)

	ip, err := scanIP(row)
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, r.stateError(ctx, rowID)
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

func (r *IPRepository) CountBySubnet(ctx context.Context, subnetID int64) (domain.AddressCounts, error) {
	var counts domain.AddressCounts
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'assigned'),
		       count(*) FILTER (WHERE status = 'reserved'),
		       count(*) FILTER (WHERE status = 'available')
		FROM ip_addresses
		WHERE subnet_id = $1`,
		subnetID,
	).Scan(&counts.Total, &counts.Assigned, &counts.Reserved, &counts.Available)
	if err != nil {
		return domain.AddressCounts{}, err
	}
	return counts, nil
}

// stateError distinguishes a missing row from one in the wrong state
// after a conditional update matched nothing.
func (r *IPRepository) stateError(ctx context.Context, rowID pgtype.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ip_addresses WHERE id = $1)`, rowID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidState
}

func scanIP(row pgx.Row) (domain.IPAddress, error) {
	var (
		ip           domain.IPAddress
		rowID        pgtype.UUID
		address      netip.Addr
		reason       *string
		customerID   *int64
		serviceID    *int64
		assignedAt   *time.Time
		lastSeenAt   *time.Time
		firstName    *string
		lastName     *string
		businessName *string
	)
	err := row.Scan(
		&rowID, &ip.SubnetID, &address, &ip.Status, &reason,
		&customerID, &serviceID, &assignedAt, &lastSeenAt, &ip.CreatedAt, &ip.UpdatedAt,
		&firstName, &lastName, &businessName,
	)
	if err != nil {
		return domain.IPAddress{}, err
	}

	ip.ID = domain.IPAddressID(rowID.String())
	ip.Address = address.Unmap()
	if reason != nil {
		ip.ReservedReason = *reason
	}
	if lastSeenAt != nil {
		ip.LastSeenAt = *lastSeenAt
	}
	if customerID != nil && serviceID != nil {
		binding := &domain.Binding{CustomerID: *customerID, ServiceID: *serviceID}
		if assignedAt != nil {
			binding.Since = *assignedAt
		}
		ip.Binding = binding
	}
	if firstName != nil || lastName != nil || businessName != nil {
		customer := &domain.CustomerRef{}
		if firstName != nil {
			customer.FirstName = *firstName
		}
		if lastName != nil {
			customer.LastName = *lastName
		}
		if businessName != nil {
			customer.BusinessName = *businessName
		}
		ip.Customer = customer
	}
	return ip, nil
}

func parseAddressID(id domain.IPAddressID) (pgtype.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return pgtype.UUID{}, err
	}

	var parsed pgtype.UUID
	copy(parsed.Bytes[:], u[:])
	parsed.Valid = true

	return parsed, nil
}
