package db

import (
	"context"
	"errors"
	"net/netip"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ispnetops/ipam/internal/domain"
)

const subnetColumns = `id, router_id, cidr, type, allocation_mode, name, description, gateway, created_at, updated_at`

type SubnetRepository struct {
	pool *pgxpool.Pool
}

func NewSubnetRepository(pool *pgxpool.Pool) *SubnetRepository {
	return &SubnetRepository{pool: pool}
}

func (r *SubnetRepository) List(ctx context.Context) ([]domain.Subnet, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+subnetColumns+` FROM subnets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Subnet{}
	for rows.Next() {
		subnet, err := scanSubnet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, subnet)
	}
	return out, rows.Err()
}

func (r *SubnetRepository) ListSummaries(ctx context.Context) ([]domain.SubnetSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.router_id, s.cidr, s.type, s.allocation_mode, s.name, s.description, s.gateway, s.created_at, s.updated_at,
		       count(ip.id),
		       count(*) FILTER (WHERE ip.status = 'assigned'),
		       count(*) FILTER (WHERE ip.status = 'reserved'),
		       count(*) FILTER (WHERE ip.status = 'available')
		FROM subnets s
		LEFT JOIN ip_addresses ip ON ip.subnet_id = s.id
		GROUP BY s.id
		ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SubnetSummary{}
	for rows.Next() {
		var (
			summary domain.SubnetSummary
			gateway *netip.Addr
		)
		err := rows.Scan(
			&summary.ID, &summary.RouterID, &summary.CIDR, &summary.Type, &summary.AllocationMode,
			&summary.Name, &summary.Description, &gateway, &summary.CreatedAt, &summary.UpdatedAt,
			&summary.Counts.Total, &summary.Counts.Assigned, &summary.Counts.Reserved, &summary.Counts.Available,
		)
		if err != nil {
			return nil, err
		}
		if gateway != nil {
			summary.Gateway = *gateway
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (r *SubnetRepository) FindByID(ctx context.Context, id int64) (domain.Subnet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+subnetColumns+` FROM subnets WHERE id = $1`, id)
	subnet, err := scanSubnet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) Create(ctx context.Context, record domain.SubnetRecord) (domain.Subnet, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO subnets (router_id, cidr, type, allocation_mode, name, description, gateway)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+subnetColumns,
		record.RouterID, record.CIDR, record.Type, record.AllocationMode,
		record.Name, record.Description, gatewayParam(record.Gateway),
	)

	subnet, err := scanSubnet(row)
	if err != nil {
		if isOverlapViolation(err) {
			return domain.Subnet{}, &domain.OverlapError{}
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) Update(ctx context.Context, id int64, record domain.SubnetRecord) (domain.Subnet, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE subnets
		SET router_id = $2, cidr = $3, type = $4, allocation_mode = $5,
		    name = $6, description = $7, gateway = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+subnetColumns,
		id, record.RouterID, record.CIDR, record.Type, record.AllocationMode,
		record.Name, record.Description, gatewayParam(record.Gateway),
	)

	subnet, err := scanSubnet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		if isOverlapViolation(err) {
			return domain.Subnet{}, &domain.OverlapError{}
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subnets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanSubnet(row pgx.Row) (domain.Subnet, error) {
	var (
		subnet  domain.Subnet
		gateway *netip.Addr
	)
	err := row.Scan(
		&subnet.ID, &subnet.RouterID, &subnet.CIDR, &subnet.Type, &subnet.AllocationMode,
		&subnet.Name, &subnet.Description, &gateway, &subnet.CreatedAt, &subnet.UpdatedAt,
	)
	if err != nil {
		return domain.Subnet{}, err
	}
	if gateway != nil {
		subnet.Gateway = *gateway
	}
	return subnet, nil
}

func gatewayParam(gateway netip.Addr) any {
	if !gateway.IsValid() {
		return nil
	}
	return gateway
}

// isOverlapViolation matches the gist exclusion constraint that guards
// the address space under concurrent creates.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "subnets_no_overlap"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
