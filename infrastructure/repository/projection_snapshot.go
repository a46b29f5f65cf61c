package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
	"github.com/vfg2006/brand-projection-api/internal/domain"
)

const projectionSnapshotsTable = "projection_snapshots"

var snapshotColumns = []string{
	"id",
	"taken_at",
	"brand_count",
	"total_revenue",
	"total_recurring_revenue",
	"total_launch_plan_revenue",
	"launch_plan_commission",
	"commission_rate",
	"ongoing_commission",
	"average_monthly_revenue",
	"peak_month",
	"peak_month_revenue",
}

//go:generate mockgen -source=projection_snapshot.go -destination=mocks/projection_snapshot_mock.go -package=mocks
type ProjectionSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.ProjectionSnapshot) error
	ListSnapshots(ctx context.Context, limit uint64) ([]*domain.ProjectionSnapshot, error)
}

type projectionSnapshotRepository struct {
	conn *database.Connection
}

func NewProjectionSnapshotRepository(conn *database.Connection) ProjectionSnapshotRepository {
	return &projectionSnapshotRepository{
		conn: conn,
	}
}

func (r *projectionSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.ProjectionSnapshot) error {
	if snapshot.TakenAt.IsZero() {
		snapshot.TakenAt = now()
	}

	query, args, err := r.conn.StatementBuilder().
		Insert(projectionSnapshotsTable).
		Columns(snapshotColumns...).
		Values(
			snapshot.ID,
			snapshot.TakenAt,
			snapshot.BrandCount,
			snapshot.TotalRevenue,
			snapshot.TotalRecurringRevenue,
			snapshot.TotalLaunchPlanRevenue,
			snapshot.LaunchPlanCommission,
			snapshot.CommissionRate,
			snapshot.OngoingCommission,
			snapshot.AverageMonthlyRevenue,
			snapshot.PeakMonth,
			snapshot.PeakMonthRevenue,
		).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir inserção de snapshot")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar snapshot de projeção")
	}

	return nil
}

// ListSnapshots retorna os snapshots mais recentes primeiro.
func (r *projectionSnapshotRepository) ListSnapshots(ctx context.Context, limit uint64) ([]*domain.ProjectionSnapshot, error) {
	builder := r.conn.StatementBuilder().
		Select(snapshotColumns...).
		From(projectionSnapshotsTable).
		OrderBy("taken_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de snapshots")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots")
	}
	defer rows.Close()

	snapshots := make([]*domain.ProjectionSnapshot, 0)
	for rows.Next() {
		var s domain.ProjectionSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.TakenAt,
			&s.BrandCount,
			&s.TotalRevenue,
			&s.TotalRecurringRevenue,
			&s.TotalLaunchPlanRevenue,
			&s.LaunchPlanCommission,
			&s.CommissionRate,
			&s.OngoingCommission,
			&s.AverageMonthlyRevenue,
			&s.PeakMonth,
			&s.PeakMonthRevenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler snapshot")
		}
		s.TakenAt = s.TakenAt.UTC()
		snapshots = append(snapshots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de snapshots")
	}

	return snapshots, nil
}
