package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
)

type MetrajeRepository interface {
	Create(ctx context.Context, m *models.Metraje) error
	GetByID(ctx context.Context, id int64) (*models.Metraje, error)
	GetByArea(ctx context.Context, area string) (*models.Metraje, error)
	List(ctx context.Context) ([]*models.Metraje, error)
	Delete(ctx context.Context, id int64) error
}

type metrajeRepo struct {
	db DB
}

func NewMetrajeRepository(db DB) MetrajeRepository {
	return &metrajeRepo{db: db}
}

func (r *metrajeRepo) Create(ctx context.Context, m *models.Metraje) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO metrajes (area, perimetro, image) VALUES ($1, $2, $3) RETURNING id`,
		m.Area, m.Perimetro, m.Image,
	).Scan(&m.ID)
}

func (r *metrajeRepo) GetByID(ctx context.Context, id int64) (*models.Metraje, error) {
	return scanMetraje(r.db.QueryRow(ctx, baseSelectMetraje()+" WHERE id=$1", id))
}

func (r *metrajeRepo) GetByArea(ctx context.Context, area string) (*models.Metraje, error) {
	return scanMetraje(r.db.QueryRow(ctx, baseSelectMetraje()+" WHERE area=$1", area))
}

func (r *metrajeRepo) List(ctx context.Context) ([]*models.Metraje, error) {
	rows, err := r.db.Query(ctx, baseSelectMetraje()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Metraje
	for rows.Next() {
		m, err := scanMetraje(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *metrajeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM metrajes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectMetraje() string {
	return `SELECT id, area, perimetro, image FROM metrajes`
}

func scanMetraje(row pgx.Row) (*models.Metraje, error) {
	var m models.Metraje
	if err := row.Scan(&m.ID, &m.Area, &m.Perimetro, &m.Image); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
