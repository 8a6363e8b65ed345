package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
)

type ZonaRepository interface {
	Create(ctx context.Context, z *models.Zona) error
	GetByID(ctx context.Context, id int64) (*models.Zona, error)
	GetByCodigo(ctx context.Context, codigo string) (*models.Zona, error)
	List(ctx context.Context) ([]*models.Zona, error)

	UpdateIfVersion(ctx context.Context, z *models.Zona, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Zona) error) error
	Delete(ctx context.Context, id int64) error
}

type zonaRepo struct {
	*BaseVersionedRepo[*models.Zona]
	db DB
}

func NewZonaRepository(db DB) ZonaRepository {
	r := &zonaRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectZona()+" WHERE id=$1", scanZona)
	return r
}

/* ---------- create ---------- */

func (r *zonaRepo) Create(ctx context.Context, z *models.Zona) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO zonas (categoria_nombre, codigo, linea_base, tiene_subniveles, created_at, updated_at, row_version)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), 1)
		RETURNING id, created_at, updated_at, row_version
	`, z.CategoriaNombre, z.Codigo, lineaBaseArg(z.LineaBase), z.TieneSubniveles,
	).Scan(&z.ID, &z.CreatedAt, &z.UpdatedAt, &z.RowVersion)
}

/* ---------- reads ---------- */

func (r *zonaRepo) GetByCodigo(ctx context.Context, codigo string) (*models.Zona, error) {
	return scanZona(r.db.QueryRow(ctx, baseSelectZona()+" WHERE codigo=$1", codigo))
}

func (r *zonaRepo) List(ctx context.Context) ([]*models.Zona, error) {
	rows, err := r.db.Query(ctx, baseSelectZona()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Zona
	for rows.Next() {
		z, err := scanZona(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

/* ---------- update / delete ---------- */

func (r *zonaRepo) UpdateIfVersion(ctx context.Context, z *models.Zona, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE zonas
		SET categoria_nombre=$1, codigo=$2, linea_base=$3, tiene_subniveles=$4,
		    updated_at=NOW(), row_version=row_version+1
		WHERE id=$5 AND row_version=$6
	`, z.CategoriaNombre, z.Codigo, lineaBaseArg(z.LineaBase), z.TieneSubniveles, z.ID, expected)
}

func (r *zonaRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Zona) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id, mutate, r.UpdateIfVersion)
}

func (r *zonaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM zonas WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectZona() string {
	return `
		SELECT id, categoria_nombre, codigo, linea_base, tiene_subniveles,
		       created_at, updated_at, row_version
		FROM zonas`
}

func scanZona(row pgx.Row) (*models.Zona, error) {
	var (
		z     models.Zona
		linea pgtype.Text
	)
	if err := row.Scan(
		&z.ID, &z.CategoriaNombre, &z.Codigo, &linea, &z.TieneSubniveles,
		&z.CreatedAt, &z.UpdatedAt, &z.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	z.LineaBase = lineaBaseFromDB(linea)
	return &z, nil
}

func lineaBaseArg(lb *models.LineaBase) *string {
	if lb == nil {
		return nil
	}
	s := string(*lb)
	return &s
}

func lineaBaseFromDB(t pgtype.Text) *models.LineaBase {
	if t.Status != pgtype.Present {
		return nil
	}
	lb := models.LineaBase(t.String)
	return &lb
}
