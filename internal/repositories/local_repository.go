package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
)

/* ───────────── public interface ───────────── */

type LocalRepository interface {
	Create(ctx context.Context, l *models.Local) error

	GetByID(ctx context.Context, id int64) (*models.Local, error)
	List(ctx context.Context) ([]*models.Local, error)
	ListSubniveles(ctx context.Context, parentID int64) ([]*models.Local, error)
	ListByClienteID(ctx context.Context, clienteID int64) ([]*models.Local, error)

	// FetchUnitsByZoneCodes returns every local whose zona code is in
	// codes, joined with zona and metraje, ordered by id. An empty codes
	// slice returns nil without touching the database.
	FetchUnitsByZoneCodes(ctx context.Context, codes []string) ([]*models.Local, error)

	UpdateIfVersion(ctx context.Context, l *models.Local, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Local) error) error
	AssignCliente(ctx context.Context, localID int64, clienteID *int64) error
	Delete(ctx context.Context, id int64) error
}

/* ───────────── implementation ───────────── */

type localRepo struct {
	*BaseVersionedRepo[*models.Local]
	db DB
}

func NewLocalRepository(db DB) LocalRepository {
	r := &localRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectLocal()+" WHERE l.id=$1", scanLocal)
	return r
}

/* ---------- create ---------- */

func (r *localRepo) Create(ctx context.Context, l *models.Local) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO locales (
			zona_id, metraje_id, estado, precio_base, tipo,
			subnivel_de_id, cliente_id, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
		RETURNING id, created_at, updated_at, row_version
	`, l.ZonaID, l.MetrajeID, string(l.Estado), l.PrecioBase, string(l.Tipo), l.SubnivelDeID, l.ClienteID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.RowVersion)
}

/* ---------- reads ---------- */

func (r *localRepo) List(ctx context.Context) ([]*models.Local, error) {
	return r.queryLocals(ctx, baseSelectLocal()+" ORDER BY l.id")
}

func (r *localRepo) ListSubniveles(ctx context.Context, parentID int64) ([]*models.Local, error) {
	return r.queryLocals(ctx, baseSelectLocal()+" WHERE l.subnivel_de_id=$1 ORDER BY l.id", parentID)
}

func (r *localRepo) ListByClienteID(ctx context.Context, clienteID int64) ([]*models.Local, error) {
	return r.queryLocals(ctx, baseSelectLocal()+" WHERE l.cliente_id=$1 ORDER BY l.id", clienteID)
}

func (r *localRepo) FetchUnitsByZoneCodes(ctx context.Context, codes []string) ([]*models.Local, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	return r.queryLocals(ctx, baseSelectLocal()+" WHERE z.codigo = ANY($1) ORDER BY l.id", codes)
}

/* ---------- update / delete ---------- */

func (r *localRepo) UpdateIfVersion(ctx context.Context, l *models.Local, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE locales
		SET zona_id=$1, metraje_id=$2, estado=$3, precio_base=$4, tipo=$5,
		    subnivel_de_id=$6, cliente_id=$7, updated_at=NOW(), row_version=row_version+1
		WHERE id=$8 AND row_version=$9
	`, l.ZonaID, l.MetrajeID, string(l.Estado), l.PrecioBase, string(l.Tipo),
		l.SubnivelDeID, l.ClienteID, l.ID, expected)
}

func (r *localRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Local) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id, mutate, r.UpdateIfVersion)
}

// AssignCliente links (or with nil, unlinks) a local to a purchase record.
func (r *localRepo) AssignCliente(ctx context.Context, localID int64, clienteID *int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locales
		SET cliente_id=$1, updated_at=NOW(), row_version=row_version+1
		WHERE id=$2
	`, clienteID, localID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *localRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locales WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectLocal() string {
	return `
		SELECT l.id, l.zona_id, l.metraje_id, l.estado, l.precio_base, l.tipo,
		       l.subnivel_de_id, l.cliente_id, l.created_at, l.updated_at, l.row_version,
		       z.id, z.categoria_nombre, z.codigo, z.linea_base, z.tiene_subniveles,
		       z.created_at, z.updated_at, z.row_version,
		       m.id, m.area, m.perimetro, m.image
		FROM locales l
		JOIN zonas z    ON z.id = l.zona_id
		JOIN metrajes m ON m.id = l.metraje_id`
}

func (r *localRepo) queryLocals(ctx context.Context, sql string, args ...any) ([]*models.Local, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLocals(rows)
}

func scanLocal(row pgx.Row) (*models.Local, error) {
	var (
		l            models.Local
		z            models.Zona
		m            models.Metraje
		estado, tipo string
		linea        pgtype.Text
	)
	if err := row.Scan(
		&l.ID, &l.ZonaID, &l.MetrajeID, &estado, &l.PrecioBase, &tipo,
		&l.SubnivelDeID, &l.ClienteID, &l.CreatedAt, &l.UpdatedAt, &l.RowVersion,
		&z.ID, &z.CategoriaNombre, &z.Codigo, &linea, &z.TieneSubniveles,
		&z.CreatedAt, &z.UpdatedAt, &z.RowVersion,
		&m.ID, &m.Area, &m.Perimetro, &m.Image,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	l.Estado = models.EstadoLocal(estado)
	l.Tipo = models.TipoLocal(tipo)
	z.LineaBase = lineaBaseFromDB(linea)
	l.Zona = &z
	l.Metraje = &m
	return &l, nil
}

func scanLocals(rows pgx.Rows) ([]*models.Local, error) {
	var out []*models.Local
	for rows.Next() {
		l, err := scanLocal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
