package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *models.Categoria) error
	GetByID(ctx context.Context, id int64) (*models.Categoria, error)
	GetByNombre(ctx context.Context, nombre string) (*models.Categoria, error)
	List(ctx context.Context) ([]*models.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

type categoriaRepo struct {
	db DB
}

func NewCategoriaRepository(db DB) CategoriaRepository {
	return &categoriaRepo{db: db}
}

/* ---------- create ---------- */

func (r *categoriaRepo) Create(ctx context.Context, c *models.Categoria) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categorias (nombre) VALUES ($1) RETURNING id`,
		c.Nombre,
	).Scan(&c.ID)
}

/* ---------- reads ---------- */

func (r *categoriaRepo) GetByID(ctx context.Context, id int64) (*models.Categoria, error) {
	return r.scanCategoria(r.db.QueryRow(ctx, baseSelectCategoria()+" WHERE id=$1", id))
}

func (r *categoriaRepo) GetByNombre(ctx context.Context, nombre string) (*models.Categoria, error) {
	return r.scanCategoria(r.db.QueryRow(ctx, baseSelectCategoria()+" WHERE nombre=$1", nombre))
}

func (r *categoriaRepo) List(ctx context.Context) ([]*models.Categoria, error) {
	rows, err := r.db.Query(ctx, baseSelectCategoria()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Categoria
	for rows.Next() {
		c, err := r.scanCategoria(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

/* ---------- delete ---------- */

// Delete returns pgx.ErrNoRows when nothing matched.
func (r *categoriaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectCategoria() string {
	return `SELECT id, nombre FROM categorias`
}

func (r *categoriaRepo) scanCategoria(row pgx.Row) (*models.Categoria, error) {
	var c models.Categoria
	if err := row.Scan(&c.ID, &c.Nombre); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
