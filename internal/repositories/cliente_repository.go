package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type ClienteRepository interface {
	// CreateForLocal inserts the cliente and links localID to it in one
	// transaction. Returns pgx.ErrNoRows if the local does not exist and
	// utils.ErrConflict if it is already linked to a cliente.
	CreateForLocal(ctx context.Context, c *models.Cliente, localID int64) error

	GetByID(ctx context.Context, id int64) (*models.Cliente, error)
	List(ctx context.Context) ([]*models.Cliente, error)

	UpdateIfVersion(ctx context.Context, c *models.Cliente, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Cliente) error) error
	Delete(ctx context.Context, id int64) error
}

type clienteRepo struct {
	*BaseVersionedRepo[*models.Cliente]
	db DB
}

func NewClienteRepository(db DB) ClienteRepository {
	r := &clienteRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectCliente()+" WHERE id=$1", scanCliente)
	return r
}

/* ---------- create ---------- */

func (r *clienteRepo) CreateForLocal(ctx context.Context, c *models.Cliente, localID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// cliente_id is re-read under the row lock so concurrent creates for
	// the same local serialize here.
	var current *int64
	if err := tx.QueryRow(ctx,
		`SELECT cliente_id FROM locales WHERE id=$1 FOR UPDATE`, localID,
	).Scan(&current); err != nil {
		return err
	}
	if current != nil {
		return fmt.Errorf("local %d is linked to cliente %d: %w", localID, *current, utils.ErrConflict)
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO clientes (
			nombres_cliente, apellidos_cliente, dni_cliente, ruc_cliente, f_nacimiento_cliente,
			ocupacion_cliente, phone_cliente, direccion_cliente, mail_cliente,
			nombres_copropietario, apellidos_copropietario, dni_copropietario,
			phone_copropietario, mail_copropietario, parentesco_copropietario,
			nombres_conyuge, dni_conyuge,
			metodo_separacion, moneda, numero_operacion, fecha_plazo, monto_arras,
			fecha_registro, updated_at, row_version
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,
			NOW(), NOW(), 1
		)
		RETURNING id, fecha_registro, updated_at, row_version
	`, clienteArgs(c)...,
	).Scan(&c.ID, &c.FechaRegistro, &c.UpdatedAt, &c.RowVersion); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE locales SET cliente_id=$1, updated_at=NOW(), row_version=row_version+1 WHERE id=$2`,
		c.ID, localID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

/* ---------- reads ---------- */

func (r *clienteRepo) List(ctx context.Context) ([]*models.Cliente, error) {
	rows, err := r.db.Query(ctx, baseSelectCliente()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

/* ---------- update / delete ---------- */

func (r *clienteRepo) UpdateIfVersion(ctx context.Context, c *models.Cliente, expected int64) (pgconn.CommandTag, error) {
	args := append(clienteArgs(c), c.ID, expected)
	return r.db.Exec(ctx, `
		UPDATE clientes SET
			nombres_cliente=$1, apellidos_cliente=$2, dni_cliente=$3, ruc_cliente=$4,
			f_nacimiento_cliente=$5, ocupacion_cliente=$6, phone_cliente=$7,
			direccion_cliente=$8, mail_cliente=$9,
			nombres_copropietario=$10, apellidos_copropietario=$11, dni_copropietario=$12,
			phone_copropietario=$13, mail_copropietario=$14, parentesco_copropietario=$15,
			nombres_conyuge=$16, dni_conyuge=$17,
			metodo_separacion=$18, moneda=$19, numero_operacion=$20, fecha_plazo=$21,
			monto_arras=$22, updated_at=NOW(), row_version=row_version+1
		WHERE id=$23 AND row_version=$24
	`, args...)
}

func (r *clienteRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Cliente) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id, mutate, r.UpdateIfVersion)
}

// Delete removes the cliente; linked locales are released by the
// ON DELETE SET NULL foreign key.
func (r *clienteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func clienteArgs(c *models.Cliente) []any {
	return []any{
		c.NombresCliente, c.ApellidosCliente, c.DNICliente, c.RUCCliente, c.FNacimientoCliente,
		c.OcupacionCliente, c.PhoneCliente, c.DireccionCliente, c.MailCliente,
		c.NombresCopropietario, c.ApellidosCopropietario, c.DNICopropietario,
		c.PhoneCopropietario, c.MailCopropietario, c.ParentescoCopropietario,
		c.NombresConyuge, c.DNIConyuge,
		string(c.MetodoSeparacion), string(c.Moneda), c.NumeroOperacion, c.FechaPlazo, c.MontoArras,
	}
}

func baseSelectCliente() string {
	return `
		SELECT id, nombres_cliente, apellidos_cliente, dni_cliente, ruc_cliente,
		       f_nacimiento_cliente, ocupacion_cliente, phone_cliente, direccion_cliente, mail_cliente,
		       nombres_copropietario, apellidos_copropietario, dni_copropietario,
		       phone_copropietario, mail_copropietario, parentesco_copropietario,
		       nombres_conyuge, dni_conyuge,
		       metodo_separacion, moneda, numero_operacion, fecha_plazo, monto_arras,
		       fecha_registro, updated_at, row_version
		FROM clientes`
}

func scanCliente(row pgx.Row) (*models.Cliente, error) {
	var (
		c              models.Cliente
		metodo, moneda string
	)
	if err := row.Scan(
		&c.ID, &c.NombresCliente, &c.ApellidosCliente, &c.DNICliente, &c.RUCCliente,
		&c.FNacimientoCliente, &c.OcupacionCliente, &c.PhoneCliente, &c.DireccionCliente, &c.MailCliente,
		&c.NombresCopropietario, &c.ApellidosCopropietario, &c.DNICopropietario,
		&c.PhoneCopropietario, &c.MailCopropietario, &c.ParentescoCopropietario,
		&c.NombresConyuge, &c.DNIConyuge,
		&metodo, &moneda, &c.NumeroOperacion, &c.FechaPlazo, &c.MontoArras,
		&c.FechaRegistro, &c.UpdatedAt, &c.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.MetodoSeparacion = models.MetodoSeparacion(metodo)
	c.Moneda = models.Moneda(moneda)
	return &c, nil
}
