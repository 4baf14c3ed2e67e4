package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-walking-app/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, name, email, password_hash, role,
	phone, address,
	created_at, updated_at
`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, email, password_hash, role,
			phone, address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Phone,
		u.Address,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, ErrNotFound
	}

	// El email ya viene normalizado (lowercase); la columna guarda la forma
	// normalizada, así el unique index es efectivamente case-insensitive.
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)

	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			email = $3,
			password_hash = $4,
			role = $5,
			phone = $6,
			address = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Phone,
		u.Address,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.Address,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
