package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-walking-app/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, owner_id, name, breed, age,
	walking_instructions, emergency_contact, medical_notes,
	is_active, created_at, updated_at
`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, owner_id, name, breed, age,
			walking_instructions, emergency_contact, medical_notes,
			is_active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		d.ID,
		d.OwnerID,
		d.Name,
		d.Breed,
		d.Age,
		d.WalkingInstructions,
		d.EmergencyContact,
		d.MedicalNotes,
		d.IsActive,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) FindOne(ctx context.Context, f dogs.Filter) (dogs.Dog, error) {
	where, args := buildWhere(f)
	if where == "" {
		return dogs.Dog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE `+where+`
	`, args...)

	return scanDog(row)
}

func (r *DogsRepo) FindMany(ctx context.Context, f dogs.Filter) ([]dogs.Dog, error) {
	where, args := buildWhere(f)
	query := `SELECT ` + dogColumns + ` FROM dogs`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

// UpdateMatching es un único UPDATE ... WHERE <filtro> RETURNING: el filtro
// de autorización y la mutación viajan en la misma sentencia, atómica en
// Postgres. Cero filas => ErrNotFound.
func (r *DogsRepo) UpdateMatching(ctx context.Context, f dogs.Filter, p dogs.Patch) (dogs.Dog, error) {
	where, args := buildWhere(f)
	if where == "" {
		// Filtro sin restricción: nunca debería llegar desde el core.
		return dogs.Dog{}, ErrNotFound
	}

	set := make([]string, 0, 8)
	next := len(args) + 1

	addSet := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, v)
		next++
	}

	if p.Name != nil {
		addSet("name", *p.Name)
	}
	if p.Breed != nil {
		addSet("breed", *p.Breed)
	}
	if p.Age != nil {
		addSet("age", *p.Age)
	}
	if p.WalkingInstructions != nil {
		addSet("walking_instructions", *p.WalkingInstructions)
	}
	if p.EmergencyContact != nil {
		addSet("emergency_contact", *p.EmergencyContact)
	}
	if p.MedicalNotes != nil {
		addSet("medical_notes", *p.MedicalNotes)
	}
	if p.IsActive != nil {
		addSet("is_active", *p.IsActive)
	}
	if !p.UpdatedAt.IsZero() {
		addSet("updated_at", p.UpdatedAt)
	}

	if len(set) == 0 {
		// Patch vacío: devolvemos la fila que matchea, sin tocarla.
		return r.FindOne(ctx, f)
	}

	query := `
		UPDATE dogs
		SET ` + strings.Join(set, ", ") + `
		WHERE ` + where + `
		RETURNING ` + dogColumns

	return scanDog(r.db.QueryRowContext(ctx, query, args...))
}

func buildWhere(f dogs.Filter) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.ID != "" {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if f.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}

	return strings.Join(conds, " AND "), args
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	if err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Name,
		&d.Breed,
		&d.Age,
		&d.WalkingInstructions,
		&d.EmergencyContact,
		&d.MedicalNotes,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}
