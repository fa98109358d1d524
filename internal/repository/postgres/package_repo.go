package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studioportal/internal/domain"
	"studioportal/internal/port"
)

type packageRepo struct {
	db *sqlx.DB
}

// NewPackageRepo creates a new PostgreSQL-backed PackageRepository.
func NewPackageRepo(db *sqlx.DB) port.PackageRepository {
	return &packageRepo{db: db}
}

func (r *packageRepo) Create(ctx context.Context, p *domain.Package) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Items == nil {
		p.Items = domain.PackageItems{}
	}

	query := `INSERT INTO packages (id, name, description, tag_id, pdf_path, price, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.TagID, p.PDFPath, p.Price, p.Items, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("packageRepo.Create: %w", err)
	}
	return nil
}

func (r *packageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	var p domain.Package
	err := r.db.GetContext(ctx, &p, "SELECT * FROM packages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("packageRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *packageRepo) List(ctx context.Context, offset, limit int) ([]domain.Package, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM packages"); err != nil {
		return nil, 0, fmt.Errorf("packageRepo.List count: %w", err)
	}

	var packages []domain.Package
	err := r.db.SelectContext(ctx, &packages,
		"SELECT * FROM packages ORDER BY name ASC, created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("packageRepo.List: %w", err)
	}
	return packages, total, nil
}

func (r *packageRepo) Update(ctx context.Context, p *domain.Package) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE packages SET name = $1, description = $2, tag_id = $3, pdf_path = $4,
		 price = $5, items = $6, updated_at = $7
		 WHERE id = $8`,
		p.Name, p.Description, p.TagID, p.PDFPath, p.Price, p.Items, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("packageRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *packageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM packages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("packageRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}
