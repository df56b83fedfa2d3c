package repository

import (
	"context"
	"errors"
	"fmt"

	"org-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrgRepo реализует репозиторий организаций на базе PostgreSQL.
type OrgRepo struct {
	db *Postgres
}

// NewOrgRepo создаёт новый экземпляр OrgRepo c переданным подключением к PostgreSQL.
func NewOrgRepo(db *Postgres) *OrgRepo {
	return &OrgRepo{db: db}
}

// GetByID возвращает организацию по идентификатору.
// Если организация не найдена, возвращает ErrOrganizationNotFound.
func (r *OrgRepo) GetByID(ctx context.Context, orgID string) (model.Organization, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, name, address, created_at
FROM organizations
WHERE id = $1
`, orgID)

	var o model.Organization
	if err := row.Scan(&o.OrganizationID, &o.Name, &o.Address, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Organization{}, ErrOrganizationNotFound
		}
		return model.Organization{}, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}
