// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantRepository implements repository.TenantRepository using GORM.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (repo *tenantRepository) List(ctx context.Context) ([]*entity.TenantSummary, error) {
	var rows []*model.TenantModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	tenants := make([]*entity.TenantSummary, 0, len(rows))
	for _, row := range rows {
		tenants = append(tenants, toTenantDomain(row))
	}

	return tenants, nil
}

func (repo *tenantRepository) FindBySubdomain(ctx context.Context, subdomain entity.TenantID) (*entity.TenantSummary, error) {
	var row model.TenantModel
	err := repo.db.WithContext(ctx).Where("subdomain = ?", subdomain.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	return toTenantDomain(&row), nil
}

// Create assigns an ID when the summary carries none.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.TenantSummary) error {
	row := fromTenantDomain(tenant)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapWriteError(err, repository.ErrTenantDuplicated, "failed to create tenant")
	}
	tenant.ID = row.ID.String()

	return nil
}

func toTenantDomain(row *model.TenantModel) *entity.TenantSummary {
	return &entity.TenantSummary{
		ID:        row.ID.String(),
		Subdomain: entity.TenantID(row.Subdomain),
		Name:      row.Name,
		City:      row.City,
		State:     row.State,
		Active:    row.Active,
	}
}

func fromTenantDomain(tenant *entity.TenantSummary) *model.TenantModel {
	id, err := uuid.Parse(tenant.ID)
	if err != nil {
		id = uuid.New()
	}

	return &model.TenantModel{
		ID:        id,
		Subdomain: tenant.Subdomain.String(),
		Name:      tenant.Name,
		City:      tenant.City,
		State:     tenant.State,
		Active:    tenant.Active,
	}
}
