package postgres

import (
	"context"
	"strings"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) scoped(ctx context.Context, tenant entity.TenantID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("tenant = ?", tenant.String())
}

func (repo *accountRepository) List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Account, int, error) {
	page, count := paginate(repo.scoped(ctx, tenant), query, "name", "username", "email")

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count accounts")
	}

	var rows []*model.AccountModel
	if err := page.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toAccountDomain(row))
	}

	return accounts, int(total), nil
}

func (repo *accountRepository) FindByID(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Account, error) {
	return repo.first(ctx, tenant, "id = ?", id)
}

func (repo *accountRepository) FindByUsername(ctx context.Context, tenant entity.TenantID, username string) (*entity.Account, error) {
	return repo.first(ctx, tenant, "LOWER(username) = ?", strings.ToLower(username))
}

func (repo *accountRepository) first(ctx context.Context, tenant entity.TenantID, cond string, arg any) (*entity.Account, error) {
	var row model.AccountModel
	if err := repo.scoped(ctx, tenant).Where(cond, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&row), nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.db.WithContext(ctx).Create(fromAccountDomain(account)).Error; err != nil {
		return mapWriteError(err, repository.ErrAccountDuplicated, "failed to create account")
	}

	return nil
}

func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	row := fromAccountDomain(account)
	result := repo.scoped(ctx, account.Tenant).Where("id = ?", account.ID).Select("*").Omit("id", "tenant", "created_at").Updates(row)
	if result.Error != nil {
		return mapWriteError(result.Error, repository.ErrAccountDuplicated, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("tenant = ? AND id = ?", tenant.String(), id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(row *model.AccountModel) *entity.Account {
	var codes []string
	if row.Permissions != "" {
		codes = strings.Split(row.Permissions, ",")
	}

	return &entity.Account{
		ID:           row.ID,
		Tenant:       entity.TenantID(row.Tenant),
		Name:         row.Name,
		Username:     row.Username,
		Email:        row.Email,
		Role:         entity.Role(row.Role),
		Permissions:  entity.PermissionsFromStrings(codes),
		Blocked:      row.Blocked,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Tenant:       account.Tenant.String(),
		Name:         account.Name,
		Username:     account.Username,
		Email:        account.Email,
		Role:         account.Role.String(),
		Permissions:  strings.Join(account.Permissions.ToStrings(), ","),
		Blocked:      account.Blocked,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
