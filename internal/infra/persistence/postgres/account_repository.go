// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"inspection/internal/domain/entity"
	"inspection/internal/domain/repository"
	"inspection/internal/infra/persistence/model"

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

// FindByHandle retrieves an account by handle with its roles and device binding.
func (repo *accountRepository) FindByHandle(ctx context.Context, handle string) (*entity.Account, error) {
	return repo.findOne(ctx, "handle = ?", handle)
}

// FindByID retrieves an account by identity with its roles and device binding.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Preload("DeviceBinding").
		Where(query, arg).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// FindRoles loads the role set of an account. An account without roles yields an empty, loaded set.
func (repo *accountRepository) FindRoles(ctx context.Context, id uuid.UUID) (entity.Roles, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Model(&model.AccountRoleModel{}).
		Where("account_id = ?", id).
		Pluck("role", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account roles")
	}

	return entity.RolesFromStrings(names), nil
}

// RecordSession overwrites the last-session columns.
func (repo *accountRepository) RecordSession(ctx context.Context, id uuid.UUID, meta entity.SessionMeta) error {
	at := meta.At
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_session_at":     &at,
			"last_session_origin": meta.Origin,
			"last_session_client": meta.ClientDescriptor,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	roleNames := make([]string, len(m.Roles))
	for i, r := range m.Roles {
		roleNames[i] = r.Role
	}

	account := &entity.Account{
		ID:           m.ID,
		Handle:       m.Handle,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		Roles:        entity.RolesFromStrings(roleNames),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.DeviceBinding != nil {
		account.DeviceBinding = &entity.DeviceBinding{
			DeviceID:  m.DeviceBinding.DeviceID,
			Platform:  entity.Platform(m.DeviceBinding.Platform),
			CreatedAt: m.DeviceBinding.CreatedAt,
		}
	}

	if m.LastSessionAt != nil {
		account.LastSession = &entity.SessionMeta{
			At:               *m.LastSessionAt,
			Origin:           m.LastSessionOrigin,
			ClientDescriptor: m.LastSessionClient,
		}
	}

	return account
}
