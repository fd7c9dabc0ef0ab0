package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "campscan/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *dbm.Account) error
	FindByID(ctx context.Context, id string) (*dbm.Account, error)
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	List(ctx context.Context) ([]dbm.Account, error)
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*dbm.Account, error) {
	var account dbm.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) List(ctx context.Context) ([]dbm.Account, error) {
	var accounts []dbm.Account
	err := a.db.WithContext(ctx).Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) UpdateRole(ctx context.Context, id, role string) error {
	res := a.db.WithContext(ctx).Model(&dbm.Account{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *accountRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbm.Account{}).Error
}
