package auth

import (
	"context"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Account, error) {
	var account model.Account
	err := db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) IsExist(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Account{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountRepository) Create(ctx context.Context, db *gorm.DB, account *model.Account) error {
	return db.WithContext(ctx).Create(account).Error
}
