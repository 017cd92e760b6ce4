package fee

import (
	"context"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

type FeeRepository struct{}

func NewFeeRepository() *FeeRepository {
	return &FeeRepository{}
}

func (r *FeeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]FeeRow, error) {
	var rows []FeeRow
	err := db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("fee.transaction_id", "fee.status", "fee.payment_date",
			"fee.amount", "fee.type", "fee.semester", "fee.academic_year",
			"fee.is_late", "fee.student_number", "member.name AS member_name",
			"fee.organization_id", "organization.name AS organization_name").
		Joins("LEFT JOIN member ON member.student_number = fee.student_number").
		Joins("LEFT JOIN organization ON organization.organization_id = fee.organization_id").
		Order("fee.academic_year DESC, fee.semester DESC, fee.transaction_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FeeRepository) FindByTransactionID(ctx context.Context, db *gorm.DB, transactionID string) (*model.Fee, error) {
	var fee model.Fee
	err := db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&fee).Error
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *FeeRepository) Create(ctx context.Context, db *gorm.DB, fee *model.Fee) error {
	return db.WithContext(ctx).Create(fee).Error
}

func (r *FeeRepository) Save(ctx context.Context, db *gorm.DB, fee *model.Fee) error {
	return db.WithContext(ctx).
		Model(fee).
		Select("status", "payment_date", "amount", "type", "semester",
			"academic_year", "is_late").
		Updates(fee).Error
}

func (r *FeeRepository) Delete(ctx context.Context, db *gorm.DB, transactionID string) (int64, error) {
	result := db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Delete(&model.Fee{})
	return result.RowsAffected, result.Error
}
