package user

import (
	"context"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindUnpaidFees lists every unpaid fee of one student across all
// organizations, oldest academic year first.
func (r *UserRepository) FindUnpaidFees(ctx context.Context, db *gorm.DB, studentNumber string) ([]LateFeeRow, error) {
	var rows []LateFeeRow
	err := db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("fee.transaction_id", "organization.name AS organization_name",
			"fee.type", "fee.amount", "fee.semester", "fee.academic_year",
			"fee.is_late").
		Joins("JOIN organization ON organization.organization_id = fee.organization_id").
		Where("fee.student_number = ?", studentNumber).
		Where("fee.status = ?", model.FeeUnpaid).
		Order("fee.academic_year ASC, fee.semester ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
