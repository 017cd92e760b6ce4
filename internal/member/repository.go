package member

import (
	"context"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Preload("Memberships").
		Preload("Fees").
		Order("student_number ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) FindByStudentNumber(ctx context.Context, db *gorm.DB, studentNumber string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).
		Preload("Memberships").
		Preload("Fees").
		Where("student_number = ?", studentNumber).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	// Save with Select so a nil date_graduated is written out, not skipped
	return db.WithContext(ctx).
		Model(member).
		Select("name", "degree_program", "age", "gender", "date_graduated").
		Updates(member).Error
}

func (r *MemberRepository) Delete(ctx context.Context, db *gorm.DB, studentNumber string) (int64, error) {
	result := db.WithContext(ctx).
		Where("student_number = ?", studentNumber).
		Delete(&model.Member{})
	return result.RowsAffected, result.Error
}

// BulkUpdateMembershipStatus flips every membership row of one student whose
// status is not excludeStatus to newStatus, across all organizations and
// semesters, and returns the number of rows updated.
func (r *MemberRepository) BulkUpdateMembershipStatus(ctx context.Context, db *gorm.DB, studentNumber, newStatus, excludeStatus string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("student_number = ? AND status <> ?", studentNumber, excludeStatus).
		Update("status", newStatus)
	return result.RowsAffected, result.Error
}
