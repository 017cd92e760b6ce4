package organization

import (
	"context"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepository struct{}

func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{}
}

func (r *OrganizationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Organization, error) {
	var orgs []model.Organization
	err := db.WithContext(ctx).Order("name ASC").Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, db *gorm.DB, organizationID string) (*model.Organization, error) {
	var org model.Organization
	err := db.WithContext(ctx).Where("organization_id = ?", organizationID).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, db *gorm.DB, org *model.Organization) error {
	return db.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) Save(ctx context.Context, db *gorm.DB, org *model.Organization) error {
	return db.WithContext(ctx).
		Model(org).
		Select("name", "scope", "type", "description", "address",
			"contact_email", "contact_phone", "status", "founded_date").
		Updates(org).Error
}

func (r *OrganizationRepository) Delete(ctx context.Context, db *gorm.DB, organizationID string) (int64, error) {
	result := db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Delete(&model.Organization{})
	return result.RowsAffected, result.Error
}

// FindMemberships returns the ledger rows of one organization joined with
// the member's name.
func (r *OrganizationRepository) FindMemberships(ctx context.Context, db *gorm.DB, organizationID string) ([]MembershipRow, error) {
	var rows []MembershipRow
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("membership.student_number", "member.name AS member_name",
			"membership.role", "membership.status", "membership.semester",
			"membership.academic_year", "membership.committee").
		Joins("JOIN member ON member.student_number = membership.student_number").
		Where("membership.organization_id = ?", organizationID).
		Order("membership.academic_year DESC, membership.semester DESC, member.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindMembership returns the ledger row for a (student, organization) pair.
func (r *OrganizationRepository) FindMembership(ctx context.Context, db *gorm.DB, organizationID, studentNumber string) (*model.Membership, error) {
	var membership model.Membership
	err := db.WithContext(ctx).
		Where("organization_id = ? AND student_number = ?", organizationID, studentNumber).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *OrganizationRepository) MembershipExists(ctx context.Context, db *gorm.DB, organizationID, studentNumber string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("organization_id = ? AND student_number = ?", organizationID, studentNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OrganizationRepository) CreateMembership(ctx context.Context, db *gorm.DB, membership *model.Membership) error {
	return db.WithContext(ctx).Create(membership).Error
}

func (r *OrganizationRepository) SaveMembership(ctx context.Context, db *gorm.DB, membership *model.Membership) error {
	return db.WithContext(ctx).
		Model(membership).
		Select("role", "status", "semester", "academic_year", "committee").
		Updates(membership).Error
}

func (r *OrganizationRepository) DeleteMembership(ctx context.Context, db *gorm.DB, organizationID, studentNumber string) (int64, error) {
	result := db.WithContext(ctx).
		Where("organization_id = ? AND student_number = ?", organizationID, studentNumber).
		Delete(&model.Membership{})
	return result.RowsAffected, result.Error
}
