package report

import (
	"context"
	"strings"
	"time"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"gorm.io/gorm"
)

// ReportRepository holds the ten analytical queries. Each is a standalone
// read; there is no shared state between them.
type ReportRepository struct{}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// OrganizationMembers implements report 1. One row per matching ledger row,
// so a member serving across semesters appears once per term.
func (r *ReportRepository) OrganizationMembers(ctx context.Context, db *gorm.DB, filter *MembersFilter) ([]MemberRow, error) {
	query := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("member.student_number", "member.name", "member.gender",
			"member.degree_program", "membership.role", "membership.status",
			"membership.semester", "membership.academic_year", "membership.committee").
		Joins("JOIN member ON member.student_number = membership.student_number").
		Where("membership.organization_id = ?", filter.Organization)

	if filter.Role != "" {
		query = query.Where("membership.role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("membership.status = ?", filter.Status)
	}
	if filter.Batch != "" {
		query = query.Where("membership.academic_year LIKE ?", filter.Batch+"%")
	}
	if filter.Committee != "" {
		query = query.Where("membership.committee = ?", filter.Committee)
	}
	if filter.Gender != "" {
		query = query.Where("member.gender = ?", filter.Gender)
	}
	if filter.DegreeProgram != "" {
		query = query.Where("member.degree_program = ?", filter.DegreeProgram)
	}

	var rows []MemberRow
	err := query.
		Order("membership.role ASC, membership.status ASC, member.gender ASC, member.degree_program ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UnpaidByStudent implements report 2: unpaid fees of one org/term summed
// per student.
func (r *ReportRepository) UnpaidByStudent(ctx context.Context, db *gorm.DB, filter *OrgTermFilter) ([]DebtSummaryRow, error) {
	var rows []DebtSummaryRow
	err := r.unpaidSummaryQuery(ctx, db, filter).
		Order("fee.student_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HighestDebt implements report 10: the student owing the most in one
// org/term. Ties produce an arbitrary but stable single winner (lowest
// student number).
func (r *ReportRepository) HighestDebt(ctx context.Context, db *gorm.DB, filter *OrgTermFilter) ([]DebtSummaryRow, error) {
	var rows []DebtSummaryRow
	err := r.unpaidSummaryQuery(ctx, db, filter).
		Order("total_unpaid DESC, fee.student_number ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) unpaidSummaryQuery(ctx context.Context, db *gorm.DB, filter *OrgTermFilter) *gorm.DB {
	return db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("fee.student_number", "member.name",
			"SUM(fee.amount) AS total_unpaid").
		Joins("JOIN member ON member.student_number = fee.student_number").
		Where("fee.status = ?", model.FeeUnpaid).
		Where("fee.organization_id = ?", filter.Organization).
		Where("fee.semester = ?", filter.Semester).
		Where("fee.academic_year = ?", filter.AcademicYear).
		Group("fee.student_number, member.name")
}

// StudentUnpaidFees implements report 3: every unpaid fee of one student
// across all organizations, oldest academic year first.
func (r *ReportRepository) StudentUnpaidFees(ctx context.Context, db *gorm.DB, filter *StudentFilter) ([]UnpaidFeeRow, error) {
	var rows []UnpaidFeeRow
	err := db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("fee.semester", "fee.academic_year", "fee.amount", "fee.type",
			"organization.name AS organization_name").
		Joins("JOIN organization ON organization.organization_id = fee.organization_id").
		Where("fee.student_number = ?", filter.StudentNumber).
		Where("fee.status = ?", model.FeeUnpaid).
		Order("fee.academic_year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ExecutiveCommittee implements report 4.
func (r *ReportRepository) ExecutiveCommittee(ctx context.Context, db *gorm.DB, filter *OrgYearFilter) ([]CommitteeMemberRow, error) {
	var rows []CommitteeMemberRow
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("member.student_number", "member.name", "membership.role").
		Joins("JOIN member ON member.student_number = membership.student_number").
		Where("membership.organization_id = ?", filter.Organization).
		Where("membership.committee = ?", "Executive").
		Where("membership.academic_year = ?", filter.AcademicYear).
		Order("membership.role ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RoleHistory implements report 5: every holder of one role in one
// organization, most recent academic year first.
func (r *ReportRepository) RoleHistory(ctx context.Context, db *gorm.DB, filter *RoleHistoryFilter) ([]RoleHistoryRow, error) {
	var rows []RoleHistoryRow
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("member.student_number", "member.name", "membership.role",
			"membership.academic_year").
		Joins("JOIN member ON member.student_number = membership.student_number").
		Where("membership.organization_id = ?", filter.Organization).
		Where("membership.role = ?", filter.Role).
		Order("membership.academic_year DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LatePayments implements report 6. The membership join is restricted to the
// same org/semester/year as the fee so the row carries the role the member
// held when the payment was late.
func (r *ReportRepository) LatePayments(ctx context.Context, db *gorm.DB, filter *OrgTermFilter) ([]LatePaymentRow, error) {
	var rows []LatePaymentRow
	err := db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("member.student_number", "member.name", "membership.role",
			"fee.amount", "fee.payment_date",
			"organization.name AS organization_name").
		Joins("JOIN member ON member.student_number = fee.student_number").
		Joins("JOIN organization ON organization.organization_id = fee.organization_id").
		Joins("JOIN membership ON membership.student_number = fee.student_number"+
			" AND membership.organization_id = fee.organization_id"+
			" AND membership.semester = fee.semester"+
			" AND membership.academic_year = fee.academic_year").
		Where("fee.is_late = ?", true).
		Where("fee.organization_id = ?", filter.Organization).
		Where("fee.semester = ?", filter.Semester).
		Where("fee.academic_year = ?", filter.AcademicYear).
		Order("fee.payment_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type termRow struct {
	Semester     string
	AcademicYear string
}

// RecentTerms returns the organization's distinct (semester, academicYear)
// pairs, most recent first, limited to n.
func (r *ReportRepository) RecentTerms(ctx context.Context, db *gorm.DB, organizationID string, n int) ([]termRow, error) {
	var terms []termRow
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("semester", "academic_year").
		Where("organization_id = ?", organizationID).
		Group("semester, academic_year").
		Order("academic_year DESC, semester DESC").
		Limit(n).
		Scan(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// CountStatusesInTerms counts active and inactive memberships of one
// organization within the given terms, grouped by status.
func (r *ReportRepository) CountStatusesInTerms(ctx context.Context, db *gorm.DB, organizationID string, terms []termRow) ([]StatusShareRow, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	var termCond strings.Builder
	args := make([]interface{}, 0, len(terms)*2)
	for i, term := range terms {
		if i > 0 {
			termCond.WriteString(" OR ")
		}
		termCond.WriteString("(semester = ? AND academic_year = ?)")
		args = append(args, term.Semester, term.AcademicYear)
	}

	var rows []StatusShareRow
	err := db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("status", "COUNT(*) AS count").
		Where("organization_id = ?", organizationID).
		Where("status IN ?", []string{model.MembershipActive, model.MembershipInactive}).
		Where(termCond.String(), args...).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Alumni implements report 8: members graduated on or before the cutoff who
// hold an alumni membership in the organization.
func (r *ReportRepository) Alumni(ctx context.Context, db *gorm.DB, organizationID string, cutoff time.Time) ([]AlumnusRow, error) {
	var rows []AlumnusRow
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Distinct("member.student_number", "member.name",
			"member.degree_program", "member.date_graduated").
		Joins("JOIN membership ON membership.student_number = member.student_number").
		Where("membership.organization_id = ?", organizationID).
		Where("membership.status = ?", model.MembershipAlumni).
		Where("member.date_graduated IS NOT NULL AND member.date_graduated <= ?", cutoff).
		Order("member.date_graduated ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FeeTotals implements report 9: paid and unpaid totals of one organization
// over fees dated on or before the cutoff.
func (r *ReportRepository) FeeTotals(ctx context.Context, db *gorm.DB, organizationID string, cutoff time.Time) ([]FeeTotalRow, error) {
	var rows []FeeTotalRow
	err := db.WithContext(ctx).
		Model(&model.Fee{}).
		Select("status", "SUM(amount) AS total_amount").
		Where("organization_id = ?", organizationID).
		Where("payment_date IS NOT NULL AND payment_date <= ?", cutoff).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
