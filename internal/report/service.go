package report

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ReportService answers the ten fixed analytical questions. Every method
// validates its filter before touching the store; a filter error means no
// query was executed.
type ReportService struct {
	db               *gorm.DB
	reportRepository *ReportRepository
}

func NewReportService(db *gorm.DB, reportRepository *ReportRepository) *ReportService {
	return &ReportService{
		db:               db,
		reportRepository: reportRepository,
	}
}

// OrganizationMembers is report 1.
func (s *ReportService) OrganizationMembers(ctx context.Context, filter *MembersFilter) ([]MemberRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.OrganizationMembers(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("organization members report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// UnpaidByStudent is report 2.
func (s *ReportService) UnpaidByStudent(ctx context.Context, filter *OrgTermFilter) ([]DebtSummaryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.UnpaidByStudent(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("unpaid fees report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// StudentUnpaidFees is report 3.
func (s *ReportService) StudentUnpaidFees(ctx context.Context, filter *StudentFilter) ([]UnpaidFeeRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.StudentUnpaidFees(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("student unpaid fees report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// ExecutiveCommittee is report 4.
func (s *ReportService) ExecutiveCommittee(ctx context.Context, filter *OrgYearFilter) ([]CommitteeMemberRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.ExecutiveCommittee(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("executive committee report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// RoleHistory is report 5.
func (s *ReportService) RoleHistory(ctx context.Context, filter *RoleHistoryFilter) ([]RoleHistoryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.RoleHistory(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("role history report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// LatePayments is report 6.
func (s *ReportService) LatePayments(ctx context.Context, filter *OrgTermFilter) ([]LatePaymentRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.LatePayments(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("late payments report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// StatusShares is report 7: the active/inactive split over the last n
// semesters. Percentages are computed as count*100/total in floating point;
// across statuses they sum to 100 within rounding.
func (s *ReportService) StatusShares(ctx context.Context, filter *SemesterWindowFilter) ([]StatusShareRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	terms, err := s.reportRepository.RecentTerms(ctx, s.db, filter.Organization, filter.Count())
	if err != nil {
		return nil, fmt.Errorf("recent terms: %w", err)
	}
	if len(terms) == 0 {
		return []StatusShareRow{}, nil
	}

	rows, err := s.reportRepository.CountStatusesInTerms(ctx, s.db, filter.Organization, terms)
	if err != nil {
		return nil, fmt.Errorf("status share report: %w", err)
	}

	var total int64
	for _, row := range rows {
		total += row.Count
	}
	if total > 0 {
		for i := range rows {
			rows[i].Percentage = float64(rows[i].Count) * 100 / float64(total)
		}
	}
	return emptyNotNil(rows), nil
}

// Alumni is report 8.
func (s *ReportService) Alumni(ctx context.Context, filter *OrgDateFilter) ([]AlumnusRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.Alumni(ctx, s.db, filter.Organization, filter.Cutoff())
	if err != nil {
		return nil, fmt.Errorf("alumni report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// FeeTotals is report 9.
func (s *ReportService) FeeTotals(ctx context.Context, filter *OrgDateFilter) ([]FeeTotalRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.FeeTotals(ctx, s.db, filter.Organization, filter.Cutoff())
	if err != nil {
		return nil, fmt.Errorf("fee totals report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// HighestDebt is report 10. When several students share the maximum the
// lowest student number wins; returning all tied leaders would need product
// guidance first.
func (s *ReportService) HighestDebt(ctx context.Context, filter *OrgTermFilter) ([]DebtSummaryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	rows, err := s.reportRepository.HighestDebt(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("highest debt report: %w", err)
	}
	return emptyNotNil(rows), nil
}

// emptyNotNil keeps empty result sets serializing as [] instead of null.
func emptyNotNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
