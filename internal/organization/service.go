package organization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmadriaga/studorg/go-api-server/internal/member"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/database"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type OrganizationService struct {
	db               *gorm.DB
	orgRepository    *OrganizationRepository
	memberRepository *member.MemberRepository
}

func NewOrganizationService(db *gorm.DB, orgRepository *OrganizationRepository, memberRepository *member.MemberRepository) *OrganizationService {
	return &OrganizationService{
		db:               db,
		orgRepository:    orgRepository,
		memberRepository: memberRepository,
	}
}

func (s *OrganizationService) List(ctx context.Context) ([]model.Organization, error) {
	orgs, err := s.orgRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}

func (s *OrganizationService) Get(ctx context.Context, organizationID string) (*model.Organization, error) {
	org, err := s.orgRepository.FindByID(ctx, s.db, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization %s: %w", organizationID, ErrOrganizationNotFound)
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) Create(ctx context.Context, request *CreateOrganizationRequest) (*model.Organization, error) {
	log := logger.FromContext(ctx)

	foundedDate, err := parseDate(request.FoundedDate)
	if err != nil {
		return nil, fmt.Errorf("parse foundedDate: %w", ErrInvalidDate)
	}

	status := request.Status
	if status == "" {
		status = model.OrgStatusActive
	}

	org := &model.Organization{
		OrganizationID: request.OrganizationID,
		Name:           request.Name,
		Scope:          request.Scope,
		Type:           request.Type,
		Description:    request.Description,
		Address:        request.Address,
		ContactEmail:   request.ContactEmail,
		ContactPhone:   request.ContactPhone,
		Status:         status,
		FoundedDate:    foundedDate,
	}

	if err := s.orgRepository.Create(ctx, s.db, org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create organization: %w", ErrOrganizationAlreadyExists)
		}
		log.Error("failed to create organization", "error", err)
		return nil, fmt.Errorf("create organization: %w", err)
	}

	log.Info("organization created", "organization_id", org.OrganizationID)
	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, organizationID string, request *UpdateOrganizationRequest) (*model.Organization, error) {
	var org *model.Organization

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.orgRepository.FindByID(ctx, tx, organizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("organization %s: %w", organizationID, ErrOrganizationNotFound)
			}
			return fmt.Errorf("find organization: %w", err)
		}

		if request.Name != nil {
			found.Name = *request.Name
		}
		if request.Scope != nil {
			found.Scope = *request.Scope
		}
		if request.Type != nil {
			found.Type = *request.Type
		}
		if request.Description != nil {
			found.Description = *request.Description
		}
		if request.Address != nil {
			found.Address = *request.Address
		}
		if request.ContactEmail != nil {
			found.ContactEmail = *request.ContactEmail
		}
		if request.ContactPhone != nil {
			found.ContactPhone = *request.ContactPhone
		}
		if request.Status != nil {
			found.Status = *request.Status
		}
		if request.FoundedDate != nil {
			foundedDate, err := parseDate(request.FoundedDate)
			if err != nil {
				return fmt.Errorf("parse foundedDate: %w", ErrInvalidDate)
			}
			found.FoundedDate = foundedDate
		}

		if err := s.orgRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("save organization: %w", err)
		}

		org = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, organizationID string) error {
	rows, err := s.orgRepository.Delete(ctx, s.db, organizationID)
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("organization %s: %w", organizationID, ErrOrganizationNotFound)
	}
	return nil
}

func (s *OrganizationService) ListMemberships(ctx context.Context, organizationID string) ([]MembershipRow, error) {
	rows, err := s.orgRepository.FindMemberships(ctx, s.db, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return rows, nil
}

// AddMembership enrolls a member into an organization. The member and the
// organization must both exist, and only one ledger row per pair can be
// created through this endpoint; historical rows for past semesters are kept
// but not managed here.
func (s *OrganizationService) AddMembership(ctx context.Context, organizationID string, request *AddMembershipRequest) (*model.Membership, error) {
	log := logger.FromContext(ctx)
	var membership *model.Membership

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.memberRepository.FindByStudentNumber(ctx, tx, request.StudentNumber); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %s: %w", request.StudentNumber, member.ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		if _, err := s.orgRepository.FindByID(ctx, tx, organizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("organization %s: %w", organizationID, ErrOrganizationNotFound)
			}
			return fmt.Errorf("find organization: %w", err)
		}

		exists, err := s.orgRepository.MembershipExists(ctx, tx, organizationID, request.StudentNumber)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if exists {
			return fmt.Errorf("membership: %w", ErrMembershipAlreadyExists)
		}

		membership = &model.Membership{
			StudentNumber:  request.StudentNumber,
			OrganizationID: organizationID,
			Role:           request.Role,
			Status:         request.Status,
			Semester:       request.Semester,
			AcademicYear:   request.AcademicYear,
			Committee:      request.Committee,
		}

		if err := s.orgRepository.CreateMembership(ctx, tx, membership); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("membership: %w", ErrMembershipAlreadyExists)
			}
			return fmt.Errorf("create membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("membership created",
		"organization_id", organizationID,
		"student_number", logger.MaskStudentNumber(request.StudentNumber),
	)
	return membership, nil
}

func (s *OrganizationService) UpdateMembership(ctx context.Context, organizationID, studentNumber string, request *UpdateMembershipRequest) (*model.Membership, error) {
	var membership *model.Membership

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.orgRepository.FindMembership(ctx, tx, organizationID, studentNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("membership: %w", ErrMembershipNotFound)
			}
			return fmt.Errorf("find membership: %w", err)
		}

		if request.Role != nil {
			found.Role = *request.Role
		}
		if request.Status != nil {
			found.Status = *request.Status
		}
		if request.Semester != nil {
			found.Semester = *request.Semester
		}
		if request.AcademicYear != nil {
			found.AcademicYear = *request.AcademicYear
		}
		if request.Committee != nil {
			found.Committee = *request.Committee
		}

		if err := s.orgRepository.SaveMembership(ctx, tx, found); err != nil {
			return fmt.Errorf("save membership: %w", err)
		}

		membership = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return membership, nil
}

func (s *OrganizationService) RemoveMembership(ctx context.Context, organizationID, studentNumber string) error {
	rows, err := s.orgRepository.DeleteMembership(ctx, s.db, organizationID, studentNumber)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("membership: %w", ErrMembershipNotFound)
	}
	return nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
