package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmadriaga/studorg/go-api-server/internal/member"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	sharedContext "github.com/pmadriaga/studorg/go-api-server/internal/shared/context"
	"gorm.io/gorm"
)

// UserService serves the student-facing views of member data. Unlike the
// admin member endpoints, every call is checked against the caller's
// principal: students only see their own records.
type UserService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	userRepository   *UserRepository
}

func NewUserService(db *gorm.DB, memberRepository *member.MemberRepository, userRepository *UserRepository) *UserService {
	return &UserService{
		db:               db,
		memberRepository: memberRepository,
		userRepository:   userRepository,
	}
}

// GetProfile returns one member with memberships and fees preloaded.
func (s *UserService) GetProfile(ctx context.Context, principal sharedContext.Principal, studentNumber string) (*model.Member, error) {
	if !principal.CanViewStudent(studentNumber) {
		return nil, fmt.Errorf("user %s: %w", studentNumber, ErrUserForbidden)
	}

	profile, err := s.memberRepository.FindByStudentNumber(ctx, s.db, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", studentNumber, ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return profile, nil
}

// LateFees lists every unpaid fee of one student across all organizations.
func (s *UserService) LateFees(ctx context.Context, principal sharedContext.Principal, studentNumber string) ([]LateFeeRow, error) {
	if !principal.CanViewStudent(studentNumber) {
		return nil, fmt.Errorf("user %s: %w", studentNumber, ErrUserForbidden)
	}

	if _, err := s.memberRepository.FindByStudentNumber(ctx, s.db, studentNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", studentNumber, ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	rows, err := s.userRepository.FindUnpaidFees(ctx, s.db, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("find unpaid fees: %w", err)
	}
	if rows == nil {
		rows = []LateFeeRow{}
	}
	return rows, nil
}
