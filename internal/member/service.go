package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/database"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *MemberService) Get(ctx context.Context, studentNumber string) (*model.Member, error) {
	member, err := s.memberRepository.FindByStudentNumber(ctx, s.db, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %s: %w", studentNumber, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return member, nil
}

func (s *MemberService) Create(ctx context.Context, request *CreateMemberRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	dateGraduated, err := parseDate(request.DateGraduated)
	if err != nil {
		return nil, fmt.Errorf("parse dateGraduated: %w", ErrInvalidDate)
	}

	member := &model.Member{
		StudentNumber: request.StudentNumber,
		Name:          request.Name,
		DegreeProgram: request.DegreeProgram,
		Age:           request.Age,
		Gender:        request.Gender,
		DateGraduated: dateGraduated,
	}

	if err := s.memberRepository.Create(ctx, s.db, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("member already exists", "student_number", logger.MaskStudentNumber(request.StudentNumber))
			return nil, fmt.Errorf("create member: %w", ErrMemberAlreadyExists)
		}
		log.Error("failed to create member", "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	log.Info("member created", "student_number", logger.MaskStudentNumber(request.StudentNumber))
	return member, nil
}

// Update applies a partial update to a member. When the update sets a
// graduation date, every non-alumni membership row of that student is flipped
// to alumni after the member row is committed. The bulk update is best
// effort: its failure is logged but does not fail the member update.
func (s *MemberService) Update(ctx context.Context, studentNumber string, request *UpdateMemberRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	var member *model.Member
	var cascade bool

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memberRepository.FindByStudentNumber(ctx, tx, studentNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %s: %w", studentNumber, ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		if request.Name != nil {
			found.Name = *request.Name
		}
		if request.DegreeProgram != nil {
			found.DegreeProgram = *request.DegreeProgram
		}
		if request.Age != nil {
			found.Age = *request.Age
		}
		if request.Gender != nil {
			found.Gender = *request.Gender
		}
		if request.HasDateGraduated() {
			dateGraduated, err := parseDate(request.DateGraduated)
			if err != nil {
				return fmt.Errorf("parse dateGraduated: %w", ErrInvalidDate)
			}
			found.DateGraduated = dateGraduated
		}

		if err := s.memberRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("save member: %w", err)
		}

		member = found
		cascade = shouldCascadeAlumni(request, found.DateGraduated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cascade {
		// Runs after the member row is durably written; not retried and not
		// part of the member transaction.
		updated, err := s.memberRepository.BulkUpdateMembershipStatus(ctx, s.db, studentNumber, model.MembershipAlumni, model.MembershipAlumni)
		if err != nil {
			log.Error("alumni cascade failed",
				"student_number", logger.MaskStudentNumber(studentNumber),
				"error", err,
			)
		} else if updated > 0 {
			log.Info("memberships marked alumni",
				"student_number", logger.MaskStudentNumber(studentNumber),
				"rows", updated,
			)
		}
	}

	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, studentNumber string) error {
	rows, err := s.memberRepository.Delete(ctx, s.db, studentNumber)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("member %s: %w", studentNumber, ErrMemberNotFound)
	}
	return nil
}

// shouldCascadeAlumni decides whether a member update triggers the alumni
// cascade. The update must mention dateGraduated and the value it resolved
// to after parsing must be set; null and empty-string bodies both clear the
// date without touching memberships. It deliberately does not require that
// the date was previously unset, so re-setting an already-graduated member
// refires the (idempotent) cascade. Tighten here if a strict null-to-set
// policy is ever wanted.
func shouldCascadeAlumni(request *UpdateMemberRequest, dateGraduated *time.Time) bool {
	return request.HasDateGraduated() && dateGraduated != nil
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
