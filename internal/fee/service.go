package fee

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

type FeeService struct {
	db            *gorm.DB
	feeRepository *FeeRepository
}

func NewFeeService(db *gorm.DB, feeRepository *FeeRepository) *FeeService {
	return &FeeService{
		db:            db,
		feeRepository: feeRepository,
	}
}

func (s *FeeService) List(ctx context.Context) ([]FeeRow, error) {
	rows, err := s.feeRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return rows, nil
}

func (s *FeeService) Get(ctx context.Context, transactionID string) (*model.Fee, error) {
	fee, err := s.feeRepository.FindByTransactionID(ctx, s.db, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("fee %s: %w", transactionID, ErrFeeNotFound)
		}
		return nil, fmt.Errorf("find fee: %w", err)
	}
	return fee, nil
}

func (s *FeeService) Create(ctx context.Context, request *CreateFeeRequest) (*model.Fee, error) {
	log := logger.FromContext(ctx)

	if request.Amount.IsNegative() {
		return nil, fmt.Errorf("amount: %w", ErrNegativeAmount)
	}
	if request.Status == model.FeePaid && (request.PaymentDate == nil || *request.PaymentDate == "") {
		return nil, fmt.Errorf("paymentDate: %w", ErrInvalidPayment)
	}

	paymentDate, err := parseDate(request.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("parse paymentDate: %w", ErrInvalidPayment)
	}

	var fee *model.Fee
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// Explicit reference checks so a bad student number or organization
		// id surfaces as a client error, not a driver error.
		var count int64
		if err := tx.Model(&model.Member{}).Where("student_number = ?", request.StudentNumber).Count(&count).Error; err != nil {
			return fmt.Errorf("check member: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("member %s: %w", request.StudentNumber, ErrInvalidReference)
		}

		if err := tx.Model(&model.Organization{}).Where("organization_id = ?", request.OrganizationID).Count(&count).Error; err != nil {
			return fmt.Errorf("check organization: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("organization %s: %w", request.OrganizationID, ErrInvalidReference)
		}

		fee = &model.Fee{
			TransactionID:  request.TransactionID,
			Status:         request.Status,
			PaymentDate:    paymentDate,
			Amount:         request.Amount.Round(2),
			Type:           request.Type,
			Semester:       request.Semester,
			AcademicYear:   request.AcademicYear,
			IsLate:         request.IsLate,
			StudentNumber:  request.StudentNumber,
			OrganizationID: request.OrganizationID,
		}

		if err := s.feeRepository.Create(ctx, tx, fee); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("create fee: %w", ErrFeeAlreadyExists)
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return fmt.Errorf("create fee: %w", ErrInvalidReference)
			}
			return fmt.Errorf("create fee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("fee created",
		"transaction_id", fee.TransactionID,
		"student_number", logger.MaskStudentNumber(fee.StudentNumber),
		"amount", fee.Amount.StringFixed(2),
	)
	return fee, nil
}

func (s *FeeService) Update(ctx context.Context, transactionID string, request *UpdateFeeRequest) (*model.Fee, error) {
	var fee *model.Fee

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.feeRepository.FindByTransactionID(ctx, tx, transactionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("fee %s: %w", transactionID, ErrFeeNotFound)
			}
			return fmt.Errorf("find fee: %w", err)
		}

		if request.Status != nil {
			found.Status = *request.Status
		}
		if request.PaymentDate != nil {
			paymentDate, err := parseDate(request.PaymentDate)
			if err != nil {
				return fmt.Errorf("parse paymentDate: %w", ErrInvalidPayment)
			}
			found.PaymentDate = paymentDate
		}
		if request.Amount != nil {
			if request.Amount.IsNegative() {
				return fmt.Errorf("amount: %w", ErrNegativeAmount)
			}
			found.Amount = request.Amount.Round(2)
		}
		if request.Type != nil {
			found.Type = *request.Type
		}
		if request.Semester != nil {
			found.Semester = *request.Semester
		}
		if request.AcademicYear != nil {
			found.AcademicYear = *request.AcademicYear
		}
		if request.IsLate != nil {
			found.IsLate = *request.IsLate
		}

		// Same invariant Create enforces: a paid fee carries a payment date.
		if found.Status == model.FeePaid && found.PaymentDate == nil {
			return fmt.Errorf("paymentDate: %w", ErrInvalidPayment)
		}

		if err := s.feeRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("save fee: %w", err)
		}

		fee = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fee, nil
}

func (s *FeeService) Delete(ctx context.Context, transactionID string) error {
	rows, err := s.feeRepository.Delete(ctx, s.db, transactionID)
	if err != nil {
		return fmt.Errorf("delete fee: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("fee %s: %w", transactionID, ErrFeeNotFound)
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
