package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmadriaga/studorg/go-api-server/internal/member"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/database"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/logger"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db                *gorm.DB
	accountRepository *AccountRepository
	memberRepository  *member.MemberRepository
	tokenManager      token.Manager
}

func NewAuthService(db *gorm.DB, accountRepository *AccountRepository, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:                db,
		accountRepository: accountRepository,
		memberRepository:  memberRepository,
		tokenManager:      tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByUsername(ctx, a.db, request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed - unknown username", "username", request.Username)
			return nil, fmt.Errorf("error %w", ErrIncorrectCredentials) // Security: don't reveal if username exists
		}
		log.Error("login failed - unexpected error", "error", err)
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(request.Password)); err != nil {
		log.Warn("login failed - invalid password", "username", request.Username)
		return nil, fmt.Errorf("error %w", ErrIncorrectCredentials)
	}

	studentNumber := ""
	if account.StudentNumber != nil {
		studentNumber = *account.StudentNumber
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(account.Username, account.Role, studentNumber)
	if err != nil {
		log.Error("failed to generate access token", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(account.Username, account.Role, studentNumber)
	if err != nil {
		log.Error("failed to generate refresh token", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("login succeeded", "username", account.Username, "role", account.Role)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         account.Role,
	}, nil
}

// Signup creates a student account bound to an existing member. Admin
// accounts are provisioned out of band, never through this endpoint.
func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) error {
	log := logger.FromContext(ctx)
	return database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.accountRepository.IsExist(ctx, tx, request.Username)
		if err != nil {
			log.Error("Failed to check account existence", "error", err)
			return fmt.Errorf("check account existence: %w", err)
		}
		if exists {
			log.Warn("Account already exists", "username", request.Username)
			return fmt.Errorf("error %w", ErrAccountAlreadyExists)
		}

		if _, err := a.memberRepository.FindByStudentNumber(ctx, tx, request.StudentNumber); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("Signup for unknown member", "studentNumber", logger.MaskStudentNumber(request.StudentNumber))
				return fmt.Errorf("error %w", ErrUnknownStudentNumber)
			}
			return fmt.Errorf("find member: %w", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		studentNumber := request.StudentNumber
		account := &model.Account{
			Username:      request.Username,
			Password:      string(hashedPassword),
			Role:          model.RoleStudent,
			StudentNumber: &studentNumber,
		}
		if err := a.accountRepository.Create(ctx, tx, account); err != nil {
			log.Error("Failed to create account", "error", err)
			return fmt.Errorf("create account: %w", err)
		}

		log.Info("Account created successfully", "username", account.Username)
		return nil
	})
}
