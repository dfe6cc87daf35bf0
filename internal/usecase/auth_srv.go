package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/internal/data/repository"
	"electronics-store/internal/dto/request"
	"electronics-store/internal/dto/response"
	"electronics-store/pkg/token"
	"electronics-store/pkg/utils"
)

// Dispatcher is the slice of the mailer the auth flow needs. Enqueue must
// not block; delivery outcome never reaches the request path.
type Dispatcher interface {
	Enqueue(to, subject, body string)
}

// TokenIssuer mints and verifies the signed credential pair.
type TokenIssuer interface {
	IssuePair(userID uuid.UUID, email string) (refresh string, access string, err error)
	IssueAccess(userID uuid.UUID, email string) (string, error)
	ParseRefresh(raw string) (*token.Claims, error)
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.TokenPairResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	RefreshToken(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*response.AccountResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mail   Dispatcher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail Dispatcher,
	tokens TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an inactive account and a pending 4-digit code, then
// hands the OTP mail to the dispatcher. The response goes out without
// waiting on delivery; a lost mail surfaces only as a code the user never
// receives.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	existing, err := s.repo.Account.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	account := &entity.Account{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     false,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		// a concurrent registration for the same email got there first
		if err == repository.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	code := utils.GenerateOTP()
	otp := &entity.RegistrationOTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: account.ID,
		Code:   code,
	}

	if err := s.repo.OTP.Replace(ctx, otp); err != nil {
		return nil, fmt.Errorf("store OTP: %w", err)
	}

	// account and code are persisted; safe to hand off the mail
	s.mail.Enqueue(
		account.Email,
		"Your Registration OTP",
		fmt.Sprintf("Your OTP for registration is: %s. It is valid for 5 minutes.", code),
	)

	s.log.Info("Account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
	)

	return &response.RegisterResponse{
		Detail: "User created. OTP has been sent to your email.",
		Email:  account.Email,
	}, nil
}

// VerifyOTP activates the account and consumes the code. Only success
// deletes the code; expired or mismatched codes stay in place so the user
// can retry.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.TokenPairResponse, error) {
	account, err := s.repo.Account.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidEmailOrOTP
	}

	otp, err := s.repo.OTP.FindByUserID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		// never registered a code, or it was already consumed
		return nil, ErrInvalidEmailOrOTP
	}

	if !otp.IsValid(time.Now()) {
		return nil, ErrOTPExpired
	}

	if otp.Code != req.OTP {
		return nil, ErrOTPMismatch
	}

	if err := s.repo.Account.SetActive(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("activate account: %w", err)
	}

	if err := s.repo.OTP.DeleteByUserID(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("consume OTP: %w", err)
	}

	refresh, access, err := s.tokens.IssuePair(account.ID, account.Email)
	if err != nil {
		s.log.Error("Failed to issue token pair",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("Account activated",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
	)

	return &response.TokenPairResponse{
		Refresh:  refresh,
		Access:   access,
		Username: account.Email,
		Email:    account.Email,
	}, nil
}

// Login checks credentials against an activated account. All failure
// modes collapse into ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	account, err := s.repo.Account.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("account_id", account.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		s.log.Warn("Login attempt on unverified account",
			zap.String("account_id", account.ID.String()))
		return nil, ErrInvalidCredentials
	}

	refresh, access, err := s.tokens.IssuePair(account.ID, account.Email)
	if err != nil {
		s.log.Error("Failed to issue token pair",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("Account logged in",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
	)

	return &response.TokenPairResponse{
		Refresh:  refresh,
		Access:   access,
		Username: account.Email,
		Email:    account.Email,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error) {
	claims, err := s.tokens.ParseRefresh(req.Refresh)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	access, err := s.tokens.IssueAccess(userID, claims.Email)
	if err != nil {
		s.log.Error("Failed to issue access token",
			zap.Error(err),
			zap.String("account_id", userID.String()),
		)
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &response.AccessTokenResponse{Access: access}, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*response.AccountResponse, error) {
	account, err := s.repo.Account.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	resp := response.AccountToResponse(account)
	return &resp, nil
}
