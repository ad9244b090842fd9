// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultShopName     = "New Shop"
	defaultShopCategory = "General"
	defaultCustomerName = "New Customer"
	defaultLanguage     = "en"

	defaultPasswordMinLength = 6
	defaultPasswordMaxLength = 72 // bcrypt input limit
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// SignUp orchestrates the complete account registration process.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting account registration", "mobile", input.Mobile, "role", input.Role)

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account role")
	}
	if err := srv.checkPasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredAccount *entity.Account

	// Execute the entire creation process within a single database transaction
	// to ensure the account and its role profile are created atomically.
	err = srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		accountRepo := txRepos.AccountRepo()

		// 1. Check if an account with this mobile number already exists.
		_, err := accountRepo.FindByMobile(ctx, input.Mobile)
		if err == nil {
			// If no error, an account was found.
			return domainerrors.ErrDuplicateAccount.WrapMessage("account registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by mobile")
		}

		// 2. Create the Account entity.
		newAccount := &entity.Account{
			Mobile:       input.Mobile,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         input.Role,
			IsActive:     true,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the role profile. Defaults only fill fields the
		// caller left blank.
		switch input.Role {
		case entity.RoleVendor:
			profile := &entity.VendorProfile{
				AccountID:       newAccount.ID,
				ShopName:        orDefault(input.ShopName, defaultShopName),
				Category:        orDefault(input.Category, defaultShopCategory),
				Description:     input.Description,
				BusinessType:    input.BusinessType,
				LocationLat:     input.LocationLat,
				LocationLng:     input.LocationLng,
				LocationAddress: input.LocationAddress,
			}
			if err := txRepos.VendorRepo().Create(ctx, profile); err != nil {
				return errors.WithStack(err)
			}
			newAccount.VendorProfile = profile
		case entity.RoleCustomer:
			profile := &entity.CustomerProfile{
				AccountID:          newAccount.ID,
				Name:               orDefault(input.Name, defaultCustomerName),
				SavedAddress:       input.LocationAddress,
				LocationLat:        input.LocationLat,
				LocationLng:        input.LocationLng,
				LanguagePreference: defaultLanguage,
			}
			if err := txRepos.CustomerRepo().Create(ctx, profile); err != nil {
				return errors.WithStack(err)
			}
			newAccount.CustomerProfile = profile
		}

		registeredAccount = newAccount

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute account registration transaction", "error", err, "mobile", input.Mobile)

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	token, err := srv.tokenService.GenerateToken(registeredAccount)
	if err != nil {
		srv.logger.Error("Failed to generate token after registration", "error", err)

		return nil, errors.Wrap(err, "failed to generate token after registration")
	}
	srv.logger.Debug("Account registered successfully", "accountID", registeredAccount.ID)

	return &usecase.AuthOutput{Account: registeredAccount, Token: token}, nil
}

// SignIn orchestrates the sign-in process. A missing account and a wrong
// password surface the same error so callers cannot probe for registered
// mobile numbers.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting sign in", "mobile", input.Mobile)

	account, err := srv.accountRepo.FindByMobile(ctx, input.Mobile)
	if err != nil {
		// This includes ErrAccountNotFound, which we treat as an invalid credential case.
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	if !account.IsActive {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	// Fetch the account again with its role profile attached.
	fullAccount, err := srv.accountRepo.FindByIDWithProfile(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account profile")
	}

	token, err := srv.tokenService.GenerateToken(fullAccount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}
	srv.logger.Debug("Signed in successfully", "accountID", fullAccount.ID)

	return &usecase.AuthOutput{Account: fullAccount, Token: token}, nil
}

// CurrentUser loads the account with its profile. Absence is reported as
// (nil, nil) so callers can distinguish "no session" from a real failure.
func (srv *authService) CurrentUser(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByIDWithProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}
		srv.logger.Warn("Failed to hydrate current user", "accountID", accountID, "error", err)

		return nil, nil
	}

	if !account.IsActive || !account.HasProfile() {
		return nil, nil
	}

	return account, nil
}

// orDefault returns fallback when value is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func (srv *authService) checkPasswordStrength(password string) error {
	minLength := defaultPasswordMinLength
	maxLength := defaultPasswordMaxLength
	if srv.cfg != nil && srv.cfg.PasswordStrength != nil {
		if srv.cfg.PasswordStrength.MinLength > 0 {
			minLength = srv.cfg.PasswordStrength.MinLength
		}
		if srv.cfg.PasswordStrength.MaxLength > 0 {
			maxLength = srv.cfg.PasswordStrength.MaxLength
		}
	}

	if len(password) < minLength || len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password length out of range")
	}

	return nil
}
