package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"campscan/internal/models/db_models"
	"campscan/internal/models/request_models"
	"campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResult, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	ListUsers(ctx context.Context) ([]response_models.AccountResponse, error)
	UpdateUserRole(ctx context.Context, id string, role string) error
	DeleteUser(ctx context.Context, id string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResult, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("Login for %s took %s", request.Email, time.Since(startTime))

	return &response_models.LoginResult{
		Token: token,
		Role:  account.Role,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleLeader, // self-registration never grants admin
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) ListUsers(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, response_models.AccountResponse{
			ID:    account.ID.String(),
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role,
		})
	}
	return responses, nil
}

func (a *AccountService) UpdateUserRole(ctx context.Context, id string, role string) error {
	err := a.accountRepo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrAccountNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) DeleteUser(ctx context.Context, id string) error {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	return a.accountRepo.Delete(ctx, id)
}
