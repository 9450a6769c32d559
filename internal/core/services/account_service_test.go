package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	adminSession  = domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	clientSession = domain.Session{UserID: "client-1", Role: domain.RoleClient}
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "4-100",
		Name:         "Pendapatan Jasa",
		CategoryType: domain.Revenue,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, adminSession, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Code, createdAccount.Code)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(domain.Revenue, createdAccount.CategoryType)
	suite.True(createdAccount.IsActive)
	suite.Equal(adminSession.UserID, createdAccount.CreatedBy)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ClientForbidden() {
	req := dto.CreateAccountRequest{Code: "1", Name: "Kas", CategoryType: domain.Asset}

	createdAccount, err := suite.service.CreateAccount(context.Background(), clientSession, req)

	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCategory() {
	req := dto.CreateAccountRequest{Code: "9", Name: "Suspense", CategoryType: domain.CategoryType("SUSPENSE")}

	_, err := suite.service.CreateAccount(context.Background(), adminSession, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1-100", Name: "Kas", CategoryType: domain.Asset}
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, adminSession, req)

	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID() {
	ctx := context.Background()
	id := uuid.NewString()
	expected := &domain.Account{AccountID: id, Code: "1-100", Name: "Kas", CategoryType: domain.Asset, IsActive: true}
	suite.mockRepo.On("FindAccountByID", ctx, id).Return(expected, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, clientSession, id)
	suite.Require().NoError(err)
	suite.Equal(expected, account)

	_, err = suite.service.GetAccountByID(ctx, clientSession, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountID: "a", Code: "1-100"}}
	suite.mockRepo.On("ListAccounts", ctx, true).Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(ctx, clientSession, dto.ListAccountsParams{ActiveOnly: true})

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NoSession() {
	_, err := suite.service.ListAccounts(context.Background(), domain.Session{}, dto.ListAccountsParams{})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestCreateAccount_RepositoryError(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)
	repo.On("SaveAccount", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.CreateAccount(context.Background(), adminSession, dto.CreateAccountRequest{Code: "1", Name: "Kas", CategoryType: domain.Asset})

	assert.ErrorIs(t, err, assert.AnError)
}
