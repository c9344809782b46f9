package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voxdrive/voxdrive-backend/mocks"
	"github.com/voxdrive/voxdrive-backend/models"
)

type ExpectedOutcomeTestSuite struct {
	suite.Suite
	transaction        *mocks.Transaction
	transactionFactory *mocks.TransactionFactory
	repository         *mocks.ExpectedOutcomeRepository

	outcomeId string
	outcome   models.ExpectedOutcome
}

func (suite *ExpectedOutcomeTestSuite) SetupTest() {
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.repository = new(mocks.ExpectedOutcomeRepository)

	suite.outcomeId = "outcome-id"
	suite.outcome = models.ExpectedOutcome{
		Id:                   suite.outcomeId,
		AcceptableAlternates: []string{"the booking is confirmed"},
	}
}

func (suite *ExpectedOutcomeTestSuite) makeUsecase() ExpectedOutcomeUsecase {
	return NewExpectedOutcomeUsecase(suite.transactionFactory, suite.repository)
}

func (suite *ExpectedOutcomeTestSuite) TestAddAcceptableAlternate() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetExpectedOutcome", suite.transaction, suite.outcomeId).Return(suite.outcome, nil)
	suite.repository.On("UpdateAcceptableAlternates", suite.transaction, suite.outcomeId,
		[]string{"the booking is confirmed", "your ride is booked"}).Return(nil)

	outcome, err := suite.makeUsecase().AddAcceptableAlternate(ctx, suite.outcomeId, "your ride is booked")

	t := suite.T()
	assert.NoError(t, err)
	assert.Len(t, outcome.AcceptableAlternates, 2)
	suite.repository.AssertExpectations(t)
}

func (suite *ExpectedOutcomeTestSuite) TestAddAcceptableAlternate_already_present() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetExpectedOutcome", suite.transaction, suite.outcomeId).Return(suite.outcome, nil)
	suite.repository.On("UpdateAcceptableAlternates", suite.transaction, suite.outcomeId,
		[]string{"the booking is confirmed"}).Return(nil)

	outcome, err := suite.makeUsecase().AddAcceptableAlternate(ctx, suite.outcomeId, "the booking is confirmed")

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []string{"the booking is confirmed"}, outcome.AcceptableAlternates)
	suite.repository.AssertExpectations(t)
}

func (suite *ExpectedOutcomeTestSuite) TestRemoveAcceptableAlternate() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetExpectedOutcome", suite.transaction, suite.outcomeId).Return(suite.outcome, nil)
	suite.repository.On("UpdateAcceptableAlternates", suite.transaction, suite.outcomeId,
		[]string{}).Return(nil)

	outcome, err := suite.makeUsecase().RemoveAcceptableAlternate(ctx, suite.outcomeId, "the booking is confirmed")

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, outcome.AcceptableAlternates)
	suite.repository.AssertExpectations(t)
}

func (suite *ExpectedOutcomeTestSuite) TestRemoveAcceptableAlternate_absent() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetExpectedOutcome", suite.transaction, suite.outcomeId).Return(suite.outcome, nil)
	suite.repository.On("UpdateAcceptableAlternates", suite.transaction, suite.outcomeId,
		[]string{"the booking is confirmed"}).Return(nil)

	outcome, err := suite.makeUsecase().RemoveAcceptableAlternate(ctx, suite.outcomeId, "never added")

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []string{"the booking is confirmed"}, outcome.AcceptableAlternates)
	suite.repository.AssertExpectations(t)
}

func (suite *ExpectedOutcomeTestSuite) TestAddAcceptableAlternate_unknown_outcome() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetExpectedOutcome", suite.transaction, suite.outcomeId).
		Return(models.ExpectedOutcome{}, models.NotFoundError)

	_, err := suite.makeUsecase().AddAcceptableAlternate(ctx, suite.outcomeId, "anything")

	assert.ErrorIs(suite.T(), err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "UpdateAcceptableAlternates")
}

func TestExpectedOutcomeTestSuite(t *testing.T) {
	suite.Run(t, new(ExpectedOutcomeTestSuite))
}
