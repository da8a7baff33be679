package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaueSilva/bank-account-api/internal/fixtures"
	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/service"
)

func seedAccount(uow *fixtures.MemoryUoW, status domain.Status, balance string) *domain.Account {
	holder := uow.SeedHolder(&domain.Holder{Name: "Holder", Document: "00000000000"})
	return uow.SeedAccount(&domain.Account{
		HolderID: holder.ID,
		Balance:  dec(balance),
		Status:   status,
	})
}

func TestDepositService(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "10.00")
	svc := service.NewTransactionService(uow, slog.Default())

	tx, err := svc.Deposit(context.Background(), account.ID, dec("25.50"))
	require.NoError(t, err)
	assert.Equal(t, domain.TypeDeposit, tx.Type)
	assert.Equal(t, account.ID, tx.OriginAccount)
	assert.Nil(t, tx.DestinationAccount)
	assert.Equal(t, "25.50", tx.Value.StringFixed(2))
	assert.Equal(t, "35.50", uow.Accounts[account.ID].Balance.StringFixed(2))
	assert.Len(t, uow.Transactions, 1)
}

func TestDepositServiceAccountNotFound(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Deposit(context.Background(), 999, dec("10.00"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, uow.Transactions)
}

func TestDepositServiceInactiveAccount(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusBlocked, domain.StatusClosed} {
		t.Run(status.String(), func(t *testing.T) {
			uow := fixtures.NewMemoryUoW()
			account := seedAccount(uow, status, "10.00")
			svc := service.NewTransactionService(uow, slog.Default())

			_, err := svc.Deposit(context.Background(), account.ID, dec("10.00"))
			assert.ErrorIs(t, err, domain.ErrStatusNotAllowed)
			assert.Equal(t, "10.00", uow.Accounts[account.ID].Balance.StringFixed(2))
			assert.Empty(t, uow.Transactions)
		})
	}
}

func TestDepositServiceNonPositiveValue(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "10.00")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Deposit(context.Background(), account.ID, dec("0"))
	assert.ErrorIs(t, err, domain.ErrValueNotPositive)
	assert.Empty(t, uow.Transactions)
}

func TestWithdrawService(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "100.00")
	svc := service.NewTransactionService(uow, slog.Default())

	tx, err := svc.Withdraw(context.Background(), account.ID, dec("50"))
	require.NoError(t, err)
	assert.Equal(t, domain.TypeWithdraw, tx.Type)
	assert.Equal(t, "50.00", tx.Value.StringFixed(2))
	assert.Equal(t, "50.00", uow.Accounts[account.ID].Balance.StringFixed(2))
	assert.Len(t, uow.Transactions, 1)
}

func TestWithdrawServiceInsufficientBalance(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "100.00")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Withdraw(context.Background(), account.ID, dec("150.00"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, "100.00", uow.Accounts[account.ID].Balance.StringFixed(2))
	assert.Empty(t, uow.Transactions)
}

func TestWithdrawServiceInactiveAccount(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusBlocked, "100.00")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Withdraw(context.Background(), account.ID, dec("10.00"))
	assert.ErrorIs(t, err, domain.ErrStatusNotAllowed)
	assert.Empty(t, uow.Transactions)
}

func TestTransferService(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	origin := seedAccount(uow, domain.StatusActive, "50.00")
	destination := uow.SeedAccount(&domain.Account{
		HolderID: origin.HolderID,
		Status:   domain.StatusActive,
	})
	svc := service.NewTransactionService(uow, slog.Default())

	tx, err := svc.Transfer(context.Background(), origin.ID, destination.ID, dec("30.00"))
	require.NoError(t, err)
	assert.Equal(t, domain.TypeTransfer, tx.Type)
	assert.Equal(t, origin.ID, tx.OriginAccount)
	require.NotNil(t, tx.DestinationAccount)
	assert.Equal(t, destination.ID, *tx.DestinationAccount)
	assert.Equal(t, "20.00", uow.Accounts[origin.ID].Balance.StringFixed(2))
	assert.Equal(t, "30.00", uow.Accounts[destination.ID].Balance.StringFixed(2))
	assert.Len(t, uow.Transactions, 1)
}

func TestTransferServiceErrorPrecedence(t *testing.T) {
	build := func(originStatus, destinationStatus domain.Status) (*fixtures.MemoryUoW, *domain.Account, *domain.Account) {
		uow := fixtures.NewMemoryUoW()
		origin := seedAccount(uow, originStatus, "10.00")
		destination := uow.SeedAccount(&domain.Account{HolderID: origin.HolderID, Status: destinationStatus})
		return uow, origin, destination
	}

	t.Run("origin not active wins", func(t *testing.T) {
		uow, origin, destination := build(domain.StatusBlocked, domain.StatusClosed)
		svc := service.NewTransactionService(uow, slog.Default())
		_, err := svc.Transfer(context.Background(), origin.ID, destination.ID, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrOriginNotActive)
	})

	t.Run("destination not active before balance", func(t *testing.T) {
		uow, origin, destination := build(domain.StatusActive, domain.StatusBlocked)
		svc := service.NewTransactionService(uow, slog.Default())
		_, err := svc.Transfer(context.Background(), origin.ID, destination.ID, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrDestinationNotActive)
	})

	t.Run("insufficient origin balance", func(t *testing.T) {
		uow, origin, destination := build(domain.StatusActive, domain.StatusActive)
		svc := service.NewTransactionService(uow, slog.Default())
		_, err := svc.Transfer(context.Background(), origin.ID, destination.ID, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrOriginBalanceTooLow)
		assert.Equal(t, "10.00", uow.Accounts[origin.ID].Balance.StringFixed(2))
		assert.Empty(t, uow.Transactions)
	})
}

func TestTransferServiceMissingAccounts(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	origin := seedAccount(uow, domain.StatusActive, "50.00")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Transfer(context.Background(), origin.ID, 999, dec("10.00"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = svc.Transfer(context.Background(), 999, origin.ID, dec("10.00"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTransferServiceSameAccount(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "50.00")
	svc := service.NewTransactionService(uow, slog.Default())

	tx, err := svc.Transfer(context.Background(), account.ID, account.ID, dec("10.00"))
	require.NoError(t, err)
	assert.Equal(t, "50.00", uow.Accounts[account.ID].Balance.StringFixed(2), "net effect is zero")
	require.NotNil(t, tx.DestinationAccount)
	assert.Equal(t, account.ID, *tx.DestinationAccount)
}

func TestDepositServiceRollsBackOnRecordFailure(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "10.00")
	uow.FailTransactionCreate = errors.New("write failed")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Deposit(context.Background(), account.ID, dec("25.00"))
	require.Error(t, err)
	assert.Equal(t, "10.00", uow.Accounts[account.ID].Balance.StringFixed(2))
	assert.Empty(t, uow.Transactions)
}

func TestTransferServiceRollsBackOnRecordFailure(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	origin := seedAccount(uow, domain.StatusActive, "50.00")
	destination := uow.SeedAccount(&domain.Account{HolderID: origin.HolderID, Status: domain.StatusActive})
	uow.FailTransactionCreate = errors.New("write failed")
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.Transfer(context.Background(), origin.ID, destination.ID, dec("30.00"))
	require.Error(t, err)
	assert.Equal(t, "50.00", uow.Accounts[origin.ID].Balance.StringFixed(2))
	assert.Equal(t, "0.00", uow.Accounts[destination.ID].Balance.StringFixed(2))
	assert.Empty(t, uow.Transactions)
}

func TestTransactionGetAndList(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	account := seedAccount(uow, domain.StatusActive, "100.00")
	svc := service.NewTransactionService(uow, slog.Default())

	ctx := context.Background()
	first, err := svc.Deposit(ctx, account.ID, dec("10.00"))
	require.NoError(t, err)
	second, err := svc.Withdraw(ctx, account.ID, dec("5.00"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = svc.Get(ctx, "0a0b0c0d-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	transactions, err := svc.List(ctx, listParams(t, 1, 50))
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.False(t, transactions[0].Date.After(transactions[1].Date), "ordered by date ascending")
	ids := []string{transactions[0].ID, transactions[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestTransactionListEmptyPageIsNotFound(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewTransactionService(uow, slog.Default())

	_, err := svc.List(context.Background(), listParams(t, 1, 50))
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
