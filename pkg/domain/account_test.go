package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewAccount(t *testing.T) {
	a := domain.NewAccount(7)
	assert.Equal(t, int64(7), a.HolderID)
	assert.Equal(t, domain.StatusActive, a.Status)
	assert.True(t, a.Balance.IsZero())
	assert.True(t, a.Open())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.Status
		transition func(*domain.Account) error
		want       domain.Status
		wantErr    bool
	}{
		{"block active", domain.StatusActive, (*domain.Account).Block, domain.StatusBlocked, false},
		{"block blocked", domain.StatusBlocked, (*domain.Account).Block, domain.StatusBlocked, false},
		{"block closed", domain.StatusClosed, (*domain.Account).Block, domain.StatusClosed, true},
		{"reactivate active", domain.StatusActive, (*domain.Account).Reactivate, domain.StatusActive, false},
		{"reactivate blocked", domain.StatusBlocked, (*domain.Account).Reactivate, domain.StatusActive, false},
		{"reactivate closed", domain.StatusClosed, (*domain.Account).Reactivate, domain.StatusClosed, true},
		{"close active", domain.StatusActive, (*domain.Account).Close, domain.StatusClosed, false},
		{"close blocked", domain.StatusBlocked, (*domain.Account).Close, domain.StatusClosed, false},
		{"close closed", domain.StatusClosed, (*domain.Account).Close, domain.StatusClosed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.NewAccount(1)
			a.Status = tt.from
			err := tt.transition(a)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrStatusNotAllowed)
				require.ErrorIs(t, err, domain.ErrAccountClosed)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, a.Status)
		})
	}
}

func TestClosedIsTerminal(t *testing.T) {
	a := domain.NewAccount(1)
	require.NoError(t, a.Close())
	assert.False(t, a.Open())

	assert.ErrorIs(t, a.Block(), domain.ErrStatusNotAllowed)
	assert.ErrorIs(t, a.Reactivate(), domain.ErrStatusNotAllowed)
	assert.ErrorIs(t, a.Close(), domain.ErrStatusNotAllowed)
	assert.Equal(t, domain.StatusClosed, a.Status)
}

func TestDeposit(t *testing.T) {
	a := domain.NewAccount(1)
	a.Balance = dec("100.00")

	require.NoError(t, a.Deposit(dec("10.00")))
	assert.True(t, a.Balance.Equal(dec("110.00")), "got %s", a.Balance)
}

func TestDepositQuantizesToTwoDecimals(t *testing.T) {
	a := domain.NewAccount(1)
	require.NoError(t, a.Deposit(dec("10.005")))
	assert.Equal(t, "10.01", a.Balance.StringFixed(2))
}

func TestDepositRequiresActiveAccount(t *testing.T) {
	a := domain.NewAccount(1)
	require.NoError(t, a.Block())

	err := a.Deposit(dec("10.00"))
	assert.ErrorIs(t, err, domain.ErrAccountNotActive)
	assert.True(t, a.Balance.IsZero())
}

func TestDepositRejectsNonPositiveValue(t *testing.T) {
	a := domain.NewAccount(1)
	assert.ErrorIs(t, a.Deposit(decimal.Zero), domain.ErrValueNotPositive)
	assert.ErrorIs(t, a.Deposit(dec("-1.00")), domain.ErrValueNotPositive)
}

func TestWithdraw(t *testing.T) {
	a := domain.NewAccount(1)
	a.Balance = dec("100.00")

	require.NoError(t, a.Withdraw(dec("50.00")))
	assert.True(t, a.Balance.Equal(dec("50.00")), "got %s", a.Balance)

	// Withdrawing the full remaining balance is allowed.
	require.NoError(t, a.Withdraw(dec("50.00")))
	assert.True(t, a.Balance.IsZero())
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	a := domain.NewAccount(1)
	a.Balance = dec("100.00")

	err := a.Withdraw(dec("150.00"))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.True(t, a.Balance.Equal(dec("100.00")), "balance must be unchanged, got %s", a.Balance)
}

func TestWithdrawRequiresActiveAccount(t *testing.T) {
	a := domain.NewAccount(1)
	a.Balance = dec("100.00")
	require.NoError(t, a.Block())

	assert.ErrorIs(t, a.Withdraw(dec("10.00")), domain.ErrAccountNotActive)
}

func TestTransfer(t *testing.T) {
	origin := domain.NewAccount(1)
	origin.ID = 1
	origin.Balance = dec("50.00")
	destination := domain.NewAccount(2)
	destination.ID = 2

	require.NoError(t, domain.Transfer(origin, destination, dec("30.00")))
	assert.True(t, origin.Balance.Equal(dec("20.00")), "origin got %s", origin.Balance)
	assert.True(t, destination.Balance.Equal(dec("30.00")), "destination got %s", destination.Balance)
}

func TestTransferErrorPrecedence(t *testing.T) {
	newPair := func() (*domain.Account, *domain.Account) {
		origin := domain.NewAccount(1)
		origin.ID = 1
		origin.Balance = dec("10.00")
		destination := domain.NewAccount(2)
		destination.ID = 2
		return origin, destination
	}

	t.Run("origin not active wins over everything", func(t *testing.T) {
		origin, destination := newPair()
		require.NoError(t, origin.Block())
		require.NoError(t, destination.Block())
		err := domain.Transfer(origin, destination, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrOriginNotActive)
	})

	t.Run("destination not active wins over balance", func(t *testing.T) {
		origin, destination := newPair()
		require.NoError(t, destination.Block())
		err := domain.Transfer(origin, destination, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrDestinationNotActive)
	})

	t.Run("insufficient balance checked last", func(t *testing.T) {
		origin, destination := newPair()
		err := domain.Transfer(origin, destination, dec("100.00"))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.True(t, origin.Balance.Equal(dec("10.00")))
		assert.True(t, destination.Balance.IsZero())
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ACTIVE", domain.StatusActive.String())
	assert.Equal(t, "BLOCKED", domain.StatusBlocked.String())
	assert.Equal(t, "CLOSED", domain.StatusClosed.String())
	assert.False(t, domain.Status(9).Valid())
}
