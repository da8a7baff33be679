package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaueSilva/bank-account-api/internal/fixtures"
	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
	"github.com/CaueSilva/bank-account-api/pkg/service"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func listParams(t *testing.T, page, size int) repository.ListParams {
	t.Helper()
	params, err := repository.NewListParams(page, size)
	require.NoError(t, err)
	return params
}

func TestHolderCreate(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewHolderService(uow, slog.Default())

	holder, err := svc.Create(context.Background(), "Alice", "12345678901")
	require.NoError(t, err)
	assert.NotZero(t, holder.ID)
	assert.Equal(t, "Alice", holder.Name)
	assert.Equal(t, "12345678901", holder.Document)
}

func TestHolderCreateDuplicateDocument(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewHolderService(uow, slog.Default())

	_, err := svc.Create(context.Background(), "Alice", "12345678901")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Bob", "12345678901")
	require.ErrorIs(t, err, domain.ErrDocumentAlreadyExists)
	assert.Len(t, uow.Holders, 1)
}

func TestHolderGet(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	seeded := uow.SeedHolder(&domain.Holder{Name: "Alice", Document: "12345678901"})
	svc := service.NewHolderService(uow, slog.Default())

	holder, err := svc.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, holder.Name)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrHolderNotFound)
}

func TestHolderUpdateName(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	seeded := uow.SeedHolder(&domain.Holder{Name: "Alice", Document: "12345678901"})
	svc := service.NewHolderService(uow, slog.Default())

	holder, err := svc.UpdateName(context.Background(), seeded.ID, "Alice Smith")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", holder.Name)
	assert.Equal(t, "Alice Smith", uow.Holders[seeded.ID].Name)
	assert.Equal(t, seeded.Document, holder.Document, "document never changes")
}

func TestHolderUpdateNameNotFound(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewHolderService(uow, slog.Default())

	_, err := svc.UpdateName(context.Background(), 42, "Nobody")
	assert.ErrorIs(t, err, domain.ErrHolderNotFound)
}

func TestHolderList(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	uow.SeedHolder(&domain.Holder{ID: 3, Name: "Carla", Document: "00000000003"})
	uow.SeedHolder(&domain.Holder{ID: 1, Name: "Alice", Document: "00000000001"})
	uow.SeedHolder(&domain.Holder{ID: 2, Name: "Bob", Document: "00000000002"})
	svc := service.NewHolderService(uow, slog.Default())

	holders, err := svc.List(context.Background(), listParams(t, 1, 50))
	require.NoError(t, err)
	require.Len(t, holders, 3)
	assert.Equal(t, int64(1), holders[0].ID)
	assert.Equal(t, int64(2), holders[1].ID)
	assert.Equal(t, int64(3), holders[2].ID)
}

func TestHolderListEmptyPageIsNotFound(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := service.NewHolderService(uow, slog.Default())

	_, err := svc.List(context.Background(), listParams(t, 1, 50))
	assert.ErrorIs(t, err, domain.ErrHolderNotFound)

	// An out-of-range page on a populated store behaves the same way.
	uow.SeedHolder(&domain.Holder{Name: "Alice", Document: "12345678901"})
	_, err = svc.List(context.Background(), listParams(t, 2, 50))
	assert.ErrorIs(t, err, domain.ErrHolderNotFound)
}
