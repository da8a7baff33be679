// Package fixtures provides in-memory test doubles for the repository
// contracts. The memory unit of work honors transaction semantics: every
// mutation inside Do is rolled back when the function returns an error, so
// atomicity properties can be asserted in tests.
package fixtures

import (
	"context"
	"sort"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

// MemoryUoW is an in-memory repository.UnitOfWork over plain maps.
type MemoryUoW struct {
	Holders      map[int64]*domain.Holder
	Accounts     map[int64]*domain.Account
	Transactions map[string]*domain.Transaction

	nextHolderID  int64
	nextAccountID int64

	// FailTransactionCreate, when set, is returned by the transaction
	// repository's Create. Used to exercise rollback paths.
	FailTransactionCreate error
}

// NewMemoryUoW creates an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{
		Holders:      map[int64]*domain.Holder{},
		Accounts:     map[int64]*domain.Account{},
		Transactions: map[string]*domain.Transaction{},
	}
}

// Do runs fn, restoring the previous state when it fails.
func (u *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	holders, accounts, transactions := u.snapshot()
	nextHolder, nextAccount := u.nextHolderID, u.nextAccountID
	if err := fn(u); err != nil {
		u.Holders, u.Accounts, u.Transactions = holders, accounts, transactions
		u.nextHolderID, u.nextAccountID = nextHolder, nextAccount
		return err
	}
	return nil
}

func (u *MemoryUoW) snapshot() (map[int64]*domain.Holder, map[int64]*domain.Account, map[string]*domain.Transaction) {
	holders := make(map[int64]*domain.Holder, len(u.Holders))
	for id, h := range u.Holders {
		c := *h
		holders[id] = &c
	}
	accounts := make(map[int64]*domain.Account, len(u.Accounts))
	for id, a := range u.Accounts {
		c := *a
		accounts[id] = &c
	}
	transactions := make(map[string]*domain.Transaction, len(u.Transactions))
	for id, t := range u.Transactions {
		c := *t
		transactions[id] = &c
	}
	return holders, accounts, transactions
}

// HolderRepository implements repository.UnitOfWork.
func (u *MemoryUoW) HolderRepository() repository.HolderRepository {
	return &memoryHolderRepo{u}
}

// AccountRepository implements repository.UnitOfWork.
func (u *MemoryUoW) AccountRepository() repository.AccountRepository {
	return &memoryAccountRepo{u}
}

// TransactionRepository implements repository.UnitOfWork.
func (u *MemoryUoW) TransactionRepository() repository.TransactionRepository {
	return &memoryTransactionRepo{u}
}

// SeedHolder stores a holder, assigning an id when missing.
func (u *MemoryUoW) SeedHolder(h *domain.Holder) *domain.Holder {
	if h.ID == 0 {
		u.nextHolderID++
		h.ID = u.nextHolderID
	} else if h.ID > u.nextHolderID {
		u.nextHolderID = h.ID
	}
	c := *h
	u.Holders[h.ID] = &c
	return h
}

// SeedAccount stores an account, assigning an id when missing.
func (u *MemoryUoW) SeedAccount(a *domain.Account) *domain.Account {
	if a.ID == 0 {
		u.nextAccountID++
		a.ID = u.nextAccountID
	} else if a.ID > u.nextAccountID {
		u.nextAccountID = a.ID
	}
	c := *a
	u.Accounts[a.ID] = &c
	return a
}

type memoryHolderRepo struct{ u *MemoryUoW }

func (r *memoryHolderRepo) Get(ctx context.Context, id int64) (*domain.Holder, error) {
	h, ok := r.u.Holders[id]
	if !ok {
		return nil, domain.ErrHolderNotFound
	}
	c := *h
	return &c, nil
}

func (r *memoryHolderRepo) GetByDocument(ctx context.Context, document string) ([]*domain.Holder, error) {
	var out []*domain.Holder
	for _, h := range r.u.Holders {
		if h.Document == document {
			c := *h
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memoryHolderRepo) Create(ctx context.Context, holder *domain.Holder) error {
	r.u.SeedHolder(holder)
	return nil
}

func (r *memoryHolderRepo) Update(ctx context.Context, holder *domain.Holder) error {
	if _, ok := r.u.Holders[holder.ID]; !ok {
		return domain.ErrHolderNotFound
	}
	c := *holder
	r.u.Holders[holder.ID] = &c
	return nil
}

func (r *memoryHolderRepo) List(ctx context.Context, params repository.ListParams) ([]*domain.Holder, error) {
	all := make([]*domain.Holder, 0, len(r.u.Holders))
	for _, h := range r.u.Holders {
		c := *h
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, params), nil
}

type memoryAccountRepo struct{ u *MemoryUoW }

func (r *memoryAccountRepo) Get(ctx context.Context, id int64) (*domain.Account, error) {
	a, ok := r.u.Accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (r *memoryAccountRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.Get(ctx, id)
}

func (r *memoryAccountRepo) ListByHolder(ctx context.Context, holderID int64) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.u.Accounts {
		if a.HolderID == holderID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memoryAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.u.SeedAccount(account)
	return nil
}

func (r *memoryAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	if _, ok := r.u.Accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	c := *account
	r.u.Accounts[account.ID] = &c
	return nil
}

func (r *memoryAccountRepo) List(ctx context.Context, params repository.ListParams) ([]*domain.Account, error) {
	all := make([]*domain.Account, 0, len(r.u.Accounts))
	for _, a := range r.u.Accounts {
		c := *a
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, params), nil
}

type memoryTransactionRepo struct{ u *MemoryUoW }

func (r *memoryTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	if r.u.FailTransactionCreate != nil {
		return r.u.FailTransactionCreate
	}
	c := *tx
	r.u.Transactions[tx.ID] = &c
	return nil
}

func (r *memoryTransactionRepo) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	t, ok := r.u.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	c := *t
	return &c, nil
}

func (r *memoryTransactionRepo) List(ctx context.Context, params repository.ListParams) ([]*domain.Transaction, error) {
	all := make([]*domain.Transaction, 0, len(r.u.Transactions))
	for _, t := range r.u.Transactions {
		c := *t
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return page(all, params), nil
}

func page[T any](all []T, params repository.ListParams) []T {
	start := params.Offset()
	if start >= len(all) {
		return nil
	}
	end := start + params.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
