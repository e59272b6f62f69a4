package account

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for want := int64(1); want <= 3; want++ {
		acc, err := repo.Create(ctx, Account{Branch: "0001", OwnerDocument: "52998224725"})
		require.NoError(t, err)
		assert.Equal(t, want, acc.Number)
	}
}

func TestMemoryRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const workers = 32
	numbers := make([]int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acc, err := repo.Create(ctx, Account{Branch: "0001", OwnerDocument: "52998224725"})
			if err != nil {
				t.Error(err)
				return
			}
			numbers[i] = acc.Number
		}(i)
	}
	wg.Wait()

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for i, n := range numbers {
		assert.Equal(t, int64(i+1), n, "numbers must be dense and unique")
	}
}

func TestMemoryRepositoryUpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, Account{Branch: "0001", OwnerDocument: "52998224725", Balance: decimal.Zero})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, created.Number, func(acc *Account) error {
		acc.Balance = decimal.NewFromInt(999)
		acc.History = append(acc.History, Transaction{ID: "t1", Kind: Deposit})
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repo.Get(ctx, created.Number)
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero(), "failed update must not change the balance")
	assert.Empty(t, stored.History)
}

func TestMemoryRepositoryGetReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, Account{Branch: "0001", OwnerDocument: "52998224725"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.Number, func(acc *Account) error {
		acc.History = append(acc.History, Transaction{ID: "t1", Kind: Deposit, Amount: decimal.NewFromInt(10)})
		return nil
	})
	require.NoError(t, err)

	snap, err := repo.Get(ctx, created.Number)
	require.NoError(t, err)
	snap.History[0].ID = "tampered"
	snap.Balance = decimal.NewFromInt(-1)

	fresh, err := repo.Get(ctx, created.Number)
	require.NoError(t, err)
	assert.Equal(t, "t1", fresh.History[0].ID)
	assert.True(t, fresh.Balance.IsZero())
}

func TestMemoryRepositoryUnknownNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, 42, func(*Account) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}
