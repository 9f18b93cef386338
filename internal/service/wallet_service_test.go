package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletFixture(unlockCost int) (*memStore, IWalletService) {
	store := newMemStore()
	return store, NewWalletService(newMemUowFactory(store), unlockCost, logger.NewNopLogger())
}

func seedAccount(store *memStore, ownerId uuid.UUID, balance int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.accounts[ownerId] = &entity.CoinAccount{
		Id:        ownerId,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
}

func TestCreditOnceSkipsDuplicateReason(t *testing.T) {
	_, wallet := newWalletFixture(10)
	ownerId := uuid.New()

	applied, err := wallet.CreditOnce(context.Background(), ownerId, 50, "elite-referral:a:b")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = wallet.CreditOnce(context.Background(), ownerId, 50, "elite-referral:a:b")
	require.NoError(t, err)
	assert.False(t, applied)

	balance, err := wallet.Balance(context.Background(), ownerId)
	require.NoError(t, err)
	assert.Equal(t, 50, balance.Balance)
}

func TestDebitSpendsBalance(t *testing.T) {
	store, wallet := newWalletFixture(10)
	ownerId := uuid.New()
	seedAccount(store, ownerId, 30)

	balance, err := wallet.Debit(context.Background(), ownerId, 10, "assessment-unlock:x")
	require.NoError(t, err)
	assert.Equal(t, 20, balance)

	history, err := wallet.History(context.Background(), ownerId)
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, string(entity.CoinDirectionDebit), history.History[0].Direction)
}

func TestDebitInsufficientBalanceIsSoft(t *testing.T) {
	store, wallet := newWalletFixture(10)
	ownerId := uuid.New()
	seedAccount(store, ownerId, 5)

	balance, err := wallet.Debit(context.Background(), ownerId, 10, "assessment-unlock:x")
	require.NoError(t, err)
	assert.Equal(t, 5, balance)

	// Balance untouched, no debit entry recorded.
	history, err := wallet.History(context.Background(), ownerId)
	require.NoError(t, err)
	assert.Equal(t, 5, history.Balance)
	assert.Empty(t, history.History)
}

func TestDebitUnknownAccountIsSoft(t *testing.T) {
	_, wallet := newWalletFixture(10)

	balance, err := wallet.Debit(context.Background(), uuid.New(), 10, "assessment-unlock:x")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestUnlockAssessmentSpendsConfiguredCost(t *testing.T) {
	store, wallet := newWalletFixture(10)
	ownerId := uuid.New()
	positionId := uuid.New()
	seedAccount(store, ownerId, 25)

	res, err := wallet.UnlockAssessment(context.Background(), ownerId, positionId)
	require.NoError(t, err)
	assert.Equal(t, 15, res.Balance)

	history, err := wallet.History(context.Background(), ownerId)
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, fmt.Sprintf("assessment-unlock:%s", positionId), history.History[0].Reason)
	assert.Equal(t, 10, history.History[0].Amount)
}
