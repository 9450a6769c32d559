package services_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockJournalRepository) ListJournalEntriesInRange(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockJournalPublisher records published entries.
type MockJournalPublisher struct {
	mock.Mock
}

func (m *MockJournalPublisher) PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// memoryReportCache is a map-backed report cache that round-trips values
// through JSON like the Redis implementation does.
type memoryReportCache struct {
	items       map[string][]byte
	gen         int64
	gets        int
	hits        int
	invalidated int
}

func newMemoryReportCache() *memoryReportCache {
	return &memoryReportCache{items: map[string][]byte{}}
}

func memoryKey(gen int64, kind, params string) string {
	return fmt.Sprintf("%d#%s#%s", gen, kind, params)
}

func (c *memoryReportCache) Generation(context.Context) (int64, error) {
	return c.gen, nil
}

func (c *memoryReportCache) Get(_ context.Context, gen int64, kind, params string, dest any) (bool, error) {
	c.gets++
	raw, ok := c.items[memoryKey(gen, kind, params)]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryReportCache) Set(_ context.Context, gen int64, kind, params string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[memoryKey(gen, kind, params)] = raw
	return nil
}

func (c *memoryReportCache) Invalidate(context.Context) error {
	c.invalidated++
	c.gen++
	c.items = map[string][]byte{}
	return nil
}
