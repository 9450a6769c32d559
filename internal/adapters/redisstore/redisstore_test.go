package redisstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedReport struct {
	NetProfit decimal.Decimal `json:"netProfit"`
	Months    []int           `json:"months"`
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestReportCache_SetGet(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	var miss cachedReport
	found, err := cache.Get(ctx, gen, "income-statement", "2024", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	want := cachedReport{NetProfit: decimal.RequireFromString("1250.75"), Months: []int{0, 1}}
	require.NoError(t, cache.Set(ctx, gen, "income-statement", "2024", want))

	var got cachedReport
	found, err = cache.Get(ctx, gen, "income-statement", "2024", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, want.NetProfit.Equal(got.NetProfit))
	assert.Equal(t, want.Months, got.Months)

	found, err = cache.Get(ctx, gen, "monthly-trend", "2024", &got)
	require.NoError(t, err)
	assert.False(t, found, "kinds must not share keys")
}

func TestReportCache_InvalidateBumpsGeneration(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, "monthly-trend", "2024|", cachedReport{}))
	assert.True(t, mr.Exists("bizledger:reports:0:monthly-trend:2024|"))

	require.NoError(t, cache.Invalidate(ctx))
	raw, err := mr.Get(generationKey)
	require.NoError(t, err)
	assert.Equal(t, "1", raw)

	gen, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	var got cachedReport
	found, err := cache.Get(ctx, gen, "monthly-trend", "2024|", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, gen, "monthly-trend", "2024|", cachedReport{}))
	assert.True(t, mr.Exists("bizledger:reports:1:monthly-trend:2024|"))
}

func TestReportCache_ReportBuiltBeforeInvalidateStaysUnreachable(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	ctx := context.Background()

	// A report misses and starts loading at generation 0.
	gen, err := cache.Generation(ctx)
	require.NoError(t, err)
	var got cachedReport
	found, err := cache.Get(ctx, gen, "income-statement", "all", &got)
	require.NoError(t, err)
	require.False(t, found)

	// An entry is posted while the report is being built.
	require.NoError(t, cache.Invalidate(ctx))

	// The report built from the older data is stored under the generation it saw.
	require.NoError(t, cache.Set(ctx, gen, "income-statement", "all", cachedReport{NetProfit: decimal.NewFromInt(100)}))

	current, err := cache.Generation(ctx)
	require.NoError(t, err)
	found, err = cache.Get(ctx, current, "income-statement", "all", &got)
	require.NoError(t, err)
	assert.False(t, found, "a report built before the posting must not be served")
}

func TestReportCache_EntriesExpire(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewReportCache(client, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, "project-report", "p1|2024", cachedReport{}))
	mr.FastForward(31 * time.Second)

	var got cachedReport
	found, err := cache.Get(ctx, 0, "project-report", "p1|2024", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReportCache_CorruptPayload(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	require.NoError(t, mr.Set("bizledger:reports:0:income-statement:x", "{not json"))

	var got cachedReport
	found, err := cache.Get(context.Background(), 0, "income-statement", "x", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestReportCache_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	mr.Close()

	_, err := cache.Generation(context.Background())
	assert.Error(t, err)
	assert.Error(t, cache.Invalidate(context.Background()))
}

func TestJournalPublisher_PublishJournalPosted(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, JournalEventsChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	fixed := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	publisher := NewJournalPublisher(client)
	publisher.now = func() time.Time { return fixed }

	project := "proj-7"
	entry := domain.JournalEntry{
		EntryID:          "e1",
		EntryDate:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ReferenceNumber:  "INV-001",
		ProjectID:        &project,
		RecordedByUserID: "admin",
		Lines: []domain.JournalLine{
			{AccountID: "kas", Amount: decimal.NewFromInt(500), IsDebit: true},
			{AccountID: "rev", Amount: decimal.NewFromInt(500)},
		},
	}
	require.NoError(t, publisher.PublishJournalPosted(ctx, entry))

	select {
	case msg := <-sub.Channel():
		var event JournalPostedEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, EventTypeJournalPosted, event.EventType)
		assert.Equal(t, "e1", event.EntryID)
		assert.Equal(t, "INV-001", event.ReferenceNumber)
		require.NotNil(t, event.ProjectID)
		assert.Equal(t, project, *event.ProjectID)
		assert.Nil(t, event.InvoiceID)
		assert.True(t, decimal.NewFromInt(500).Equal(event.TotalAmount))
		assert.Equal(t, 2, event.LineCount)
		assert.True(t, fixed.Equal(event.Timestamp))
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestNewClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()
}
