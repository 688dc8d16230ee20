package market

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"networth/core/feed/mocks"
	"networth/core/nbt"
	"networth/feature/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pageURL(p int) string {
	return testFeed.AuctionsURL(p)
}

func newTestAuctionHouse(t *testing.T, fetcher *mocks.Fetcher, clock *testClock) *AuctionHouse {
	t.Helper()
	a := newAuctionHouse(context.Background(), fetcher, item.NewCodec(zap.NewNop()), testFeed, zap.NewNop(), clock.Now)
	t.Cleanup(a.Close)
	return a
}

func singlePage(fetcher *mocks.Fetcher, listings ...listing) {
	fetcher.On("Get", mock.Anything, pageURL(0)).Return(auctionBody(0, 1, listings...), nil)
}

func TestAuctionHouse_RefreshWalksPages(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, pageURL(0)).Return(auctionBody(0, 3,
		listing{id: "X", price: 100, bin: true},
		listing{id: "X", price: 10, bin: false},
	), nil)
	fetcher.On("Get", mock.Anything, pageURL(1)).Return(auctionBody(1, 3,
		listing{id: "X", price: 50, bin: true},
		listing{id: "Y", price: 5, bin: true},
	), nil)
	fetcher.On("Get", mock.Anything, pageURL(2)).Return(auctionBody(2, 3,
		listing{id: "", price: 1, bin: true},
	), nil)

	a := newTestAuctionHouse(t, fetcher, newTestClock())

	assert.Equal(t, 3, a.Len(), "bid auctions and undecodable items are dropped")
	fetcher.AssertNumberOfCalls(t, "Get", 3)

	cheapest, ok := a.FindCheapest("X")
	require.True(t, ok)
	assert.Equal(t, 50.0, cheapest.Price)
}

func TestAuctionHouse_FindCheapest(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	singlePage(fetcher,
		listing{id: "TALISMAN_ENRICHMENT_MAGIC_FIND", price: 300000, bin: true},
		listing{id: "TALISMAN_ENRICHMENT_STRENGTH", price: 250000, bin: true},
		listing{id: "OLD_TALISMAN_ENRICHMENT_X", price: 1, bin: true},
		listing{id: "DYE_AQUAMARINE", price: 9000, bin: true, attrs: nbt.Compound{"modifier": "first"}},
		listing{id: "DYE_AQUAMARINE", price: 9000, bin: true, attrs: nbt.Compound{"modifier": "second"}},
		listing{id: "[", price: 7, bin: true},
	)
	a := newTestAuctionHouse(t, fetcher, newTestClock())

	t.Run("Pattern", func(t *testing.T) {
		got, ok := a.FindCheapest("TALISMAN_ENRICHMENT_[A-Z_]+")
		require.True(t, ok)
		assert.Equal(t, "TALISMAN_ENRICHMENT_STRENGTH", got.Item.ID)
		assert.Equal(t, 250000.0, got.Price)
	})

	t.Run("FirstMinimumWins", func(t *testing.T) {
		got, ok := a.FindCheapest("DYE_AQUAMARINE")
		require.True(t, ok)
		assert.Equal(t, "first", got.Item.Reforge)
	})

	t.Run("InvalidPatternMatchesExactly", func(t *testing.T) {
		got, ok := a.FindCheapest("[")
		require.True(t, ok)
		assert.Equal(t, 7.0, got.Price)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, ok := a.FindCheapest("HYPERION")
		assert.False(t, ok)
	})

	t.Run("UnbalancedPatternStaysAnchored", func(t *testing.T) {
		_, ok := a.FindCheapest("TALISMAN)|(STRENGTH")
		assert.False(t, ok)
	})

	t.Run("AlternationMatchesWholeID", func(t *testing.T) {
		got, ok := a.FindCheapest("DYE_AQUA|DYE_AQUAMARINE")
		require.True(t, ok)
		assert.Equal(t, "DYE_AQUAMARINE", got.Item.ID)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, _ := a.FindCheapest("DYE_.*")
		for range 5 {
			again, _ := a.FindCheapest("DYE_.*")
			assert.Equal(t, first, again)
		}
	})
}

func TestAuctionHouse_PatternMemo(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	singlePage(fetcher, listing{id: "HYPERION", price: 1, bin: true})
	a := newTestAuctionHouse(t, fetcher, newTestClock())

	memoised := func() int {
		n := 0
		a.patterns.Range(func(_, _ any) bool {
			n++
			return true
		})
		return n
	}

	for i := range 2 * maxPatterns {
		a.FindCheapest(fmt.Sprintf("ITEM_%d", i))
	}
	assert.Zero(t, memoised(), "literal ids are not memoised")

	for i := range 2 * maxPatterns {
		a.FindCheapest(fmt.Sprintf("ITEM_%d.*", i))
	}
	assert.Equal(t, maxPatterns, memoised())

	_, ok := a.FindCheapest("HYPER.*")
	assert.True(t, ok, "patterns past the bound still match")
}

func TestAuctionHouse_FindClosest(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	singlePage(fetcher,
		listing{id: "HYPERION", price: 900, bin: true, attrs: nbt.Compound{"modifier": "heroic"}},
		listing{id: "HYPERION", price: 1000, bin: true},
		listing{id: "HYPERION", price: 1200, bin: true},
	)
	a := newTestAuctionHouse(t, fetcher, newTestClock())

	t.Run("PerfectMatchShortCircuits", func(t *testing.T) {
		got, ok := a.FindClosest(item.Item{ID: "HYPERION", Count: 1})
		require.True(t, ok)
		assert.Equal(t, 1000.0, got.Price)
	})

	t.Run("HighestScoreFirstSeen", func(t *testing.T) {
		got, ok := a.FindClosest(item.Item{ID: "HYPERION", Count: 1, Reforge: "fabled"})
		require.True(t, ok)
		assert.Equal(t, 900.0, got.Price)
	})

	t.Run("OtherIDsNeverMatch", func(t *testing.T) {
		_, ok := a.FindClosest(item.Item{ID: "VALKYRIE", Count: 1})
		assert.False(t, ok)
	})
}

func TestAuctionHouse_PageFailureKeepsSnapshot(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, pageURL(0)).Return(auctionBody(0, 2, listing{id: "X", price: 1, bin: true}), nil)
	fetcher.On("Get", mock.Anything, pageURL(1)).Return(auctionBody(1, 2, listing{id: "X", price: 2, bin: true}), nil).Once()
	fetcher.On("Get", mock.Anything, pageURL(1)).Return(nil, assert.AnError)

	clock := newTestClock()
	a := newTestAuctionHouse(t, fetcher, clock)
	require.Equal(t, 2, a.Len())
	refreshed := a.LastRefresh()

	clock.Advance(time.Minute)
	err := a.Refresh(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, refreshed, a.LastRefresh())
}

func TestAuctionHouse_InitialFailureLeavesEmpty(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, pageURL(0)).Return([]byte(`{"success":false}`), nil)

	a := newTestAuctionHouse(t, fetcher, newTestClock())

	assert.Zero(t, a.Len())
	_, ok := a.FindCheapest("X")
	assert.False(t, ok)
}

func TestAuctionHouse_StaleLookupRefreshesInBackground(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, pageURL(0)).Return(auctionBody(0, 1, listing{id: "X", price: 100, bin: true}), nil).Once()
	fetcher.On("Get", mock.Anything, pageURL(0)).
		After(100*time.Millisecond).
		Return(auctionBody(0, 1, listing{id: "X", price: 40, bin: true}), nil)

	clock := newTestClock()
	a := newTestAuctionHouse(t, fetcher, clock)
	clock.Advance(2 * time.Hour)

	start := time.Now()
	got, ok := a.FindCheapest("X")
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Price, "stale snapshot is served while refreshing")
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	assert.Eventually(t, func() bool {
		got, _ := a.FindCheapest("X")
		return got.Price == 40
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAuctionHouse_RefreshRequestsAreBounded(t *testing.T) {
	var refreshes atomic.Int32

	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, pageURL(0)).Return(auctionBody(0, 1), nil).Once()
	fetcher.On("Get", mock.Anything, pageURL(0)).
		Run(func(mock.Arguments) { refreshes.Add(1) }).
		After(100*time.Millisecond).
		Return(auctionBody(0, 1), nil)

	a := newTestAuctionHouse(t, fetcher, newTestClock())

	for range 50 {
		a.RequestRefresh()
	}
	assert.Eventually(t, func() bool { return refreshes.Load() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(300 * time.Millisecond)

	n := refreshes.Load()
	assert.GreaterOrEqual(t, n, int32(1))
	assert.LessOrEqual(t, n, int32(2), "one running plus at most one queued")
}

func TestAuctionHouse_Close(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	singlePage(fetcher)

	a := newAuctionHouse(context.Background(), fetcher, item.NewCodec(zap.NewNop()), testFeed, zap.NewNop(), newTestClock().Now)
	a.Close()
	a.Close()

	done := make(chan struct{})
	go func() {
		a.RequestRefresh()
		a.RequestRefresh()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RequestRefresh blocked after Close")
	}
}
