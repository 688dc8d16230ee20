package market

import (
	"sync/atomic"
	"time"

	"networth/core/nbt"
	"networth/feature/item/itemtest"

	"github.com/goccy/go-json"
)

// testClock is a settable clock safe for concurrent use.
type testClock struct {
	t atomic.Int64
}

func newTestClock() *testClock {
	c := &testClock{}
	c.t.Store(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).UnixNano())
	return c
}

func (c *testClock) Now() time.Time {
	return time.Unix(0, c.t.Load()).UTC()
}

func (c *testClock) Advance(d time.Duration) {
	c.t.Add(int64(d))
}

func bazaarBody(prices map[string][2]float64) []byte {
	products := map[string]any{}
	for id, p := range prices {
		products[id] = map[string]any{
			"product_id":   id,
			"quick_status": map[string]any{"buyPrice": p[0], "sellPrice": p[1]},
		}
	}
	body, _ := json.Marshal(map[string]any{"success": true, "products": products})
	return body
}

type listing struct {
	id    string
	price float64
	bin   bool
	attrs nbt.Compound
}

func auctionBody(page, total int, listings ...listing) []byte {
	auctions := make([]map[string]any, 0, len(listings))
	for _, l := range listings {
		attrs := nbt.Compound{"id": l.id}
		for k, v := range l.attrs {
			attrs[k] = v
		}
		auctions = append(auctions, map[string]any{
			"uuid":         "0000",
			"bin":          l.bin,
			"item_bytes":   itemtest.ItemBytes(attrs, 1),
			"starting_bid": l.price,
		})
	}
	body, _ := json.Marshal(map[string]any{
		"success":    true,
		"page":       page,
		"totalPages": total,
		"auctions":   auctions,
	})
	return body
}
