package currency

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const DefaultRatesTTL = time.Hour

type cacheEntry struct {
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// RateCache - мемоизация курсов с TTL по базовой валюте. Срок жизни записи
// проверяется в момент обращения; истекшая запись перезапрашивается у клиента.
type RateCache struct {
	mu      sync.Mutex
	client  RatesClient
	ttl     time.Duration
	entries map[string]cacheEntry

	// now подменяется в тестах.
	now func() time.Time
}

func NewRateCache(client RatesClient, ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRatesTTL
	}
	return &RateCache{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Rates возвращает курсы для базовой валюты base, из кэша при живой записи.
func (c *RateCache) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[base]; ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.rates, nil
	}

	resp, err := c.client.GetRates(ctx, base)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch rates for %s", base)
	}

	c.entries[base] = cacheEntry{rates: resp.Rates, fetchedAt: c.now()}
	return resp.Rates, nil
}

// Convert переводит amount из валюты from в to по текущему курсу. Неизвестная
// целевая валюта - ErrUnknownCurrency.
func (c *RateCache) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rates, err := c.Rates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, ErrUnknownCurrency
	}
	return amount.Mul(rate), nil
}
