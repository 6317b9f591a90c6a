package market

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceBook_SeededLookup(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(map[string]float64{"ASM300": 2500, "AF15": 185000})

	p, err := b.Price("ASM300")
	require.NoError(t, err)
	assert.InDelta(t, 2500, p, 1e-9)

	// Repeated reads return the same value until the next write.
	for i := 0; i < 5; i++ {
		again, err := b.Price("ASM300")
		require.NoError(t, err)
		assert.Equal(t, p, again)
	}
}

func TestPriceBook_UnknownSymbol(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(map[string]float64{"ASM300": 2500})

	_, err := b.Price("NOPE")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestPriceBook_SetPrice(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(map[string]float64{"ASM300": 2500})

	require.NoError(t, b.SetPrice("ASM300", 2750))
	p, err := b.Price("ASM300")
	require.NoError(t, err)
	assert.InDelta(t, 2750, p, 1e-9)

	// Writes may introduce symbols the seed never had.
	require.NoError(t, b.SetPrice("NEWKEY", 10))
	p, err = b.Price("NEWKEY")
	require.NoError(t, err)
	assert.InDelta(t, 10, p, 1e-9)
}

func TestPriceBook_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewPriceBook(map[string]float64{"ASM300": 2500})
			before := b.LastUpdate()

			err := b.SetPrice("ASM300", tt.price)
			assert.ErrorIs(t, err, ErrInvalidPrice)

			// Cache and update stamp unchanged on failure.
			p, perr := b.Price("ASM300")
			require.NoError(t, perr)
			assert.InDelta(t, 2500, p, 1e-9)
			assert.Equal(t, before, b.LastUpdate())
		})
	}
}

func TestPriceBook_LastUpdateAdvances(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(map[string]float64{"ASM300": 2500})
	before := b.LastUpdate()
	assert.False(t, before.IsZero())

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, b.SetPrice("ASM300", 2600))

	assert.True(t, b.LastUpdate().After(before))
}

func TestPriceBook_AllPricesIsACopy(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(map[string]float64{"ASM300": 2500, "AF15": 185000})

	all := b.AllPrices()
	require.Len(t, all, 2)

	all["ASM300"] = -1
	delete(all, "AF15")

	p, err := b.Price("ASM300")
	require.NoError(t, err)
	assert.InDelta(t, 2500, p, 1e-9)

	_, err = b.Price("AF15")
	assert.NoError(t, err)
}

func TestPriceBook_SeedIsCopied(t *testing.T) {
	t.Parallel()

	seed := map[string]float64{"ASM300": 2500}
	b := NewPriceBook(seed)
	seed["ASM300"] = 1

	p, err := b.Price("ASM300")
	require.NoError(t, err)
	assert.InDelta(t, 2500, p, 1e-9)
}

func TestPriceBook_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	b := NewPriceBook(SeedPrices())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 1; j <= 100; j++ {
				_ = b.SetPrice("ASM300", float64(j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if p, err := b.Price("ASM300"); err == nil {
					// A reader must never observe a half-written price.
					assert.Greater(t, p, 0.0)
				}
				_ = b.AllPrices()
			}
		}()
	}
	wg.Wait()
}
