package promoservice

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	svc := New(clk)

	promo := svc.Current()

	assert.Equal(t, "Первый займ под 0% для новых клиентов", promo.Title)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), promo.EndsAt)
}

func TestCurrentRollsOverYear(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC))
	svc := New(clk)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), svc.Current().EndsAt)
}

func TestRemaining(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC))
	svc := New(clk)

	assert.Equal(t, time.Hour, svc.Remaining())

	// Once the month ends the next window opens immediately.
	clk.Set(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 29*24*time.Hour, svc.Remaining())
}
