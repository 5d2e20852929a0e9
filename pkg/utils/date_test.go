package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("data válida no formato YYYY-MM-DD", func(t *testing.T) {
		date, err := ParseDate("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("string vazia devolve data zero", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("formato inválido devolve erro", func(t *testing.T) {
		_, err := ParseDate("15/01/2024")
		assert.Error(t, err)
	})
}

func TestDayWindow(t *testing.T) {
	day := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	start, end := DayWindow(day)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999000000, time.UTC), end)

	// vendas de qualquer horário do dia caem dentro da janela
	assert.True(t, !day.Before(start) && !day.After(end))
}
