package database

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingsMigration_PriceColumn(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/000001_create_holdings.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	column := regexp.MustCompile(`unit_price_at_acquisition\s+NUMERIC\((\d+),(\d+)\)\s+NOT NULL CHECK \(unit_price_at_acquisition (\S+) 0\)`)
	m := column.FindStringSubmatch(sql)
	require.NotNil(t, m, "unit_price_at_acquisition column definition not found")

	assert.Equal(t, "10", m[2], "live quotes are stored with up to 10 places")
	assert.Equal(t, ">", m[3], "unit price must be strictly positive")
}

func TestHoldingsMigration_DownDropsTables(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/000001_create_holdings.down.sql")
	require.NoError(t, err)

	assert.Contains(t, string(raw), "holdings")
	assert.Contains(t, string(raw), "ledger_entries")
}
