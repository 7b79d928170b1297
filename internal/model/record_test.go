package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_IndexAndMissing(t *testing.T) {
	h := NewHeader([]string{ColProductName, ColLowPrice, ColMarketplacePrice})

	i, ok := h.Index(ColLowPrice)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, h.Len())

	missing := h.Missing(ColMarketPrice, ColMarketplacePrice, "Rarity")
	assert.Equal(t, []string{ColMarketPrice, "Rarity"}, missing)
	assert.Empty(t, h.Missing(ColProductName))
}

func TestHeader_DuplicateColumnLastWins(t *testing.T) {
	h := NewHeader([]string{"a", "b", "a"})

	i, ok := h.Index("a")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, []string{"a", "b", "a"}, h.Names())
}

func TestHeader_NamesIsACopy(t *testing.T) {
	raw := []string{"x", "y"}
	h := NewHeader(raw)
	raw[0] = "changed"

	names := h.Names()
	names[1] = "changed"

	assert.Equal(t, []string{"x", "y"}, h.Names())
}

func TestRecord_GetSetFields(t *testing.T) {
	h := NewHeader([]string{ColProductName, ColLowPrice, ColMarketplacePrice})
	r, err := NewRecord(h, []string{"Bolt", "0.50", ""})
	require.NoError(t, err)

	v, ok := r.Get(ColLowPrice)
	require.True(t, ok)
	assert.Equal(t, "0.50", v)

	_, ok = r.Get("Rarity")
	assert.False(t, ok, "unknown column should be missing")

	require.True(t, r.Set(ColMarketplacePrice, "1.00"))
	assert.False(t, r.Set("Rarity", "Common"))
	assert.Equal(t, []string{"Bolt", "0.50", "1.00"}, r.Fields())
}

func TestRecord_ShortRow(t *testing.T) {
	h := NewHeader([]string{ColProductName, ColLowPrice, ColMarketPrice, ColMarketplacePrice})
	r, err := NewRecord(h, []string{"Shock"})
	require.NoError(t, err)

	_, ok := r.Get(ColLowPrice)
	assert.False(t, ok, "cells past the end of a short row are absent")
	assert.Equal(t, []string{"Shock", "", "", ""}, r.Fields())

	require.True(t, r.Set(ColMarketplacePrice, "2.00"))
	assert.Equal(t, []string{"Shock", "", "", "2.00"}, r.Fields())
}

func TestRecord_LongRowRejected(t *testing.T) {
	h := NewHeader([]string{"a"})
	_, err := NewRecord(h, []string{"1", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 fields")
}
