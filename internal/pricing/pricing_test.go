package pricing

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tcgprice/internal/model"
)

var testHeader = model.NewHeader([]string{
	model.ColProductName,
	model.ColLowPrice,
	model.ColMarketPrice,
	model.ColMarketplacePrice,
})

func newRecord(t *testing.T, name, low string) *model.Record {
	t.Helper()
	r, err := model.NewRecord(testHeader, []string{name, low, "0.60", ""})
	require.NoError(t, err)
	return r
}

func TestApply_BelowFloorUsesFloor(t *testing.T) {
	r := newRecord(t, "Bolt", "0.50")

	out, err := Apply(r, 1.00, 2)
	require.NoError(t, err)

	v, _ := r.Get(model.ColMarketplacePrice)
	assert.Equal(t, "1.00", v)
	assert.True(t, out.Floored)
	assert.Equal(t, "1.00", out.Price)
}

func TestApply_AboveFloorUsesLowPrice(t *testing.T) {
	r := newRecord(t, "Bolt", "2.50")

	out, err := Apply(r, 1.00, 2)
	require.NoError(t, err)

	v, _ := r.Get(model.ColMarketplacePrice)
	assert.Equal(t, "2.50", v)
	assert.False(t, out.Floored)
	assert.Equal(t, []string{"Bolt", "2.50", "0.60", "2.50"}, r.Fields(), "only the marketplace price changes")
}

func TestApply_MalformedLowPrice(t *testing.T) {
	tests := []struct {
		name string
		low  string
	}{
		{name: "empty", low: ""},
		{name: "text", low: "N/A"},
		{name: "currency symbol", low: "$1.00"},
		{name: "hex float", low: "0x1p4"},
		{name: "signed hex float", low: "-0X10"},
		{name: "double sign", low: "+-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(t, "Shock", tt.low)

			_, err := Apply(r, 1, 3)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, 3, rowErr.Row)
			assert.Equal(t, "Shock", rowErr.ProductName)
			assert.Equal(t, "Malformed or missing TCG Low Price at row 3 with name Shock.", err.Error())

			v, _ := r.Get(model.ColMarketplacePrice)
			assert.Empty(t, v, "a failed row must not be modified")
		})
	}
}

func TestApply_AbsentLowPriceColumn(t *testing.T) {
	h := model.NewHeader([]string{model.ColMarketPrice, model.ColMarketplacePrice})
	r, err := model.NewRecord(h, []string{"0.60", ""})
	require.NoError(t, err)

	_, err = Apply(r, 1, 2)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, "", rowErr.ProductName)
}

func TestApply_ShortRowIsMalformed(t *testing.T) {
	r, err := model.NewRecord(testHeader, []string{"Bolt"})
	require.NoError(t, err)

	_, err = Apply(r, 1, 5)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 5, rowErr.Row)
}

func TestApply_MissingTargetColumn(t *testing.T) {
	h := model.NewHeader([]string{model.ColProductName, model.ColLowPrice})
	r, err := model.NewRecord(h, []string{"Bolt", "1.00"})
	require.NoError(t, err)

	_, err = Apply(r, 1, 2)
	require.Error(t, err)

	var rowErr *RowError
	assert.False(t, errors.As(err, &rowErr))
}

func TestClampAndFormat(t *testing.T) {
	tests := []struct {
		low   string
		floor float64
		want  string
	}{
		{low: "0.5", floor: 1, want: "1.00"},
		{low: "1", floor: 1, want: "1.00"},
		{low: "1.005", floor: 0, want: "1.00"},
		{low: "12.3456", floor: 0.25, want: "12.35"},
		{low: " 3.1 ", floor: 0, want: "3.10"},
		{low: "1e2", floor: 0, want: "100.00"},
		{low: "-0", floor: 0, want: "0.00"},
		{low: "-0.0", floor: -1, want: "0.00"},
		{low: "-5", floor: -2.5, want: "-2.50"},
		{low: "nan", floor: 0.1, want: "0.10"},
		{low: "inf", floor: 1, want: "inf"},
		{low: "1e400", floor: 1, want: "inf"},
		{low: "-1e400", floor: 1, want: "1.00"},
		{low: "1e-400", floor: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.low, func(t *testing.T) {
			low, err := ParsePrice(tt.low)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(Clamp(low, tt.floor)))
		})
	}
}

func TestClamp_IsMax(t *testing.T) {
	values := []float64{-10, -0.01, 0, 0.004, 0.5, 0.99, 1, 1.01, 2.5, 1000}
	floors := []float64{-1, 0, 0.25, 1, 5}

	for _, v := range values {
		for _, f := range floors {
			got := Format(Clamp(v, f))
			want := strconv.FormatFloat(math.Max(v, f), 'f', 2, 64)
			if want == "-0.00" {
				want = "0.00"
			}
			assert.Equal(t, want, got, "value=%v floor=%v", v, f)
		}
	}
}
