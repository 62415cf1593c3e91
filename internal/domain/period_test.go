package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Period
		wantErr bool
	}{
		{
			name:  "upper case token",
			token: "JAN-2025",
			want:  Period{Year: 2025, Month: time.January},
		},
		{
			name:  "lower case month",
			token: "dec-2021",
			want:  Period{Year: 2021, Month: time.December},
		},
		{
			name:  "mixed case month",
			token: "Sep-2024",
			want:  Period{Year: 2024, Month: time.September},
		},
		{
			name:  "surrounding whitespace",
			token: "  MAR-2025  ",
			want:  Period{Year: 2025, Month: time.March},
		},
		{
			name:    "unknown month abbreviation",
			token:   "XXX-2025",
			wantErr: true,
		},
		{
			name:    "full month name",
			token:   "JANUARY-2025",
			wantErr: true,
		},
		{
			name:    "missing year",
			token:   "JAN-",
			wantErr: true,
		},
		{
			name:    "two digit year",
			token:   "JAN-25",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, EINVALID, ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "JAN-2025", Period{Year: 2025, Month: time.January}.String())
	assert.Equal(t, "DEC-2021", Period{Year: 2021, Month: time.December}.String())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "January 2025", Period{Year: 2025, Month: time.January}.Label())
	assert.Equal(t, "September 2024", Period{Year: 2024, Month: time.September}.Label())
}

func TestPeriodSortKey(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   int
	}{
		{"january 2010", Period{Year: 2010, Month: time.January}, 201001},
		{"december 2021", Period{Year: 2021, Month: time.December}, 202112},
		{"june 2025", Period{Year: 2025, Month: time.June}, 202506},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.SortKey())
		})
	}
}

func TestPeriodNext(t *testing.T) {
	assert.Equal(t, Period{Year: 2025, Month: time.February}, Period{Year: 2025, Month: time.January}.Next())
	assert.Equal(t, Period{Year: 2026, Month: time.January}, Period{Year: 2025, Month: time.December}.Next())
}

func TestAvailablePeriods(t *testing.T) {
	min := Period{Year: 2025, Month: time.January}

	t.Run("excludes current month", func(t *testing.T) {
		set := AvailablePeriods(min, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 11, set.Len())
		assert.True(t, set.Contains("JAN-2025"))
		assert.True(t, set.Contains("NOV-2025"))
		assert.False(t, set.Contains("DEC-2025"))
	})

	t.Run("empty when now is the minimum month", func(t *testing.T) {
		set := AvailablePeriods(min, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Contains("JAN-2025"))
	})

	t.Run("spans year boundary", func(t *testing.T) {
		set := AvailablePeriods(Period{Year: 2024, Month: time.November}, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, []Period{
			{Year: 2024, Month: time.November},
			{Year: 2024, Month: time.December},
			{Year: 2025, Month: time.January},
		}, set.Periods())
	})

	t.Run("contains matches case-insensitively", func(t *testing.T) {
		set := AvailablePeriods(min, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

		assert.True(t, set.Contains("jan-2025"))
		assert.True(t, set.Contains(" May-2025 "))
		assert.False(t, set.Contains("JUN-2025"))
	})

	t.Run("label lookup", func(t *testing.T) {
		set := AvailablePeriods(min, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, "March 2025", set.Label("MAR-2025"))
		assert.Equal(t, "", set.Label("DEC-2025"))
	})
}
