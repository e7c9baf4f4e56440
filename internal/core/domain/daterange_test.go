package domain_test

import (
	"testing"
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	base := domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 12)}

	tests := []struct {
		name  string
		other domain.DateRange
		want  bool
	}{
		{
			name:  "identical ranges overlap",
			other: base,
			want:  true,
		},
		{
			name:  "partial overlap at the end",
			other: domain.DateRange{CheckIn: date(2025, 6, 11), CheckOut: date(2025, 6, 14)},
			want:  true,
		},
		{
			name:  "adjacent ranges do not overlap (half-open)",
			other: domain.DateRange{CheckIn: date(2025, 6, 12), CheckOut: date(2025, 6, 14)},
			want:  false,
		},
		{
			name:  "adjacent before does not overlap",
			other: domain.DateRange{CheckIn: date(2025, 6, 8), CheckOut: date(2025, 6, 10)},
			want:  false,
		},
		{
			name:  "contained range overlaps",
			other: domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 11)},
			want:  true,
		},
		{
			name:  "zero range never overlaps",
			other: domain.DateRange{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDateRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       domain.DateRange
		wantErr bool
	}{
		{"valid one-night range", domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 11)}, false},
		{"degenerate same-day range", domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 10)}, true},
		{"inverted range", domain.DateRange{CheckIn: date(2025, 6, 12), CheckOut: date(2025, 6, 10)}, true},
		{"missing check-out", domain.DateRange{CheckIn: date(2025, 6, 10)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	r := domain.NewDateRange(time.Date(2025, 6, 10, 17, 45, 0, 0, time.FixedZone("X", 3*3600)), 2)
	assert.Equal(t, date(2025, 6, 10), r.CheckIn)
	assert.Equal(t, date(2025, 6, 12), r.CheckOut)
	assert.Equal(t, 2, r.Nights())
}

func TestDateRange_Contains(t *testing.T) {
	r := domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 12)}
	assert.True(t, r.Contains(date(2025, 6, 10)))
	assert.True(t, r.Contains(date(2025, 6, 11)))
	assert.False(t, r.Contains(date(2025, 6, 12)), "checkout day is outside the half-open range")
	assert.False(t, r.Contains(date(2025, 6, 9)))
}

func TestStay_Validate(t *testing.T) {
	valid := domain.Stay{
		Guest:     domain.Guest{Name: "Ali", IDDocument: "A123"},
		Nights:    2,
		Period:    domain.DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 12)},
		Paid:      decimal.NewFromInt(500),
		TotalCost: decimal.NewFromInt(1000),
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Stay)
		wantErr string
	}{
		{"valid stay", func(s *domain.Stay) {}, ""},
		{"missing guest name", func(s *domain.Stay) { s.Guest.Name = "  " }, "guest name is required"},
		{"missing id document", func(s *domain.Stay) { s.Guest.IDDocument = "" }, "ID/passport"},
		{"zero nights", func(s *domain.Stay) { s.Nights = 0 }, "nights"},
		{"negative total cost", func(s *domain.Stay) { s.TotalCost = decimal.NewFromInt(-1) }, "total cost"},
		{"negative paid", func(s *domain.Stay) { s.Paid = decimal.NewFromInt(-1) }, "paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestStay_Remaining(t *testing.T) {
	s := domain.Stay{Paid: decimal.NewFromInt(400), TotalCost: decimal.NewFromInt(1000)}
	assert.True(t, s.Remaining().Equal(decimal.NewFromInt(600)))
}
