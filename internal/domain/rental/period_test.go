//go:build unit

package rental_test

import (
	"testing"
	"time"

	"riderhub/internal/domain/rental"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, start, end time.Time) rental.Period {
	t.Helper()
	p, err := rental.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestPeriodOverlaps(t *testing.T) {
	base := mustPeriod(t, day(10), day(17))

	cases := []struct {
		name  string
		other rental.Period
		want  bool
	}{
		{"identical range", mustPeriod(t, day(10), day(17)), true},
		{"fully inside", mustPeriod(t, day(12), day(15)), true},
		{"fully containing", mustPeriod(t, day(8), day(20)), true},
		{"overlapping the start", mustPeriod(t, day(8), day(11)), true},
		{"overlapping the end", mustPeriod(t, day(16), day(20)), true},
		{"touching at the end boundary", mustPeriod(t, day(17), day(20)), false},
		{"touching at the start boundary", mustPeriod(t, day(5), day(10)), false},
		{"entirely before", mustPeriod(t, day(1), day(5)), false},
		{"entirely after", mustPeriod(t, day(20), day(25)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestNewPeriod(t *testing.T) {
	t.Run("bounds are truncated to UTC dates", func(t *testing.T) {
		p, err := rental.NewPeriod(
			time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC),
			time.Date(2025, 3, 17, 2, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(10), p.Start())
		assert.Equal(t, day(17), p.End())
		assert.Equal(t, 7, p.Days())
	})

	t.Run("empty or inverted range is rejected", func(t *testing.T) {
		_, err := rental.NewPeriod(day(10), day(10))
		assert.ErrorIs(t, err, rental.ErrInvalidPeriod)

		_, err = rental.NewPeriod(day(17), day(10))
		assert.ErrorIs(t, err, rental.ErrInvalidPeriod)
	})
}

func TestDefaultPlans(t *testing.T) {
	want := []rental.Plan{}
	for _, p := range []struct {
		days int32
		rate int64
	}{{7, 3000}, {15, 2800}, {30, 2200}, {45, 2000}, {50, 1800}} {
		plan, err := rental.NewPlan(p.days, rental.MustMoney(p.rate))
		require.NoError(t, err)
		want = append(want, plan)
	}

	if diff := cmp.Diff(want, rental.DefaultPlans(), cmp.AllowUnexported(rental.Plan{}, rental.Money{})); diff != "" {
		t.Errorf("plan catalog mismatch (-want +got):\n%s", diff)
	}
}
