package seats

import (
	"testing"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlane(t *testing.T, rows, cols, businessRows int) *domain.Plane {
	t.Helper()
	plane, err := domain.NewPlane("P1", "B737", rows, cols)
	require.NoError(t, err)
	require.NoError(t, Populate(plane, businessRows, 1000, 1.5))
	return plane
}

func TestPopulate_ClassesAndPrices(t *testing.T) {
	plane := newPlane(t, 5, 4, 2)

	business, ok := plane.Seat(1, 3)
	require.True(t, ok)
	assert.Equal(t, "2D", business.Code)
	assert.Equal(t, domain.SeatClassBusiness, business.Class)
	assert.Equal(t, 1500.0, business.BasePrice)

	economy, ok := plane.Seat(2, 0)
	require.True(t, ok)
	assert.Equal(t, "3A", economy.Code)
	assert.Equal(t, domain.SeatClassEconomy, economy.Class)
	assert.Equal(t, 1000.0, economy.BasePrice)
}

func TestPopulate_ClampsBusinessRows(t *testing.T) {
	all := newPlane(t, 3, 2, 10)
	for _, v := range SeatMap(all) {
		assert.Equal(t, domain.SeatClassBusiness, v.Class, v.Code)
	}

	none := newPlane(t, 3, 2, -4)
	for _, v := range SeatMap(none) {
		assert.Equal(t, domain.SeatClassEconomy, v.Class, v.Code)
	}
}

func TestPopulate_InvalidArguments(t *testing.T) {
	plane, err := domain.NewPlane("P1", "B737", 2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, Populate(plane, 0, -1, 1), domain.ErrValidation)
	assert.ErrorIs(t, Populate(plane, 0, 100, 0), domain.ErrValidation)
	assert.ErrorIs(t, Populate(plane, 0, 100, -2), domain.ErrValidation)
	assert.ErrorIs(t, Populate(nil, 0, 100, 1), domain.ErrValidation)

	wide, err := domain.NewPlane("P2", "A380", 1, MaxColumns+1)
	require.NoError(t, err)
	assert.ErrorIs(t, Populate(wide, 0, 100, 1), domain.ErrValidation)
}

func TestResolve(t *testing.T) {
	plane := newPlane(t, 30, 6, 0)

	testCases := []struct {
		code  string
		found bool
		row   int
		col   int
	}{
		{code: "1A", found: true, row: 0, col: 0},
		{code: "14C", found: true, row: 13, col: 2},
		{code: " 30f ", found: true, row: 29, col: 5},
		{code: "31A", found: false},
		{code: "1G", found: false},
		{code: "0A", found: false},
		{code: "-1A", found: false},
		{code: "A", found: false},
		{code: "", found: false},
		{code: "AB", found: false},
		{code: "12", found: false},
		{code: "1Ä", found: false},
		{code: "99Z", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			seat, ok := Resolve(plane, tc.code)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				require.NotNil(t, seat)
				assert.Equal(t, tc.row, seat.Row)
				assert.Equal(t, tc.col, seat.Column)
			} else {
				assert.Nil(t, seat)
			}
		})
	}

	_, ok := Resolve(nil, "1A")
	assert.False(t, ok)
}

func TestCode_RoundTrip(t *testing.T) {
	plane := newPlane(t, 12, 6, 0)
	for _, v := range SeatMap(plane) {
		row, col, ok := Parse(v.Code)
		require.True(t, ok, v.Code)
		assert.Equal(t, v.Row, row)
		assert.Equal(t, v.Column, col)
	}
}

func TestAvailableCount_DecreasesAfterReservation(t *testing.T) {
	plane := newPlane(t, 5, 4, 2)
	before := AvailableCount(plane)
	assert.Equal(t, 20, before)

	seat, ok := Resolve(plane, "3A")
	require.True(t, ok)
	require.NoError(t, seat.MarkReserved())

	assert.Equal(t, before-1, AvailableCount(plane))
	assert.Len(t, Available(plane), before-1)

	bitmap := Occupancy(plane)
	require.Len(t, bitmap, 20)
	assert.True(t, bitmap[2*4+0])
}
