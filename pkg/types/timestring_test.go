package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())

	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("24:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("09:60").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("morning").Validate(), ErrInvalidTimeString)
}

func TestTimeStringMinutesOfDay(t *testing.T) {
	m, err := TimeString("10:30").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").MinutesOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("19:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("21:00"), ts)

	// wraps past midnight
	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), ts)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("12:00"))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:30")))
	assert.Equal(t, TimeString("13:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("15:00"), ts)

	assert.Error(t, ts.Scan(42))
}
