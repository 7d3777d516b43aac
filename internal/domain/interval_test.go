package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return iv
}

func TestNewTimeInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid", "10:00", "11:00", false},
		{"one minute", "10:00", "10:01", false},
		{"start equals end", "10:00", "10:00", true},
		{"start after end", "12:00", "10:00", true},
		{"malformed start", "25:00", "11:00", true},
		{"malformed end", "10:00", "1100", true},
		{"empty start", "", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeInterval(types.TimeString(tt.start), types.TimeString(tt.end))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInterval)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{"identical", [2]string{"10:00", "11:00"}, [2]string{"10:00", "11:00"}, true},
		{"partial overlap", [2]string{"10:00", "11:00"}, [2]string{"10:30", "11:30"}, true},
		{"contained", [2]string{"10:00", "12:00"}, [2]string{"10:30", "11:00"}, true},
		{"containing", [2]string{"10:30", "11:00"}, [2]string{"10:00", "12:00"}, true},
		{"touching end-start", [2]string{"10:00", "11:00"}, [2]string{"11:00", "12:00"}, false},
		{"touching start-end", [2]string{"11:00", "12:00"}, [2]string{"10:00", "11:00"}, false},
		{"disjoint", [2]string{"08:00", "09:00"}, [2]string{"10:00", "11:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustInterval(t, tt.a[0], tt.a[1])
			b := mustInterval(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestCompareStart(t *testing.T) {
	early := mustInterval(t, "09:00", "10:00")
	late := mustInterval(t, "14:00", "15:00")
	sameStart := mustInterval(t, "09:00", "12:00")

	assert.Equal(t, -1, CompareStart(early, late))
	assert.Equal(t, 1, CompareStart(late, early))
	assert.Equal(t, 0, CompareStart(early, sameStart))
}

func TestBookingStateMachine(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingOccupiesSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).OccupiesSlot())
	assert.True(t, (&Booking{Status: StatusApproved}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusRejected}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesSlot())
}

func TestBookingDisplayName(t *testing.T) {
	assert.Equal(t, "Jordan Reyes", (&Booking{FullName: "Jordan Reyes", Email: "jr@cst.edu"}).DisplayName())
	assert.Equal(t, "jr@cst.edu", (&Booking{Email: "jr@cst.edu"}).DisplayName())
	assert.Equal(t, "Anonymous", (&Booking{}).DisplayName())
}
