package geolocation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReported_Locate(t *testing.T) {
	ctx := context.Background()

	coords, err := FromReport(Report{Status: StatusOK, Latitude: 40.0, Longitude: -75.0}).Locate(ctx)
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 40.0, Longitude: -75.0}, coords)

	_, err = FromReport(Report{Status: StatusUnsupported}).Locate(ctx)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = FromReport(Report{Status: StatusDenied}).Locate(ctx)
	assert.ErrorIs(t, err, ErrDenied)
	var failure *FailureError
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "permission denied", failure.Reason)

	_, err = FromReport(Report{Status: StatusError, Reason: "position unavailable"}).Locate(ctx)
	assert.NotErrorIs(t, err, ErrDenied)
	assert.EqualError(t, err, "geolocation failed: position unavailable")
}

func TestReported_LocateOutOfRange(t *testing.T) {
	_, err := FromReport(Report{Status: StatusOK, Latitude: 91}).Locate(context.Background())

	var failure *FailureError
	require.True(t, errors.As(err, &failure))
	assert.Contains(t, failure.Reason, "latitude must be between -90 and 90")
}

func TestReported_LocateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromReport(Report{Status: StatusOK}).Locate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusOK, false},
		{"ok", StatusOK, false},
		{" Unsupported ", StatusUnsupported, false},
		{"denied", StatusDenied, false},
		{"error", StatusError, false},
		{"maybe", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCoordinates_Validate(t *testing.T) {
	assert.NoError(t, Coordinates{Latitude: 90, Longitude: -180}.Validate())
	assert.ErrorIs(t, Coordinates{Latitude: -90.1}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Longitude: 180.5}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Latitude: math.NaN()}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Longitude: math.NaN()}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Latitude: math.Inf(-1)}.Validate(), ErrInvalidCoordinates)
}

func TestStaticAndFunc(t *testing.T) {
	ctx := context.Background()

	coords, err := Static{Latitude: 52.52, Longitude: 13.41}.Locate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 52.52, coords.Latitude)

	calls := 0
	l := LocatorFunc(func(context.Context) (Coordinates, error) {
		calls++
		return Coordinates{}, ErrUnsupported
	})
	_, err = l.Locate(ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, 1, calls)
}
