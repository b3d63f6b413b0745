package geolocation

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupported means the platform offers no location capability.
	ErrUnsupported = errors.New("geolocation is not supported")
	// ErrDenied means the user refused to share a location.
	ErrDenied = errors.New("geolocation permission denied")
	// ErrInvalidCoordinates is returned for out of range coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Coordinates are WGS84 degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"40.7128"`
	Longitude float64 `json:"longitude" example:"-74.006"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}

// Validate checks that the coordinates are within range. NaN is never in range.
func (c Coordinates) Validate() error {
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return errors.Wrap(ErrInvalidCoordinates, "latitude must be between -90 and 90")
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return errors.Wrap(ErrInvalidCoordinates, "longitude must be between -180 and 180")
	}
	return nil
}

// FailureError is returned when acquiring the position failed for a reason
// other than an unsupported platform.
type FailureError struct {
	Reason string
	denied bool
}

func (e *FailureError) Error() string {
	if e.Reason == "" {
		return "geolocation failed"
	}
	return "geolocation failed: " + e.Reason
}

func (e *FailureError) Is(target error) bool {
	return e.denied && target == ErrDenied
}

// Locator acquires the current position once.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (Coordinates, error) {
	return f(ctx)
}

// Static always yields the same coordinates.
type Static Coordinates

func (s Static) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	c := Coordinates(s)
	return c, c.Validate()
}

// Status is the outcome the browser reports for its position request.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnsupported Status = "unsupported"
	StatusDenied      Status = "denied"
	StatusError       Status = "error"
)

// ParseStatus accepts the values sent by the page script. An empty value is
// treated as StatusOK.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusOK, nil
	case StatusOK, StatusUnsupported, StatusDenied, StatusError:
		return st, nil
	default:
		return "", errors.Errorf("unknown geolocation status %q", s)
	}
}

// Report is what the page learned from the browser location service.
type Report struct {
	Status    Status
	Latitude  float64
	Longitude float64
	Reason    string
}

// Reported replays a browser report as a Locator.
type Reported struct {
	report Report
}

func FromReport(r Report) *Reported {
	return &Reported{report: r}
}

func (r *Reported) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	switch r.report.Status {
	case StatusUnsupported:
		return Coordinates{}, ErrUnsupported
	case StatusDenied:
		reason := r.report.Reason
		if reason == "" {
			reason = "permission denied"
		}
		return Coordinates{}, &FailureError{Reason: reason, denied: true}
	case StatusError:
		return Coordinates{}, &FailureError{Reason: r.report.Reason}
	}

	c := Coordinates{Latitude: r.report.Latitude, Longitude: r.report.Longitude}
	if err := c.Validate(); err != nil {
		return Coordinates{}, &FailureError{Reason: err.Error()}
	}

	return c, nil
}
