package forecast

// State is a step of a page load.
//
//	Idle -> LocationRequested -> LocationUnsupported
//	                          -> LocationDenied
//	                          -> LocationAcquired -> FetchInFlight -> FetchFailed
//	                                                               -> FetchSucceeded -> Rendered
type State int

const (
	StateIdle State = iota
	StateLocationRequested
	StateLocationUnsupported
	StateLocationDenied
	StateLocationAcquired
	StateFetchInFlight
	StateFetchFailed
	StateFetchSucceeded
	StateRendered
)

var stateNames = map[State]string{
	StateIdle:                "idle",
	StateLocationRequested:   "location_requested",
	StateLocationUnsupported: "location_unsupported",
	StateLocationDenied:      "location_denied",
	StateLocationAcquired:    "location_acquired",
	StateFetchInFlight:       "fetch_in_flight",
	StateFetchFailed:         "fetch_failed",
	StateFetchSucceeded:      "fetch_succeeded",
	StateRendered:            "rendered",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether the page load ends in s.
func (s State) Terminal() bool {
	switch s {
	case StateLocationUnsupported, StateLocationDenied, StateFetchFailed, StateRendered:
		return true
	}
	return false
}
