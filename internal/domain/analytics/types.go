package analytics

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// CountsAsRevenue reports whether money on a booking in this status is recognised as revenue.
func (s BookingStatus) CountsAsRevenue() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCompleted
}

// RevenueStatuses lists the statuses that CountsAsRevenue accepts.
func RevenueStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}
}

type UserType string

func (t UserType) String() string {
	return string(t)
}

// Scope tells whether an aggregator honours the requested window.
type Scope string

const (
	ScopeWindowBounded Scope = "window_bounded"
	ScopeAllTime       Scope = "all_time"
	// ScopeFixedTrailing compares fixed trailing periods that end now, ignoring the requested range.
	ScopeFixedTrailing Scope = "fixed_trailing"
)

func (s Scope) String() string {
	return string(s)
}

const (
	UnknownCity       = "Unknown"
	UncategorizedName = "Uncategorized"
)
