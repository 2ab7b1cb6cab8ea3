package models

// DashboardState enumerates the mutually exclusive visual states of the dashboard.
type DashboardState string

const (
	DashboardIdle    DashboardState = "idle"
	DashboardLoading DashboardState = "loading"
	DashboardError   DashboardState = "error"
	DashboardSuccess DashboardState = "success"
)

// DashboardView is a point-in-time copy of a session's dashboard.
type DashboardView struct {
	State          DashboardState `json:"state"`
	Amount         string         `json:"amount"`
	FromCurrency   string         `json:"fromCurrency"`
	ToCurrency     string         `json:"toCurrency"`
	Error          string         `json:"error,omitempty"`
	Result         *float64       `json:"result,omitempty"`
	ResultCurrency string         `json:"resultCurrency,omitempty"`
	Generation     uint64         `json:"generation"`
	Currencies     []Currency     `json:"currencies"`
	CatalogError   string         `json:"catalogError,omitempty"`
	FixedPair      bool           `json:"fixedPair"`
}
