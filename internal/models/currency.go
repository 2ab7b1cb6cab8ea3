package models

// Currency is one entry of the currency catalog.
type Currency struct {
	Code string `json:"code"` // 3-letter code, e.g. USD
	Name string `json:"name"` // Display name, e.g. United States Dollar
}

// Label renders the dropdown text for the currency.
func (c Currency) Label() string {
	return c.Name + " (" + c.Code + ")"
}
