package models

// CartLine is a snapshot of product display data taken at add-time; it is
// not re-synced if the catalog changes later.
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}
