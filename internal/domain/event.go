package domain

// Price is a flat event price for one country partition.
type Price struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Currency string  `json:"currency" yaml:"currency"`
}

// Event is a promoted event from the static catalog. Events are defined at deploy
// time and never created or mutated by any handler.
// swagger:model Event
type Event struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	DisplayDate string `json:"display_date" yaml:"display_date"`
	Time        string `json:"time" yaml:"time"`
	Venue       string `json:"venue" yaml:"venue"`
	Address     string `json:"address" yaml:"address"`
	// Prices maps an exact country name (e.g. "South Africa") to that partition's
	// flat price. DefaultPrice covers the rest of the world.
	Prices       map[string]Price `json:"prices,omitempty" yaml:"prices"`
	DefaultPrice *Price           `json:"default_price,omitempty" yaml:"default_price"`
}

// ResolvePrice returns the amount and currency owed by a registrant from the given
// country. Lookup is an exact country-name match; unmatched countries fall back to
// the event's rest-of-world price. An event with no price configured for the
// partition is free (0 ZAR). No proration, no currency conversion.
func (e *Event) ResolvePrice(country string) Price {
	if p, ok := e.Prices[country]; ok {
		return p
	}
	if e.DefaultPrice != nil {
		return *e.DefaultPrice
	}
	return Price{Amount: 0, Currency: "ZAR"}
}

// PaymentReference derives the human-readable reference a registrant quotes when
// paying manually. It is the registrant's full name: deterministic, with no
// uniqueness guarantee (identical names produce identical references).
func PaymentReference(firstName, lastName string) string {
	return firstName + " " + lastName
}

// EventCatalog provides read-only access to the static event configuration.
type EventCatalog interface {
	GetByID(id string) (*Event, error)
	List() []*Event
}
