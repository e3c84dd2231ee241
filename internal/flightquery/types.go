package flightquery

// Context keys used to persist in-progress flight fields across turns.
// Keys are flat (no dots) so they can be used directly as document field
// paths in the context store.
const (
	CtxKeyDepartureID  = "flight_departure_id"
	CtxKeyArrivalID    = "flight_arrival_id"
	CtxKeyOutboundDate = "flight_outbound_date"
	CtxKeyReturnDate   = "flight_return_date"
	CtxKeyCurrency     = "flight_currency"
)

// User-facing names for required fields, used in clarification prompts.
const (
	FieldDepartureCity = "departure city"
	FieldArrivalCity   = "arrival city"
	FieldDepartureDate = "departure date"
)

// Params is a structured flight search query. Partial values are valid
// intermediate state; only Complete instances are searchable.
type Params struct {
	DepartureID  string `json:"departure_id"`
	ArrivalID    string `json:"arrival_id"`
	OutboundDate string `json:"outbound_date"` // ISO yyyy-mm-dd
	ReturnDate   string `json:"return_date,omitempty"`
	Currency     string `json:"currency,omitempty"`
	LanguageHint string `json:"language_hint,omitempty"`
}

// Complete reports whether the query has all required fields.
func (p Params) Complete() bool {
	return p.DepartureID != "" && p.ArrivalID != "" && p.OutboundDate != ""
}

// Empty reports whether nothing has been resolved at all.
func (p Params) Empty() bool {
	return p.DepartureID == "" && p.ArrivalID == "" && p.OutboundDate == "" && p.ReturnDate == ""
}

// MissingFields names the required fields that are still unresolved,
// in a stable order.
func (p Params) MissingFields() []string {
	var missing []string
	if p.DepartureID == "" {
		missing = append(missing, FieldDepartureCity)
	}
	if p.ArrivalID == "" {
		missing = append(missing, FieldArrivalCity)
	}
	if p.OutboundDate == "" {
		missing = append(missing, FieldDepartureDate)
	}
	return missing
}

// Merge overlays update onto base field by field. Non-empty update fields
// win; empty update fields keep the base value. Neither input is mutated.
func Merge(base, update Params) Params {
	out := base
	if update.DepartureID != "" {
		out.DepartureID = update.DepartureID
	}
	if update.ArrivalID != "" {
		out.ArrivalID = update.ArrivalID
	}
	if update.OutboundDate != "" {
		out.OutboundDate = update.OutboundDate
	}
	if update.ReturnDate != "" {
		out.ReturnDate = update.ReturnDate
	}
	if update.Currency != "" {
		out.Currency = update.Currency
	}
	if update.LanguageHint != "" {
		out.LanguageHint = update.LanguageHint
	}
	return out
}

// FromContext rebuilds partial params from persisted session context.
func FromContext(ctx map[string]string) Params {
	return Params{
		DepartureID:  ctx[CtxKeyDepartureID],
		ArrivalID:    ctx[CtxKeyArrivalID],
		OutboundDate: ctx[CtxKeyOutboundDate],
		ReturnDate:   ctx[CtxKeyReturnDate],
		Currency:     ctx[CtxKeyCurrency],
	}
}

// ToContext serializes the resolved fields for persistence. Empty fields
// are omitted so a merge never erases earlier progress.
func (p Params) ToContext() map[string]string {
	out := make(map[string]string)
	if p.DepartureID != "" {
		out[CtxKeyDepartureID] = p.DepartureID
	}
	if p.ArrivalID != "" {
		out[CtxKeyArrivalID] = p.ArrivalID
	}
	if p.OutboundDate != "" {
		out[CtxKeyOutboundDate] = p.OutboundDate
	}
	if p.ReturnDate != "" {
		out[CtxKeyReturnDate] = p.ReturnDate
	}
	if p.Currency != "" {
		out[CtxKeyCurrency] = p.Currency
	}
	return out
}
