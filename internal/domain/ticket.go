package domain

// TicketType is the closed set of ticket categories a purchase line can name.
type TicketType string

const (
	Adult  TicketType = "ADULT"
	Child  TicketType = "CHILD"
	Infant TicketType = "INFANT"
)

// MaxTicketsPerPurchase caps how many seat-consuming tickets a single
// purchase may contain.
const MaxTicketsPerPurchase = 20

// TicketPrices maps each ticket category to its unit price in whole currency
// units. Infants travel free and sit on an adult's lap. Built once at process
// start and never mutated.
var TicketPrices = map[TicketType]int{
	Adult:  20,
	Child:  10,
	Infant: 0,
}

// TicketTypeRequest is one line of a purchase: a ticket category paired with
// the number of tickets requested for it. Treated as an immutable value.
type TicketTypeRequest struct {
	Type     TicketType
	Quantity int
}
