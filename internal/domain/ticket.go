package domain

// TicketRecord is the projection of a HubSpot ticket the portal reads. All
// values are raw CRM strings; the resolver translates them.
type TicketRecord struct {
	ID           string
	Subject      string
	Content      string
	StageID      string
	CategoryCode string
	OwnerID      string
	ClosedDate   string
	CreatedAt    string
	UpdatedAt    string
}

// Owner is a HubSpot agent identity.
type Owner struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}
