package models

// Group represents a set of members who share expenses.
// All balances for the group are expressed in its home currency.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string `json:"name"`

	// HomeCurrency is the ISO 4217 code all balances are expressed in.
	HomeCurrency string `json:"home_currency"`

	// MemberIDs are the members of the group, in join order.
	MemberIDs []string `json:"member_ids"`

	// CreatedBy is the member who created the group.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}
