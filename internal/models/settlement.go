package models

// Settlement represents a real-world payment between two group members that
// offsets their mutual balance.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// GroupID is the group this settlement belongs to.
	GroupID string `json:"group_id"`

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string `json:"from_member_id"`

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string `json:"to_member_id"`

	// Amount is the payment amount in the group's home currency, positive.
	Amount float64 `json:"amount"`

	// Note is an optional description for the settlement.
	Note string `json:"note,omitempty"`

	// SettledAt is the Unix timestamp when the payment happened.
	SettledAt int64 `json:"settled_at"`

	// CreatedBy is the member who recorded this settlement.
	CreatedBy string `json:"created_by"`
}
