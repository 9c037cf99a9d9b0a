package models

// Expense represents one shared cost paid by a single member.
//
// The splits are calculated once, at creation time, and stored; balance reads
// never re-split an expense. Invariant: the split amounts sum to Amount within
// 0.01 currency units, and Amount is positive.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"group_id"`

	// PayerID is the member who paid the expense.
	PayerID string `json:"payer_id"`

	// Description is a short human-readable label (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the expense total in its own currency.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 code the expense was paid in.
	// Empty means the group's home currency.
	Currency string `json:"currency,omitempty"`

	// ExchangeRateToHome converts Amount into the group's home currency.
	// Captured once when the expense is written, never re-fetched.
	// Zero when Currency is empty.
	ExchangeRateToHome float64 `json:"exchange_rate_to_home,omitempty"`

	// SplitMethod records how the splits were produced (equal, exact,
	// percent, shares). Informational; the stored splits are authoritative.
	SplitMethod string `json:"split_method"`

	// Splits are the per-member owed shares, one per participant.
	Splits []Split `json:"splits"`

	// CreatedBy is the member who recorded the expense.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the expense was created.
	CreatedAt int64 `json:"created_at"`
}

// Split is one member's owed share of a single expense.
type Split struct {
	// MemberID references a participant of the expense.
	MemberID string `json:"member_id"`

	// Amount is the owed share, non-negative, in the expense's currency.
	Amount float64 `json:"amount"`
}
