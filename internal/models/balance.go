package models

// MemberBalance is a member's derived net position within a group.
// Positive means the member is owed money, negative means they owe.
// Recomputed from scratch on every read; never persisted.
type MemberBalance struct {
	MemberID   string  `json:"member_id"`
	Name       string  `json:"name"`
	NetBalance float64 `json:"net_balance"`
}
