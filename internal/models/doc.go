// Package models defines the core domain models for Tally.
//
// # Models
//
//   - Member: a registered account that can belong to groups
//   - Group: a set of members who share expenses, with a home currency
//   - Expense: one shared cost, with per-member splits stored at creation time
//   - Split: one member's owed share of a single expense
//   - Settlement: a recorded real-world payment between two members
//   - MemberBalance: a member's derived net position (never persisted)
//
// # Design Principles
//
//  1. Relationships use ID strings, not pointers, to avoid circular references
//  2. Amounts are stored in display units (float64) and only converted to
//     integer cents inside the calculator package
//  3. Derived values (balances, suggested settlements) are recomputed on every
//     read and never written back
package models
