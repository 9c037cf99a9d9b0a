// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tallyapp/tally/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateMember persists a new member. The member.ID field will be
	// populated by the store if empty.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMemberByID retrieves a member by ID.
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)

	// GetMemberByEmail retrieves a member by email address.
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)

	// CreateGroup persists a new group along with its member list.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID, including its member IDs in join order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// AddGroupMembers adds members to an existing group, skipping any that
	// already belong.
	AddGroupMembers(ctx context.Context, groupID string, memberIDs []string) error

	// ListGroupMembers retrieves the full member records of a group, in join
	// order.
	ListGroupMembers(ctx context.Context, groupID string) ([]*models.Member, error)

	// CreateExpense persists an expense with its splits in one transaction.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, including its splits.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves all expenses for a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement persists a recorded payment between two members.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByGroup retrieves all settlements for a group, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// DeleteSettlement removes a settlement by ID.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
