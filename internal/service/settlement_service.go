package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/storage"
)

// RecordSettlementInput describes a real-world payment to record.
type RecordSettlementInput struct {
	GroupID      string
	FromMemberID string
	ToMemberID   string
	Amount       float64
	Note         string
	SettledAt    int64 // optional; now when zero
	CreatedBy    string
}

// SettlementService validates and records settlements between group members.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// RecordSettlement persists a payment from one member to another.
func (s *SettlementService) RecordSettlement(ctx context.Context, input RecordSettlementInput) (*models.Settlement, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.FromMemberID == input.ToMemberID {
		return nil, ErrSameMember
	}

	group, err := s.store.GetGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	membership := make(map[string]bool, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		membership[id] = true
	}
	if !membership[input.FromMemberID] {
		return nil, fmt.Errorf("payer %s: %w", input.FromMemberID, ErrNotGroupMember)
	}
	if !membership[input.ToMemberID] {
		return nil, fmt.Errorf("receiver %s: %w", input.ToMemberID, ErrNotGroupMember)
	}

	settlement := &models.Settlement{
		GroupID:      input.GroupID,
		FromMemberID: input.FromMemberID,
		ToMemberID:   input.ToMemberID,
		Amount:       input.Amount,
		Note:         input.Note,
		SettledAt:    input.SettledAt,
		CreatedBy:    input.CreatedBy,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}

	slog.Debug("settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", settlement.GroupID,
		"from", settlement.FromMemberID,
		"to", settlement.ToMemberID,
		"amount", settlement.Amount,
	)
	return settlement, nil
}

// ListSettlements returns a group's settlements, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}
