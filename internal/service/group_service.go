package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/storage"
)

var ErrEmptyGroupName = errors.New("group name must not be empty")

// GroupService manages groups and their membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group owned by creatorID. The creator is always a
// member; additional member IDs must reference existing accounts.
func (s *GroupService) CreateGroup(ctx context.Context, name, homeCurrency, creatorID string, memberIDs []string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyGroupName
	}

	ids := []string{creatorID}
	for _, id := range memberIDs {
		if id != creatorID {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if _, err := s.store.GetMemberByID(ctx, id); err != nil {
			return nil, fmt.Errorf("member %s: %w", id, err)
		}
	}

	group := &models.Group{
		Name:         strings.TrimSpace(name),
		HomeCurrency: strings.ToUpper(homeCurrency),
		CreatedBy:    creatorID,
		MemberIDs:    ids,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("group created", "group_id", group.ID, "members", len(ids))
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// AddMembers adds existing accounts to a group, ignoring ones already in it.
func (s *GroupService) AddMembers(ctx context.Context, groupID string, memberIDs []string) (*models.Group, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	for _, id := range memberIDs {
		if _, err := s.store.GetMemberByID(ctx, id); err != nil {
			return nil, fmt.Errorf("member %s: %w", id, err)
		}
	}

	if err := s.store.AddGroupMembers(ctx, groupID, memberIDs); err != nil {
		return nil, err
	}
	return s.store.GetGroup(ctx, groupID)
}
