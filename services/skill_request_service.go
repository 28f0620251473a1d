package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type SkillRequestService struct {
	Dynamo DB
	Users  *UserService
}

// CreateRequest stores a new pending skill request from sender to recipient
func (s *SkillRequestService) CreateRequest(ctx context.Context, fromUserID, toUserID string, skills []string) (*models.SkillRequest, error) {
	if toUserID == "" || len(skills) == 0 {
		return nil, fmt.Errorf("%w: toUserId and skills are required", models.ErrInvalidInput)
	}

	if _, err := s.Users.GetUserByID(ctx, toUserID); err != nil {
		return nil, err
	}

	request := models.SkillRequest{
		RequestID:  uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Skills:     skills,
		Status:     models.StatusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.SkillRequestsTable, request); err != nil {
		return nil, err
	}

	log.Printf("✅ Skill request saved: %s -> %s", fromUserID, toUserID)
	return &request, nil
}

// ListReceived returns requests addressed to the user, newest first, each
// joined with the sender's public profile.
func (s *SkillRequestService) ListReceived(ctx context.Context, userID string) ([]models.SkillRequestWithProfile, error) {
	requests, err := s.listByIndex(ctx, models.ToUserIndex, "toUserId", userID)
	if err != nil {
		return nil, err
	}

	joined := make([]models.SkillRequestWithProfile, 0, len(requests))
	for _, request := range requests {
		sender, err := s.Users.GetUserByID(ctx, request.FromUserID)
		if err != nil {
			log.Printf("⚠️ Skipping request %s: sender %s not found", request.RequestID, request.FromUserID)
			continue
		}
		profile := sender.Public()
		joined = append(joined, models.SkillRequestWithProfile{SkillRequest: request, FromUser: &profile})
	}
	return joined, nil
}

// ListSent returns requests the user sent, newest first, each joined with the
// recipient's public profile.
func (s *SkillRequestService) ListSent(ctx context.Context, userID string) ([]models.SkillRequestWithProfile, error) {
	requests, err := s.listByIndex(ctx, models.FromUserIndex, "fromUserId", userID)
	if err != nil {
		return nil, err
	}

	joined := make([]models.SkillRequestWithProfile, 0, len(requests))
	for _, request := range requests {
		recipient, err := s.Users.GetUserByID(ctx, request.ToUserID)
		if err != nil {
			log.Printf("⚠️ Skipping request %s: recipient %s not found", request.RequestID, request.ToUserID)
			continue
		}
		profile := recipient.Public()
		joined = append(joined, models.SkillRequestWithProfile{SkillRequest: request, ToUser: &profile})
	}
	return joined, nil
}

// SetStatus moves a pending request to accepted or rejected. Only the
// recipient may do this, and a resolved request stays resolved.
func (s *SkillRequestService) SetStatus(ctx context.Context, callerID, requestID, status string) error {
	if !models.IsTerminalStatus(status) {
		return fmt.Errorf("%w: status must be accepted or rejected", models.ErrInvalidInput)
	}

	key := map[string]types.AttributeValue{
		"requestId": &types.AttributeValueMemberS{Value: requestID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.SkillRequestsTable, key)
	if err != nil {
		return err
	}
	if item == nil {
		return models.ErrNotFound
	}

	var request models.SkillRequest
	if err := attributevalue.UnmarshalMap(item, &request); err != nil {
		return fmt.Errorf("failed to unmarshal request: %w", err)
	}

	if request.ToUserID != callerID {
		return models.ErrForbidden
	}
	if request.Status != models.StatusPending {
		return models.ErrInvalidTransition
	}

	updateExpression := "SET #status = :status"
	expressionNames := map[string]string{"#status": "status"}
	expressionValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}

	if _, err := s.Dynamo.UpdateItem(ctx, models.SkillRequestsTable, updateExpression, key, expressionValues, expressionNames); err != nil {
		return err
	}

	log.Printf("✅ Request %s %s by %s", requestID, status, callerID)
	return nil
}

func (s *SkillRequestService) listByIndex(ctx context.Context, index, attribute, userID string) ([]models.SkillRequest, error) {
	keyCondition := fmt.Sprintf("%s = :%s", attribute, attribute)
	expressionValues := map[string]types.AttributeValue{
		":" + attribute: &types.AttributeValueMemberS{Value: userID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.SkillRequestsTable, index, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skill requests: %w", err)
	}

	var requests []models.SkillRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skill requests: %w", err)
	}

	// GSI queries give no ordering guarantee; sort newest first.
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
	return requests, nil
}
