package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type ChatService struct {
	Dynamo DB
}

// ConversationID builds the partition key for a participant pair. It is
// symmetric: the pair (a, b) and (b, a) share one conversation.
func ConversationID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// SendMessage appends an immutable message to the conversation. Live delivery
// over the websocket relay is a separate, non-atomic write.
func (s *ChatService) SendMessage(ctx context.Context, fromUserID, toUserID, body string) (*models.Message, error) {
	if toUserID == "" || body == "" {
		return nil, fmt.Errorf("%w: toUser and message are required", models.ErrInvalidInput)
	}

	message := models.Message{
		ConversationID: ConversationID(fromUserID, toUserID),
		MessageID:      uuid.New().String(),
		FromUserID:     fromUserID,
		ToUserID:       toUserID,
		Body:           body,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetConversation returns every message between the two users, oldest first
func (s *ChatService) GetConversation(ctx context.Context, userID, peerID string) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: ConversationID(userID, peerID)},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}
