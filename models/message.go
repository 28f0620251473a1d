package models

// Message is a persisted chat message. Messages are immutable once created;
// the conversationId partitions them by participant pair.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"-"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	FromUserID     string `dynamodbav:"fromUserId" json:"fromUser"`
	ToUserID       string `dynamodbav:"toUserId" json:"toUser"`
	Body           string `dynamodbav:"body" json:"message"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// MessagesTable is the DynamoDB table name for chat messages
var MessagesTable = tableFromEnv("MESSAGES_TABLE", "Messages")
