package models

// Skill request statuses. A request starts pending and moves exactly once to
// accepted or rejected; there is no path back.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type SkillRequest struct {
	RequestID  string   `dynamodbav:"requestId" json:"requestId"`
	FromUserID string   `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID   string   `dynamodbav:"toUserId" json:"toUserId"`
	Skills     []string `dynamodbav:"skills" json:"skills"`
	Status     string   `dynamodbav:"status" json:"status"`
	CreatedAt  string   `dynamodbav:"createdAt" json:"createdAt"`
}

// SkillRequestWithProfile is a request joined with the counterpart's public
// profile: FromUser for received requests, ToUser for sent ones.
type SkillRequestWithProfile struct {
	SkillRequest
	FromUser *PublicProfile `json:"fromUser,omitempty"`
	ToUser   *PublicProfile `json:"toUser,omitempty"`
}

// IsTerminalStatus reports whether a status ends the request lifecycle
func IsTerminalStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// SkillRequestsTable is the DynamoDB table name for skill requests
var SkillRequestsTable = tableFromEnv("SKILL_REQUESTS_TABLE", "SkillRequests")

// GSI names used to list requests by participant
const (
	ToUserIndex   = "toUserId-index"
	FromUserIndex = "fromUserId-index"
)
