package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"skillswap_server/models"
	"skillswap_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Dynamo DB
}

// Register creates a new account with a hashed password. The email must not
// already belong to another account.
func (s *UserService) Register(ctx context.Context, name, email, password string, skills []string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", models.ErrInvalidInput)
	}

	existing, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.New().String(),
		Name:         name,
		EmailID:      email,
		PasswordHash: string(hash),
		Skills:       skills,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Registered user %s (%s)", user.UserID, user.EmailID)
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", models.ErrInvalidInput)
	}

	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves an account by its id
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail looks an account up via the email GSI. A missing account is
// (nil, nil).
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	keyCondition := "emailId = :emailId"
	expressionValues := map[string]types.AttributeValue{
		":emailId": &types.AttributeValueMemberS{Value: email},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.EmailIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// ListOthers returns the public profiles of every account except the caller's
func (s *UserService) ListOthers(ctx context.Context, selfID string) ([]models.PublicProfile, error) {
	var users []models.User
	err := s.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, map[string]string{"userId": selfID}, &users)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// Search matches the query case-insensitively against names and skill tags.
// An empty query returns everyone; the caller is always excluded.
func (s *UserService) Search(ctx context.Context, selfID, query string) ([]models.PublicProfile, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	filter := func(item map[string]types.AttributeValue) bool {
		if q == "" {
			return true
		}
		if strings.Contains(strings.ToLower(utils.ExtractString(item, "name")), q) {
			return true
		}
		for _, skill := range utils.ExtractStringList(item, "skills") {
			if strings.Contains(strings.ToLower(skill), q) {
				return true
			}
		}
		return false
	}

	var users []models.User
	err := s.Dynamo.ScanWithFilter(ctx, models.UsersTable, filter, map[string]string{"userId": selfID}, &users)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// UpdateProfile applies a partial edit; only supplied fields change
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var setExpressions []string
	expressionValues := map[string]types.AttributeValue{}
	expressionNames := map[string]string{}

	if update.Name != nil && *update.Name != "" {
		setExpressions = append(setExpressions, "#name = :name")
		expressionNames["#name"] = "name"
		expressionValues[":name"] = &types.AttributeValueMemberS{Value: *update.Name}
	}
	if update.Email != nil && *update.Email != "" && *update.Email != current.EmailID {
		other, err := s.GetUserByEmail(ctx, *update.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, models.ErrEmailTaken
		}
		setExpressions = append(setExpressions, "#emailId = :emailId")
		expressionNames["#emailId"] = "emailId"
		expressionValues[":emailId"] = &types.AttributeValueMemberS{Value: *update.Email}
	}
	if update.Skills != nil {
		skillsAttr, err := attributevalue.Marshal(update.Skills)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal skills: %w", err)
		}
		setExpressions = append(setExpressions, "#skills = :skills")
		expressionNames["#skills"] = "skills"
		expressionValues[":skills"] = skillsAttr
	}

	if len(setExpressions) == 0 {
		return current, nil
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET " + strings.Join(setExpressions, ", ")

	updatedItem, err := s.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var updated models.User
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	return &updated, nil
}

func publicProfiles(users []models.User) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Public())
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles
}
