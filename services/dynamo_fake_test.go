package services

import (
	"context"
	"strings"
	"sync"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDB is an in-memory DB implementation for service tests. It relies on
// the placeholder convention the services follow: every ":attr" expression
// value refers to the attribute named "attr" (via "#attr" when a name alias
// is supplied).
type fakeDB struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
}

var _ DB = (*fakeDB)(nil)

func newFakeDB() *fakeDB {
	return &fakeDB{tables: make(map[string][]map[string]types.AttributeValue)}
}

func tableKeyAttrs(tableName string) []string {
	switch tableName {
	case models.UsersTable:
		return []string{"userId"}
	case models.SkillRequestsTable:
		return []string{"requestId"}
	case models.MessagesTable:
		return []string{"conversationId", "messageId"}
	}
	return nil
}

func avString(attr types.AttributeValue) (string, bool) {
	s, ok := attr.(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func matches(item map[string]types.AttributeValue, attribute string, want types.AttributeValue) bool {
	have, ok := item[attribute]
	if !ok {
		return false
	}
	haveS, okHave := avString(have)
	wantS, okWant := avString(want)
	return okHave && okWant && haveS == wantS
}

func (f *fakeDB) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	keyAttrs := tableKeyAttrs(tableName)
	for i, existing := range f.tables[tableName] {
		same := len(keyAttrs) > 0
		for _, attr := range keyAttrs {
			if !matches(existing, attr, marshaled[attr]) {
				same = false
				break
			}
		}
		if same {
			f.tables[tableName][i] = marshaled
			return nil
		}
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return nil
}

func (f *fakeDB) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.tables[tableName] {
		found := true
		for attribute, want := range key {
			if !matches(item, attribute, want) {
				found = false
				break
			}
		}
		if found {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) QueryItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, expressionAttributeValues, limit)
}

func (f *fakeDB) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, expressionAttributeValues, limit)
}

func (f *fakeDB) query(tableName string, expressionAttributeValues map[string]types.AttributeValue, limit int32) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		found := true
		for placeholder, want := range expressionAttributeValues {
			attribute := strings.TrimPrefix(placeholder, ":")
			if !matches(item, attribute, want) {
				found = false
				break
			}
		}
		if found {
			results = append(results, item)
			if limit > 0 && int32(len(results)) >= limit {
				break
			}
		}
	}
	return results, nil
}

func (f *fakeDB) UpdateItem(ctx context.Context, tableName, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.tables[tableName] {
		found := true
		for attribute, want := range key {
			if !matches(item, attribute, want) {
				found = false
				break
			}
		}
		if !found {
			continue
		}

		for placeholder, value := range expressionAttributeValues {
			attribute := strings.TrimPrefix(placeholder, ":")
			if alias, ok := expressionAttributeNames["#"+attribute]; ok {
				attribute = alias
			}
			item[attribute] = value
		}
		return item, nil
	}
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeDB) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var filtered []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		excluded := false
		for attribute, value := range excludeFields {
			if matches(item, attribute, &types.AttributeValueMemberS{Value: value}) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}
