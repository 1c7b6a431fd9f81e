package services

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// stubDynamoClient implements DynamoDBAPI with configurable function fields.
// Unconfigured calls succeed with empty outputs.
type stubDynamoClient struct {
	putFunc    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getFunc    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	queryFunc  func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanFunc   func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	updateFunc func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteFunc func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	batchFunc  func(*dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error)

	putInputs    []*dynamodb.PutItemInput
	updateInputs []*dynamodb.UpdateItemInput
	deleteInputs []*dynamodb.DeleteItemInput
	batchInputs  []*dynamodb.BatchWriteItemInput
}

func (s *stubDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putInputs = append(s.putInputs, params)
	if s.putFunc != nil {
		return s.putFunc(params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getFunc != nil {
		return s.getFunc(params)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (s *stubDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if s.queryFunc != nil {
		return s.queryFunc(params)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (s *stubDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.scanFunc != nil {
		return s.scanFunc(params)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (s *stubDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.updateInputs = append(s.updateInputs, params)
	if s.updateFunc != nil {
		return s.updateFunc(params)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (s *stubDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	s.deleteInputs = append(s.deleteInputs, params)
	if s.deleteFunc != nil {
		return s.deleteFunc(params)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (s *stubDynamoClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	s.batchInputs = append(s.batchInputs, params)
	if s.batchFunc != nil {
		return s.batchFunc(params)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

// putsToTable filters captured PutItem calls by table name
func (s *stubDynamoClient) putsToTable(table string) []*dynamodb.PutItemInput {
	var filtered []*dynamodb.PutItemInput
	for _, input := range s.putInputs {
		if input.TableName != nil && *input.TableName == table {
			filtered = append(filtered, input)
		}
	}
	return filtered
}

// keyString extracts a string key attribute from an item key
func keyString(key map[string]types.AttributeValue, name string) string {
	if attr, ok := key[name]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// attrString extracts a string expression attribute value
func attrString(values map[string]types.AttributeValue, name string) string {
	return keyString(values, name)
}

// mustMarshal marshals a struct into a DynamoDB item or fails the test
func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("failed to marshal %v: %v", v, err)
	}
	return item
}
