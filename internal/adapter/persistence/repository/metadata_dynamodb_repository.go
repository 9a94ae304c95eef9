package repository

import (
	"context"

	"escola_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMetadataTableName = "enrollment_metadata"

type metadataItem struct {
	EnrollmentID string `dynamodbav:"enrollment_id"`
	Key          string `dynamodbav:"meta_key"`
	Value        string `dynamodbav:"meta_value"`
}

// MetadataDynamoRepository persists the per-enrollment key/value fact table.
//
// Table requirements:
//   - PK: enrollment_id (string)
//   - SK: meta_key (string)
//
// PutItem on the composite key gives upsert semantics for free: one value
// per key per enrollment, last write wins.

type MetadataDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMetadataRepository = (*MetadataDynamoRepository)(nil)

func NewMetadataDynamoRepository(ddb *dynamodb.Client) *MetadataDynamoRepository {
	return &MetadataDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("METADATA_TABLE", defaultMetadataTableName),
	}
}

func (r *MetadataDynamoRepository) Set(ctx context.Context, enrollmentID, key, value string) error {
	av, err := attributevalue.MarshalMap(metadataItem{
		EnrollmentID: enrollmentID,
		Key:          key,
		Value:        value,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *MetadataDynamoRepository) Get(ctx context.Context, enrollmentID, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"enrollment_id": &types.AttributeValueMemberS{Value: enrollmentID},
			"meta_key":      &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it metadataItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Value, nil
}

func (r *MetadataDynamoRepository) GetAll(ctx context.Context, enrollmentID string) (map[string]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("enrollment_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: enrollmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	all := make(map[string]string, len(out.Items))
	for _, raw := range out.Items {
		var it metadataItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		all[it.Key] = it.Value
	}
	return all, nil
}
