package repository

import (
	"context"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "documents"
	documentsEnrollmentIndex  = "enrollment_id-index"
)

type documentItem struct {
	ID           string `dynamodbav:"id"`
	EnrollmentID string `dynamodbav:"enrollment_id"`
	Title        string `dynamodbav:"title"`
	MimeType     string `dynamodbav:"mime_type"`
	Size         int64  `dynamodbav:"size"`
	Path         string `dynamodbav:"path"`
	URL          string `dynamodbav:"url"`
	OwnerID      string `dynamodbav:"owner_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// DocumentDynamoRepository persists the rendered-artifact catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: enrollment_id-index (PK: enrollment_id)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Put(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) ListByEnrollmentID(ctx context.Context, enrollmentID string) ([]entities.Document, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsEnrollmentIndex),
		KeyConditionExpression: aws.String("enrollment_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: enrollmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.Document, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		docs = append(docs, fromDocumentItem(it))
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:           d.ID,
		EnrollmentID: d.EnrollmentID,
		Title:        d.Title,
		MimeType:     d.MimeType,
		Size:         d.Size,
		Path:         d.Path,
		URL:          d.URL,
		OwnerID:      d.OwnerID,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Document{
		ID:           it.ID,
		EnrollmentID: it.EnrollmentID,
		Title:        it.Title,
		MimeType:     it.MimeType,
		Size:         it.Size,
		Path:         it.Path,
		URL:          it.URL,
		OwnerID:      it.OwnerID,
		CreatedAt:    createdAt,
	}
}
