package repository

import (
	"context"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCoursesTableName   = "courses"
	defaultPeriodsTableName   = "periods"
	defaultContractsTableName = "contracts"
	periodsCourseIDIndex      = "course_id-index"
)

type courseItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Slug        string   `dynamodbav:"slug"`
	GalleryURLs []string `dynamodbav:"gallery_urls,omitempty"`
}

type periodItem struct {
	ID          string   `dynamodbav:"id"`
	CourseID    string   `dynamodbav:"course_id"`
	Name        string   `dynamodbav:"name"`
	Token       string   `dynamodbav:"token"`
	Price       float64  `dynamodbav:"price"`
	Hours       int      `dynamodbav:"hours"`
	ContractIDs []string `dynamodbav:"contract_ids,omitempty"`
}

type contractItem struct {
	ID    string `dynamodbav:"id"`
	Title string `dynamodbav:"title"`
	Body  string `dynamodbav:"body"`
}

// CourseDynamoRepository reads the course catalog.
//
// Table requirements:
//   - PK: id (string)

type CourseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICourseRepository = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb *dynamodb.Client) *CourseDynamoRepository {
	return &CourseDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("COURSES_TABLE", defaultCoursesTableName),
	}
}

func (r *CourseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Course{}, err
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, err
	}
	return entities.Course(it), nil
}

// PeriodDynamoRepository reads course periods/modules.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: course_id-index (PK: course_id)

type PeriodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPeriodRepository = (*PeriodDynamoRepository)(nil)

func NewPeriodDynamoRepository(ddb *dynamodb.Client) *PeriodDynamoRepository {
	return &PeriodDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("PERIODS_TABLE", defaultPeriodsTableName),
	}
}

func (r *PeriodDynamoRepository) GetByID(ctx context.Context, id string) (entities.Period, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Period{}, err
	}
	if len(out.Item) == 0 {
		return entities.Period{}, nil
	}

	var it periodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Period{}, err
	}
	return entities.Period(it), nil
}

func (r *PeriodDynamoRepository) ListByCourseID(ctx context.Context, courseID string) ([]entities.Period, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(periodsCourseIDIndex),
		KeyConditionExpression: aws.String("course_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: courseID},
		},
	})
	if err != nil {
		return nil, err
	}

	periods := make([]entities.Period, 0, len(out.Items))
	for _, raw := range out.Items {
		var it periodItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		periods = append(periods, entities.Period(it))
	}
	return periods, nil
}

// ContractDynamoRepository reads contract templates.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return entities.Contract(it), nil
}
