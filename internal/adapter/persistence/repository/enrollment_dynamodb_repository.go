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
	defaultEnrollmentsTableName = "enrollments"
	enrollmentsPublicTokenIndex = "public_token-index"
)

type enrollmentBudgetItem struct {
	ModuleID    string  `dynamodbav:"module_id"`
	PeriodID    string  `dynamodbav:"period_id"`
	PeriodToken string  `dynamodbav:"period_token"`
	PeriodName  string  `dynamodbav:"period_name"`
	Price       float64 `dynamodbav:"price"`
	Hours       int     `dynamodbav:"hours"`
}

type enrollmentTransitionItem struct {
	From  string `dynamodbav:"from"`
	To    string `dynamodbav:"to"`
	Actor string `dynamodbav:"actor"`
	At    string `dynamodbav:"at"`
}

type enrollmentItem struct {
	ID       string `dynamodbav:"id"`
	ClientID string `dynamodbav:"client_id"`
	CourseID string `dynamodbav:"course_id"`
	ClassID  string `dynamodbav:"class_id"`

	Subtotal float64 `dynamodbav:"subtotal"`
	Discount float64 `dynamodbav:"discount"`
	Total    float64 `dynamodbav:"total"`

	Budget enrollmentBudgetItem `dynamodbav:"budget"`

	Step1Done bool   `dynamodbav:"step1_done"`
	Step1At   string `dynamodbav:"step1_at,omitempty"`
	Step2Done bool   `dynamodbav:"step2_done"`
	Step2At   string `dynamodbav:"step2_at,omitempty"`

	PublicToken string                     `dynamodbav:"public_token"`
	Status      string                     `dynamodbav:"status"`
	StateLog    []enrollmentTransitionItem `dynamodbav:"state_log,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// EnrollmentDynamoRepository persists Enrollment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: public_token-index (PK: public_token)

type EnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

func (r *EnrollmentDynamoRepository) Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	av, err := attributevalue.MarshalMap(toEnrollmentItem(e))
	if err != nil {
		return entities.Enrollment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Enrollment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enrollment{}, nil
	}

	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enrollment{}, err
	}
	e := fromEnrollmentItem(it)
	if e.IsDeleted() {
		return entities.Enrollment{}, nil
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) GetByPublicToken(ctx context.Context, token string) (entities.Enrollment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsPublicTokenIndex),
		KeyConditionExpression: aws.String("public_token = :tok"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tok": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Enrollment{}, nil
	}

	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Enrollment{}, err
	}
	e := fromEnrollmentItem(it)
	if e.IsDeleted() {
		return entities.Enrollment{}, nil
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) Update(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	av, err := attributevalue.MarshalMap(toEnrollmentItem(e))
	if err != nil {
		return entities.Enrollment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET deleted_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func (r *EnrollmentDynamoRepository) DeletePermanently(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEnrollmentItem(e entities.Enrollment) enrollmentItem {
	it := enrollmentItem{
		ID:       e.ID,
		ClientID: e.ClientID,
		CourseID: e.CourseID,
		ClassID:  e.ClassID,
		Subtotal: e.Subtotal,
		Discount: e.Discount,
		Total:    e.Total,
		Budget: enrollmentBudgetItem{
			ModuleID:    e.Budget.ModuleID,
			PeriodID:    e.Budget.PeriodID,
			PeriodToken: e.Budget.PeriodToken,
			PeriodName:  e.Budget.PeriodName,
			Price:       e.Budget.Price,
			Hours:       e.Budget.Hours,
		},
		Step1Done:   e.Steps.Step1Done,
		Step2Done:   e.Steps.Step2Done,
		PublicToken: e.PublicToken,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.Steps.Step1At != nil {
		it.Step1At = e.Steps.Step1At.UTC().Format(time.RFC3339Nano)
	}
	if e.Steps.Step2At != nil {
		it.Step2At = e.Steps.Step2At.UTC().Format(time.RFC3339Nano)
	}
	if e.DeletedAt != nil {
		it.DeletedAt = e.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, tr := range e.StateLog {
		it.StateLog = append(it.StateLog, enrollmentTransitionItem{
			From:  string(tr.From),
			To:    string(tr.To),
			Actor: tr.Actor,
			At:    tr.At.UTC().Format(time.RFC3339Nano),
		})
	}
	return it
}

func fromEnrollmentItem(it enrollmentItem) entities.Enrollment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Enrollment{
		ID:       it.ID,
		ClientID: it.ClientID,
		CourseID: it.CourseID,
		ClassID:  it.ClassID,
		Subtotal: it.Subtotal,
		Discount: it.Discount,
		Total:    it.Total,
		Budget: entities.BudgetSnapshot{
			ModuleID:    it.Budget.ModuleID,
			PeriodID:    it.Budget.PeriodID,
			PeriodToken: it.Budget.PeriodToken,
			PeriodName:  it.Budget.PeriodName,
			Price:       it.Budget.Price,
			Hours:       it.Budget.Hours,
		},
		Steps: entities.StepFlags{
			Step1Done: it.Step1Done,
			Step2Done: it.Step2Done,
		},
		PublicToken: it.PublicToken,
		Status:      entities.EnrollmentStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if t := parseOptionalTime(it.Step1At); t != nil {
		e.Steps.Step1At = t
	}
	if t := parseOptionalTime(it.Step2At); t != nil {
		e.Steps.Step2At = t
	}
	if t := parseOptionalTime(it.DeletedAt); t != nil {
		e.DeletedAt = t
	}
	for _, tr := range it.StateLog {
		at, _ := time.Parse(time.RFC3339Nano, tr.At)
		e.StateLog = append(e.StateLog, entities.StateTransition{
			From:  entities.EnrollmentStatus(tr.From),
			To:    entities.EnrollmentStatus(tr.To),
			Actor: tr.Actor,
			At:    at,
		})
	}
	return e
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
