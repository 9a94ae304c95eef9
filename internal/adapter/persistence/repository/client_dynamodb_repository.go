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

const defaultClientsTableName = "clients"

type clientItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	CPF         string `dynamodbav:"cpf"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Nationality string `dynamodbav:"nationality,omitempty"`
	IdentityDoc string `dynamodbav:"identity_doc,omitempty"`
	BirthDate   string `dynamodbav:"birth_date,omitempty"`

	AddrStreet     string `dynamodbav:"addr_street,omitempty"`
	AddrNumber     string `dynamodbav:"addr_number,omitempty"`
	AddrComplement string `dynamodbav:"addr_complement,omitempty"`
	AddrDistrict   string `dynamodbav:"addr_district,omitempty"`
	AddrCity       string `dynamodbav:"addr_city,omitempty"`
	AddrState      string `dynamodbav:"addr_state,omitempty"`
	AddrZipCode    string `dynamodbav:"addr_zip_code,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Upsert(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		CPF:            c.CPF,
		Phone:          c.Phone,
		Nationality:    c.Nationality,
		IdentityDoc:    c.IdentityDoc,
		BirthDate:      c.BirthDate,
		AddrStreet:     c.Address.Street,
		AddrNumber:     c.Address.Number,
		AddrComplement: c.Address.Complement,
		AddrDistrict:   c.Address.District,
		AddrCity:       c.Address.City,
		AddrState:      c.Address.State,
		AddrZipCode:    c.Address.ZipCode,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Client{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		CPF:         it.CPF,
		Phone:       it.Phone,
		Nationality: it.Nationality,
		IdentityDoc: it.IdentityDoc,
		BirthDate:   it.BirthDate,
		Address: entities.Address{
			Street:     it.AddrStreet,
			Number:     it.AddrNumber,
			Complement: it.AddrComplement,
			District:   it.AddrDistrict,
			City:       it.AddrCity,
			State:      it.AddrState,
			ZipCode:    it.AddrZipCode,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
