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

const defaultSignerContactsTableName = "signer_contacts"

type signerContactItem struct {
	Role  string `dynamodbav:"role"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	CPF   string `dynamodbav:"cpf"`
}

// SignerContactDynamoRepository resolves fixed-role signers by role.
//
// Table requirements:
//   - PK: role (string)
//
// A missing role is not an error: the zero-value contact signals "not
// configured" and the envelope builder skips it.

type SignerContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignerContactRepository = (*SignerContactDynamoRepository)(nil)

func NewSignerContactDynamoRepository(ddb *dynamodb.Client) *SignerContactDynamoRepository {
	return &SignerContactDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("SIGNER_CONTACTS_TABLE", defaultSignerContactsTableName),
	}
}

func (r *SignerContactDynamoRepository) GetByRole(ctx context.Context, role string) (entities.SignerContact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"role": &types.AttributeValueMemberS{Value: role},
		},
	})
	if err != nil {
		return entities.SignerContact{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignerContact{}, nil
	}

	var it signerContactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignerContact{}, err
	}
	return entities.SignerContact(it), nil
}
