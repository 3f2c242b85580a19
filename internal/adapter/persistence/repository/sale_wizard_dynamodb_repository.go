package repository

import (
	"context"
	"encoding/json"
	"strings"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSaleWizardsTableName = "sale_wizards"

type saleWizardItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Step      int    `dynamodbav:"step"`
	State     string `dynamodbav:"state"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// SaleWizardDynamoRepository persists in-progress sale wizards in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// The wizard itself is stored as a JSON document in "state"; DynamoDB TTL
// deletion is lazy, so readers still check ExpiresAt.
type SaleWizardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleWizardRepository = (*SaleWizardDynamoRepository)(nil)

func NewSaleWizardDynamoRepository(ddb *dynamodb.Client) *SaleWizardDynamoRepository {
	return &SaleWizardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WIZARD_TABLE", defaultSaleWizardsTableName),
	}
}

func (r *SaleWizardDynamoRepository) Save(ctx context.Context, w entities.SaleWizard) (entities.SaleWizard, error) {
	it, err := toSaleWizardItem(w)
	if err != nil {
		return entities.SaleWizard{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SaleWizard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		logger.For("wizard.repository").Error().Err(err).Str("wizard_id", w.ID).Msg("put item failed")
		return entities.SaleWizard{}, err
	}
	return w, nil
}

func (r *SaleWizardDynamoRepository) GetByID(ctx context.Context, id string) (entities.SaleWizard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SaleWizard{}, err
	}
	if len(out.Item) == 0 {
		return entities.SaleWizard{}, nil
	}

	var it saleWizardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SaleWizard{}, err
	}
	return fromSaleWizardItem(it)
}

func (r *SaleWizardDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSaleWizardItem(w entities.SaleWizard) (saleWizardItem, error) {
	state, err := json.Marshal(w)
	if err != nil {
		return saleWizardItem{}, err
	}
	var expiresAt int64
	if !w.ExpiresAt.IsZero() {
		expiresAt = w.ExpiresAt.Unix()
	}
	return saleWizardItem{
		ID:        w.ID,
		UserID:    w.UserID,
		Step:      int(w.CurrentStep()),
		State:     string(state),
		CreatedAt: formatTime(w.CreatedAt),
		UpdatedAt: formatTime(w.UpdatedAt),
		ExpiresAt: expiresAt,
	}, nil
}

func fromSaleWizardItem(it saleWizardItem) (entities.SaleWizard, error) {
	var w entities.SaleWizard
	if strings.TrimSpace(it.State) != "" {
		if err := json.Unmarshal([]byte(it.State), &w); err != nil {
			return entities.SaleWizard{}, err
		}
	}
	// columns win over the document for the indexed fields
	w.ID = it.ID
	w.UserID = it.UserID
	if t := parseTime(it.CreatedAt); !t.IsZero() {
		w.CreatedAt = t
	}
	if t := parseTime(it.UpdatedAt); !t.IsZero() {
		w.UpdatedAt = t
	}
	return w, nil
}
