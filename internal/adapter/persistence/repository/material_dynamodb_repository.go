package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMaterialsTableName = "materials"
	materialsCodeIndex        = "code-index"
)

type materialItem struct {
	ID        string `dynamodbav:"id"`
	Code      string `dynamodbav:"code"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists Material entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Stock movements go through DecrementQuantity/IncrementQuantity so that the
// quantity check and the subtraction happen in one conditional write.

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	it := toMaterialItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Material, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Items) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetByName(ctx context.Context, name string) (entities.Material, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Items) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetAll(ctx context.Context) ([]entities.Material, error) {
	var materials []entities.Material
	input := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it materialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			materials = append(materials, fromMaterialItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return materials, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	it := toMaterialItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Material{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DecrementQuantity subtracts the amount only when enough stock remains. The
// condition keeps concurrent reservations from driving the quantity negative;
// a failed condition reports (false, nil) so callers can surface the shortage.
func (r *MaterialDynamoRepository) DecrementQuantity(ctx context.Context, code string, amount int) (bool, error) {
	material, err := r.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if material.ID == "" {
		return false, nil
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: material.ID},
		},
		ConditionExpression: aws.String("quantity >= :amount"),
		UpdateExpression:    aws.String("SET quantity = quantity - :amount, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: strconv.Itoa(amount)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IncrementQuantity adds the amount back, used to undo a reservation.
func (r *MaterialDynamoRepository) IncrementQuantity(ctx context.Context, code string, amount int) error {
	material, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if material.ID == "" {
		return nil
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: material.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET quantity = quantity + :amount, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: strconv.Itoa(amount)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Material{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		Quantity:  it.Quantity,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
