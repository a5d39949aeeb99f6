package repository

import (
	"context"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "construction_orders"

	// Start and delivery dates carry no time component; a lexicographic
	// comparison on this layout matches chronological order.
	dateLayout = "2006-01-02"
)

type constructionOrderItem struct {
	ID               string  `dynamodbav:"id"`
	ProjectName      string  `dynamodbav:"project_name"`
	Latitude         float64 `dynamodbav:"latitude"`
	Longitude        float64 `dynamodbav:"longitude"`
	ConstructionType string  `dynamodbav:"construction_type"`
	Status           string  `dynamodbav:"status"`
	EstimatedDays    int     `dynamodbav:"estimated_days"`
	StartDate        string  `dynamodbav:"start_date"`
	DeliveryDate     string  `dynamodbav:"delivery_date"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// ConstructionOrderDynamoRepository persists ConstructionOrder entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The timeline queries (pending set, due-on set, earliest/latest delivery)
// run as filtered scans. The whole project timeline is a few hundred orders
// at most, so a scan stays cheap and spares us extra GSIs.

type ConstructionOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConstructionOrderRepository = (*ConstructionOrderDynamoRepository)(nil)

func NewConstructionOrderDynamoRepository(ddb *dynamodb.Client) *ConstructionOrderDynamoRepository {
	return &ConstructionOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ConstructionOrderDynamoRepository) Create(ctx context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error) {
	it := toConstructionOrderItem(order)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConstructionOrder{}, err
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
		return entities.ConstructionOrder{}, err
	}
	return order, nil
}

func (r *ConstructionOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConstructionOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConstructionOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConstructionOrder{}, nil
	}

	var it constructionOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConstructionOrder{}, err
	}
	return fromConstructionOrderItem(it), nil
}

func (r *ConstructionOrderDynamoRepository) GetAll(ctx context.Context) ([]entities.ConstructionOrder, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
}

func (r *ConstructionOrderDynamoRepository) Update(ctx context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error) {
	it := toConstructionOrderItem(order)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConstructionOrder{}, err
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
		return entities.ConstructionOrder{}, err
	}
	return order, nil
}

func (r *ConstructionOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ConstructionOrderDynamoRepository) Count(ctx context.Context) (int, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *ConstructionOrderDynamoRepository) ExistsByCoordinate(ctx context.Context, latitude, longitude float64) (bool, error) {
	items, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("latitude = :lat AND longitude = :lon"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lat": &types.AttributeValueMemberN{Value: floatToString(latitude)},
			":lon": &types.AttributeValueMemberN{Value: floatToString(longitude)},
		},
	})
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

func (r *ConstructionOrderDynamoRepository) GetEarliestByDelivery(ctx context.Context) (entities.ConstructionOrder, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}

	var earliest entities.ConstructionOrder
	for _, order := range all {
		if earliest.ID == "" || order.DeliveryDate.Before(earliest.DeliveryDate) {
			earliest = order
		}
	}
	return earliest, nil
}

func (r *ConstructionOrderDynamoRepository) GetLatestByDelivery(ctx context.Context) (entities.ConstructionOrder, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}

	var latest entities.ConstructionOrder
	for _, order := range all {
		if latest.ID == "" || order.DeliveryDate.After(latest.DeliveryDate) {
			latest = order
		}
	}
	return latest, nil
}

func (r *ConstructionOrderDynamoRepository) GetPending(ctx context.Context) ([]entities.ConstructionOrder, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
		},
	})
}

func (r *ConstructionOrderDynamoRepository) GetInProgressDueOn(ctx context.Context, date time.Time) ([]entities.ConstructionOrder, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("#status = :status AND delivery_date = :delivery"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusInProgress)},
			":delivery": &types.AttributeValueMemberS{Value: date.Format(dateLayout)},
		},
	})
}

func (r *ConstructionOrderDynamoRepository) SumEstimatedDays(ctx context.Context) (int, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, order := range all {
		total += order.EstimatedDays
	}
	return total, nil
}

func (r *ConstructionOrderDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.ConstructionOrder, error) {
	var orders []entities.ConstructionOrder
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it constructionOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromConstructionOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toConstructionOrderItem(o entities.ConstructionOrder) constructionOrderItem {
	return constructionOrderItem{
		ID:               o.ID,
		ProjectName:      o.ProjectName,
		Latitude:         o.Location.Latitude,
		Longitude:        o.Location.Longitude,
		ConstructionType: o.ConstructionType,
		Status:           string(o.Status),
		EstimatedDays:    o.EstimatedDays,
		StartDate:        o.StartDate.UTC().Format(dateLayout),
		DeliveryDate:     o.DeliveryDate.UTC().Format(dateLayout),
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromConstructionOrderItem(it constructionOrderItem) entities.ConstructionOrder {
	startDate, _ := time.Parse(dateLayout, it.StartDate)
	deliveryDate, _ := time.Parse(dateLayout, it.DeliveryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ConstructionOrder{
		ID:               it.ID,
		ProjectName:      it.ProjectName,
		Location:         entities.Coordinate{Latitude: it.Latitude, Longitude: it.Longitude},
		ConstructionType: it.ConstructionType,
		Status:           entities.OrderStatus(it.Status),
		EstimatedDays:    it.EstimatedDays,
		StartDate:        startDate,
		DeliveryDate:     deliveryDate,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
