package repository

import (
	"context"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHotelsTableName = "hotels"

type hotelItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	Location      string  `dynamodbav:"location"`
	Rating        float64 `dynamodbav:"rating,omitempty"`
	Reviews       int     `dynamodbav:"reviews,omitempty"`
	Image         string  `dynamodbav:"image"`
	Price         float64 `dynamodbav:"price"`
	Description   string  `dynamodbav:"description"`
	StripePriceID string  `dynamodbav:"stripe_price_id,omitempty"`
}

// HotelDynamoRepository persists Hotel entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type HotelDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHotelRepository = (*HotelDynamoRepository)(nil)

func NewHotelDynamoRepository(ddb *dynamodb.Client) *HotelDynamoRepository {
	return &HotelDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOTELS_TABLE", defaultHotelsTableName),
	}
}

func (r *HotelDynamoRepository) Create(ctx context.Context, h entities.Hotel) (entities.Hotel, error) {
	av, err := attributevalue.MarshalMap(toHotelItem(h))
	if err != nil {
		return entities.Hotel{}, err
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
		return entities.Hotel{}, err
	}
	return h, nil
}

func (r *HotelDynamoRepository) GetByID(ctx context.Context, id string) (entities.Hotel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Hotel{}, err
	}
	if len(out.Item) == 0 {
		return entities.Hotel{}, nil
	}

	var it hotelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Hotel{}, err
	}
	return fromHotelItem(it), nil
}

func (r *HotelDynamoRepository) List(ctx context.Context) ([]entities.Hotel, error) {
	items := make([]entities.Hotel, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it hotelItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromHotelItem(it))
		}
	}
	return items, nil
}

func (r *HotelDynamoRepository) Update(ctx context.Context, h entities.Hotel) (entities.Hotel, error) {
	av, err := attributevalue.MarshalMap(toHotelItem(h))
	if err != nil {
		return entities.Hotel{}, err
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
		return entities.Hotel{}, err
	}
	return h, nil
}

func (r *HotelDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toHotelItem(h entities.Hotel) hotelItem {
	return hotelItem{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		Rating:        h.Rating,
		Reviews:       h.Reviews,
		Image:         h.Image,
		Price:         h.Price,
		Description:   h.Description,
		StripePriceID: h.StripePriceID,
	}
}

func fromHotelItem(it hotelItem) entities.Hotel {
	return entities.Hotel{
		ID:            it.ID,
		Name:          it.Name,
		Location:      it.Location,
		Rating:        it.Rating,
		Reviews:       it.Reviews,
		Image:         it.Image,
		Price:         it.Price,
		Description:   it.Description,
		StripePriceID: it.StripePriceID,
	}
}
