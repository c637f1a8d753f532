package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsHotelIDIndex     = "hotel_id-index"
	bookingsUserIDIndex      = "user_id-index"
)

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	HotelID       string `dynamodbav:"hotel_id"`
	UserID        string `dynamodbav:"user_id"`
	CheckIn       string `dynamodbav:"check_in"`
	CheckOut      string `dynamodbav:"check_out"`
	FirstName     string `dynamodbav:"first_name"`
	LastName      string `dynamodbav:"last_name"`
	Email         string `dynamodbav:"email"`
	PhoneNumber   string `dynamodbav:"phone_number"`
	RoomNumber    int    `dynamodbav:"room_number"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentMethod string `dynamodbav:"payment_method"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: hotel_id-index (PK: hotel_id)
//   - GSI: user_id-index (PK: user_id)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) List(ctx context.Context) ([]entities.Booking, error) {
	items := make([]entities.Booking, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBookingItem(it))
		}
	}
	return items, nil
}

func (r *BookingDynamoRepository) ListByHotelID(ctx context.Context, hotelID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsHotelIDIndex, "hotel_id = :v", hotelID)
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserIDIndex, "user_id = :v", userID)
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

// UpdatePaymentStatus writes the payment outcome onto an existing booking.
// Re-applying the same status/method pair is a no-op in effect, which is what
// makes the webhook and poll reconciliation paths safe to race. A missing id
// returns a zero-value Booking rather than creating a record.
func (r *BookingDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, method entities.PaymentMethod) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET payment_status = :status, payment_method = :method"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":method": &types.AttributeValueMemberS{Value: string(method)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		HotelID:       b.HotelID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn.UTC().Format(time.RFC3339Nano),
		CheckOut:      b.CheckOut.UTC().Format(time.RFC3339Nano),
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		PhoneNumber:   b.PhoneNumber,
		RoomNumber:    b.RoomNumber,
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	checkIn, _ := time.Parse(time.RFC3339Nano, it.CheckIn)
	checkOut, _ := time.Parse(time.RFC3339Nano, it.CheckOut)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Booking{
		ID:            it.ID,
		HotelID:       it.HotelID,
		UserID:        it.UserID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		FirstName:     it.FirstName,
		LastName:      it.LastName,
		Email:         it.Email,
		PhoneNumber:   it.PhoneNumber,
		RoomNumber:    it.RoomNumber,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		CreatedAt:     createdAt,
	}
}
