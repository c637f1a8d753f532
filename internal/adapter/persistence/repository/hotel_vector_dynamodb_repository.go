package repository

import (
	"context"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultHotelVectorsTableName = "hotel_vectors"

type hotelVectorItem struct {
	HotelID   string    `dynamodbav:"hotel_id"`
	Embedding []float32 `dynamodbav:"embedding"`
}

// HotelVectorDynamoRepository persists hotel embeddings in DynamoDB.
// Similarity ranking happens in-process over the full result of ListAll; at
// catalog sizes of a few thousand hotels the scan is cheap and exact.
//
// Table requirements:
//   - PK: hotel_id (string)

type HotelVectorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHotelVectorRepository = (*HotelVectorDynamoRepository)(nil)

func NewHotelVectorDynamoRepository(ddb *dynamodb.Client) *HotelVectorDynamoRepository {
	return &HotelVectorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOTEL_VECTORS_TABLE", defaultHotelVectorsTableName),
	}
}

func (r *HotelVectorDynamoRepository) Put(ctx context.Context, v entities.HotelVector) error {
	av, err := attributevalue.MarshalMap(hotelVectorItem{HotelID: v.HotelID, Embedding: v.Embedding})
	if err != nil {
		return err
	}

	// Unconditional put: regenerating embeddings overwrites in place.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *HotelVectorDynamoRepository) ListAll(ctx context.Context) ([]entities.HotelVector, error) {
	items := make([]entities.HotelVector, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it hotelVectorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, entities.HotelVector{HotelID: it.HotelID, Embedding: it.Embedding})
		}
	}
	return items, nil
}
