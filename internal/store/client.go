package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
)

// maxRecentDocuments caps the window get_recent_documents will return.
const maxRecentDocuments = 20

// Client executes backing operations against a MongoDB-compatible document
// store. One instance is created at process start and shared by every
// request; the driver handle is safe for concurrent use.
type Client struct {
	mc           *mongo.Client
	queryTimeout time.Duration
}

// Connect dials the document store and verifies the connection.
func Connect(ctx context.Context, uri string, queryTimeout time.Duration) (*Client, error) {
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("ping document store: %w", err)
	}
	return &Client{mc: mc, queryTimeout: queryTimeout}, nil
}

// Close releases the driver's connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}

// Execute routes a tool name to its backing operation. The caller's context
// carries the request lifetime; a per-operation timeout is layered on top.
func (c *Client) Execute(ctx context.Context, tool string, args protocol.Arguments) (Outcome, error) {
	if c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	db := args["db_name"].String()
	coll := args["collection_name"].String()

	switch tool {
	case ToolRecentDocuments:
		return c.recentDocuments(ctx, db, coll, args["n"].Int())
	case ToolFindDocumentByID:
		return c.findDocumentByID(ctx, db, coll, args["document_id"].String())
	case ToolCustomerProductCount:
		return c.customerProductCount(ctx, db, coll, args["customer_id"].String())
	case ToolCustomerOrderTotal:
		return c.customerOrderTotal(ctx, db, coll, args["customer_id"].String())
	default:
		return Outcome{}, fmt.Errorf("no backing operation for tool %q", tool)
	}
}

func (c *Client) collection(db, coll string) *mongo.Collection {
	return c.mc.Database(db).Collection(coll)
}

// recentDocuments returns the n most recent documents, descending _id. The
// range check is a local constraint of this operation: violations are soft
// errors, not dispatch errors.
func (c *Client) recentDocuments(ctx context.Context, db, coll string, n int32) (Outcome, error) {
	if n < 1 || n > maxRecentDocuments {
		return Soft(SoftError{
			Error:      fmt.Sprintf("n must be between 1 and %d, got %d", maxRecentDocuments, n),
			StatusCode: 400,
		}), nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(n))
	cur, err := c.collection(db, coll).Find(ctx, bson.D{}, opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("find recent documents: %w", err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return Outcome{}, fmt.Errorf("read recent documents: %w", err)
	}
	return OK(docs), nil
}

// findDocumentByID looks up a single document. Hex ids are matched as
// ObjectIDs, anything else as a raw string _id.
func (c *Client) findDocumentByID(ctx context.Context, db, coll, id string) (Outcome, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": oid}
	}

	var doc bson.M
	err := c.collection(db, coll).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Soft(map[string]any{"message": fmt.Sprintf("No document found with id %s", id)}), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("find document %s: %w", id, err)
	}
	return OK(doc), nil
}

// customerProductCount counts distinct product_id values for one customer.
func (c *Client) customerProductCount(ctx context.Context, db, coll, customerID string) (Outcome, error) {
	values, err := c.collection(db, coll).Distinct(ctx, "product_id", bson.M{"customer_id": customerID})
	if err != nil {
		return Outcome{}, fmt.Errorf("distinct products for customer %s: %w", customerID, err)
	}
	if len(values) == 0 {
		return Soft(map[string]any{
			"customer_id":       customerID,
			"distinct_products": 0,
			"message":           fmt.Sprintf("No products found for customer %s", customerID),
		}), nil
	}
	return OK(map[string]any{
		"customer_id":       customerID,
		"distinct_products": len(values),
	}), nil
}

// customerOrderTotal sums the amount field across one customer's documents.
func (c *Client) customerOrderTotal(ctx context.Context, db, coll, customerID string) (Outcome, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"order_total": bson.M{"$sum": "$amount"},
			"order_count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := c.collection(db, coll).Aggregate(ctx, pipeline)
	if err != nil {
		return Outcome{}, fmt.Errorf("aggregate order total for customer %s: %w", customerID, err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		OrderTotal float64 `bson:"order_total"`
		OrderCount int64   `bson:"order_count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Outcome{}, fmt.Errorf("read order total for customer %s: %w", customerID, err)
	}
	if len(rows) == 0 {
		return Soft(map[string]any{
			"customer_id": customerID,
			"order_total": 0,
			"message":     fmt.Sprintf("No orders found for customer %s", customerID),
		}), nil
	}
	return OK(map[string]any{
		"customer_id": customerID,
		"order_total": rows[0].OrderTotal,
		"order_count": rows[0].OrderCount,
	}), nil
}
