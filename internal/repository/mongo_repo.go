package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements BidLedger, Catalog and BidderDirectory on MongoDB
type MongoRepo struct {
	client   *mongo.Client
	bids     *mongo.Collection
	products *mongo.Collection
	artists  *mongo.Collection
	users    *mongo.Collection
}

// NewMongoRepo connects to uri, verifies the connection and ensures indexes
func NewMongoRepo(ctx context.Context, uri, dbName string) (*MongoRepo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	r := &MongoRepo{
		client:   client,
		bids:     db.Collection("bids"),
		products: db.Collection("products"),
		artists:  db.Collection("artists"),
		users:    db.Collection("users"),
	}
	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return r, nil
}

// Close disconnects the client
func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepo) ensureIndexes(ctx context.Context) error {
	_, err := r.bids.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "isDeleted", Value: 1}, {Key: "amount", Value: -1}}},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "needsReconcile", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create bid indexes: %w", err)
	}
	_, err = r.products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

// Append inserts a new bid document
func (r *MongoRepo) Append(ctx context.Context, bid model.Bid) error {
	if _, err := r.bids.InsertOne(ctx, bid); err != nil {
		return biddingerrors.StoreError("append bid "+bid.BidID, err)
	}
	return nil
}

// TopN returns the n highest active bids for a product, ties broken by earliest creation
func (r *MongoRepo) TopN(ctx context.Context, productID string, n int) ([]model.Bid, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "amount", Value: -1}, {Key: "createdAt", Value: 1}}).
		SetLimit(int64(n))
	return r.findBids(ctx, "top bids", bson.M{"productId": productID, "isDeleted": false}, opts)
}

// LatestN returns the n most recent active bids, newest first
func (r *MongoRepo) LatestN(ctx context.Context, n int) ([]model.Bid, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(n))
	return r.findBids(ctx, "latest bids", bson.M{"isDeleted": false}, opts)
}

// List returns one page of the active ledger, newest first, and the total active count
func (r *MongoRepo) List(ctx context.Context, page, limit int) ([]model.Bid, int64, error) {
	filter := bson.M{"isDeleted": false}
	total, err := r.bids.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, biddingerrors.StoreError("count bids", err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset(page, limit))).
		SetLimit(int64(limit))
	bids, err := r.findBids(ctx, "list bids", filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return bids, total, nil
}

// SoftDelete flags the given bids as deleted and reports how many actually changed
func (r *MongoRepo) SoftDelete(ctx context.Context, ids []string) (int64, error) {
	res, err := r.bids.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		return 0, biddingerrors.StoreError("soft delete bids", err)
	}
	return res.ModifiedCount, nil
}

// SoftDeleteByProduct flags every bid of the given products as deleted
func (r *MongoRepo) SoftDeleteByProduct(ctx context.Context, productIDs []string) (int64, error) {
	res, err := r.bids.UpdateMany(ctx,
		bson.M{"productId": bson.M{"$in": productIDs}, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		return 0, biddingerrors.StoreError("cascade delete bids", err)
	}
	return res.ModifiedCount, nil
}

// HighestActive returns the maximum active amount for a product
func (r *MongoRepo) HighestActive(ctx context.Context, productID string) (float64, bool, error) {
	var top model.Bid
	err := r.bids.FindOne(ctx,
		bson.M{"productId": productID, "isDeleted": false},
		options.FindOne().SetSort(bson.D{{Key: "amount", Value: -1}}),
	).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, biddingerrors.StoreError("highest bid for "+productID, err)
	}
	return top.Amount, true, nil
}

// MarkOrphaned flags a bid whose product link could not be written
func (r *MongoRepo) MarkOrphaned(ctx context.Context, bidID string) error {
	return r.setReconcile(ctx, bidID, true)
}

// ClearOrphaned removes the reconcile flag once the link exists
func (r *MongoRepo) ClearOrphaned(ctx context.Context, bidID string) error {
	return r.setReconcile(ctx, bidID, false)
}

// ListOrphaned returns up to limit bids waiting for reconciliation, oldest first
func (r *MongoRepo) ListOrphaned(ctx context.Context, limit int) ([]model.Bid, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	return r.findBids(ctx, "orphaned bids", bson.M{"needsReconcile": true}, opts)
}

func (r *MongoRepo) setReconcile(ctx context.Context, bidID string, flag bool) error {
	res, err := r.bids.UpdateOne(ctx,
		bson.M{"_id": bidID},
		bson.M{"$set": bson.M{"needsReconcile": flag}})
	if err != nil {
		return biddingerrors.StoreError("set reconcile flag on "+bidID, err)
	}
	if res.MatchedCount == 0 {
		return biddingerrors.StoreError("set reconcile flag", fmt.Errorf("bid %s does not exist", bidID))
	}
	return nil
}

func (r *MongoRepo) findBids(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]model.Bid, error) {
	cur, err := r.bids.Find(ctx, filter, opts)
	if err != nil {
		return nil, biddingerrors.StoreError(op, err)
	}
	bids := []model.Bid{}
	if err := cur.All(ctx, &bids); err != nil {
		return nil, biddingerrors.StoreError(op, err)
	}
	return bids, nil
}

// CreateProduct inserts a product with an empty bid reference list
func (r *MongoRepo) CreateProduct(ctx context.Context, p model.Product) error {
	p.BidIDs = []string{}
	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return biddingerrors.StoreError("create product", err)
	}
	return nil
}

// GetProduct returns a non-deleted product
func (r *MongoRepo) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.products.FindOne(ctx, bson.M{"_id": productID, "isDeleted": false}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, biddingerrors.StoreError("get product "+productID, err)
	}
	return p, nil
}

// UpdateProduct sets the catalog fields of a product, the bid reference list is untouched
func (r *MongoRepo) UpdateProduct(ctx context.Context, p model.Product) error {
	res, err := r.products.UpdateOne(ctx,
		bson.M{"_id": p.ProductID, "isDeleted": false},
		bson.M{"$set": bson.M{
			"title":        p.Title,
			"description":  p.Description,
			"image":        p.Image,
			"minimumBid":   p.MinimumBid,
			"auctionStart": p.AuctionStart,
			"auctionEnd":   p.AuctionEnd,
			"soldOut":      p.SoldOut,
			"isActive":     p.IsActive,
			"artistId":     p.ArtistID,
			"updatedAt":    p.UpdatedAt,
		}})
	if err != nil {
		return biddingerrors.StoreError("update product "+p.ProductID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update product %s: %w", p.ProductID, biddingerrors.ErrProductNotFound)
	}
	return nil
}

// ListProducts returns a page of non-deleted products, newest first
func (r *MongoRepo) ListProducts(ctx context.Context, f model.ProductFilter) ([]model.Product, int64, error) {
	filter := bson.M{"isDeleted": false}
	if f.ActiveOnly {
		filter["isActive"] = true
	}
	if f.Search != "" {
		filter["title"] = searchRegex(f.Search)
	}

	total, err := r.products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, biddingerrors.StoreError("count products", err)
	}
	cur, err := r.products.Find(ctx, filter, pageOptions(f.Page, f.Limit))
	if err != nil {
		return nil, 0, biddingerrors.StoreError("list products", err)
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, biddingerrors.StoreError("list products", err)
	}
	return products, total, nil
}

// SoftDeleteProducts flags products as deleted
func (r *MongoRepo) SoftDeleteProducts(ctx context.Context, ids []string) (int64, error) {
	res, err := r.products.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		return 0, biddingerrors.StoreError("soft delete products", err)
	}
	return res.ModifiedCount, nil
}

// LinkBid appends a bid reference to a product; $addToSet keeps retries idempotent
func (r *MongoRepo) LinkBid(ctx context.Context, productID, bidID string) error {
	res, err := r.products.UpdateOne(ctx,
		bson.M{"_id": productID, "isDeleted": false},
		bson.M{"$addToSet": bson.M{"bids": bidID}})
	if err != nil {
		return biddingerrors.StoreError("link bid "+bidID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("link bid %s: %w", bidID, biddingerrors.ErrProductNotFound)
	}
	return nil
}

// CreateArtist inserts an artist
func (r *MongoRepo) CreateArtist(ctx context.Context, a model.Artist) error {
	if _, err := r.artists.InsertOne(ctx, a); err != nil {
		return biddingerrors.StoreError("create artist", err)
	}
	return nil
}

// GetArtist returns a non-deleted artist
func (r *MongoRepo) GetArtist(ctx context.Context, artistID string) (model.Artist, error) {
	var a model.Artist
	err := r.artists.FindOne(ctx, bson.M{"_id": artistID, "isDeleted": false}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Artist{}, fmt.Errorf("get artist %s: %w", artistID, biddingerrors.ErrArtistNotFound)
	}
	if err != nil {
		return model.Artist{}, biddingerrors.StoreError("get artist "+artistID, err)
	}
	return a, nil
}

// UpdateArtist sets the editable fields of a non-deleted artist
func (r *MongoRepo) UpdateArtist(ctx context.Context, a model.Artist) error {
	res, err := r.artists.UpdateOne(ctx,
		bson.M{"_id": a.ArtistID, "isDeleted": false},
		bson.M{"$set": bson.M{
			"name":       a.Name,
			"bio":        a.Bio,
			"country":    a.Country,
			"isActive":   a.IsActive,
			"isFeatured": a.IsFeatured,
			"updatedAt":  a.UpdatedAt,
		}})
	if err != nil {
		return biddingerrors.StoreError("update artist "+a.ArtistID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update artist %s: %w", a.ArtistID, biddingerrors.ErrArtistNotFound)
	}
	return nil
}

// ListArtists returns a page of non-deleted artists matching the filter, newest first
func (r *MongoRepo) ListArtists(ctx context.Context, f model.ArtistFilter) ([]model.Artist, int64, error) {
	filter := bson.M{"isDeleted": false}
	if f.ActiveOnly {
		filter["isActive"] = true
	}
	if f.FeaturedOnly {
		filter["isFeatured"] = true
	}
	if f.Search != "" {
		re := searchRegex(f.Search)
		filter["$or"] = bson.A{bson.M{"name": re}, bson.M{"country": re}}
	}

	total, err := r.artists.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, biddingerrors.StoreError("count artists", err)
	}
	cur, err := r.artists.Find(ctx, filter, pageOptions(f.Page, f.Limit))
	if err != nil {
		return nil, 0, biddingerrors.StoreError("list artists", err)
	}
	artists := []model.Artist{}
	if err := cur.All(ctx, &artists); err != nil {
		return nil, 0, biddingerrors.StoreError("list artists", err)
	}
	return artists, total, nil
}

// SoftDeleteArtists flags artists as deleted
func (r *MongoRepo) SoftDeleteArtists(ctx context.Context, ids []string) (int64, error) {
	res, err := r.artists.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		return 0, biddingerrors.StoreError("soft delete artists", err)
	}
	return res.ModifiedCount, nil
}

// GetBidder resolves a bidder from the users collection
func (r *MongoRepo) GetBidder(ctx context.Context, userID string) (model.Bidder, error) {
	var b model.Bidder
	err := r.users.FindOne(ctx, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"name": 1, "email": 1}),
	).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bidder{}, fmt.Errorf("get bidder %s: %w", userID, biddingerrors.ErrBidderNotFound)
	}
	if err != nil {
		return model.Bidder{}, biddingerrors.StoreError("get bidder "+userID, err)
	}
	return b, nil
}

// AddBidder upserts a bidder document, used for seeding
func (r *MongoRepo) AddBidder(ctx context.Context, b model.Bidder) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"_id": b.UserID},
		bson.M{"$set": bson.M{"name": b.Name, "email": b.Email}},
		options.Update().SetUpsert(true))
	if err != nil {
		return biddingerrors.StoreError("add bidder "+b.UserID, err)
	}
	return nil
}

func searchRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func pageOptions(page, limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset(page, limit))).
		SetLimit(int64(limit))
}
