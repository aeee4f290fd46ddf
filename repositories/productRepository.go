package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-food-ordering/models"
)

const productNotFound = "Producto no encontrado"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(coll *mongo.Collection) *ProductRepository {
	return &ProductRepository{coll: coll}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Imagenes == nil {
		product.Imagenes = []string{}
	}
	_, err := r.coll.InsertOne(ctx, product)
	return translate(err, productNotFound, "insert product")
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, translate(err, productNotFound, "find product")
	}
	return &product, nil
}

// FindByIDs returns the products found among ids, in no particular order.
// Missing ids are simply absent from the result.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	products, err := findMany[models.Product](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
	return products, translate(err, productNotFound, "find products by id")
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID, restaurantID primitive.ObjectID) ([]models.Product, error) {
	filter := bson.M{"categoriaId": categoryID, "restauranteId": restaurantID}
	products, err := findMany[models.Product](ctx, r.coll, filter)
	return products, translate(err, productNotFound, "list products by category")
}

func (r *ProductRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Product, error) {
	products, err := findMany[models.Product](ctx, r.coll, bson.M{"restauranteId": restaurantID})
	return products, translate(err, productNotFound, "list products by restaurant")
}

func (r *ProductRepository) List(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	products, err := findMany[models.Product](ctx, r.coll, bson.M{}, pageOptions(skip, limit))
	return products, translate(err, productNotFound, "page products")
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, productNotFound, "count products")
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()
	if product.Imagenes == nil {
		product.Imagenes = []string{}
	}
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "nombre", Value: product.Nombre})
	updateObj = append(updateObj, bson.E{Key: "precio", Value: product.Precio})
	updateObj = append(updateObj, bson.E{Key: "categoriaId", Value: product.CategoriaID})
	updateObj = append(updateObj, bson.E{Key: "nombreCategoria", Value: product.NombreCategoria})
	updateObj = append(updateObj, bson.E{Key: "descripcion", Value: product.Descripcion})
	updateObj = append(updateObj, bson.E{Key: "disponibilidad", Value: product.Disponibilidad})
	updateObj = append(updateObj, bson.E{Key: "imagenes", Value: product.Imagenes})
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: product.UpdatedAt})

	return updateByID(ctx, r.coll, product.ID, bson.D{{Key: "$set", Value: updateObj}}, productNotFound, "update product")
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, productNotFound, "delete product")
}
