package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

const userNotFound = "Usuario no encontrado"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Restaurantes == nil {
		user.Restaurantes = []primitive.ObjectID{}
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return helpers.Conflict("el correo %s ya está registrado", user.Correo)
		}
		return translate(err, userNotFound, "insert user")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translate(err, userNotFound, "find user")
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"correo": email}).Decode(&user); err != nil {
		return nil, translate(err, userNotFound, "find user by email")
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := findMany[models.User](ctx, r.coll, bson.M{})
	return users, translate(err, userNotFound, "list users")
}

func (r *UserRepository) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	users, err := findMany[models.User](ctx, r.coll, bson.M{}, pageOptions(skip, limit))
	return users, translate(err, userNotFound, "page users")
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, userNotFound, "count users")
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "username", Value: user.Username})
	updateObj = append(updateObj, bson.E{Key: "password", Value: user.Password})
	updateObj = append(updateObj, bson.E{Key: "correo", Value: user.Correo})
	updateObj = append(updateObj, bson.E{Key: "telefono", Value: user.Telefono})
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: user.UpdatedAt})

	err := updateByID(ctx, r.coll, user.ID, bson.D{{Key: "$set", Value: updateObj}}, userNotFound, "update user")
	if helpers.IsConflict(err) {
		return helpers.Conflict("el correo %s ya está registrado", user.Correo)
	}
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, userNotFound, "delete user")
}

func (r *UserRepository) AddRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error {
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "restaurantes", Value: restaurantID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	return updateByID(ctx, r.coll, userID, update, userNotFound, "link restaurant to user")
}

func (r *UserRepository) RemoveRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error {
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "restaurantes", Value: restaurantID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	return updateByID(ctx, r.coll, userID, update, userNotFound, "unlink restaurant from user")
}
