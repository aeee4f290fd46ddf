package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Principal is the verified identity attached to an authenticated request.
type Principal struct {
	ID       primitive.ObjectID
	Username string
	Email    string
}
