package helpers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a hex identifier, reporting field in the validation error.
func ParseID(raw, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, Validation("%s no es un identificador válido", field)
	}
	return id, nil
}

func ParseIDs(raws []string, field string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raws))
	for _, raw := range raws {
		id, err := ParseID(raw, field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
