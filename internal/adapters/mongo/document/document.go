package document

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document is a stored record. GetID returns the generated _id, which also fixes insertion order.
type Document interface {
	GetID() primitive.ObjectID
}
