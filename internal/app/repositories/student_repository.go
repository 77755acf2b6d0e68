// Package repositories holds the persistence gateways. Each gateway is a
// narrow interface over a single collection of documents; callers never
// see driver types.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
)

// StudentRepository is the persistence gateway for student documents.
// GetByID returns (nil, nil) when no document matches; absence is not an
// error at this layer. Update and Remove do not report a missing id --
// the service layer existence-checks first.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id string, student *models.Student) error
	Remove(ctx context.Context, id string) error
}

// parseObjectID validates an identifier token before any store access.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidStudentID
	}
	return oid, nil
}

// studentDoc is the stored document shape. The identifier lives in _id;
// the remaining fields mirror the wire names used by earlier deployments.
type studentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	IsGraduated bool               `bson:"graduated"`
	Courses     []string           `bson:"courses"`
	Gender      string             `bson:"gender"`
	Age         int                `bson:"age"`
}

func toDoc(student *models.Student) *studentDoc {
	return &studentDoc{
		Name:        student.Name,
		IsGraduated: student.IsGraduated,
		Courses:     student.Courses,
		Gender:      string(student.Gender),
		Age:         student.Age,
	}
}

func (d *studentDoc) toModel() *models.Student {
	return &models.Student{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		IsGraduated: d.IsGraduated,
		Courses:     d.Courses,
		Gender:      models.Gender(d.Gender),
		Age:         d.Age,
	}
}

// MongoStudentRepository stores students in a MongoDB collection.
type MongoStudentRepository struct {
	collection *mongo.Collection
}

// NewMongoStudentRepository creates a new MongoDB-backed student repository.
func NewMongoStudentRepository(collection *mongo.Collection) *MongoStudentRepository {
	return &MongoStudentRepository{collection: collection}
}

// Create inserts the student and returns the stored representation with
// the assigned identifier.
func (r *MongoStudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	doc := toDoc(student)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, apperrors.NewStorageError(fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}

	doc.ID = oid
	return doc.toModel(), nil
}

// GetAll returns every stored student in store-defined order.
func (r *MongoStudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer cursor.Close(ctx)

	var students []*models.Student
	for cursor.Next(ctx) {
		var doc studentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		students = append(students, doc.toModel())
	}

	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return students, nil
}

// GetByID returns the matching student, or (nil, nil) when absent.
func (r *MongoStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc studentDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return doc.toModel(), nil
}

// Update replaces the document matching id. Replacing a missing id is a
// store-defined no-op.
func (r *MongoStudentRepository) Update(ctx context.Context, id string, student *models.Student) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	doc := toDoc(student)
	doc.ID = oid

	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return apperrors.NewStorageError(err)
	}

	return nil
}

// Remove deletes the document matching id. Deleting a missing id is not
// an error at this layer.
func (r *MongoStudentRepository) Remove(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return apperrors.NewStorageError(err)
	}

	return nil
}
