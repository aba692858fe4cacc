package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/internal/domain/entity"
)

// userDocument is the stored shape of a user. id_number is omitted on legacy records.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	IDNumber  string             `bson:"id_number,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

type categoryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
}

// subCategoryDocument keeps category_id as the hex string the client sent.
type subCategoryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	CategoryID string             `bson:"category_id"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type lessonDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	CategoryID    string             `bson:"category_id"`
	SubCategoryID string             `bson:"sub_category_id"`
	Prompt        string             `bson:"prompt"`
	Response      string             `bson:"response"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// storedTime truncates t to the millisecond precision of BSON dates.
func storedTime(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}

	return t.UTC().Truncate(time.Millisecond)
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		IDNumber:  d.IDNumber,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (d *categoryDocument) toEntity() *entity.Category {
	return &entity.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (d *subCategoryDocument) toEntity() *entity.SubCategory {
	return &entity.SubCategory{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		CategoryID: d.CategoryID,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func (d *lessonDocument) toEntity() *entity.Lesson {
	return &entity.Lesson{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		CategoryID:    d.CategoryID,
		SubCategoryID: d.SubCategoryID,
		Prompt:        d.Prompt,
		Response:      d.Response,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}
