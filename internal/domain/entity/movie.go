package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is the nested genre sub-document of a movie.
type Genre struct {
	Name string `bson:"name" json:"Name"`
	Bio  string `bson:"bio" json:"Bio"`
}

// Director is the nested director sub-document of a movie.
type Director struct {
	Name string `bson:"name" json:"Name"`
	Bio  string `bson:"bio" json:"Bio"`
}

// Movie is a catalog entry. The collection is seeded once and never mutated
// through the API; Title is the lookup key.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"Title"`
	Description string             `bson:"description" json:"Description"`
	Genre       Genre              `bson:"genre" json:"Genre"`
	Director    Director           `bson:"director" json:"Director"`
	Actors      []string           `bson:"actors" json:"Actors"`
	ImagePath   string             `bson:"image_path" json:"ImagePath"`
	Featured    bool               `bson:"featured" json:"Featured"`
}
