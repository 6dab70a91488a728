package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson builds bson update maps ($set, $push, ...) from structs.
type CustomBson struct{}

// BsonWrapper wraps the basic bson update operators so a struct can be
// marshalled straight into an update document.
type BsonWrapper struct {
	// Set replaces field values, e.g. { $set : {name : "Jack"} }.
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset removes fields, e.g. { $unset: { name: "" } }.
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push appends a value to an array field.
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// AddToSet appends a value to an array only when it is not present yet.
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
}

// ToMap converts a struct to a map through a bson marshal round-trip, so
// bson tags and omitempty are honored.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// Set builds a $set update map from data.
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Push builds a $push update map from data.
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}

// Unset builds a $unset update map from data.
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// AddToSet builds an $addToSet update map from data.
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{AddToSet: data}
	return ToMap(s)
}
