package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RegistrationColName = "registrations"

type RegistrationRepo interface {
	CreateRegistration(ctx context.Context, registration *Registration) (*Registration, error)
	GetRegistrationByID(ctx context.Context, id primitive.ObjectID) (*Registration, error)
	GetRegistrationByTicketID(ctx context.Context, ticketID string) (*Registration, error)
	ListRegistrationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*Registration, error)
	CountApprovedRegistrations(ctx context.Context, eventID primitive.ObjectID) (int, error)
	UpdateRegistrationStatus(ctx context.Context, id primitive.ObjectID, status RegistrationStatus, ticketID string) (*Registration, error)
}

func (mdb *MongodbRepo) CreateRegistration(ctx context.Context, registration *Registration) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := registration.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	registration.CreatedAt = now
	registration.UpdatedAt = now

	if _, err := col.InsertOne(ctx, registration); err != nil {
		return nil, fmt.Errorf("error inserting registration: %v", err)
	}

	return registration, nil
}

func (mdb *MongodbRepo) GetRegistrationByID(ctx context.Context, id primitive.ObjectID) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var registration Registration
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&registration); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding registration by ID: %v", err)
	}

	return &registration, nil
}

func (mdb *MongodbRepo) GetRegistrationByTicketID(ctx context.Context, ticketID string) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var registration Registration
	if err := col.FindOne(ctx, bson.M{"ticket_id": ticketID}).Decode(&registration); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding registration by ticket ID: %v", err)
	}

	return &registration, nil
}

func (mdb *MongodbRepo) ListRegistrationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := col.Find(ctx, bson.M{"event": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding registrations: %v", err)
	}
	defer cursor.Close(ctx)

	var registrations []*Registration
	for cursor.Next(ctx) {
		var registration Registration
		if err := cursor.Decode(&registration); err != nil {
			return nil, fmt.Errorf("error decoding registration: %v", err)
		}
		registrations = append(registrations, &registration)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return registrations, nil
}

func (mdb *MongodbRepo) CountApprovedRegistrations(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"event": eventID, "status": StatusApproved})
	if err != nil {
		return 0, fmt.Errorf("error counting approved registrations: %v", err)
	}

	return int(count), nil
}

// UpdateRegistrationStatus sets the status and, when ticketID is non-empty,
// attaches the ticket identifier. Callers must only pass a ticketID for a
// registration that does not carry one yet.
func (mdb *MongodbRepo) UpdateRegistrationStatus(ctx context.Context, id primitive.ObjectID, status RegistrationStatus, ticketID string) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if ticketID != "" {
		set["ticket_id"] = ticketID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Registration
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating registration status: %v", err)
	}

	return &updated, nil
}
