package service

import (
	"context"
	"log"
	"time"

	"restaurant-client/cart-svc/internal/domain"
)

const DefaultReservationDuration = 2 * time.Hour

type BookingInput struct {
	TableNumber int       `json:"table_number" validate:"gt=0"`
	Start       time.Time `json:"reservation_start" validate:"required"`
}

type ReservationService struct {
	backend   ReservationBackend
	publisher EventPublisher
	duration  time.Duration
}

func NewReservationService(backend ReservationBackend, publisher EventPublisher, duration time.Duration) *ReservationService {
	if duration <= 0 {
		duration = DefaultReservationDuration
	}
	return &ReservationService{
		backend:   backend,
		publisher: publisher,
		duration:  duration,
	}
}

func (s *ReservationService) AvailableTables(ctx context.Context, restaurantID int, start *time.Time) ([]domain.Table, error) {
	if err := checkPositive("restaurant_id", restaurantID); err != nil {
		return nil, err
	}
	return s.backend.AvailableTables(ctx, restaurantID, start)
}

func (s *ReservationService) Book(ctx context.Context, restaurantID int, userID int64, input BookingInput) (*domain.Reservation, error) {
	if err := checkPositive("restaurant_id", restaurantID); err != nil {
		return nil, err
	}
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	start := input.Start.UTC()
	reservation, err := s.backend.CreateReservation(ctx, restaurantID, userID, domain.BookingRequest{
		TableNumber:      input.TableNumber,
		ReservationStart: start.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("ERROR: user %d: book table %d at restaurant %d: %v", userID, input.TableNumber, restaurantID, err)
		return nil, err
	}

	booked := *reservation
	if booked.RestaurantID == 0 {
		booked.RestaurantID = restaurantID
	}
	if booked.UserID == 0 {
		booked.UserID = userID
	}
	if booked.TableNumber == 0 {
		booked.TableNumber = input.TableNumber
	}
	if booked.ReservationStart.IsZero() {
		booked.ReservationStart = start
	}
	if !booked.ReservationEnd.After(booked.ReservationStart) {
		booked.ReservationEnd = booked.ReservationStart.Add(s.duration)
	}
	if booked.Status == "" {
		booked.Status = "pending"
	}

	if s.publisher != nil {
		event := domain.CartEvent{
			Type:         domain.EventReservationBooked,
			UserID:       userID,
			RestaurantID: restaurantID,
			Status:       booked.Status,
			Timestamp:    time.Now().UTC(),
		}
		if err := s.publisher.PublishCartEvent(ctx, event); err != nil {
			log.Printf("ERROR: publish %s event for user %d: %v", event.Type, userID, err)
		}
	}
	return &booked, nil
}

func (s *ReservationService) List(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	return s.backend.ListReservations(ctx, userID)
}

func (s *ReservationService) Cancel(ctx context.Context, restaurantID int, userID int64, reservationID int) error {
	if err := checkPositive("restaurant_id", restaurantID); err != nil {
		return err
	}
	if err := checkUser(userID); err != nil {
		return err
	}
	if err := checkPositive("reservation_id", reservationID); err != nil {
		return err
	}
	if err := s.backend.DeleteReservation(ctx, restaurantID, userID, reservationID); err != nil {
		log.Printf("ERROR: user %d: cancel reservation %d: %v", userID, reservationID, err)
		return err
	}
	return nil
}
