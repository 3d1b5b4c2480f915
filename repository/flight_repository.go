// repository/flight_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/tripkit/tripkit-backend/models"
)

// FlightRepository handles database operations for flights
type FlightRepository struct {
	DB *sql.DB
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository() *FlightRepository {
	return &FlightRepository{
		DB: GetDB(),
	}
}

// StoreFlight saves a flight to the database
func (r *FlightRepository) StoreFlight(flight *models.Flight) error {
	_, err := r.DB.Exec(
		`INSERT INTO flights (id, trip_id, airline, flight_number, departure_time, arrival_time,
                              departure_airport, arrival_airport, price, confirmation_code, notes)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		flight.ID, flight.TripID, nullString(flight.Airline), nullString(flight.FlightNumber),
		nullString(flight.DepartureTime), nullString(flight.ArrivalTime),
		nullString(flight.DepartureAirport), nullString(flight.ArrivalAirport),
		flight.Price, nullString(flight.ConfirmationCode), nullString(flight.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %v", err)
	}
	return nil
}

// GetFlightsByTrip retrieves all flights for a trip
func (r *FlightRepository) GetFlightsByTrip(tripID string) ([]models.Flight, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, airline, flight_number, departure_time, arrival_time,
                departure_airport, arrival_airport, price, confirmation_code, notes
         FROM flights WHERE trip_id = $1`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get flights: %v", err)
	}
	defer rows.Close()

	flights := []models.Flight{}
	for rows.Next() {
		var flight models.Flight
		var airline, flightNumber, departureTime, arrivalTime sql.NullString
		var departureAirport, arrivalAirport, confirmationCode, notes sql.NullString
		var price sql.NullFloat64

		err = rows.Scan(&flight.ID, &flight.TripID, &airline, &flightNumber,
			&departureTime, &arrivalTime, &departureAirport, &arrivalAirport,
			&price, &confirmationCode, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %v", err)
		}

		flight.Airline = airline.String
		flight.FlightNumber = flightNumber.String
		flight.DepartureTime = departureTime.String
		flight.ArrivalTime = arrivalTime.String
		flight.DepartureAirport = departureAirport.String
		flight.ArrivalAirport = arrivalAirport.String
		flight.ConfirmationCode = confirmationCode.String
		flight.Notes = notes.String
		if price.Valid {
			flight.Price = &price.Float64
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

// DeleteFlight removes a flight. Returns true when a row matched.
func (r *FlightRepository) DeleteFlight(tripID, flightID string) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM flights WHERE trip_id = $1 AND id = $2",
		tripID, flightID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete flight: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete flight: %v", err)
	}
	return affected > 0, nil
}
