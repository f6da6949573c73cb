package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service booking.BookingUseCase
}

type passengerRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Contact  string `json:"contact"`
	Passport string `json:"passport"`
}

type createReservationRequest struct {
	FlightNumber string           `json:"flight_number" binding:"required"`
	SeatCode     string           `json:"seat_code" binding:"required"`
	Passenger    passengerRequest `json:"passenger"`
	BaggageKg    *float64         `json:"baggage_kg"`
}

type reservationResponse struct {
	Code         string `json:"code"`
	Status       string `json:"status"`
	FlightNumber string `json:"flight_number"`
	SeatCode     string `json:"seat_code"`
	SeatClass    string `json:"seat_class"`
	PassengerID  string `json:"passenger_id"`
	Passenger    string `json:"passenger"`
	CreatedAt    string `json:"created_at"`
}

type ticketResponse struct {
	TicketID         string              `json:"ticket_id"`
	Price            float64             `json:"price"`
	BaggageAllowance float64             `json:"baggage_allowance_kg"`
	BaggageWeight    float64             `json:"baggage_kg"`
	Reservation      reservationResponse `json:"reservation"`
}

func NewReservationHandler(service booking.BookingUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:code", h.get)
	router.GET("/:code/ticket", h.ticket)
	router.DELETE("/:code", h.cancel)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := booking.BookInput{
		FlightNumber: req.FlightNumber,
		SeatCode:     req.SeatCode,
		Passenger: domain.Passenger{
			ID:       req.Passenger.ID,
			Name:     req.Passenger.Name,
			Surname:  req.Passenger.Surname,
			Contact:  req.Passenger.Contact,
			Passport: req.Passenger.Passport,
		},
	}
	if req.BaggageKg != nil {
		input.Baggage = &domain.Baggage{WeightKg: *req.BaggageKg}
	}

	ticket, err := h.service.Book(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *ReservationHandler) get(c *gin.Context) {
	reservation, err := h.service.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) ticket(c *gin.Context) {
	ticket, err := h.service.FindTicketByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	reservation, err := h.service.Cancel(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	resp := reservationResponse{
		Code:        r.Code,
		Status:      string(r.Status),
		PassengerID: r.Passenger.ID,
		Passenger:   r.Passenger.FullName(),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.Flight != nil {
		resp.FlightNumber = r.Flight.Number
	}
	if r.Seat != nil {
		resp.SeatCode = r.Seat.Code
		resp.SeatClass = string(r.Seat.Class)
	}
	return resp
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	resp := ticketResponse{
		TicketID:         t.ID,
		Price:            t.Price,
		BaggageAllowance: t.BaggageAllowance,
		BaggageWeight:    t.BaggageWeight(),
	}
	if t.Reservation != nil {
		resp.Reservation = toReservationResponse(t.Reservation)
	} else {
		resp.Reservation.Code = t.ReservationCode
	}
	return resp
}
