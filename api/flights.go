package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:number", h.get)
	router.GET("/:number/seats", h.seats)
}

// list returns the fleet. ?from=&to= searches a route among flights that have
// not departed yet; ?upcoming=true keeps only flights that have not departed.
func (h *FlightHandler) list(c *gin.Context) {
	ctx := c.Request.Context()
	from, to := c.Query("from"), c.Query("to")

	var (
		flights []domain.FlightSummary
		err     error
	)
	switch {
	case from != "" || to != "":
		flights, err = h.service.Search(ctx, from, to, time.Now())
	case c.Query("upcoming") == "true":
		flights, err = h.service.Upcoming(ctx, time.Now())
	default:
		flights, err = h.service.List(ctx)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// seats returns the seat map; ?available=true keeps only free seats.
func (h *FlightHandler) seats(c *gin.Context) {
	seatMap, err := h.service.SeatMap(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	if c.Query("available") == "true" {
		free := seatMap[:0:0]
		for _, s := range seatMap {
			if !s.Reserved {
				free = append(free, s)
			}
		}
		seatMap = free
	}
	c.JSON(http.StatusOK, seatMap)
}
