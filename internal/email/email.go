package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airseats/internal/kafka"
)

// Sender renders passenger notifications for reservation events. Delivery is a
// plain write to out until an SMTP relay is configured.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	if event.Contact == "" {
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s: %s\n", event.Contact, Subject(event))
	return err
}

func Subject(event kafka.ReservationEvent) string {
	switch event.Type {
	case kafka.EventReservationCreated:
		return fmt.Sprintf("seat %s on flight %s is reserved (code %s, ticket %s, %.2f)",
			event.SeatCode, event.FlightNumber, event.ReservationCode, event.TicketID, event.Price)
	case kafka.EventReservationCancelled:
		return fmt.Sprintf("reservation %s for seat %s on flight %s was cancelled",
			event.ReservationCode, event.SeatCode, event.FlightNumber)
	default:
		return fmt.Sprintf("%s for reservation %s", event.Type, event.ReservationCode)
	}
}
