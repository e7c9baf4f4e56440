package dto

import (
	"fmt"
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/booking"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RegisterStayRequest defines the data needed to register or reserve a stay.
// Either an explicit checkOutDate or a number of nights must be provided;
// when both are present the explicit date wins and nights is recomputed.
type RegisterStayRequest struct {
	RoomNumber   int             `json:"roomNumber" binding:"required,min=1"`
	GuestName    string          `json:"guestName" binding:"required"`
	IDDocument   string          `json:"idDocument" binding:"required"`
	Address      string          `json:"address"`
	Occupation   string          `json:"occupation"`
	Nationality  string          `json:"nationality"`
	Nights       int             `json:"nights" binding:"omitempty,min=1,max=365"`
	CheckInDate  string          `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string          `json:"checkOutDate" binding:"omitempty,datetime=2006-01-02"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Paid         decimal.Decimal `json:"paid"`
}

// ProposedStay converts the request into a domain stay. Range validation
// (degenerate dates, negative amounts) is left to domain.Stay.Validate.
func (r RegisterStayRequest) ProposedStay() (domain.Stay, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckInDate)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("invalid check-in date %q: %w", r.CheckInDate, err)
	}

	var period domain.DateRange
	if r.CheckOutDate != "" {
		checkOut, err := time.Parse(dateLayout, r.CheckOutDate)
		if err != nil {
			return domain.Stay{}, fmt.Errorf("invalid check-out date %q: %w", r.CheckOutDate, err)
		}
		period = domain.DateRange{CheckIn: domain.DateOnly(checkIn), CheckOut: domain.DateOnly(checkOut)}
	} else {
		if r.Nights < 1 {
			return domain.Stay{}, fmt.Errorf("either checkOutDate or a positive nights value is required")
		}
		period = domain.NewDateRange(checkIn, r.Nights)
	}

	return domain.Stay{
		Guest: domain.Guest{
			Name:        r.GuestName,
			IDDocument:  r.IDDocument,
			Address:     r.Address,
			Occupation:  r.Occupation,
			Nationality: r.Nationality,
		},
		Nights:    period.Nights(),
		Period:    period,
		Paid:      r.Paid,
		TotalCost: r.TotalCost,
	}, nil
}

// RegisterStayResponse reports how a stay was placed.
type RegisterStayResponse struct {
	Placement     string           `json:"placement"` // CHECKED_IN or RESERVED
	RoomNumber    int              `json:"roomNumber"`
	ReservationID *int64           `json:"reservationID,omitempty"`
	Stay          OccupantResponse `json:"stay"`
}

// ToRegisterStayResponse converts a domain registration outcome.
func ToRegisterStayResponse(reg *domain.Registration) RegisterStayResponse {
	resp := RegisterStayResponse{Placement: string(reg.Kind)}
	switch {
	case reg.Room != nil:
		resp.RoomNumber = reg.Room.RoomNumber
		resp.Stay = ToOccupantResponse(reg.Room.Occupant)
	case reg.Reservation != nil:
		resp.RoomNumber = reg.Reservation.RoomNumber
		resp.ReservationID = &reg.Reservation.ReservationID
		resp.Stay = ToOccupantResponse(&reg.Reservation.Stay)
	}
	return resp
}

// CheckoutRequest defines the payment applied at check-out.
type CheckoutRequest struct {
	AdditionalPayment decimal.Decimal `json:"additionalPayment"`
}

// CheckoutResponse reports a settled check-out and any promotion it triggered.
type CheckoutResponse struct {
	RoomNumber int                  `json:"roomNumber"`
	Settled    bool                 `json:"settled"`
	AmountPaid decimal.Decimal      `json:"amountPaid"`
	Overpaid   decimal.Decimal      `json:"overpaid"`
	Promoted   *ReservationResponse `json:"promoted,omitempty"`
}

// ToCheckoutResponse converts a domain checkout result.
func ToCheckoutResponse(res *domain.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{
		RoomNumber: res.RoomNumber,
		Settled:    true,
		AmountPaid: res.AmountPaid,
		Overpaid:   res.Overpaid,
	}
	if res.Promoted != nil {
		promoted := ToReservationResponse(res.Promoted)
		resp.Promoted = &promoted
	}
	return resp
}

// ConflictItem identifies one existing stay colliding with a proposed range.
// reservationID is omitted when the collision is with the current occupant.
type ConflictItem struct {
	ReservationID int64  `json:"reservationID,omitempty"`
	GuestName     string `json:"guestName"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
}

// ConflictResponse carries the full list of collisions for a rejected booking.
type ConflictResponse struct {
	Error     string         `json:"error"`
	Conflicts []ConflictItem `json:"conflicts"`
}

// ToConflictResponse converts engine conflicts into the rejection payload.
func ToConflictResponse(conflicts []booking.Conflict) ConflictResponse {
	items := make([]ConflictItem, len(conflicts))
	for i, c := range conflicts {
		items[i] = ConflictItem{
			ReservationID: c.ReservationID,
			GuestName:     c.GuestName,
			CheckInDate:   c.Period.CheckIn.Format(dateLayout),
			CheckOutDate:  c.Period.CheckOut.Format(dateLayout),
		}
	}
	return ConflictResponse{
		Error:     "booking conflict detected",
		Conflicts: items,
	}
}

// SweepResponse lists the reservations promoted by a promotion sweep.
type SweepResponse struct {
	Promoted []ReservationResponse `json:"promoted"`
}

// ToSweepResponse converts the promoted reservations of a sweep.
func ToSweepResponse(promoted []domain.Reservation) SweepResponse {
	resp := SweepResponse{Promoted: make([]ReservationResponse, len(promoted))}
	for i := range promoted {
		resp.Promoted[i] = ToReservationResponse(&promoted[i])
	}
	return resp
}
