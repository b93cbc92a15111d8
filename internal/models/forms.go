package models

import (
	"bytes"
	"strconv"
)

// FlexInt is an int that also accepts a quoted numeric string when decoding
// JSON, since the booking forms submit numberOfTravelers as either.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

// TourBookingForm is the request body for creating a tour booking.
type TourBookingForm struct {
	FullName            string  `json:"fullName" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               string  `json:"phone" validate:"required,phone"`
	NumberOfTravelers   FlexInt `json:"numberOfTravelers" validate:"required,min=1"`
	PreferredTour       string  `json:"preferredTour" validate:"required"`
	PreferredDate       string  `json:"preferredDate" validate:"required,dateonly"`
	SpecialRequirements string  `json:"specialRequirements"`
}

// HotelBookingForm is the request body for creating a hotel booking.
// The check-in/check-out ordering rule is enforced by a struct-level
// validation registered in the validation package.
type HotelBookingForm struct {
	GuestName       string `json:"guestName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone"`
	HotelSelection  string `json:"hotelSelection" validate:"required"`
	CheckInDate     string `json:"checkInDate" validate:"required,dateonly"`
	CheckOutDate    string `json:"checkOutDate" validate:"required,dateonly"`
	SpecialRequests string `json:"specialRequests"`
}

// ContactMessageForm is the request body for sending a contact message.
type ContactMessageForm struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
	TravelInterest string `json:"travelInterest"`
	Message        string `json:"message" validate:"required"`
	Newsletter     bool   `json:"newsletter"`
}
