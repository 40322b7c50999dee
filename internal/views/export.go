package views

import (
	"encoding/csv"
	"io"
	"strconv"

	"motionklub/internal/domain"
)

var registrationCSVHeader = []string{
	"booking_id", "bnr", "participant", "age", "type",
	"activity", "date", "time", "location", "hotel",
}

// WriteRegistrationsCSV writes one row per registration with a header line.
func WriteRegistrationsCSV(w io.Writer, regs []domain.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(registrationCSVHeader); err != nil {
		return err
	}
	for _, r := range regs {
		row := []string{
			strconv.FormatInt(r.BookingID, 10),
			r.BNR,
			r.Participant.DisplayName,
			strconv.Itoa(r.Participant.Age),
			string(r.Participant.Type),
			r.ActivityTitle,
			r.StartAt.Day(),
			r.StartAt.Clock() + "-" + r.EndAt.Clock(),
			r.Location.Label,
			r.Hotel.Name,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
