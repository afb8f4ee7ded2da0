package models

import "time"

// istLocation is the sales office timezone. Export rows and notification
// emails render timestamps in it, matching what the sales team expects.
var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// FormatSubmittedAt renders a submission timestamp for humans.
func FormatSubmittedAt(t time.Time) string {
	return t.In(istLocation).Format("02/01/2006, 3:04:05 PM")
}
