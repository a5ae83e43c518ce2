package dto

// ClockResponse is the clock view state: rotation angles for the three
// hands plus the zero-padded digital readout.
type ClockResponse struct {
	HourDeg   float64 `json:"hour_deg"`
	MinuteDeg float64 `json:"minute_deg"`
	SecondDeg float64 `json:"second_deg"`
	Hours     string  `json:"hours"`
	Minutes   string  `json:"minutes"`
	Seconds   string  `json:"seconds"`
	Running   bool    `json:"running"`
}
