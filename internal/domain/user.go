package domain

import "time"

// AllowedGenders is the fixed option set of the sign-up gender field.
var AllowedGenders = []string{"home", "dona", "altre"}

// MaxAge is the upper bound on the derived age. Exactly MaxAge years ago
// (same month and day) is still valid; one day older is not.
const MaxAge = 120

// User is a sign-up record. It is constructed only after all five
// required fields pass validation, and transmitted once per successful
// submit. Age is informational, derived from the birth date.
type User struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Gender  string `json:"gender"`
	Birth   string `json:"birth"`
	Age     int    `json:"age"`
}

// CalculateAge derives full years between birth and today, counting a
// year only once its anniversary has passed.
func CalculateAge(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
