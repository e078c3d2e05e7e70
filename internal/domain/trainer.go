package domain

// Trainer represents a personal trainer of the studio.
// Reference data: rows are created by seeding or admin tooling and are
// never deleted by the booking core.
type Trainer struct {
	ID          string
	Name        string
	Specialty   string
	Image       string
	Description string
	Rating      float64
	Phone       *string // WhatsApp number for notifications, optional
}
