package whatsapp

import "github.com/TecWeb-Studio/newbodyline2/pkg/types"

// BookingDetails данные брони для текста уведомления
type BookingDetails struct {
	BookingID   string
	TrainerName string
	Date        string
	Time        types.TimeString
	ClientName  string
	ClientPhone string
}

// RescheduleDetails данные переноса брони для текста уведомления
type RescheduleDetails struct {
	BookingID      string
	ClientName     string
	OldTrainerName string
	OldDate        string
	OldTime        types.TimeString
	NewTrainerName string
	NewDate        string
	NewTime        types.TimeString
	TrainerChanged bool
}

// Config конфигурация Twilio WhatsApp клиента
type Config struct {
	AccountSID  string
	AuthToken   string
	FromNumber  string
	AdminNumber string
	SiteBaseURL string
}

// Enabled сообщает, заполнены ли учётные данные Twilio.
// Без них уведомления молча пропускаются.
func (c Config) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}
