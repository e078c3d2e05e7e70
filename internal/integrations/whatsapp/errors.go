package whatsapp

import "errors"

var (
	// ErrNotConfigured возвращается, когда учётные данные Twilio не заданы
	ErrNotConfigured = errors.New("whatsapp.client: twilio credentials are not configured")

	// ErrRequestFailed возвращается при ошибке HTTP запроса к Twilio API
	ErrRequestFailed = errors.New("whatsapp.client: request to twilio api failed")

	// ErrUnexpectedStatus возвращается при неожиданном статусе ответа Twilio API
	ErrUnexpectedStatus = errors.New("whatsapp.client: unexpected response status from twilio api")
)
