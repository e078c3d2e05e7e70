package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	twilioAPIBase  = "https://api.twilio.com/2010-04-01"
	requestTimeout = 10 * time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Twilio WhatsApp API для уведомлений о бронях.
// Все методы (Notify, не SendMessage) пишут ошибки в лог и никогда не возвращают их наверх:
// сбой уведомления не должен ломать бронирование.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     Logger
	apiBase    string
}

// NewClient создает новый клиент Twilio WhatsApp API
func NewClient(cfg Config, logger Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		apiBase:    twilioAPIBase,
	}
}

// NotifyBookingRequested уведомляет тренера и клиента о новой заявке
func (c *Client) NotifyBookingRequested(ctx context.Context, details BookingDetails, trainerPhone *string) {
	if trainerPhone != nil && *trainerPhone != "" {
		body := fmt.Sprintf(
			"New booking request!\n\nClient: %s\nPhone: %s\nDate: %s\nTime: %s\n\nConfirm or reject: %s/admin",
			details.ClientName, details.ClientPhone, details.Date, details.Time, c.cfg.SiteBaseURL,
		)
		c.send(ctx, *trainerPhone, body, "booking requested (trainer)", details.BookingID)
	}

	clientBody := fmt.Sprintf(
		"Hi %s! Your booking request with %s on %s at %s has been received and is awaiting confirmation. Booking ID: %s",
		details.ClientName, details.TrainerName, details.Date, details.Time, details.BookingID,
	)
	c.send(ctx, details.ClientPhone, clientBody, "booking requested (client)", details.BookingID)
}

// NotifyBookingConfirmed уведомляет клиента о подтверждении брони
func (c *Client) NotifyBookingConfirmed(ctx context.Context, details BookingDetails) {
	body := fmt.Sprintf(
		"Hi %s! Your session with %s on %s at %s is confirmed. See you there!",
		details.ClientName, details.TrainerName, details.Date, details.Time,
	)
	c.send(ctx, details.ClientPhone, body, "booking confirmed", details.BookingID)
}

// NotifyBookingRejected уведомляет клиента об отклонении брони
func (c *Client) NotifyBookingRejected(ctx context.Context, details BookingDetails) {
	body := fmt.Sprintf(
		"Hi %s, unfortunately your booking with %s on %s at %s could not be confirmed. The slot is available again, feel free to pick another one: %s",
		details.ClientName, details.TrainerName, details.Date, details.Time, c.cfg.SiteBaseURL,
	)
	c.send(ctx, details.ClientPhone, body, "booking rejected", details.BookingID)
}

// NotifyBookingCancelled уведомляет тренера об отмене брони клиентом
func (c *Client) NotifyBookingCancelled(ctx context.Context, details BookingDetails, trainerPhone *string) {
	if trainerPhone == nil || *trainerPhone == "" {
		return
	}
	body := fmt.Sprintf(
		"Booking cancelled.\n\nClient: %s\nDate: %s\nTime: %s\nThe slot is available again.",
		details.ClientName, details.Date, details.Time,
	)
	c.send(ctx, *trainerPhone, body, "booking cancelled", details.BookingID)
}

// NotifyBookingRescheduled уведомляет о переносе брони. При смене тренера
// уведомляются оба: старый теряет сессию, новый получает.
func (c *Client) NotifyBookingRescheduled(ctx context.Context, details RescheduleDetails, oldTrainerPhone, newTrainerPhone *string) {
	if details.TrainerChanged {
		if oldTrainerPhone != nil && *oldTrainerPhone != "" {
			body := fmt.Sprintf(
				"Booking moved away.\n\nClient: %s\nWas: %s at %s\nThe slot is available again.",
				details.ClientName, details.OldDate, details.OldTime,
			)
			c.send(ctx, *oldTrainerPhone, body, "booking rescheduled (old trainer)", details.BookingID)
		}
		if newTrainerPhone != nil && *newTrainerPhone != "" {
			body := fmt.Sprintf(
				"Booking moved to you.\n\nClient: %s\nDate: %s\nTime: %s",
				details.ClientName, details.NewDate, details.NewTime,
			)
			c.send(ctx, *newTrainerPhone, body, "booking rescheduled (new trainer)", details.BookingID)
		}
		return
	}

	if newTrainerPhone != nil && *newTrainerPhone != "" {
		body := fmt.Sprintf(
			"Booking rescheduled.\n\nClient: %s\nWas: %s at %s\nNow: %s at %s",
			details.ClientName, details.OldDate, details.OldTime, details.NewDate, details.NewTime,
		)
		c.send(ctx, *newTrainerPhone, body, "booking rescheduled", details.BookingID)
	}
}

// SendMessage отправляет одно WhatsApp сообщение через Twilio Messages API
func (c *Client) SendMessage(ctx context.Context, toPhone, body string) error {
	if !c.cfg.Enabled() {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.apiBase, c.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+c.cfg.FromNumber)
	form.Set("To", "whatsapp:"+normalizePhone(toPhone))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: SendMessage - create request: %v", ErrRequestFailed, err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: SendMessage - execute request: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: SendMessage - status %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(payload))
	}

	return nil
}

func (c *Client) send(ctx context.Context, toPhone, body, kind, bookingID string) {
	if !c.cfg.Enabled() {
		c.logger.Info("WhatsApp notification skipped (not configured): %s, booking %s", kind, bookingID)
		return
	}
	if err := c.SendMessage(ctx, toPhone, body); err != nil {
		c.logger.Error("Failed to send WhatsApp notification (%s) for booking %s: %v", kind, bookingID, err)
		return
	}
	c.logger.Info("WhatsApp notification sent (%s) for booking %s", kind, bookingID)
}

// normalizePhone приводит номер к формату E.164, убирая пробелы и скобки
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return s
}
