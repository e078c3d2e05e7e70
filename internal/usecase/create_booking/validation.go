package create_booking

import (
	"fmt"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/validate"
)

// clientFields контактные данные клиента для декларативной валидации
type clientFields struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
}

func (u *UseCase) validateCreateData(data CreateBookingData) error {
	fields := clientFields{
		Name:  data.ClientName,
		Email: data.ClientEmail,
		Phone: data.ClientPhone,
	}
	if problems := validate.Struct(fields); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, validate.Format(problems))
	}

	if err := data.Time.Validate(); err != nil {
		return ErrInvalidTime
	}
	if domain.IsDateInPast(data.Date, u.timeProvider.Now()) {
		return ErrDateInPast
	}
	if data.InitialStatus != domain.StatusPending && data.InitialStatus != domain.StatusConfirmed {
		return ErrInvalidStatus
	}
	return nil
}
