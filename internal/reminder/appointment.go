package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
)

// appointmentSlack is the half-width of the reminder window around
// now + reminder hours. The job is scheduled hourly; a slower schedule
// leaves appointments that fall between windows unreminded.
const appointmentSlack = time.Hour

// Appointments emails customers whose appointment starts in roughly the
// number of hours each business asked for.
func (d *Dispatcher) Appointments(ctx context.Context) (Result, error) {
	now := d.now()

	return dispatch(ctx, d, pipeline[repository.ListAppointmentsInWindowRow]{
		kind:        KindAppointment,
		preferences: d.store.ListAppointmentReminderPreferences,
		candidates: func(ctx context.Context, pref repository.ReminderPreference) ([]repository.ListAppointmentsInWindowRow, error) {
			center := now.Add(time.Duration(pref.AppointmentReminderHours) * time.Hour)
			return d.store.ListAppointmentsInWindow(ctx, repository.ListAppointmentsInWindowParams{
				UserID:      pref.UserID,
				WindowStart: repository.Timestamptz(center.Add(-appointmentSlack)),
				WindowEnd:   repository.Timestamptz(center.Add(appointmentSlack)),
			})
		},
		deliver: d.deliverAppointment,
	})
}

func (d *Dispatcher) deliverAppointment(ctx context.Context, owner repository.Profile, _ repository.ReminderPreference, appt repository.ListAppointmentsInWindowRow) (outcome, error) {
	msg, err := d.mailer.Compose(appt.CustomerEmail.String, email.AppointmentReminderEmail{
		BusinessName: owner.BusinessName,
		CustomerName: appt.CustomerName,
		Title:        appt.Title,
		Location:     appt.Location.String,
		StartTime:    appt.StartTime.Time.In(d.loc),
	})
	if err != nil {
		return outcomeFailed, fmt.Errorf("render appointment reminder: %w", err)
	}
	brand(msg, owner)

	rows, err := d.store.ClaimAppointmentReminder(ctx, appt.ID)
	if err != nil {
		return outcomeFailed, fmt.Errorf("claim appointment reminder: %w", err)
	}
	if rows == 0 {
		return outcomeSkipped, nil
	}

	if _, err := d.mailer.Send(ctx, msg); err != nil {
		if relErr := d.store.ReleaseAppointmentReminder(ctx, appt.ID); relErr != nil {
			d.logger.Error("failed to release appointment reminder claim",
				"schedule_entry_id", repository.UUIDFromPg(appt.ID),
				"error", relErr,
			)
		}
		return outcomeFailed, fmt.Errorf("send appointment reminder: %w", err)
	}
	return outcomeSent, nil
}
