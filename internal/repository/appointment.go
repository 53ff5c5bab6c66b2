package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/edulend/loanassist/gen/ent"
	entappt "github.com/edulend/loanassist/gen/ent/appointment"
)

// scheduledTimeLayout is the normalized on-disk form.
const scheduledTimeLayout = "2006-01-02 15:04:05"

// acceptedTimeLayouts are the caller input forms we normalize from.
var acceptedTimeLayouts = []string{
	"2006-01-02T15:04:05", // ISO-8601, no zone
	"2006-01-02 15:04",
}

// NormalizeScheduledTime converts an accepted input form to
// "YYYY-MM-DD HH:MM:SS". Input that parses as neither form is returned
// verbatim; the second return reports whether parsing succeeded.
func NormalizeScheduledTime(s string) (string, bool) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(scheduledTimeLayout), true
		}
	}
	return s, false
}

type AppointmentRepository interface {
	// Schedule stores an appointment at the given time string and returns
	// (appointmentID, normalized time). Unparseable input is stored verbatim.
	Schedule(ctx context.Context, userEmail string, appID, bankID int, when string) (int, string, error)
	// ScheduleDefault books the conventional slot three days out.
	ScheduleDefault(ctx context.Context, userEmail string, appID, bankID int) (int, string, error)
	ListByEmail(ctx context.Context, userEmail string) ([]*ent.Appointment, error)
}

type appointmentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAppointmentRepository(client *ent.Client, logger *slog.Logger) AppointmentRepository {
	return &appointmentRepo{client: client, logger: logger}
}

func (r *appointmentRepo) Schedule(ctx context.Context, userEmail string, appID, bankID int, when string) (int, string, error) {
	scheduled, ok := NormalizeScheduledTime(when)
	if !ok {
		r.logger.Warn("appointment time did not parse, storing verbatim",
			"app_id", appID, "scheduled_time", when)
	}
	return r.insert(ctx, userEmail, appID, bankID, scheduled)
}

func (r *appointmentRepo) ScheduleDefault(ctx context.Context, userEmail string, appID, bankID int) (int, string, error) {
	scheduled := time.Now().UTC().Add(72 * time.Hour).Format(scheduledTimeLayout)
	return r.insert(ctx, userEmail, appID, bankID, scheduled)
}

func (r *appointmentRepo) insert(ctx context.Context, userEmail string, appID, bankID int, scheduled string) (int, string, error) {
	appt, err := r.client.Appointment.Create().
		SetUserEmail(userEmail).
		SetAppID(appID).
		SetBankID(bankID).
		SetScheduledTime(scheduled).
		Save(ctx)
	if err != nil {
		r.logger.Error("appointment schedule failed",
			"user_email", userEmail, "app_id", appID, "error", err)
		return 0, "", err
	}
	r.logger.Info("appointment scheduled",
		"appointment_id", appt.ID, "app_id", appID, "scheduled_time", scheduled)
	return appt.ID, scheduled, nil
}

func (r *appointmentRepo) ListByEmail(ctx context.Context, userEmail string) ([]*ent.Appointment, error) {
	appts, err := r.client.Appointment.Query().
		Where(entappt.UserEmail(userEmail)).
		Order(entappt.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list appointments", "user_email", userEmail, "error", err)
		return nil, err
	}
	return appts, nil
}
