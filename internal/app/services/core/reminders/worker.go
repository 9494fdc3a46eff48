package reminders

import (
	"context"
	"fmt"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker emails both parties of every appointment still scheduled for the
// next day. One instance at a time runs the sweep, guarded by a Redis lock.
type Worker struct {
	log                   *zap.Logger
	cfg                   *config.InternalConfig
	locker                contracts.LockerService
	appointmentRepository contracts.AppointmentRepository
	userRepository        contracts.UserRepository
	mailer                contracts.MailerService
	location              *time.Location
	stop                  chan struct{}
	cron                  *cron.Cron
	runCtx                context.Context
	cancel                context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerService contracts.LockerService,
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	location *time.Location,
) *Worker {
	return &Worker{
		log:                   log,
		cfg:                   cfg,
		locker:                lockerService,
		appointmentRepository: appointmentRepository,
		userRepository:        userRepository,
		mailer:                mailerService,
		location:              location,
		stop:                  make(chan struct{}),
	}
}

// Start schedules the periodic sweep using the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.ReminderWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminder.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron loop and waits for an in-flight sweep.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.ReminderLockKey, ttl)
	if err != nil {
		w.log.Warn("reminder.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminder.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.ReminderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.ReminderLockKey, token, ttl); err != nil {
					w.log.Warn("reminder.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	loc := w.location
	if loc == nil {
		loc = time.Local
	}
	tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format(constvars.DateLayout)

	appointments, err := w.appointmentRepository.FindScheduledAppointmentsByDate(ctx, tomorrow)
	if err != nil {
		w.log.Warn("reminder.worker: fetching scheduled appointments failed",
			zap.String(constvars.LoggingDateKey, tomorrow),
			zap.Error(err),
		)
		return
	}
	w.log.Info("reminder.worker: sweep started",
		zap.String(constvars.LoggingDateKey, tomorrow),
		zap.Int(constvars.LoggingTotalKey, len(appointments)),
	)

	for i := range appointments {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.remind(ctx, &appointments[i])
	}
}

func (w *Worker) remind(ctx context.Context, appointment *models.Appointment) {
	client, err := w.userRepository.FindUserByID(ctx, appointment.ClientID)
	if err != nil || client == nil {
		w.log.Warn("reminder.worker: client lookup failed",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}
	nutritionist, err := w.userRepository.FindUserByID(ctx, appointment.NutritionistID)
	if err != nil || nutritionist == nil {
		w.log.Warn("reminder.worker: nutritionist lookup failed",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	clientName := displayName(client)
	nutritionistName := displayName(nutritionist)
	w.send(ctx, appointment, client.Email,
		fmt.Sprintf(constvars.EmailBodyAppointmentReminder, clientName, nutritionistName, appointment.Date, appointment.StartTime, appointment.EndTime))
	w.send(ctx, appointment, nutritionist.Email,
		fmt.Sprintf(constvars.EmailBodyAppointmentReminder, nutritionistName, clientName, appointment.Date, appointment.StartTime, appointment.EndTime))
}

func (w *Worker) send(ctx context.Context, appointment *models.Appointment, address, body string) {
	payload := &requests.EmailPayload{
		Subject:  constvars.EmailAppointmentReminderSubject,
		From:     w.cfg.App.MailerEmailSender,
		To:       []string{address},
		HTMLCode: body,
		Encoded:  false,
	}
	if err := w.mailer.SendEmail(ctx, payload); err != nil {
		w.log.Warn("reminder.worker: sending reminder email failed",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func displayName(user *models.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	return user.Email
}
