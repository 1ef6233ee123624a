// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/appointease/appointease_backend/internal/repo/appointment"
	"github.com/appointease/appointease_backend/internal/repo/businesshour"
	"github.com/appointease/appointease_backend/internal/repo/customer"
	"github.com/appointease/appointease_backend/internal/repo/emaillog"
	"github.com/appointease/appointease_backend/internal/repo/emailnotification"
	"github.com/appointease/appointease_backend/internal/repo/notification"
	"github.com/appointease/appointease_backend/internal/repo/service"
	"github.com/appointease/appointease_backend/internal/repo/user"
	"github.com/appointease/appointease_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDate is the schema descriptor for date field.
	appointmentDescDate := appointmentFields[3].Descriptor()
	// appointment.DateValidator is a validator for the "date" field. It is called by the builders before save.
	appointment.DateValidator = appointmentDescDate.Validators[0].(func(string) error)
	// appointmentDescTime is the schema descriptor for time field.
	appointmentDescTime := appointmentFields[4].Descriptor()
	// appointment.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	appointment.TimeValidator = appointmentDescTime.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	businesshourMixin := schema.BusinessHour{}.Mixin()
	businesshourMixinFields0 := businesshourMixin[0].Fields()
	_ = businesshourMixinFields0
	businesshourMixinFields1 := businesshourMixin[1].Fields()
	_ = businesshourMixinFields1
	businesshourFields := schema.BusinessHour{}.Fields()
	_ = businesshourFields
	// businesshourDescCreatedAt is the schema descriptor for created_at field.
	businesshourDescCreatedAt := businesshourMixinFields1[0].Descriptor()
	// businesshour.DefaultCreatedAt holds the default value on creation for the created_at field.
	businesshour.DefaultCreatedAt = businesshourDescCreatedAt.Default.(func() time.Time)
	// businesshourDescUpdatedAt is the schema descriptor for updated_at field.
	businesshourDescUpdatedAt := businesshourMixinFields1[1].Descriptor()
	// businesshour.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businesshour.DefaultUpdatedAt = businesshourDescUpdatedAt.Default.(func() time.Time)
	// businesshour.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businesshour.UpdateDefaultUpdatedAt = businesshourDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businesshourDescDayOfWeek is the schema descriptor for day_of_week field.
	businesshourDescDayOfWeek := businesshourFields[1].Descriptor()
	// businesshour.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	businesshour.DayOfWeekValidator = func() func(int) error {
		validators := businesshourDescDayOfWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_of_week int) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// businesshourDescOpenTime is the schema descriptor for open_time field.
	businesshourDescOpenTime := businesshourFields[2].Descriptor()
	// businesshour.OpenTimeValidator is a validator for the "open_time" field. It is called by the builders before save.
	businesshour.OpenTimeValidator = businesshourDescOpenTime.Validators[0].(func(string) error)
	// businesshourDescCloseTime is the schema descriptor for close_time field.
	businesshourDescCloseTime := businesshourFields[3].Descriptor()
	// businesshour.CloseTimeValidator is a validator for the "close_time" field. It is called by the builders before save.
	businesshour.CloseTimeValidator = businesshourDescCloseTime.Validators[0].(func(string) error)
	// businesshourDescClosed is the schema descriptor for closed field.
	businesshourDescClosed := businesshourFields[4].Descriptor()
	// businesshour.DefaultClosed holds the default value on creation for the closed field.
	businesshour.DefaultClosed = businesshourDescClosed.Default.(bool)
	// businesshourDescID is the schema descriptor for id field.
	businesshourDescID := businesshourMixinFields0[0].Descriptor()
	// businesshour.DefaultID holds the default value on creation for the id field.
	businesshour.DefaultID = businesshourDescID.Default.(func() uuid.UUID)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerMixinFields1 := customerMixin[1].Fields()
	_ = customerMixinFields1
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields1[0].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields1[1].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[2].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[3].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = customerDescEmail.Validators[0].(func(string) error)
	// customerDescPhone is the schema descriptor for phone field.
	customerDescPhone := customerFields[4].Descriptor()
	// customer.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	customer.PhoneValidator = customerDescPhone.Validators[0].(func(string) error)
	// customerDescTotalAppointments is the schema descriptor for total_appointments field.
	customerDescTotalAppointments := customerFields[6].Descriptor()
	// customer.DefaultTotalAppointments holds the default value on creation for the total_appointments field.
	customer.DefaultTotalAppointments = customerDescTotalAppointments.Default.(int)
	// customer.TotalAppointmentsValidator is a validator for the "total_appointments" field. It is called by the builders before save.
	customer.TotalAppointmentsValidator = customerDescTotalAppointments.Validators[0].(func(int) error)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerMixinFields0[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	emaillogMixin := schema.EmailLog{}.Mixin()
	emaillogMixinFields0 := emaillogMixin[0].Fields()
	_ = emaillogMixinFields0
	emaillogMixinFields1 := emaillogMixin[1].Fields()
	_ = emaillogMixinFields1
	emaillogFields := schema.EmailLog{}.Fields()
	_ = emaillogFields
	// emaillogDescCreatedAt is the schema descriptor for created_at field.
	emaillogDescCreatedAt := emaillogMixinFields1[0].Descriptor()
	// emaillog.DefaultCreatedAt holds the default value on creation for the created_at field.
	emaillog.DefaultCreatedAt = emaillogDescCreatedAt.Default.(func() time.Time)
	// emaillogDescRecipient is the schema descriptor for recipient field.
	emaillogDescRecipient := emaillogFields[1].Descriptor()
	// emaillog.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	emaillog.RecipientValidator = emaillogDescRecipient.Validators[0].(func(string) error)
	// emaillogDescSubject is the schema descriptor for subject field.
	emaillogDescSubject := emaillogFields[2].Descriptor()
	// emaillog.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emaillog.SubjectValidator = emaillogDescSubject.Validators[0].(func(string) error)
	// emaillogDescType is the schema descriptor for type field.
	emaillogDescType := emaillogFields[4].Descriptor()
	// emaillog.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	emaillog.TypeValidator = emaillogDescType.Validators[0].(func(string) error)
	// emaillogDescID is the schema descriptor for id field.
	emaillogDescID := emaillogMixinFields0[0].Descriptor()
	// emaillog.DefaultID holds the default value on creation for the id field.
	emaillog.DefaultID = emaillogDescID.Default.(func() uuid.UUID)
	emailnotificationMixin := schema.EmailNotification{}.Mixin()
	emailnotificationMixinFields0 := emailnotificationMixin[0].Fields()
	_ = emailnotificationMixinFields0
	emailnotificationMixinFields1 := emailnotificationMixin[1].Fields()
	_ = emailnotificationMixinFields1
	emailnotificationFields := schema.EmailNotification{}.Fields()
	_ = emailnotificationFields
	// emailnotificationDescCreatedAt is the schema descriptor for created_at field.
	emailnotificationDescCreatedAt := emailnotificationMixinFields1[0].Descriptor()
	// emailnotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailnotification.DefaultCreatedAt = emailnotificationDescCreatedAt.Default.(func() time.Time)
	// emailnotificationDescUpdatedAt is the schema descriptor for updated_at field.
	emailnotificationDescUpdatedAt := emailnotificationMixinFields1[1].Descriptor()
	// emailnotification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailnotification.DefaultUpdatedAt = emailnotificationDescUpdatedAt.Default.(func() time.Time)
	// emailnotification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailnotification.UpdateDefaultUpdatedAt = emailnotificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emailnotificationDescAppointmentCreated is the schema descriptor for appointment_created field.
	emailnotificationDescAppointmentCreated := emailnotificationFields[1].Descriptor()
	// emailnotification.DefaultAppointmentCreated holds the default value on creation for the appointment_created field.
	emailnotification.DefaultAppointmentCreated = emailnotificationDescAppointmentCreated.Default.(bool)
	// emailnotificationDescAppointmentUpdated is the schema descriptor for appointment_updated field.
	emailnotificationDescAppointmentUpdated := emailnotificationFields[2].Descriptor()
	// emailnotification.DefaultAppointmentUpdated holds the default value on creation for the appointment_updated field.
	emailnotification.DefaultAppointmentUpdated = emailnotificationDescAppointmentUpdated.Default.(bool)
	// emailnotificationDescAppointmentCanceled is the schema descriptor for appointment_canceled field.
	emailnotificationDescAppointmentCanceled := emailnotificationFields[3].Descriptor()
	// emailnotification.DefaultAppointmentCanceled holds the default value on creation for the appointment_canceled field.
	emailnotification.DefaultAppointmentCanceled = emailnotificationDescAppointmentCanceled.Default.(bool)
	// emailnotificationDescAppointmentReminder is the schema descriptor for appointment_reminder field.
	emailnotificationDescAppointmentReminder := emailnotificationFields[4].Descriptor()
	// emailnotification.DefaultAppointmentReminder holds the default value on creation for the appointment_reminder field.
	emailnotification.DefaultAppointmentReminder = emailnotificationDescAppointmentReminder.Default.(bool)
	// emailnotificationDescAppointmentConfirmed is the schema descriptor for appointment_confirmed field.
	emailnotificationDescAppointmentConfirmed := emailnotificationFields[5].Descriptor()
	// emailnotification.DefaultAppointmentConfirmed holds the default value on creation for the appointment_confirmed field.
	emailnotification.DefaultAppointmentConfirmed = emailnotificationDescAppointmentConfirmed.Default.(bool)
	// emailnotificationDescID is the schema descriptor for id field.
	emailnotificationDescID := emailnotificationMixinFields0[0].Descriptor()
	// emailnotification.DefaultID holds the default value on creation for the id field.
	emailnotification.DefaultID = emailnotificationDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[6].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceMixinFields1 := serviceMixin[1].Fields()
	_ = serviceMixinFields1
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields1[0].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields1[1].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[1].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = serviceDescName.Validators[0].(func(string) error)
	// serviceDescDurationMinutes is the schema descriptor for duration_minutes field.
	serviceDescDurationMinutes := serviceFields[3].Descriptor()
	// service.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	service.DurationMinutesValidator = serviceDescDurationMinutes.Validators[0].(func(int) error)
	// serviceDescPriceCents is the schema descriptor for price_cents field.
	serviceDescPriceCents := serviceFields[4].Descriptor()
	// service.DefaultPriceCents holds the default value on creation for the price_cents field.
	service.DefaultPriceCents = serviceDescPriceCents.Default.(int64)
	// service.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	service.PriceCentsValidator = serviceDescPriceCents.Validators[0].(func(int64) error)
	// serviceDescActive is the schema descriptor for active field.
	serviceDescActive := serviceFields[5].Descriptor()
	// service.DefaultActive holds the default value on creation for the active field.
	service.DefaultActive = serviceDescActive.Default.(bool)
	// serviceDescID is the schema descriptor for id field.
	serviceDescID := serviceMixinFields0[0].Descriptor()
	// service.DefaultID holds the default value on creation for the id field.
	service.DefaultID = serviceDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescBusinessName is the schema descriptor for business_name field.
	userDescBusinessName := userFields[3].Descriptor()
	// user.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	user.BusinessNameValidator = userDescBusinessName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
