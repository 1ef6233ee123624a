// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "time", Type: field.TypeString, Size: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "completed", "canceled", "no_show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_provider_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_date_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6], AppointmentsColumns[8]},
			},
		},
	}
	// BusinessHoursColumns holds the columns for the "business_hours" table.
	BusinessHoursColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt},
		{Name: "open_time", Type: field.TypeString, Size: 5},
		{Name: "close_time", Type: field.TypeString, Size: 5},
		{Name: "closed", Type: field.TypeBool, Default: false},
	}
	// BusinessHoursTable holds the schema information for the "business_hours" table.
	BusinessHoursTable = &schema.Table{
		Name:       "business_hours",
		Columns:    BusinessHoursColumns,
		PrimaryKey: []*schema.Column{BusinessHoursColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "businesshour_provider_id_day_of_week",
				Unique:  true,
				Columns: []*schema.Column{BusinessHoursColumns[3], BusinessHoursColumns[4]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_appointments", Type: field.TypeInt, Default: 0},
		{Name: "last_appointment_at", Type: field.TypeTime, Nullable: true},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_provider_id_name",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[4], CustomersColumns[5]},
			},
			{
				Name:    "customer_provider_id_email",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[4], CustomersColumns[6]},
			},
		},
	}
	// EmailLogsColumns holds the columns for the "email_logs" table.
	EmailLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "recipient", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "failed"}},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// EmailLogsTable holds the schema information for the "email_logs" table.
	EmailLogsTable = &schema.Table{
		Name:       "email_logs",
		Columns:    EmailLogsColumns,
		PrimaryKey: []*schema.Column{EmailLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emaillog_recipient_created_at",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[3], EmailLogsColumns[1]},
			},
			{
				Name:    "emaillog_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[8], EmailLogsColumns[1]},
			},
		},
	}
	// EmailNotificationsColumns holds the columns for the "email_notifications" table.
	EmailNotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "appointment_created", Type: field.TypeBool, Default: true},
		{Name: "appointment_updated", Type: field.TypeBool, Default: true},
		{Name: "appointment_canceled", Type: field.TypeBool, Default: true},
		{Name: "appointment_reminder", Type: field.TypeBool, Default: true},
		{Name: "appointment_confirmed", Type: field.TypeBool, Default: true},
	}
	// EmailNotificationsTable holds the schema information for the "email_notifications" table.
	EmailNotificationsTable = &schema.Table{
		Name:       "email_notifications",
		Columns:    EmailNotificationsColumns,
		PrimaryKey: []*schema.Column{EmailNotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailnotification_user_id",
				Unique:  true,
				Columns: []*schema.Column{EmailNotificationsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[8], NotificationsColumns[1]},
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "price_cents", Type: field.TypeInt64, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "service_provider_id_active",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[3], ServicesColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"client", "provider"}, Default: "provider"},
		{Name: "business_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BusinessHoursTable,
		CustomersTable,
		EmailLogsTable,
		EmailNotificationsTable,
		NotificationsTable,
		ServicesTable,
		UsersTable,
	}
)

func init() {
}
