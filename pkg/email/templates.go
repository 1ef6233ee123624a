package email

import "fmt"

// Event identifies an appointment lifecycle event for template lookup.
// Values match the notification type strings stored in the database.
type Event string

const (
	EventAppointmentCreated   Event = "appointment_created"
	EventAppointmentUpdated   Event = "appointment_updated"
	EventAppointmentCanceled  Event = "appointment_canceled"
	EventAppointmentReminder  Event = "appointment_reminder"
	EventAppointmentConfirmed Event = "appointment_confirmed"
)

// Role identifies which party of the appointment an email addresses.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
)

// AppointmentDetails carries the values interpolated into appointment emails.
type AppointmentDetails struct {
	ClientName   string
	ProviderName string
	ServiceName  string
	Date         string // already formatted for display
	Time         string // "HH:MM"
}

type templateKey struct {
	Event Event
	Role  Role
}

type appointmentTemplate struct {
	subject string
	body    func(AppointmentDetails) string
}

// appointmentTemplates is the single source of truth for the ten
// (event, role) appointment emails. Each body is a pure string builder;
// the client variant greets the client and names the provider as the
// counterpart, and vice versa.
var appointmentTemplates = map[templateKey]appointmentTemplate{
	{EventAppointmentCreated, RoleClient}: {
		subject: "Agendamento Confirmado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Seu agendamento foi confirmado!</h2>
<p>Olá %s,</p>
<p>Seu agendamento para %s foi confirmado para %s às %s.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
  <li><strong>Profissional:</strong> %s</li>
</ul>
<p>Se precisar reagendar ou cancelar, entre em contato conosco.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ClientName, d.ServiceName, d.Date, d.Time,
				d.ServiceName, d.Date, d.Time, d.ProviderName)
		},
	},
	{EventAppointmentCreated, RoleProvider}: {
		subject: "Novo Agendamento",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Novo agendamento realizado!</h2>
<p>Olá %s,</p>
<p>Um novo agendamento foi realizado para %s às %s.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Cliente:</strong> %s</li>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
</ul>
<p>Acesse o painel para mais detalhes.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ProviderName, d.Date, d.Time,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
	{EventAppointmentUpdated, RoleClient}: {
		subject: "Agendamento Atualizado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Seu agendamento foi atualizado!</h2>
<p>Olá %s,</p>
<p>Seu agendamento para %s foi atualizado para %s às %s.</p>
<p>Detalhes atualizados:</p>
<ul>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
  <li><strong>Profissional:</strong> %s</li>
</ul>
<p>Se precisar reagendar ou cancelar, entre em contato conosco.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ClientName, d.ServiceName, d.Date, d.Time,
				d.ServiceName, d.Date, d.Time, d.ProviderName)
		},
	},
	{EventAppointmentUpdated, RoleProvider}: {
		subject: "Agendamento Atualizado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Agendamento atualizado!</h2>
<p>Olá %s,</p>
<p>Um agendamento foi atualizado para %s às %s.</p>
<p>Detalhes atualizados:</p>
<ul>
  <li><strong>Cliente:</strong> %s</li>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
</ul>
<p>Acesse o painel para mais detalhes.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ProviderName, d.Date, d.Time,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
	{EventAppointmentCanceled, RoleClient}: {
		subject: "Agendamento Cancelado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Seu agendamento foi cancelado</h2>
<p>Olá %s,</p>
<p>Seu agendamento para %s em %s às %s foi cancelado.</p>
<p>Se desejar reagendar, entre em contato conosco ou acesse nosso site.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
	{EventAppointmentCanceled, RoleProvider}: {
		subject: "Agendamento Cancelado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Agendamento cancelado</h2>
<p>Olá %s,</p>
<p>Um agendamento foi cancelado para %s às %s.</p>
<p>Detalhes do agendamento cancelado:</p>
<ul>
  <li><strong>Cliente:</strong> %s</li>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
</ul>
<p>Acesse o painel para mais detalhes.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ProviderName, d.Date, d.Time,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
	{EventAppointmentReminder, RoleClient}: {
		subject: "Lembrete de Agendamento",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Lembrete de agendamento</h2>
<p>Olá %s,</p>
<p>Este é um lembrete para seu agendamento de %s amanhã, %s às %s.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
  <li><strong>Profissional:</strong> %s</li>
</ul>
<p>Se precisar reagendar ou cancelar, entre em contato conosco o mais rápido possível.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ClientName, d.ServiceName, d.Date, d.Time,
				d.ServiceName, d.Date, d.Time, d.ProviderName)
		},
	},
	{EventAppointmentReminder, RoleProvider}: {
		subject: "Lembrete de Agendamento",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Lembrete de agendamento</h2>
<p>Olá %s,</p>
<p>Este é um lembrete para um agendamento amanhã, %s às %s.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Cliente:</strong> %s</li>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
</ul>
<p>Acesse o painel para mais detalhes.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ProviderName, d.Date, d.Time,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
	{EventAppointmentConfirmed, RoleClient}: {
		subject: "Agendamento Confirmado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Seu agendamento foi confirmado!</h2>
<p>Olá %s,</p>
<p>Seu agendamento para %s em %s às %s foi confirmado pelo prestador de serviço.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
  <li><strong>Profissional:</strong> %s</li>
</ul>
<p>Se precisar reagendar ou cancelar, entre em contato conosco.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ClientName, d.ServiceName, d.Date, d.Time,
				d.ServiceName, d.Date, d.Time, d.ProviderName)
		},
	},
	{EventAppointmentConfirmed, RoleProvider}: {
		subject: "Agendamento Confirmado",
		body: func(d AppointmentDetails) string {
			return fmt.Sprintf(`<h2>Agendamento confirmado</h2>
<p>Olá %s,</p>
<p>Você confirmou um agendamento para %s às %s.</p>
<p>Detalhes do agendamento:</p>
<ul>
  <li><strong>Cliente:</strong> %s</li>
  <li><strong>Serviço:</strong> %s</li>
  <li><strong>Data:</strong> %s</li>
  <li><strong>Horário:</strong> %s</li>
</ul>
<p>Acesse o painel para mais detalhes.</p>
<p>Atenciosamente,<br>Equipe AppointEase</p>`,
				d.ProviderName, d.Date, d.Time,
				d.ClientName, d.ServiceName, d.Date, d.Time)
		},
	},
}

// BuildAppointmentEmail renders the appointment email for the given event and
// role and returns a ready-to-send Message addressed to `to`.
func BuildAppointmentEmail(to string, evt Event, role Role, d AppointmentDetails) (Message, error) {
	t, ok := appointmentTemplates[templateKey{Event: evt, Role: role}]
	if !ok {
		return Message{}, ErrInvalidMessage{Reason: fmt.Sprintf("no template for event %q role %q", evt, role)}
	}

	return Message{
		To:       []string{to},
		Subject:  t.subject,
		HTMLBody: t.body(d),
	}, nil
}

// AppointmentSubject returns the subject line for an (event, role) pair
// without rendering the body.
func AppointmentSubject(evt Event, role Role) (string, bool) {
	t, ok := appointmentTemplates[templateKey{Event: evt, Role: role}]
	if !ok {
		return "", false
	}
	return t.subject, true
}
