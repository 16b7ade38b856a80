package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"sync"
	"time"

	"github.com/jordan-wright/email"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"gopkg.in/gomail.v2"
)

// The platform never dials SMTP. Messages are fully rendered (MIME, headers,
// attachments) and parked in an in-memory outbox; a worker flips them to
// DELIVERED once their simulated latency elapses. The demo UI reads the
// outbox to show "email sent" toasts.

type EmailStatus string

const (
	EmailPending   EmailStatus = "PENDING"
	EmailDelivered EmailStatus = "DELIVERED"
)

type EmailKind string

const (
	EmailInvitation EmailKind = "INVITATION"
	EmailReminder   EmailKind = "REMINDER"
)

type OutboxEntry struct {
	ID          uint        `json:"id"`
	GuestID     uint        `json:"guestId"`
	EventID     uint        `json:"eventId"`
	To          string      `json:"to"`
	Subject     string      `json:"subject"`
	Kind        EmailKind   `json:"kind"`
	Status      EmailStatus `json:"status"`
	QueuedAt    time.Time   `json:"queuedAt"`
	DeliveredAt *time.Time  `json:"deliveredAt"`
	Raw         []byte      `json:"-"`
}

type Outbox struct {
	mu      sync.Mutex
	entries []OutboxEntry
	seq     uint

	delay       time.Duration
	now         func() time.Time
	onDelivered func(OutboxEntry)
	from        string
}

// NewOutbox creates an outbox with the given simulated delivery latency.
// A zero delay delivers on the next flush, which is what tests want.
func NewOutbox(delay time.Duration) *Outbox {
	return &Outbox{
		delay: delay,
		now:   time.Now,
		from:  "protocol-desk@demo.example",
	}
}

// SetClock overrides the time source.
func (o *Outbox) SetClock(now func() time.Time) { o.now = now }

// OnDelivered registers a callback fired for each delivered message, outside
// the outbox lock. Used to stamp Guest.LastEmailSent.
func (o *Outbox) OnDelivered(fn func(OutboxEntry)) { o.onDelivered = fn }

var invitationTmpl = template.Must(template.New("invitation").Parse(`
<h2>Invitation: {{.EventName}}</h2>
<p>Dear {{.Title}} {{.FullName}},</p>
<p>You are cordially invited to <b>{{.EventName}}</b> at {{.Venue}}
on {{.When}}.</p>
<p>Please present the attached QR code at the entrance desk.</p>
`))

// QueueInvitation builds the invitation email for the guest, QR attachment
// included, and queues it for simulated delivery.
func (o *Outbox) QueueInvitation(guest model.Guest, event model.Event) error {
	var body bytes.Buffer
	err := invitationTmpl.Execute(&body, map[string]string{
		"EventName": event.Name,
		"Title":     guest.Title,
		"FullName":  guest.FullName,
		"Venue":     event.Venue,
		"When":      event.StartTime.Format("02/01/2006 15:04"),
	})
	if err != nil {
		return fmt.Errorf("render invitation: %w", err)
	}

	qrBytes, err := GenerateQRCode(guest.CheckInCode, 256)
	if err != nil {
		return fmt.Errorf("invitation qr: %w", err)
	}

	subject := "Invitation: " + event.Name
	m := gomail.NewMessage()
	m.SetHeader("From", o.from)
	m.SetHeader("To", guest.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())
	filename := fmt.Sprintf("Invite_%s.png", guest.CheckInCode)
	m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(qrBytes))
		return err
	}))

	var raw bytes.Buffer
	if _, err := m.WriteTo(&raw); err != nil {
		return fmt.Errorf("render invitation mime: %w", err)
	}

	o.queue(guest, event, subject, EmailInvitation, raw.Bytes())
	return nil
}

// QueueReminder builds a plain-text RSVP reminder.
func (o *Outbox) QueueReminder(guest model.Guest, event model.Event) error {
	e := email.NewEmail()
	e.From = o.from
	e.To = []string{guest.Email}
	e.Subject = "Reminder: " + event.Name
	e.Text = []byte(fmt.Sprintf(
		"Dear %s,\n\nWe have not yet received your RSVP for %s on %s at %s.\nPlease respond at your earliest convenience.\n",
		guest.FullName, event.Name,
		event.StartTime.Format("02/01/2006 15:04"), event.Venue,
	))

	raw, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("render reminder: %w", err)
	}

	o.queue(guest, event, e.Subject, EmailReminder, raw)
	return nil
}

func (o *Outbox) queue(guest model.Guest, event model.Event, subject string, kind EmailKind, raw []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	o.entries = append(o.entries, OutboxEntry{
		ID:       o.seq,
		GuestID:  guest.ID,
		EventID:  event.ID,
		To:       guest.Email,
		Subject:  subject,
		Kind:     kind,
		Status:   EmailPending,
		QueuedAt: o.now(),
		Raw:      raw,
	})
}

// Flush delivers every pending message whose simulated latency has elapsed
// and returns how many were delivered.
func (o *Outbox) Flush() int {
	now := o.now()

	o.mu.Lock()
	var delivered []OutboxEntry
	for i := range o.entries {
		e := &o.entries[i]
		if e.Status == EmailPending && !now.Before(e.QueuedAt.Add(o.delay)) {
			ts := now
			e.Status = EmailDelivered
			e.DeliveredAt = &ts
			delivered = append(delivered, *e)
		}
	}
	o.mu.Unlock()

	for _, e := range delivered {
		log.Printf("outbox: delivered %s to %s (%s)", e.Kind, e.To, e.Subject)
		if o.onDelivered != nil {
			o.onDelivered(e)
		}
	}
	return len(delivered)
}

// Entries returns a snapshot of the outbox, newest last.
func (o *Outbox) Entries() []OutboxEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]OutboxEntry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Reset drops all queued and delivered mail, demo reset path.
func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = nil
	o.seq = 0
}
