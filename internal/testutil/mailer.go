package testutil

type SentMail struct {
	To      string
	Subject string
	Body    string
}

// RecordingMailer collects mails instead of sending them.
type RecordingMailer struct {
	Sent chan SentMail
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{Sent: make(chan SentMail, 16)}
}

func (m *RecordingMailer) Enabled() bool { return true }

func (m *RecordingMailer) SendMail(toEmail string, subject string, body string) error {
	m.Sent <- SentMail{To: toEmail, Subject: subject, Body: body}
	return nil
}
