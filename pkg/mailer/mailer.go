package mailer

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"electronics-store/pkg/utils"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers mail off the request path. Enqueue hands the message
// to a background worker and returns immediately; the caller never learns
// the delivery outcome. Failures are logged and dropped, a single attempt
// per message.
type Dispatcher struct {
	cfg   utils.EmailConfig
	log   *zap.Logger
	queue chan Message
	done  chan struct{}
}

func NewDispatcher(cfg utils.EmailConfig, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		cfg:   cfg,
		log:   log.With(zap.String("component", "mailer")),
		queue: make(chan Message, 64),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue never blocks the caller. If the queue is full the message is
// dropped, which is acceptable for OTP mail: the user lets the code expire
// and registers again.
func (d *Dispatcher) Enqueue(to, subject, body string) {
	select {
	case d.queue <- Message{To: to, Subject: subject, Body: body}:
	default:
		d.log.Warn("Mail queue full, dropping message", zap.String("to", to))
	}
}

// Close stops accepting messages and waits for the worker to drain the
// queue.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		if err := d.send(msg); err != nil {
			d.log.Error("Failed to send email",
				zap.Error(err),
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
			)
			continue
		}
		d.log.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	}
}

func (d *Dispatcher) send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	dialer := gomail.NewDialer(d.cfg.Host, d.cfg.Port, d.cfg.User, d.cfg.Password)
	// UseTLS means STARTTLS on a plain connection (gomail's default);
	// otherwise connect over implicit SSL.
	dialer.SSL = !d.cfg.UseTLS

	return dialer.DialAndSend(m)
}
