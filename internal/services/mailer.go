package services

import (
	"fmt"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/rs/zerolog/log"
)

const defaultSender = "admin@restaurant.com"

// Email is a composed transactional message. Delivery is handled outside
// this service; composing and handing the payload off is the extent of
// its job.
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type Mailer struct {
	from string
}

func NewMailer(from string) *Mailer {
	if from == "" {
		from = defaultSender
	}
	return &Mailer{from: from}
}

// WelcomeEmail builds the signup greeting for a freshly created user.
func (m *Mailer) WelcomeEmail(user *models.User) Email {
	email := Email{
		From:    m.from,
		To:      user.Email,
		Subject: "Welcome",
		HTML:    fmt.Sprintf("<h1>Welcome %s thank you for registering to the TableTop restaurant</h1>", user.Name),
		Text:    fmt.Sprintf("Welcome %s thank you for registering to the TableTop restaurant", user.Name),
	}

	log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg("composed welcome email")

	return email
}
