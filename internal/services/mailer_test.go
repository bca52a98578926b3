package services

import (
	"testing"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWelcomeEmail(t *testing.T) {
	mailer := NewMailer("")

	email := mailer.WelcomeEmail(&models.User{
		Email: "nora@example.com",
		Name:  "Nora",
	})

	assert.Equal(t, "admin@restaurant.com", email.From)
	assert.Equal(t, "nora@example.com", email.To)
	assert.Equal(t, "Welcome", email.Subject)
	assert.Contains(t, email.HTML, "Welcome Nora")
	assert.Contains(t, email.Text, "Welcome Nora")
}

func TestWelcomeEmailCustomSender(t *testing.T) {
	mailer := NewMailer("hello@tabletop.example")

	email := mailer.WelcomeEmail(&models.User{Email: "a@x.com", Name: "A"})
	assert.Equal(t, "hello@tabletop.example", email.From)
}
