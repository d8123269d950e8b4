package mailer

import (
	"fmt"
	"log"
	"os"

	"matchday/src/lib"
)

func fromAddress() (string, string) {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "no-reply@matchday.app"
	}
	return from, "Matchday"
}

func SendVerificationCode(email, code string) error {
	from, fromName := fromAddress()
	body := fmt.Sprintf("Your Matchday verification code is %s. It expires in 10 minutes.", code)
	err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{email},
		Subject:  "Your verification code",
		Body:     body,
	})
	if err != nil {
		log.Printf("[mailer] Failed to send verification code to %s: %s\n", email, err.Error())
	}
	return err
}

func SendTeamInvite(email, teamName, eventTitle, eventURL string) error {
	from, fromName := fromAddress()
	body := fmt.Sprintf(
		"<p>You have been invited to join <b>%s</b> for <b>%s</b>.</p><p><a href=\"%s\">View the event</a> to accept and pay for your slot.</p>",
		teamName, eventTitle, eventURL,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{email},
		Subject:  fmt.Sprintf("Invite: %s at %s", teamName, eventTitle),
		Body:     body,
		Html:     true,
	})
	if err != nil {
		log.Printf("[mailer] Failed to send team invite to %s: %s\n", email, err.Error())
	}
	return err
}
