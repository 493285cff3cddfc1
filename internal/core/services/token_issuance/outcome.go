package tokenissuance

import "fmt"

// Outcome is the result of a token issuance. Values match the response codes
// exposed by the forum, so they must not be renumbered.
type Outcome int

const (
	OutcomeErr Outcome = iota
	OutcomeOK
	OutcomeEmailSendErr
	OutcomeNoEmail
	OutcomeNoUser
)

var outcomeNames = map[Outcome]string{
	OutcomeErr:          "ERR",
	OutcomeOK:           "OK",
	OutcomeEmailSendErr: "EMAIL_SEND_ERR",
	OutcomeNoEmail:      "NO_EMAIL",
	OutcomeNoUser:       "NO_USER",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) IsOK() bool {
	return o == OutcomeOK
}

// Message returns the text shown to the person who requested the token.
func (o Outcome) Message(p Purpose) string {
	switch o {
	case OutcomeOK:
		return fmt.Sprintf("The %s link has been sent to your e-mail address.", p.Title)
	case OutcomeNoUser:
		return "Sorry! We can not find the account with that user name or e-mail address."
	case OutcomeNoEmail:
		return fmt.Sprintf(
			"Sorry! There is no e-mail address saved with your account. Contact administrator about %s.",
			p.Title,
		)
	case OutcomeEmailSendErr:
		return fmt.Sprintf(
			"Sorry! There was some error while sending you the %s link. Contact administrator about this problem.",
			p.Title,
		)
	}
	return fmt.Sprintf("Error while generating %s token.", p.Title)
}
