package mailer

import "errors"

var (
	ErrBuildingMessage = errors.New("error building message")
	ErrCreatingClient  = errors.New("error creating SMTP client")
	ErrSMTPDelivery    = errors.New("error delivering message over SMTP")
	ErrLocalDelivery   = errors.New("error delivering message with sendmail")
	ErrNoAuthMechanism = errors.New("no supported SMTP AUTH mechanism")
)
