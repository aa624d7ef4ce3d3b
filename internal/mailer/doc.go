// Package mailer hands finished messages to the outbound transport chosen by
// the transport configurator: an SMTP relay or the local sendmail binary.
package mailer
