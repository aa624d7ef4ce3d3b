package service

// SettingsServiceWrapper decorates a SettingsService, e.g. with validation.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService
}

// MailServiceWrapper decorates a MailService.
type MailServiceWrapper interface {
	Wrap(MailService) MailService
}
