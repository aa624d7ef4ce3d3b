package models

// Message is an email submitted through the admin API.
// Body is HTML.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// SendResult reports how a message was dispatched.
type SendResult struct {
	Transport TransportMode `json:"transport"`
	Delivered bool          `json:"delivered"`
}

// Status describes whether credential protection can work on this host.
type Status struct {
	// MissingSecrets lists platform secrets that are not defined.
	MissingSecrets []SecretName `json:"missing_secrets,omitempty"`
	// CryptoAvailable is false when the cipher engine self-test failed.
	CryptoAvailable bool `json:"crypto_available"`
	// Transport is the transport the next send would use.
	Transport TransportMode `json:"transport"`
	// Version is the running service version.
	Version string `json:"version"`
}

// AdminCredentials is the login request of the admin API.
type AdminCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SendReport is the admin API response to a test send.
type SendReport struct {
	Message string `json:"message"`
	SendResult
}

// StatusReport is the admin API status response. Notices are the admin-facing
// warnings derived from Status.
type StatusReport struct {
	Status
	Notices []string `json:"notices,omitempty"`
}
