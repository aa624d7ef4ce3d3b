package models

// SecretName identifies one long-lived platform secret.
type SecretName string

// Platform secrets, in their canonical order.
const (
	SecretAuthKey        SecretName = "auth_key"
	SecretSecureAuthKey  SecretName = "secure_auth_key"
	SecretLoggedInKey    SecretName = "logged_in_key"
	SecretNonceKey       SecretName = "nonce_key"
	SecretAuthSalt       SecretName = "auth_salt"
	SecretSecureAuthSalt SecretName = "secure_auth_salt"
	SecretLoggedInSalt   SecretName = "logged_in_salt"
	SecretNonceSalt      SecretName = "nonce_salt"
)

// SecretNames lists every platform secret in canonical order.
var SecretNames = []SecretName{
	SecretAuthKey,
	SecretSecureAuthKey,
	SecretLoggedInKey,
	SecretNonceKey,
	SecretAuthSalt,
	SecretSecureAuthSalt,
	SecretLoggedInSalt,
	SecretNonceSalt,
}

// SecretsBundle maps secret names to their values.
type SecretsBundle map[SecretName]string

// Missing returns the names from SecretNames that are absent or empty in b.
func (b SecretsBundle) Missing() []SecretName {
	var missing []SecretName
	for _, name := range SecretNames {
		if b[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Concat joins the values of names in the given order.
func (b SecretsBundle) Concat(names ...SecretName) string {
	var n int
	for _, name := range names {
		n += len(b[name])
	}

	buf := make([]byte, 0, n)
	for _, name := range names {
		buf = append(buf, b[name]...)
	}
	return string(buf)
}
