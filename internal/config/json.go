package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		HashKey           string   `json:"hash_key"`
		Version           string   `json:"version"`
		SiteName          string   `json:"site_name"`
		AdminEmail        string   `json:"admin_email"`
		AdminLogin        string   `json:"admin_login"`
		AdminPasswordHash string   `json:"admin_password_hash"`
	} `json:"app,omitempty"`

	Secrets struct {
		AuthKey        string `json:"auth_key"`
		SecureAuthKey  string `json:"secure_auth_key"`
		LoggedInKey    string `json:"logged_in_key"`
		NonceKey       string `json:"nonce_key"`
		AuthSalt       string `json:"auth_salt"`
		SecureAuthSalt string `json:"secure_auth_salt"`
		LoggedInSalt   string `json:"logged_in_salt"`
		NonceSalt      string `json:"nonce_salt"`
		LegacyLayout   bool   `json:"legacy_layout"`
	} `json:"secrets,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			SettingsFile string `json:"settings_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		SendmailPath string   `json:"sendmail_path"`
		SMTPTimeout  Duration `json:"smtp_timeout"`
		Charset      string   `json:"charset"`
	} `json:"mail,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:      j.App.TokenSignKey,
			TokenIssuer:       j.App.TokenIssuer,
			TokenDuration:     time.Duration(j.App.TokenDuration),
			HashKey:           j.App.HashKey,
			Version:           j.App.Version,
			SiteName:          j.App.SiteName,
			AdminEmail:        j.App.AdminEmail,
			AdminLogin:        j.App.AdminLogin,
			AdminPasswordHash: j.App.AdminPasswordHash,
		},
		Secrets: Secrets{
			AuthKey:        j.Secrets.AuthKey,
			SecureAuthKey:  j.Secrets.SecureAuthKey,
			LoggedInKey:    j.Secrets.LoggedInKey,
			NonceKey:       j.Secrets.NonceKey,
			AuthSalt:       j.Secrets.AuthSalt,
			SecureAuthSalt: j.Secrets.SecureAuthSalt,
			LoggedInSalt:   j.Secrets.LoggedInSalt,
			NonceSalt:      j.Secrets.NonceSalt,
			LegacyLayout:   j.Secrets.LegacyLayout,
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
			Files: Files{
				SettingsFile: j.Storage.Files.SettingsFile,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Mail: Mail{
			SendmailPath: j.Mail.SendmailPath,
			SMTPTimeout:  time.Duration(j.Mail.SMTPTimeout),
			Charset:      j.Mail.Charset,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			Token:          j.Adapter.Token,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
