package config

import (
	"encoding/json"
	"strings"
)

// Fixed OAuth endpoints of a Google service account key file.
const (
	googleAuthURI           = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURI          = "https://oauth2.googleapis.com/token"
	googleAuthProviderCerts = "https://www.googleapis.com/oauth2/v1/certs"
)

// Google holds the service account fields normally found in a downloaded
// key file, supplied one by one through the environment.
type Google struct {
	ProjectID         string `yaml:"project_id"`
	PrivateKeyID      string `yaml:"private_key_id"`
	PrivateKey        string `yaml:"private_key"`
	ClientEmail       string `yaml:"client_email"`
	ClientID          string `yaml:"client_id"`
	ClientX509CertURL string `yaml:"client_x509_cert_url"`
}

// Configured reports whether the fields needed to sign a token are present.
func (g Google) Configured() bool {
	return strings.TrimSpace(g.PrivateKey) != "" && strings.TrimSpace(g.ClientEmail) != ""
}

var keyNewlines = strings.NewReplacer(`\\n`, "\n", `\n`, "\n")

// NormalizePrivateKey turns escaped newline sequences, single or double
// escaped, into real line breaks. PEM parsing rejects the escaped forms.
func NormalizePrivateKey(key string) string {
	return keyNewlines.Replace(key)
}

type serviceAccountFile struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// ServiceAccountJSON renders the credentials in the key file layout accepted
// by golang.org/x/oauth2/google.
func (g Google) ServiceAccountJSON() ([]byte, error) {
	return json.Marshal(serviceAccountFile{
		Type:                    "service_account",
		ProjectID:               g.ProjectID,
		PrivateKeyID:            g.PrivateKeyID,
		PrivateKey:              NormalizePrivateKey(g.PrivateKey),
		ClientEmail:             g.ClientEmail,
		ClientID:                g.ClientID,
		AuthURI:                 googleAuthURI,
		TokenURI:                googleTokenURI,
		AuthProviderX509CertURL: googleAuthProviderCerts,
		ClientX509CertURL:       g.ClientX509CertURL,
	})
}
