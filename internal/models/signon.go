package models

import "time"

// statusDescriptions maps the OFX sign-on status codes to human-readable
// descriptions. Codes outside this table resolve to an empty string.
var statusDescriptions = map[string]string{
	"0":     "Success",
	"2000":  "General error",
	"15000": "Must change USERPASS",
	"15500": "Signon invalid",
	"15501": "Customer account already in use",
	"15502": "USERPASS Lockout",
}

// Status is the <STATUS> aggregate of the sign-on response.
type Status struct {
	Code     string `json:"code" yaml:"code"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

// CodeDescription returns the description for the status code, or an empty
// string for unrecognised codes.
func (s Status) CodeDescription() string {
	return statusDescriptions[s.Code]
}

// Institute identifies the financial institution that produced the document.
type Institute struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// SignOn is the <SONRS> sign-on response: server status, server timestamp,
// language and institution identity.
type SignOn struct {
	Status    Status     `json:"status" yaml:"status"`
	Date      *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Language  string     `json:"language" yaml:"language"`
	Institute Institute  `json:"institute" yaml:"institute"`
}
