package models

import "time"

// Violation is one consistency problem found by the validation sweep.
type Violation struct {
	Component string `json:"component"` // agent, channel, mapping
	ID        string `json:"id"`
	Field     string `json:"field,omitempty"`
	Reason    string `json:"reason"` // machine-readable reason code
	Message   string `json:"message"`
}

// ValidationReport is the result of a full consistency sweep over all
// active configuration records.
type ValidationReport struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	Warnings   []string    `json:"warnings"`
	CheckedAt  time.Time   `json:"checked_at"`
}

// Statistics holds non-authoritative record counts for observability.
type Statistics struct {
	TotalAgents      int `json:"total_agents"`
	ActiveAgents     int `json:"active_agents"`
	TotalChannels    int `json:"total_channels"`
	ActiveChannels   int `json:"active_channels"`
	TotalMappings    int `json:"total_mappings"`
	ActiveMappings   int `json:"active_mappings"`
	WhatsAppChannels int `json:"whatsapp_channels"`
	SMSChannels      int `json:"sms_channels"`
}
