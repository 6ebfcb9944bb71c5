package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// IntegrationType identifies the external system an integration pulls from.
type IntegrationType string

// Supported integration types.
const (
	IntegrationTypeGitHub IntegrationType = "GITHUB"
	IntegrationTypeTrello IntegrationType = "TRELLO"
)

// Valid reports whether t is a known integration type.
func (t IntegrationType) Valid() bool {
	switch t {
	case IntegrationTypeGitHub, IntegrationTypeTrello:
		return true
	default:
		return false
	}
}

// ParseIntegrationType parses a case-insensitive integration type name.
func ParseIntegrationType(s string) (IntegrationType, error) {
	t := IntegrationType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidIntegrationType, s)
	}
	return t, nil
}

// IntegrationStatus tells whether an integration takes part in sync passes.
type IntegrationStatus string

// Integration statuses.
const (
	IntegrationStatusActive   IntegrationStatus = "ACTIVE"
	IntegrationStatusDisabled IntegrationStatus = "DISABLED"
)

// Settings is the adapter-specific configuration of an integration, stored as JSON.
type Settings map[string]string

// Value implements driver.Valuer.
func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Settings) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported settings type %T", value)
	}
	out := Settings{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
	}
	*s = out
	return nil
}

// Workspace is the tenant that owns every integration, record and metric.
// Matches the workspaces table schema.
type Workspace struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"                   json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"           json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null"      json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Workspace) TableName() string {
	return "workspaces"
}

// Integration is a configured connection to an external activity source.
// Matches the integrations table schema.
type Integration struct {
	ID           string            `gorm:"primaryKey;column:id;type:uuid"                                          json:"id"`
	WorkspaceID  string            `gorm:"column:workspace_id;type:uuid;not null;index:idx_integrations_workspace_id" json:"workspace_id"`
	Type         IntegrationType   `gorm:"column:type;type:varchar(16);not null"                                   json:"type"`
	Status       IntegrationStatus `gorm:"column:status;type:varchar(16);not null"                                 json:"status"`
	Name         string            `gorm:"column:name;type:varchar(255);not null"                                  json:"name"`
	Config       Settings          `gorm:"column:config;type:jsonb;not null"                                       json:"config"`
	LastSyncedAt *time.Time        `gorm:"column:last_synced_at"                                  json:"last_synced_at,omitempty"`
	CreatedAt    time.Time         `gorm:"column:created_at;not null"                             json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Integration) TableName() string {
	return "integrations"
}

// Repo is a source repository referenced by pull-request records.
// Matches the repos table schema.
type Repo struct {
	ID          string `gorm:"primaryKey;column:id;type:uuid"                                                  json:"id"`
	WorkspaceID string `gorm:"column:workspace_id;type:uuid;not null;uniqueIndex:uq_repos_workspace_external" json:"workspace_id"`
	ExternalID  string `gorm:"column:external_id;type:varchar(255);not null;uniqueIndex:uq_repos_workspace_external" json:"external_id"`
	Name        string `gorm:"column:name;type:varchar(255);not null"                                          json:"name"`
	URL         string `gorm:"column:url;type:text;not null"                                                   json:"url"`
}

// TableName specifies the table name for GORM.
func (Repo) TableName() string {
	return "repos"
}
