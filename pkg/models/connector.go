package models

// CreateConnectorRequest registers a SQL connector for an organisation.
type CreateConnectorRequest struct {
	ConnectorID    string            `json:"connector_id,omitempty"`
	OrganisationID string            `json:"organisation_id"`
	Name           string            `json:"name"`
	Dialect        string            `json:"dialect"`
	DSNSecret      string            `json:"dsn_secret"`
	Options        map[string]string `json:"options,omitempty"`
}

// CreateModelRequest stores a semantic model definition.
type CreateModelRequest struct {
	ModelID        string   `json:"model_id,omitempty"`
	OrganisationID string   `json:"organisation_id"`
	Name           string   `json:"name"`
	ConnectorID    string   `json:"connector_id"`
	Definition     string   `json:"definition"`
	Tags           []string `json:"tags,omitempty"`
}
