package crushcfg

// SchemaURL identifies the crush configuration schema.
const SchemaURL = "https://charm.land/crush.json"

// TimestampLayout is ISO-8601 with millisecond precision and a zone designator.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ModelInfo describes one model a provider offers.
type ModelInfo struct {
	ID            string `json:"id" mapstructure:"id" yaml:"id"`
	Name          string `json:"name" mapstructure:"name" yaml:"name"`
	ContextWindow int    `json:"context_window,omitempty" mapstructure:"context_window" yaml:"context_window,omitempty"`
}

/**
 * Provider entry of the configuration document
 * @property {string} id - key referenced by model tiers
 * @property {string} name - display name
 * @property {string} api_key_env - environment variable holding the secret
 * @property {string} base_url - optional API endpoint override
 * @property {[]ModelInfo} models - models offered by the provider
 */
type Provider struct {
	ID        string      `json:"id" mapstructure:"id" yaml:"id"`
	Name      string      `json:"name" mapstructure:"name" yaml:"name"`
	APIKeyEnv string      `json:"api_key_env" mapstructure:"api_key_env" yaml:"api_key_env"`
	BaseURL   string      `json:"base_url,omitempty" mapstructure:"base_url" yaml:"base_url,omitempty"`
	Models    []ModelInfo `json:"models" mapstructure:"models" yaml:"models"`
}

// Model binds a tier (large, small, ...) to a concrete model of a provider.
type Model struct {
	Model     string `json:"model" mapstructure:"model" yaml:"model"`
	Provider  string `json:"provider" mapstructure:"provider" yaml:"provider"`
	MaxTokens int    `json:"max_tokens,omitempty" mapstructure:"max_tokens" yaml:"max_tokens,omitempty"`
}

type RecentModel struct {
	Model    string `json:"model" yaml:"model"`
	Provider string `json:"provider" yaml:"provider"`
}

type LSPServer struct {
	Command   string   `json:"command" yaml:"command"`
	Args      []string `json:"args,omitempty" yaml:"args,omitempty"`
	FileTypes []string `json:"filetypes,omitempty" yaml:"filetypes,omitempty"`
}

type LSPOptions struct {
	Enabled bool                 `json:"enabled" yaml:"enabled"`
	Servers map[string]LSPServer `json:"servers" yaml:"servers"`
}

type Options struct {
	SkillsPaths []string   `json:"skills_paths" yaml:"skills_paths"`
	LSP         LSPOptions `json:"lsp" yaml:"lsp"`
}

type SkillsOptions struct {
	Enabled      bool `json:"enabled" yaml:"enabled"`
	AutoDiscover bool `json:"auto_discover" yaml:"auto_discover"`
}

// Document is the configuration template handed to clients.
type Document struct {
	Schema       string                   `json:"schema" yaml:"schema"`
	Version      string                   `json:"version" yaml:"version"`
	UpdatedAt    string                   `json:"updated_at" yaml:"updated_at"`
	Providers    []Provider               `json:"providers" yaml:"providers"`
	Models       map[string]Model         `json:"models" yaml:"models"`
	RecentModels map[string][]RecentModel `json:"recent_models" yaml:"recent_models"`
	Options      Options                  `json:"options" yaml:"options"`
	Skills       SkillsOptions            `json:"skills" yaml:"skills"`
}

// Provider returns the provider entry with the given id.
func (d *Document) Provider(id string) (Provider, bool) {
	for _, p := range d.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
