package crushcfg

// The default tables are returned by functions so every document owns its
// slices and maps.

func defaultProviders() []Provider {
	return []Provider{
		{
			ID:        "anthropic",
			Name:      "Anthropic",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			Models: []ModelInfo{
				{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", ContextWindow: 200000},
				{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", ContextWindow: 200000},
			},
		},
		{
			ID:        "openai",
			Name:      "OpenAI",
			APIKeyEnv: "OPENAI_API_KEY",
			Models: []ModelInfo{
				{ID: "gpt-4o", Name: "GPT-4o", ContextWindow: 128000},
				{ID: "gpt-4o-mini", Name: "GPT-4o mini", ContextWindow: 128000},
			},
		},
		{
			ID:        "google",
			Name:      "Google",
			APIKeyEnv: "GOOGLE_API_KEY",
			Models: []ModelInfo{
				{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", ContextWindow: 1048576},
				{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", ContextWindow: 1048576},
			},
		},
	}
}

func defaultModels() map[string]Model {
	return map[string]Model{
		"large": {Model: "claude-sonnet-4-20250514", Provider: "anthropic", MaxTokens: 8192},
		"small": {Model: "claude-3-5-haiku-20241022", Provider: "anthropic", MaxTokens: 4096},
	}
}

func defaultRecentModels() map[string][]RecentModel {
	return map[string][]RecentModel{
		"large": {
			{Model: "claude-sonnet-4-20250514", Provider: "anthropic"},
			{Model: "gpt-4o", Provider: "openai"},
		},
		"small": {
			{Model: "claude-3-5-haiku-20241022", Provider: "anthropic"},
			{Model: "gpt-4o-mini", Provider: "openai"},
		},
	}
}

func defaultOptions() Options {
	return Options{
		SkillsPaths: []string{"~/.config/crush/skills", ".crush/skills"},
		LSP: LSPOptions{
			Enabled: true,
			Servers: map[string]LSPServer{
				"go": {
					Command:   "gopls",
					FileTypes: []string{"go", "mod"},
				},
				"typescript": {
					Command:   "typescript-language-server",
					Args:      []string{"--stdio"},
					FileTypes: []string{"ts", "tsx", "js", "jsx"},
				},
				"python": {
					Command:   "pyright-langserver",
					Args:      []string{"--stdio"},
					FileTypes: []string{"py"},
				},
			},
		},
	}
}

func defaultSkills() SkillsOptions {
	return SkillsOptions{Enabled: true, AutoDiscover: true}
}
