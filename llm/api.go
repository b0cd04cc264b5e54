package llm

import (
	"strings"

	"github.com/kbukum/llmrest/util"
)

// API identifies a hosted completion provider.
type API string

// Supported completion providers.
const (
	// APIOpenAI targets the OpenAI completions endpoint.
	APIOpenAI API = "OpenAI"
)

var supportedAPIs = []API{APIOpenAI}

// defaultURLs maps each provider to its default completion endpoint. The
// entry is used when the client configuration carries no "url" parameter.
var defaultURLs = map[API]string{
	APIOpenAI: "https://api.openai.com/v1/completions",
}

// credentialEnv maps each provider to the environment variable holding its
// API key.
var credentialEnv = map[API]string{
	APIOpenAI: "OPENAI_API_KEY",
}

// Supported reports whether a is a known provider.
func (a API) Supported() bool {
	return util.StringInSlice(string(a), SupportedAPIs())
}

// SupportedAPIs returns the names of all supported providers.
func SupportedAPIs() []string {
	names := make([]string, len(supportedAPIs))
	for i, a := range supportedAPIs {
		names[i] = string(a)
	}
	return names
}

// supportedList renders the supported provider names for error messages.
func supportedList() string {
	return strings.Join(SupportedAPIs(), ", ")
}
