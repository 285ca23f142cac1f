package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsBothShapes(t *testing.T) {
	var single StringList
	require.NoError(t, json.Unmarshal([]byte(`"https://example.org"`), &single))
	assert.Equal(t, StringList{"https://example.org"}, single)

	var many StringList
	require.NoError(t, json.Unmarshal([]byte(`["https://a.org","https://b.org"]`), &many))
	assert.Equal(t, StringList{"https://a.org", "https://b.org"}, many)

	var bad StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestMaintainerDisplayName(t *testing.T) {
	assert.Equal(t, "Jane", Maintainer{Name: "Jane", Github: "jane", Email: "j@x.org"}.DisplayName())
	assert.Equal(t, "jane", Maintainer{Github: "jane", Email: "j@x.org"}.DisplayName())
	assert.Equal(t, "j@x.org", Maintainer{Email: "j@x.org"}.DisplayName())
}

func TestFlakeSourceString(t *testing.T) {
	assert.Equal(t, "https://git.example.org/f", FlakeSource{URL: "https://git.example.org/f"}.String())
	assert.Equal(t, "github:owner/repo", FlakeSource{Type: "github", Owner: "owner", Repo: "repo"}.String())
	assert.Equal(t, "", FlakeSource{}.String())
}

func TestHitDecodesOption(t *testing.T) {
	hit := Hit{Source: json.RawMessage(`{
		"option_name": "services.nginx.enable",
		"option_type": "boolean",
		"option_description": "Whether to enable nginx.",
		"option_default": "false",
		"option_example": "true"
	}`)}

	opt, err := hit.Option()
	require.NoError(t, err)
	assert.Equal(t, "services.nginx.enable", opt.Name)
	assert.Equal(t, "boolean", opt.Type)
	assert.Equal(t, "false", opt.Default)
}
