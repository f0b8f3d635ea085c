package baseurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePriority(t *testing.T) {
	cases := []struct {
		name                       string
		override, host, deployment string
		want                       string
		source                     Source
	}{
		{"override wins", "https://ov.example", "ignored.example", "ignored2.example", "https://ov.example", SourceOverride},
		{"override verbatim", "ov.example:8080/", "", "", "ov.example:8080/", SourceOverride},
		{"request host", "", "myhost.example", "ignored2.example", "https://myhost.example", SourceRequest},
		{"localhost request", "", "localhost:4000", "", "http://localhost:4000", SourceRequest},
		{"localhost substring", "", "app.localhost.test", "", "http://app.localhost.test", SourceRequest},
		{"deployment host", "", "", "foo.app", "https://foo.app", SourceDeployment},
		{"deployment localhost still https", "", "", "localhost:9000", "https://localhost:9000", SourceDeployment},
		{"fallback", "", "", "", "http://localhost:3000", SourceFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.override, tc.host, tc.deployment)
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.source, got.Source)
		})
	}
	assert.Equal(t, Fallback, Resolve("", "", "").String())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "https://ov.example/binaries/linux/amd64/crush",
		Resolve("https://ov.example/", "", "").Join("/binaries/linux/amd64/crush"))
	assert.Equal(t, "http://localhost:3000/api/config",
		Resolve("", "", "").Join("api/config"))
}
