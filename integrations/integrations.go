// Package integrations generates the copy-pasteable embed snippets for
// third-party platforms. The payloads are opaque text; the only dynamic
// parts are the realm and the API base URL.
package integrations

import (
	"strings"

	"lumawisp/luma"
)

func render(tpl string, realm luma.Realm, baseURL string) string {
	return strings.NewReplacer(
		"{{realm}}", string(realm),
		"{{baseUrl}}", baseURL,
	).Replace(tpl)
}
