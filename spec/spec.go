// Package spec embeds the OpenAPI document for the golf trips API, which the
// server publishes at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI holds openapi.yaml as compiled into the binary.
//
//go:embed openapi.yaml
var OpenAPI []byte
