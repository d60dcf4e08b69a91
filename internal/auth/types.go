package auth

// Principal is the verified identity carried by a validated bearer
// token. Audience keeps the raw claim shape because Keycloak issues
// either a single string or a list depending on the client's scope
// mappings.
type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}
