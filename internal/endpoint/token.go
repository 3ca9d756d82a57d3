// Package endpoint derives upstream API routing information from the JWT
// access tokens the verification services issue. Tokens are decoded without
// signature verification; the service never trusts them for authentication,
// only for routing.
package endpoint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"idvex/internal/domain"
)

var prdURLs = []string{
	"https://weu-api.au10tixservices.com",
	"https://eus-api.au10tixservices.com",
	"https://ejp-api.au10tixservices.com",
	"https://wus-api.au10tixservices.com",
}

var stgURLs = []string{
	"https://weu-api.au10tixservicesstaging.com",
	"https://eus-api.au10tixservicesstaging.com",
}

var bosURLs = []string{
	"https://bos-weu.au10tixservices.com",
	"https://bos-eus.au10tixservices.com",
	"https://bos-ejp.au10tixservices.com",
	"https://bos-wus.au10tixservices.com",
	"https://bos-weu.au10tixservicesstaging.com",
	"https://bos-eus.au10tixservicesstaging.com",
}

var (
	apiURLRegion      = regexp.MustCompile(`API\.([A-Z]+)\.`)
	securemeURLRegion = regexp.MustCompile(`api\.([^.]+)\.`)
	bosURLRegion      = regexp.MustCompile(`bos-([^.]+)\.`)
)

// Organization identifies the client organization a token was issued to.
type Organization struct {
	Name string `json:"name,omitempty"`
	ID   any    `json:"id,omitempty"`
}

// TokenInfo is everything routing needs to know about a token. IsValid is
// true only when all of API type, region, environment, and base URL could
// be derived.
type TokenInfo struct {
	APIType      domain.APIType     `json:"apiType,omitempty"`
	Region       string             `json:"region,omitempty"`
	Environment  domain.Environment `json:"environment,omitempty"`
	BaseURL      string             `json:"baseUrl,omitempty"`
	Organization *Organization      `json:"organization,omitempty"`
	IsValid      bool               `json:"isValid"`
}

// Inspect decodes a token's claims and derives the routing info. It fails
// only when the token cannot be decoded at all; individual fields that
// cannot be derived stay empty and make IsValid false.
func Inspect(token string) (*TokenInfo, error) {
	claims, err := parseClaims(token)
	if err != nil {
		return nil, err
	}

	info := &TokenInfo{
		APIType:     apiTypeOf(claims),
		Region:      regionOf(claims),
		Environment: environmentOf(claims),
	}
	info.BaseURL = baseURLFor(info.APIType, info.Region, info.Environment)
	info.Organization = organizationOf(claims)
	info.IsValid = info.APIType != "" && info.Region != "" && info.Environment != "" && info.BaseURL != ""
	return info, nil
}

func parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	return claims, nil
}

// apiTypeOf maps the token's scope claim to an API type. The scope may be a
// space separated string or a claim array; for strings a substring match is
// used, mirroring how the issuing services pack scopes.
func apiTypeOf(claims jwt.MapClaims) domain.APIType {
	scopes, ok := claims["scp"]
	if !ok {
		return ""
	}
	has := func(want string) bool {
		switch s := scopes.(type) {
		case string:
			return strings.Contains(s, want)
		case []any:
			for _, item := range s {
				if str, ok := item.(string); ok && str == want {
					return true
				}
			}
		}
		return false
	}
	switch {
	case has("workflow:api"):
		return domain.APITypeWorkflow
	case has("secure.me:request"):
		return domain.APITypeSecureMe
	case has("bos"):
		return domain.APITypeBOS
	}
	return ""
}

// regionOf reads the region claim directly or falls back to parsing it out
// of whichever service URL claim is present.
func regionOf(claims jwt.MapClaims) string {
	if region, ok := claims["region"].(string); ok && region != "" {
		return strings.ToUpper(region)
	}
	if apiURL, ok := claims["apiUrl"].(string); ok {
		if m := apiURLRegion.FindStringSubmatch(apiURL); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	if securemeURL, ok := claims["securemeUrl"].(string); ok {
		if m := securemeURLRegion.FindStringSubmatch(securemeURL); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	if bosURL, ok := claims["bosUrl"].(string); ok {
		if m := bosURLRegion.FindStringSubmatch(bosURL); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}

// environmentOf reports STG when any service URL claim points at staging,
// and PRD otherwise.
func environmentOf(claims jwt.MapClaims) domain.Environment {
	if apiURL, ok := claims["apiUrl"].(string); ok && strings.Contains(apiURL, "STAGING") {
		return domain.EnvironmentSTG
	}
	for _, key := range []string{"securemeUrl", "bosUrl"} {
		if u, ok := claims[key].(string); ok && strings.Contains(u, "staging") {
			return domain.EnvironmentSTG
		}
	}
	return domain.EnvironmentPRD
}

// baseURLFor picks the endpoint for the API type, region, and environment
// out of the static URL tables. Empty when no table entry matches.
func baseURLFor(apiType domain.APIType, region string, env domain.Environment) string {
	if apiType == "" || region == "" || env == "" {
		return ""
	}
	needle := strings.ToLower(region)

	if apiType == domain.APITypeBOS {
		wantStaging := env == domain.EnvironmentSTG
		for _, u := range bosURLs {
			if strings.Contains(u, "staging") != wantStaging {
				continue
			}
			if strings.Contains(u, needle) {
				return u
			}
		}
		return ""
	}

	urls := prdURLs
	if env == domain.EnvironmentSTG {
		urls = stgURLs
	}
	for _, u := range urls {
		if strings.Contains(u, needle) {
			return u
		}
	}
	return ""
}

func organizationOf(claims jwt.MapClaims) *Organization {
	name, _ := claims["clientOrganizationName"].(string)
	id, hasID := claims["clientOrganizationId"]
	if name == "" && !hasID {
		return nil
	}
	return &Organization{Name: name, ID: id}
}
