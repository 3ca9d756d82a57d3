package endpoint

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvex/internal/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectWorkflowToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "workflow:api other:scope",
		"apiUrl": "https://weu-api.au10tixservices.com/API.WEU.PRD/",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.APITypeWorkflow, info.APIType)
	assert.Equal(t, "WEU", info.Region)
	assert.Equal(t, domain.EnvironmentPRD, info.Environment)
	assert.Equal(t, "https://weu-api.au10tixservices.com", info.BaseURL)
	assert.True(t, info.IsValid)
}

func TestInspectSecureMeStagingToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":         []any{"secure.me:request"},
		"securemeUrl": "https://api.eus.au10tixservicesstaging.com",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.APITypeSecureMe, info.APIType)
	assert.Equal(t, "EUS", info.Region)
	assert.Equal(t, domain.EnvironmentSTG, info.Environment)
	assert.Equal(t, "https://eus-api.au10tixservicesstaging.com", info.BaseURL)
	assert.True(t, info.IsValid)
}

func TestInspectBOSToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "bos",
		"bosUrl": "https://bos-wus.au10tixservices.com",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.APITypeBOS, info.APIType)
	assert.Equal(t, "WUS", info.Region)
	assert.Equal(t, domain.EnvironmentPRD, info.Environment)
	assert.Equal(t, "https://bos-wus.au10tixservices.com", info.BaseURL)
	assert.True(t, info.IsValid)
}

func TestInspectBOSStagingToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "bos",
		"bosUrl": "https://bos-weu.au10tixservicesstaging.com",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.EnvironmentSTG, info.Environment)
	assert.Equal(t, "https://bos-weu.au10tixservicesstaging.com", info.BaseURL)
	assert.True(t, info.IsValid)
}

func TestInspectRegionClaimWins(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "workflow:api",
		"region": "ejp",
		"apiUrl": "https://weu-api.au10tixservices.com/API.WEU.PRD/",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, "EJP", info.Region)
	assert.Equal(t, "https://ejp-api.au10tixservices.com", info.BaseURL)
}

func TestInspectOrganization(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":                    "workflow:api",
		"clientOrganizationName": "Acme Corp",
		"clientOrganizationId":   float64(42),
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	require.NotNil(t, info.Organization)
	assert.Equal(t, "Acme Corp", info.Organization.Name)
	assert.Equal(t, float64(42), info.Organization.ID)
}

func TestInspectIncompleteToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"scp": "workflow:api"})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.APITypeWorkflow, info.APIType)
	assert.Empty(t, info.Region)
	assert.Empty(t, info.BaseURL)
	assert.False(t, info.IsValid)
	assert.Nil(t, info.Organization)
}

func TestInspectUnknownScope(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "something:else",
		"apiUrl": "https://weu-api.au10tixservices.com/API.WEU.PRD/",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Empty(t, info.APIType)
	assert.False(t, info.IsValid)
}

func TestInspectMalformedToken(t *testing.T) {
	_, err := Inspect("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestInspectStagingViaAPIURLMarker(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"scp":    "workflow:api",
		"apiUrl": "https://weu-api.au10tixservicesstaging.com/API.WEU.STAGING/",
	})

	info, err := Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, domain.EnvironmentSTG, info.Environment)
	assert.Equal(t, "https://weu-api.au10tixservicesstaging.com", info.BaseURL)
}
