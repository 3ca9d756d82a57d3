package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"idvex/internal/domain"
)

func TestResolveDialectWorkflowWins(t *testing.T) {
	doc := mustDoc(t, `{
		"verificationResults": {"idv": {"payload": {"ProcessingReport": {"a": 1}}}},
		"resultData": {"b": 2}
	}`)

	res := ResolveDialect(doc, "")

	assert.True(t, res.IsWorkflow)
	assert.Equal(t, domain.DialectWorkflow, res.Dialect)
	assert.Equal(t, "verificationResults.idv.payload.ProcessingReport", res.RootPath)
}

func TestResolveDialectForcedKeyBeatsResultData(t *testing.T) {
	doc := mustDoc(t, `{"custom": {"a": 1}, "resultData": {"b": 2}}`)

	res := ResolveDialect(doc, "custom")

	assert.Equal(t, "custom", res.RootPath)
	assert.Equal(t, domain.DialectSecureMe, res.Dialect)
	assert.False(t, res.IsWorkflow)
}

func TestResolveDialectForcedKeyAbsentFallsThrough(t *testing.T) {
	doc := mustDoc(t, `{"resultData": {"b": 2}}`)

	res := ResolveDialect(doc, "missing")

	assert.Equal(t, "resultData", res.RootPath)
}

func TestResolveDialectNullResultDataSkipped(t *testing.T) {
	doc := mustDoc(t, `{"resultData": null, "idvResultData": {"b": 2}}`)

	res := ResolveDialect(doc, "")

	assert.Equal(t, "idvResultData", res.RootPath)
	assert.Equal(t, domain.DialectSecureMe, res.Dialect)
}

func TestResolveDialectRawRoot(t *testing.T) {
	doc := mustDoc(t, `{"DocumentData2": {"FirstName": "A"}}`)

	res := ResolveDialect(doc, "")

	assert.Equal(t, "root", res.RootPath)
	assert.Empty(t, res.Dialect)
	assert.Equal(t, doc, res.SubTree)
}

func TestFindNestedAliasOrder(t *testing.T) {
	doc := mustDoc(t, `{"documentType": "b", "DocumentType": "a"}`)

	m := FindNested(doc, []string{"DocumentType", "documentType"})

	assert.Equal(t, "a", m.Value)
	assert.Equal(t, "DocumentType", m.Path)
}

func TestFindNestedPresenceBeatsDescent(t *testing.T) {
	doc := mustDoc(t, `{"Status": null, "nested": {"Status": "ok"}}`)

	m := FindNested(doc, []string{"Status"})

	assert.Nil(t, m.Value)
	assert.Equal(t, "Status", m.Path)
}

func TestFindNestedDescendsSortedKeys(t *testing.T) {
	doc := mustDoc(t, `{"zz": {"Target": "late"}, "aa": {"Target": "early"}}`)

	m := FindNested(doc, []string{"Target"})

	assert.Equal(t, "early", m.Value)
	assert.Equal(t, "aa.Target", m.Path)
}

func TestFindNestedSkipsArrays(t *testing.T) {
	doc := mustDoc(t, `{"items": [{"Target": "inside array"}]}`)

	assert.Nil(t, FindNested(doc, []string{"Target"}))
}

func TestFindNestedNotAnObject(t *testing.T) {
	assert.Nil(t, FindNested("scalar", []string{"Target"}))
}
