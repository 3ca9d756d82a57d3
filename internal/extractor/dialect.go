package extractor

import "idvex/internal/domain"

// Resolution is the outcome of classifying a raw document's shape: the
// sub-tree all further extraction operates on, the dotted path it was found
// at, and the dialect the document was recognized as. Dialect is empty when
// the root carried no recognizable markers and was used as-is.
type Resolution struct {
	SubTree    any
	RootPath   string
	Dialect    domain.Dialect
	IsWorkflow bool
}

const workflowReportPath = "verificationResults.idv.payload.ProcessingReport"

// ResolveDialect classifies the root value. Resolution order, first match
// wins: the Workflow wrapper, a caller-forced result key, resultData,
// idvResultData, and finally the root itself. It never fails; unrecognized
// shapes fall through to the root and failure surfaces later as absent
// fields.
func ResolveDialect(root any, forceResultKey string) Resolution {
	if report, ok := dig(root, "verificationResults", "idv", "payload", "ProcessingReport"); ok && truthy(report) {
		return Resolution{
			SubTree:    report,
			RootPath:   workflowReportPath,
			Dialect:    domain.DialectWorkflow,
			IsWorkflow: true,
		}
	}

	rootMap, _ := asMap(root)

	if forceResultKey != "" {
		if forced, ok := rootMap[forceResultKey]; ok && truthy(forced) {
			return Resolution{SubTree: forced, RootPath: forceResultKey, Dialect: domain.DialectSecureMe}
		}
	}
	if sub, ok := rootMap["resultData"]; ok && truthy(sub) {
		return Resolution{SubTree: sub, RootPath: "resultData", Dialect: domain.DialectSecureMe}
	}
	if sub, ok := rootMap["idvResultData"]; ok && truthy(sub) {
		return Resolution{SubTree: sub, RootPath: "idvResultData", Dialect: domain.DialectSecureMe}
	}

	return Resolution{SubTree: root, RootPath: "root"}
}
