package extractor

import (
	"fmt"
	"regexp"

	"idvex/internal/domain"
	"idvex/internal/taxonomy"
)

// PageMismatchCode is the sentinel processing remark indicating the pages of
// a multi-page document were processed as unrelated documents. Its presence
// switches field extraction into the two-page reconciliation mode.
const PageMismatchCode = 140

// codeRef is a raw (code, path) pair collected from one of the remark scan
// locations, before deduplication.
type codeRef struct {
	code int
	path string
}

// Legacy documents store risk management remarks under several historical
// key names. Display paths are rewritten to the canonical
// ProcessingResultRemarks form; originalPath keeps the literal location.
var (
	reasonsRiskAlias = regexp.MustCompile(`RiskManagementReport\.EffectiveConclusion\.Reasons\.(RiskManagementRemarks|RiskManagerRemarks)`)
	dsr2RiskAlias    = regexp.MustCompile(`DocumentStatusReport2\.(RiskManagementRemarks|RiskManagerRemarks)`)
	rootRiskAlias    = regexp.MustCompile(`(^|\.)(RiskManagementRemarks|RiskManagerRemarks)(\[)`)
)

// aliasRiskRemarkPath rewrites a risk remark's literal path to the single
// canonical display form, whichever legacy key the document used.
func aliasRiskRemarkPath(path string) string {
	alias := reasonsRiskAlias.ReplaceAllString(path, "RiskManagementReport.EffectiveConclusion.Reasons.ProcessingResultRemarks")
	alias = dsr2RiskAlias.ReplaceAllString(alias, "DocumentStatusReport2.ProcessingResultRemarks")
	alias = rootRiskAlias.ReplaceAllString(alias, "${1}ProcessingResultRemarks${3}")
	return alias
}

// appendRefs converts one remark array into codeRefs, skipping entries that
// cannot be coerced to an integer code. pathf receives the element index.
func appendRefs(refs []codeRef, arr []any, pathf func(idx int) string) []codeRef {
	for i, raw := range arr {
		code, ok := toCode(raw)
		if !ok {
			continue
		}
		refs = append(refs, codeRef{code: code, path: pathf(i)})
	}
	return refs
}

// collectProcessingRefs gathers processing remark codes from every location
// the generic scan covers, in the fixed order: the top-level Reasons block,
// per-page Reasons blocks, the flat legacy root field, and the legacy
// DocumentStatusReport2 field. The Reasons-block entries are recorded with a
// DocumentStatusReport2 display path, the canonical location for processing
// remarks.
func collectProcessingRefs(subTree any, rootPath string) []codeRef {
	var refs []codeRef

	if arr, ok := digSlice(subTree, "RiskManagementReport", "EffectiveConclusion", "Reasons", "ProcessingResultRemarks"); ok {
		refs = appendRefs(refs, arr, func(i int) string {
			return fmt.Sprintf("%s.DocumentStatusReport2.ProcessingResultRemarks[%d]", rootPath, i)
		})
	}
	for pageIdx, page := range pagesOf(subTree) {
		if arr, ok := digSlice(page, "RiskManagementReport", "EffectiveConclusion", "Reasons", "ProcessingResultRemarks"); ok {
			p := pageIdx
			refs = appendRefs(refs, arr, func(i int) string {
				return fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[%d].DocumentStatusReport2.ProcessingResultRemarks[%d]", rootPath, p, i)
			})
		}
	}
	if arr, ok := digSlice(subTree, "ProcessingResultRemarks"); ok {
		refs = appendRefs(refs, arr, func(i int) string {
			return fmt.Sprintf("%s.ProcessingResultRemarks[%d]", rootPath, i)
		})
	}
	if arr, ok := digSlice(subTree, "DocumentStatusReport2", "ProcessingResultRemarks"); ok {
		refs = appendRefs(refs, arr, func(i int) string {
			return fmt.Sprintf("%s.DocumentStatusReport2.ProcessingResultRemarks[%d]", rootPath, i)
		})
	}
	return refs
}

// collectRiskRefs gathers risk management remark codes from every location
// the generic scan covers: the top-level Reasons block, per-page Reasons
// blocks, the two flat legacy root keys, and the two legacy
// DocumentStatusReport2 keys.
func collectRiskRefs(subTree any, rootPath string) []codeRef {
	var refs []codeRef

	if arr, ok := digSlice(subTree, "RiskManagementReport", "EffectiveConclusion", "Reasons", "RiskManagementRemarks"); ok {
		refs = appendRefs(refs, arr, func(i int) string {
			return fmt.Sprintf("%s.RiskManagementReport.EffectiveConclusion.Reasons.RiskManagementRemarks[%d]", rootPath, i)
		})
	}
	for pageIdx, page := range pagesOf(subTree) {
		if arr, ok := digSlice(page, "RiskManagementReport", "EffectiveConclusion", "Reasons", "RiskManagementRemarks"); ok {
			p := pageIdx
			refs = appendRefs(refs, arr, func(i int) string {
				return fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[%d].RiskManagementReport.EffectiveConclusion.Reasons.RiskManagementRemarks[%d]", rootPath, p, i)
			})
		}
	}
	for _, key := range []string{"RiskManagerRemarks", "RiskManagementRemarks"} {
		if arr, ok := digSlice(subTree, key); ok {
			k := key
			refs = appendRefs(refs, arr, func(i int) string {
				return fmt.Sprintf("%s.%s[%d]", rootPath, k, i)
			})
		}
	}
	for _, key := range []string{"RiskManagerRemarks", "RiskManagementRemarks"} {
		if arr, ok := digSlice(subTree, "DocumentStatusReport2", key); ok {
			k := key
			refs = appendRefs(refs, arr, func(i int) string {
				return fmt.Sprintf("%s.DocumentStatusReport2.%s[%d]", rootPath, k, i)
			})
		}
	}
	return refs
}

// dedupRefs drops duplicate codes, keeping the first-seen path. Order is
// insertion order of first occurrence.
func dedupRefs(refs []codeRef) []codeRef {
	seen := make(map[int]bool, len(refs))
	out := refs[:0:0]
	for _, ref := range refs {
		if seen[ref.code] {
			continue
		}
		seen[ref.code] = true
		out = append(out, ref)
	}
	return out
}

// processingEntries resolves deduplicated refs against the processing
// taxonomy.
func processingEntries(refs []codeRef) []domain.RemarkEntry {
	entries := make([]domain.RemarkEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, domain.RemarkEntry{
			Code:     ref.code,
			Message:  taxonomy.ProcessingMessage(ref.code),
			Category: taxonomy.ProcessingCategory(ref.code),
			Path:     ref.path,
		})
	}
	return entries
}

// riskEntries resolves deduplicated refs against the risk taxonomy, with
// the display path aliased to the canonical form.
func riskEntries(refs []codeRef) []domain.RemarkEntry {
	entries := make([]domain.RemarkEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, domain.RemarkEntry{
			Code:         ref.code,
			Message:      taxonomy.RiskMessage(ref.code),
			Category:     taxonomy.RiskCategory(ref.code),
			Path:         aliasRiskRemarkPath(ref.path),
			OriginalPath: ref.path,
		})
	}
	return entries
}

// pagesOf returns the per-page report entries, or nil when absent.
func pagesOf(subTree any) []any {
	pages, _ := digSlice(subTree, "PageAsSeparateDocumentProcessingReports")
	return pages
}

// hasPageMismatch runs the dedicated sentinel scan for code 140 over the
// locations the mismatch flag may appear in: the legacy
// DocumentStatusReport2 processing remarks, the flat root processing
// remarks, and each page's Reasons.RiskManagementRemarks block.
func hasPageMismatch(subTree any) bool {
	if arr, ok := digSlice(subTree, "DocumentStatusReport2", "ProcessingResultRemarks"); ok && containsCode(arr, PageMismatchCode) {
		return true
	}
	if arr, ok := digSlice(subTree, "ProcessingResultRemarks"); ok && containsCode(arr, PageMismatchCode) {
		return true
	}
	for _, page := range pagesOf(subTree) {
		if arr, ok := digSlice(page, "RiskManagementReport", "EffectiveConclusion", "Reasons", "RiskManagementRemarks"); ok && containsCode(arr, PageMismatchCode) {
			return true
		}
	}
	return false
}

func containsCode(arr []any, want int) bool {
	for _, raw := range arr {
		if code, ok := toCode(raw); ok && code == want {
			return true
		}
	}
	return false
}
