// Package extractor turns raw identity verification reports, in any of the
// dialects the upstream services emit, into a normalized result record:
// summary verdict, deduplicated remark lists with source paths, document
// field maps, and best-effort metadata.
package extractor

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"idvex/internal/domain"
	"idvex/internal/taxonomy"
)

// Options control a single extraction run.
type Options struct {
	// ForceResultKey overrides result sub-tree detection with an explicit
	// top-level key. Ignored for Workflow documents and when the key is
	// absent or empty.
	ForceResultKey string
}

// Extract processes one decoded report document. It never returns an error:
// missing input yields a placeholder record, and any panic while walking a
// malformed document is converted into an error record carrying the original
// payload.
func Extract(doc any, opts Options) (rec *domain.ResultRecord) {
	if !truthy(doc) {
		log.Printf("extractor.Extract: no input document")
		return noDataRecord()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("extractor.Extract: recovered: %v", r)
			rec = errorRecord(doc, r)
		}
	}()

	res := ResolveDialect(doc, opts.ForceResultKey)
	rec = newRecord(doc, res)

	if res.IsWorkflow {
		extractWorkflowPhase(rec, doc, res)
		if !hasPageMismatch(res.SubTree) {
			return rec
		}
	}

	if extractStatusReportPhase(rec, res) && !hasPageMismatch(res.SubTree) {
		return rec
	}

	extractGenericPhase(rec, doc, res)
	return rec
}

func newRecord(doc any, res Resolution) *domain.ResultRecord {
	_, isArr := asSlice(doc)
	return &domain.ResultRecord{
		Remarks: domain.Remarks{
			Processing:     []domain.RemarkEntry{},
			RiskManagement: []domain.RemarkEntry{},
		},
		Metadata: domain.Metadata{
			ProcessedAt:         time.Now().UTC(),
			DataType:            jsonTypeName(doc),
			IsArray:             isArr,
			Size:                encodedSize(doc),
			JSONType:            string(res.Dialect),
			ExtractionRootPath:  res.RootPath,
			DocumentData2Fields: map[string]any{},
			DocumentData2Paths:  map[string]string{},
		},
	}
}

func noDataRecord() *domain.ResultRecord {
	return &domain.ResultRecord{
		Error: "No data provided",
		Summary: domain.Summary{
			PrimaryResult:    "No data",
			CompletionStatus: "No data",
		},
		Remarks: domain.Remarks{
			Processing:     []domain.RemarkEntry{},
			RiskManagement: []domain.RemarkEntry{},
		},
		Metadata: domain.Metadata{
			ProcessedAt: time.Now().UTC(),
			DataType:    "null",
		},
	}
}

func errorRecord(doc any, cause any) *domain.ResultRecord {
	msg := fmt.Sprint(cause)
	if err, ok := cause.(error); ok {
		msg = err.Error()
	}
	_, isArr := asSlice(doc)
	return &domain.ResultRecord{
		Error: msg,
		Summary: domain.Summary{
			PrimaryResult:    "Error processing data",
			CompletionStatus: "Error processing data",
			FailureReason:    msg,
		},
		Remarks: domain.Remarks{
			Processing:     []domain.RemarkEntry{},
			RiskManagement: []domain.RemarkEntry{},
		},
		Metadata: domain.Metadata{
			ProcessedAt: time.Now().UTC(),
			DataType:    jsonTypeName(doc),
			IsArray:     isArr,
			Size:        encodedSize(doc),
		},
		OriginalData: doc,
	}
}

// encodedSize is the re-encoded byte length of the document, recorded so a
// reviewer can spot truncated uploads.
func encodedSize(doc any) int {
	b, err := json.Marshal(doc)
	if err != nil {
		return 0
	}
	return len(b)
}

// extractWorkflowPhase handles Workflow wrapper documents. Document fields
// come exclusively from sessionResult.identity and processing remarks
// exclusively from verificationResults.idv.remarks; the risk scan still
// covers the full report sub-tree.
func extractWorkflowPhase(rec *domain.ResultRecord, root any, res Resolution) {
	if identity, ok := digMap(root, "sessionResult", "identity"); ok {
		for _, key := range sortedKeys(identity) {
			rec.Metadata.DocumentData2Fields[key] = identity[key]
			rec.Metadata.DocumentData2Paths[key] = "sessionResult.identity." + key
		}
		rec.Metadata.DocumentData2Source = "sessionResult.identity"
	}

	if remarks, ok := digSlice(root, "verificationResults", "idv", "remarks"); ok {
		entries := make([]domain.RemarkEntry, 0, len(remarks))
		seen := make(map[int]bool, len(remarks))
		for i, raw := range remarks {
			code, ok := toCode(raw)
			if !ok || seen[code] {
				continue
			}
			seen[code] = true
			entries = append(entries, domain.RemarkEntry{
				Code:     code,
				Message:  taxonomy.ProcessingMessage(code),
				Category: taxonomy.ProcessingCategory(code),
				Path:     fmt.Sprintf("verificationResults.idv.remarks[%d]", i),
			})
		}
		rec.Remarks.Processing = entries
	}

	if wf, ok := dig(root, "sessionResult", "workflowId"); ok && wf != nil {
		rec.Metadata.WorkflowNumber = workflowNumber(wf)
	}

	applyPrimaryResult(rec, res.SubTree, res.RootPath)
	applyCompletionStatus(rec, res.SubTree, []string{"CompletionStatus", "completionStatus"})
	applyFailureReason(rec, res.SubTree)

	rec.Remarks.RiskManagement = riskEntries(dedupRefs(collectRiskRefs(res.SubTree, res.RootPath)))

	enrichMetadata(&rec.Metadata, res.SubTree)
}

// workflowNumber presents a workflow id with the vendor prefix, leaving
// already prefixed ids alone.
func workflowNumber(wf any) string {
	if s, ok := wf.(string); ok && len(s) >= 7 && strings.EqualFold(s[:7], "au10tix") {
		return s
	}
	return "Au10tix" + formatScalar(wf)
}

// extractStatusReportPhase handles documents carrying the
// DocumentStatusReport2 verdict block. It reports whether the record is
// complete enough to return without the generic scan; the page-mismatch
// check on top of that is the caller's.
func extractStatusReportPhase(rec *domain.ResultRecord, res Resolution) bool {
	subTree, rootPath := res.SubTree, res.RootPath

	rawDSR2, hasDSR2 := dig(subTree, "DocumentStatusReport2")
	dsr2Present := hasDSR2 && truthy(rawDSR2)
	processedRisk := false
	processedDescriptor := false

	if dsr2Present {
		dsr2, _ := asMap(rawDSR2)

		if pv, ok := dsr2["PrimaryProcessingResult"]; ok {
			rec.Summary.PrimaryResult = formatPrimary(pv)
			rec.Paths.PrimaryResult = rootPath + ".DocumentStatusReport2.PrimaryProcessingResult"
		}
		if rec.Paths.PrimaryResult == "" {
			if eff, ok := digMap(subTree, "RiskManagementReport", "EffectiveConclusion"); ok {
				if pv, present := eff["PrimaryProcessingResult"]; present {
					rec.Summary.PrimaryResult = formatPrimary(pv)
					rec.Paths.PrimaryResult = rootPath + ".RiskManagementReport.EffectiveConclusion.PrimaryProcessingResult"
				}
			}
		}

		processing := []domain.RemarkEntry{}
		if arr, ok := asSlice(dsr2["ProcessingResultRemarks"]); ok {
			seen := make(map[int]bool, len(arr))
			for _, raw := range arr {
				code, ok := toCode(raw)
				if !ok || seen[code] {
					continue
				}
				seen[code] = true
				processing = append(processing, domain.RemarkEntry{
					Code:     code,
					Message:  taxonomy.ProcessingMessage(code),
					Category: taxonomy.ProcessingCategory(code),
					Path:     rootPath + ".DocumentStatusReport2.ProcessingResultRemarks",
				})
			}
		}
		rec.Remarks.Processing = processing

		// The authoritative risk source here is the processing-coded remark
		// list under Reasons; messages resolve against the processing table
		// while classification stays in the risk categories.
		if arr, ok := digSlice(subTree, "RiskManagementReport", "EffectiveConclusion", "Reasons", "ProcessingResultRemarks"); ok {
			risk := make([]domain.RemarkEntry, 0, len(arr))
			seen := make(map[int]bool, len(arr))
			for i, raw := range arr {
				code, ok := toCode(raw)
				if !ok || seen[code] {
					continue
				}
				seen[code] = true
				path := fmt.Sprintf("%s.RiskManagementReport.EffectiveConclusion.Reasons.ProcessingResultRemarks[%d]", rootPath, i)
				risk = append(risk, domain.RemarkEntry{
					Code:         code,
					Message:      taxonomy.ProcessingMessage(code),
					Category:     taxonomy.RiskCategory(code),
					Path:         path,
					OriginalPath: path,
				})
			}
			rec.Remarks.RiskManagement = risk
			processedRisk = true
		}

		if block, ok := digMap(subTree, "ProcessingResult", "DocumentData2"); ok && truthy(block) {
			extractDocData2(&rec.Metadata, block, rootPath+".ProcessingResult.DocumentData2", false)
		}

		if desc, ok := descriptorOf(subTree); ok {
			applyDescriptor(&rec.Metadata, desc)
			processedDescriptor = true
		}
	}

	if !processedDescriptor {
		if desc, ok := digMap(subTree, "ProcessingResult", "DocumentTypeDescriptor"); ok && truthy(desc) {
			applyDescriptor(&rec.Metadata, desc)
		}
	}

	return dsr2Present || processedRisk || processedDescriptor
}

// extractGenericPhase is the exhaustive fallback scan. It overwrites both
// remark lists with the full multi-location aggregation and fills in
// whatever summary fields the earlier phases left empty.
func extractGenericPhase(rec *domain.ResultRecord, root any, res Resolution) {
	subTree, rootPath := res.SubTree, res.RootPath

	rec.Remarks.Processing = processingEntries(dedupRefs(collectProcessingRefs(subTree, rootPath)))
	rec.Remarks.RiskManagement = riskEntries(dedupRefs(collectRiskRefs(subTree, rootPath)))

	applyPrimaryResult(rec, subTree, rootPath)
	applyCompletionStatus(rec, subTree, []string{"CompletionStatus"})
	applyFailureReason(rec, subTree)

	if pages := pagesOf(subTree); hasPageMismatch(subTree) && len(pages) >= 2 {
		extractTwoPageDocData2(&rec.Metadata, pages, rootPath)
	} else if block, path, ok := locateDocData2(subTree, root, rootPath); ok {
		extractDocData2(&rec.Metadata, block, path, true)
	}

	enrichMetadata(&rec.Metadata, subTree)
}

// applyPrimaryResult reads the primary verdict code, preferring the
// DocumentStatusReport2 location over the flat one. Null values leave the
// summary untouched.
func applyPrimaryResult(rec *domain.ResultRecord, subTree any, rootPath string) {
	var value any
	var path string
	if dsr2, ok := digMap(subTree, "DocumentStatusReport2"); ok {
		if pv, present := dsr2["PrimaryProcessingResult"]; present {
			value, path = pv, rootPath+".DocumentStatusReport2.PrimaryProcessingResult"
		}
	}
	if path == "" {
		if m, ok := asMap(subTree); ok {
			if pv, present := m["PrimaryProcessingResult"]; present {
				value, path = pv, rootPath+".PrimaryProcessingResult"
			}
		}
	}
	if path == "" || value == nil {
		return
	}
	rec.Summary.PrimaryResult = formatPrimary(value)
	rec.Paths.PrimaryResult = path
}

// formatPrimary renders a primary verdict as "<code> - <description>" when
// the code is a known integral table entry, and as the bare value otherwise.
func formatPrimary(v any) string {
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		if msg, known := taxonomy.PrimaryMessage(int(f)); known {
			return fmt.Sprintf("%d - %s", int(f), msg)
		}
	}
	return formatScalar(v)
}

func applyCompletionStatus(rec *domain.ResultRecord, subTree any, aliases []string) {
	if m := FindNested(subTree, aliases); m != nil && m.Value != nil {
		rec.Summary.CompletionStatus = formatScalar(m.Value)
		rec.Paths.CompletionStatus = m.Path
	}
}

func applyFailureReason(rec *domain.ResultRecord, subTree any) {
	if m := FindNested(subTree, []string{"FailureReason", "failureReason"}); m != nil && m.Value != nil {
		rec.Summary.FailureReason = formatScalar(m.Value)
		rec.Paths.FailureReason = m.Path
	}
}
