package extractor

import (
	"strings"

	"idvex/internal/domain"
)

// Alias lists for the best-effort metadata fields. Order matters: the first
// present alias at any level wins.
var (
	documentTypeAliases   = []string{"DocumentType", "documentType", "Type"}
	countryAliases        = []string{"Country", "country", "CountryCode"}
	requestIDAliases      = []string{"RequestId", "requestId", "ID"}
	processingDateAliases = []string{"ProcessingDate", "processingDate", "Date"}
	documentStatusAliases = []string{"DocumentStatus", "documentStatus", "Status"}
)

// Extra fields picked up opportunistically and stored under their lowercased
// names.
var additionalMetadataFields = []string{"Version", "Source", "Timestamp", "CreatedAt", "UpdatedAt"}

// enrichMetadata fills the loosely structured metadata fields by alias
// search over the resolved sub-tree. Everything here is best-effort; absent
// fields stay unset.
func enrichMetadata(meta *domain.Metadata, subTree any) {
	if m := FindNested(subTree, documentTypeAliases); m != nil {
		meta.DocumentType = m.Value
	}
	if m := FindNested(subTree, countryAliases); m != nil {
		meta.Country = m.Value
	}
	if m := FindNested(subTree, requestIDAliases); m != nil {
		meta.RequestID = m.Value
	}
	if m := FindNested(subTree, processingDateAliases); m != nil {
		meta.ProcessingDate = m.Value
	}
	if m := FindNested(subTree, documentStatusAliases); m != nil {
		meta.DocumentStatus = m.Value
	}

	if desc, ok := descriptorOf(subTree); ok {
		applyDescriptor(meta, desc)
	}

	for _, field := range additionalMetadataFields {
		m := FindNested(subTree, []string{field, strings.ToLower(field)})
		if m == nil {
			continue
		}
		switch field {
		case "Version":
			meta.Version = m.Value
		case "Source":
			meta.Source = m.Value
		case "Timestamp":
			meta.Timestamp = m.Value
		case "CreatedAt":
			meta.CreatedAt = m.Value
		case "UpdatedAt":
			meta.UpdatedAt = m.Value
		}
	}
}

// descriptorOf locates the DocumentTypeDescriptor block, checking the
// standard nesting first and the full wrapper chain second.
func descriptorOf(subTree any) (map[string]any, bool) {
	if desc, ok := digMap(subTree, "ProcessingResult", "DocumentTypeDescriptor"); ok && truthy(desc) {
		return desc, true
	}
	if desc, ok := digMap(subTree, "verificationResults", "idv", "payload", "ProcessingReport", "ProcessingResult", "DocumentTypeDescriptor"); ok && truthy(desc) {
		return desc, true
	}
	return nil, false
}

// applyDescriptor copies the non-empty descriptor fields into metadata.
func applyDescriptor(meta *domain.Metadata, desc map[string]any) {
	if v, ok := desc["CountryIso3"]; ok && truthy(v) {
		meta.DocumentTypeDescriptorCountryIso3 = v
	}
	if v, ok := desc["DocumentType"]; ok && truthy(v) {
		meta.DocumentTypeDescriptorType = v
	}
	if v, ok := desc["DocumentVersion"]; ok && truthy(v) {
		meta.DocumentTypeDescriptorVersion = v
	}
}
