package domain

import "time"

// ResultRecord is the normalized output of one extraction call. It is built
// fresh per call and never shared; Error is set instead of the usual fields
// when the extractor had to recover from an internal failure.
type ResultRecord struct {
	Error        string   `json:"error,omitempty"`
	Summary      Summary  `json:"summary"`
	Remarks      Remarks  `json:"remarks"`
	Metadata     Metadata `json:"metadata"`
	Paths        Paths    `json:"paths"`
	OriginalData any      `json:"originalData,omitempty"`
}

// Summary holds the headline verdict of a verification report.
type Summary struct {
	PrimaryResult    string `json:"primaryResult,omitempty"`
	CompletionStatus string `json:"completionStatus,omitempty"`
	FailureReason    string `json:"failureReason,omitempty"`
}

// Remarks groups the two remark code spaces.
type Remarks struct {
	Processing     []RemarkEntry `json:"processing"`
	RiskManagement []RemarkEntry `json:"riskManagement"`
}

// RemarkEntry is one deduplicated remark code with its resolved message,
// category, and provenance. Path is the canonical display path; OriginalPath
// is the literal location the code was found at.
type RemarkEntry struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	Category     string `json:"category,omitempty"`
	Path         string `json:"path"`
	OriginalPath string `json:"originalPath,omitempty"`
}

// Metadata carries the extracted document-field table plus best-effort
// context fields harvested from anywhere in the tree.
type Metadata struct {
	ProcessedAt        time.Time `json:"processedAt"`
	DataType           string    `json:"dataType"`
	IsArray            bool      `json:"isArray"`
	Size               int       `json:"size"`
	JSONType           string    `json:"jsonType,omitempty"`
	ExtractionRootPath string    `json:"extractionRootPath,omitempty"`
	WorkflowNumber     string    `json:"workflowNumber,omitempty"`

	DocumentType   any `json:"documentType,omitempty"`
	Country        any `json:"country,omitempty"`
	RequestID      any `json:"requestId,omitempty"`
	ProcessingDate any `json:"processingDate,omitempty"`
	DocumentStatus any `json:"documentStatus,omitempty"`

	DocumentTypeDescriptorCountryIso3 any `json:"documentTypeDescriptorCountryIso3,omitempty"`
	DocumentTypeDescriptorType        any `json:"documentTypeDescriptorType,omitempty"`
	DocumentTypeDescriptorVersion     any `json:"documentTypeDescriptorVersion,omitempty"`

	Version   any `json:"version,omitempty"`
	Source    any `json:"source,omitempty"`
	Timestamp any `json:"timestamp,omitempty"`
	CreatedAt any `json:"createdat,omitempty"`
	UpdatedAt any `json:"updatedat,omitempty"`

	// DocumentData2Fields keys are canonical field names, suffixed _front or
	// _back when the two pages of a mismatched document disagree. A base key
	// and its suffixed variants are never present at the same time.
	DocumentData2Fields          map[string]any    `json:"documentData2Fields"`
	DocumentData2Paths           map[string]string `json:"documentData2Paths"`
	DocumentData2Source          string            `json:"documentData2Source,omitempty"`
	DocumentData2DataSource      map[string]any    `json:"documentData2DataSource,omitempty"`
	DocumentData2DataSourcePaths map[string]string `json:"documentData2DataSourcePaths,omitempty"`
	DocumentData2Compare         map[string]string `json:"documentData2Compare,omitempty"`
}

// Paths records where the summary fields were located in the input.
type Paths struct {
	PrimaryResult    string `json:"primaryResult,omitempty"`
	CompletionStatus string `json:"completionStatus,omitempty"`
	FailureReason    string `json:"failureReason,omitempty"`
}
