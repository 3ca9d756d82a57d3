package domain

// Dialect identifies which of the supported report shapes a document uses.
type Dialect string

const (
	// DialectWorkflow is the nested Workflow report, wrapped under
	// verificationResults.idv.payload.ProcessingReport.
	DialectWorkflow Dialect = "Workflow"
	// DialectSecureMe covers the flat Secure Me / BOS report shapes.
	DialectSecureMe Dialect = "Secure me"
)

// CaptureSource is the method a document field's value was obtained by.
type CaptureSource int

const (
	CaptureVisual  CaptureSource = 1
	CaptureMRZ     CaptureSource = 2
	CaptureBarcode CaptureSource = 3
)

// String returns the human-readable capture source name.
func (s CaptureSource) String() string {
	switch s {
	case CaptureVisual:
		return "Visual inspection"
	case CaptureMRZ:
		return "MRZ"
	case CaptureBarcode:
		return "Barcode"
	default:
		return "Unknown"
	}
}

// APIType is the API family a client token is scoped to.
type APIType string

const (
	APITypeWorkflow APIType = "workflow"
	APITypeSecureMe APIType = "secureme"
	APITypeBOS      APIType = "bos"
)

// Environment distinguishes production from staging endpoints.
type Environment string

const (
	EnvironmentPRD Environment = "PRD"
	EnvironmentSTG Environment = "STG"
)
