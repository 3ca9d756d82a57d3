package taxonomy

// Category groups remark codes under a reviewer-facing heading. Categories
// are ordered; the first category containing a code wins, so overlapping
// code lists resolve deterministically.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Codes       []int  `json:"codes"`
}

// ProcessingCategories groups processing remark codes.
var ProcessingCategories = []Category{
	{
		Name:        "Authentication",
		Description: "Results from document authenticity verification tests",
		Codes:       []int{0, 20, 40, 50, 55, 60, 80},
	},
	{
		Name:        "Document Quality",
		Description: "Issues related to document image quality and clarity",
		Codes:       []int{120, 121, 122, 123, 124},
	},
	{
		Name:        "Document Processing",
		Description: "Results from document processing and recognition",
		Codes:       []int{130, 140, 160, 180},
	},
	{
		Name:        "Document Validation",
		Description: "Results from document validation and verification",
		Codes:       []int{100, 200, 220, 230, 250, 260, 280, 300},
	},
	{
		Name:        "DoubleCheck",
		Description: "DoubleCheck and related processing",
		Codes:       []int{320, 340, 360, 380, 400, 420, 440, 460, 480, 500, 520, 540, 550, 560, 580, 600, 620, 640, 720, 740},
	},
	{
		Name:        "Processing Issues",
		Description: "General processing and technical issues",
		Codes:       []int{700, 760, 780, 800, 820, 960},
	},
	{
		Name:        "Manual Inspection",
		Description: "Results from manual inspection processes",
		Codes:       []int{840, 860, 880},
	},
	{
		Name:        "Face Comparison",
		Description: "Results from face comparison and detection",
		Codes:       []int{900, 920, 930, 940, 1440},
	},
	{
		Name:        "Digital Signature",
		Description: "Results from digital signature verification",
		Codes:       []int{1580, 1600, 1620, 1640, 1660, 1680, 1700, 1720, 1740, 1760},
	},
	{
		Name:        "Fraud Detection",
		Description: "Results from fraud detection and monitoring",
		Codes:       []int{1800, 1820},
	},
}

// RiskCategories groups risk management remark codes.
var RiskCategories = []Category{
	{
		Name:        "Face Comparison",
		Description: "Results from face comparison and related checks",
		Codes:       []int{10, 15, 18, 860, 870, 840, 850, 1090, 1100, 1120, 1130, 1410},
	},
	{
		Name:        "Document Quality",
		Description: "Issues with document quality and integrity",
		Codes:       []int{20, 30, 40, 60, 700, 720, 730, 740, 1140, 1150, 1160, 1170, 1270, 1280, 1340},
	},
	{
		Name:        "Missing Fields",
		Description: "Required fields that are missing from the document",
		Codes:       []int{80, 100, 150, 160, 180, 200, 220, 260, 300, 320, 340, 380, 400, 420, 440, 880, 900, 1350},
	},
	{
		Name:        "Field Issues",
		Description: "Problems with specific document fields",
		Codes:       []int{120, 140, 240, 280, 360, 460, 470, 1290, 1300, 1310, 1330},
	},
	{
		Name:        "OCR Confidence",
		Description: "Low confidence in OCR results for specific fields",
		Codes:       []int{480, 500, 510, 520, 540, 560, 580, 600, 620, 640, 660, 890, 910, 1360, 1450},
	},
	{
		Name:        "Instinct/Policy",
		Description: "Instinct risk flags, policy, and threshold rules",
		Codes:       []int{665, 670, 680, 750, 760, 770, 1000, 1010, 1180, 1190, 1200, 1210, 1220, 1230, 1240, 1250, 1260, 1470, 1480, 1490},
	},
	{
		Name:        "Proof of Address",
		Description: "Proof of address and related rules",
		Codes:       []int{780, 960, 970, 980, 990},
	},
	{
		Name:        "Age/Photo",
		Description: "Age, photo, and biometric checks",
		Codes:       []int{820, 830},
	},
	{
		Name:        "Attack Info",
		Description: "Attack info and seen that... risk flags",
		Codes:       []int{920, 930, 940, 950, 1180, 1190, 1220, 1230, 1240, 1250, 1260, 1470, 1480, 1490},
	},
	{
		Name:        "Personal Info Comparison",
		Description: "Personal information comparison status",
		Codes:       []int{1020, 1030, 1040, 1050, 1060, 1070, 1080, 1085, 1380, 1390, 1400, 1460},
	},
	{
		Name:        "Technical/Other",
		Description: "Technical, replay, and other remarks",
		Codes:       []int{0, 1110, 1320, 1370, 1420, 1430, 1440},
	},
}

var (
	processingCategoryByCode = indexCategories(ProcessingCategories)
	riskCategoryByCode       = indexCategories(RiskCategories)
)

func indexCategories(cats []Category) map[int]string {
	byCode := make(map[int]string)
	for _, cat := range cats {
		for _, code := range cat.Codes {
			if _, seen := byCode[code]; !seen {
				byCode[code] = cat.Name
			}
		}
	}
	return byCode
}

// ProcessingCategory returns the category name for a processing remark code,
// or "Other" when the code is not categorized.
func ProcessingCategory(code int) string {
	if name, ok := processingCategoryByCode[code]; ok {
		return name
	}
	return "Other"
}

// RiskCategory returns the category name for a risk remark code, or
// "Uncategorized" when the code is not categorized.
func RiskCategory(code int) string {
	if name, ok := riskCategoryByCode[code]; ok {
		return name
	}
	return "Uncategorized"
}
