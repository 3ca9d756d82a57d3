package taxonomy

// ProcessingRemarks maps DocumentStatusReport2 processing remark codes to
// their upstream descriptions.
var ProcessingRemarks = map[int]string{
	0:    "Authentication tests were successfully completed",
	20:   "One or more authentication tests failed",
	40:   "One or more authentication tests yielded inconclusive results",
	50:   "Authentication tests were performed on only one side of the document",
	55:   "The back side was classified based on barcode recognition",
	60:   "No authentication tests were applicable for this document type; only document data was extracted",
	80:   "Data extraction was performed as per client request",
	100:  "The document has expired",
	120:  "The quality of the document image is too low",
	121:  "The document image is blurry",
	122:  "The document image is too dark",
	123:  "The document image has excessive light exposure",
	124:  "The document image has unacceptable saturation levels",
	130:  "Certain authenticity checks were not completed",
	140:  "The pages of the multi-page document do not match",
	160:  "The processing request was rejected",
	180:  "The document could not be recognized",
	200:  "Multiple quality issues prevented data extraction and authentication",
	220:  "The document is not identified as an ID",
	230:  "The request was denied due to poor image quality",
	250:  "The document is listed as blocked",
	260:  "The document is flagged",
	280:  "A second side is required for this ID type",
	300:  "A second side is not supported for this ID type",
	320:  "The second side was ignored as it is irrelevant to the document",
	340:  "A barcode was expected but could not be extracted due to quality issues",
	360:  "A barcode was expected but could not be decoded",
	380:  "Exception Management was triggered based on a predefined customer rule",
	400:  "The document was processed by Exception Management",
	420:  "Exception Management identified two images in the same file",
	440:  "Exception Management detected that the document is incomplete",
	460:  "Exception Management could not recognize the document or its language",
	480:  "Exception Management identified the document as a black-and-white image",
	500:  "Pages are missing or mismatched",
	520:  "Exception Management detected that the document or its language was destroyed",
	540:  "The document was recognized, but no data was extracted and no authentication tests were performed",
	550:  "The Exception Management request failed",
	560:  "The Exception Management service is unavailable",
	580:  "The Exception Management service timed out",
	600:  "The daily Exception Management quota has been exceeded",
	620:  "Face comparison request was forwarded to Exception Management",
	640:  "Face comparison request was processed by Exception Management",
	660:  "One or more fields could not be read or were partially extracted due to poor readability",
	700:  "The declared country or ID type does not match the uploaded ID",
	720:  "Only BOS results are available because the Exception Management SLA has been exceeded",
	740:  "Exception Management detected that the document is not permitted by the customer",
	760:  "The document is identified as a digital ID; no authentication tests were performed",
	780:  "Personal information fields have been masked per request",
	800:  "Front side missing",
	820:  "No authenticity tests were defined for the document",
	840:  "Manual Inspection detected Document Replay Screen",
	860:  "Manual Inspection detected Document Replay Paper",
	880:  "Manual Inspection detected Document Replay Digital",
	900:  "Manual Face Comparison result superseded NIST Face Comparison result",
	920:  "Face not detected on document",
	930:  "Face not detected on selfie",
	940:  "Identified as Deepfake",
	960:  "Missing Proof Of Address data in user input",
	1440: "Enhanced checks were done by face comparison service",
	1580: "The digital signature has expired",
	1600: "The digital signature is validated",
	1620: "This value is deprecated",
	1640: "The digital signature is bad or broken",
	1660: "The digital signature is unsupported or can not be validated",
	1680: "This value is deprecated",
	1700: "This value is deprecated",
	1720: "Successful data extraction from external vendor",
	1740: "Data extraction from external vendor failed",
	1760: "The digital document is forged",
	1780: "No cryptographic signature to retrieve",
	1800: "Some forgeries prevent manual inspection",
	1820: "The document was processed by Serial Fraud Monitor",
	1840: "Deepfake test was not executed due to poor image quality",
	1860: "Liveness test was not executed due to poor image quality",
	1880: "The photo gender does not match the gender in document",
}

// PrimaryResults maps DocumentStatusReport2.PrimaryProcessingResult codes to
// their descriptions.
var PrimaryResults = map[int]string{
	0:   "The request passed OK.",
	20:  "The request is conditional.",
	40:  "The request failed. Please resubmit the request.",
	60:  "The document is recognized, its data is extracted but no authentication tests were executed.",
	70:  "Request rejected.",
	80:  "Document not recognized.",
	100: "Extremely low quality or NonID image. Please submit a higher quality image or an ID image.",
	120: "The request was forwarded to DoubleCheck.",
}
