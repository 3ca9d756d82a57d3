package taxonomy

// RiskRemarks maps risk management remark codes to their upstream
// descriptions.
var RiskRemarks = map[int]string{
	0:    "The Expiry date is overdue.",
	10:   "The Face comparison result has been failed.",
	15:   "The Face comparison result has been overmatched.",
	18:   "The Face comparison result has returned irregular status.",
	20:   "The ID document was detected as Entropy quality.",
	30:   "The ID document was detected as incomplete.",
	40:   "The ID document was detected with bad layout or cut.",
	60:   "The Issue date threshold rule has been exceeded.",
	80:   "The Mandatory 'Address' field is missing.",
	100:  "The Mandatory 'Birth Place' field is missing.",
	120:  "The mandatory 'Coordinates' field value indicates an ID/classified country location issue.",
	140:  "The mandatory 'Coordinates' field value indicates a picture location issue.",
	150:  "The Mandatory 'Date of Birth' field is missing.",
	160:  "The Mandatory 'Date of Expiry' field is missing.",
	180:  "The Mandatory 'Date of Issue' field is missing.",
	200:  "The Mandatory 'Document Number' field is missing.",
	220:  "The mandatory 'EquipmentMaker' field is missing.",
	240:  "The mandatory 'EquipmentMaker' field value indicates an equipment maker issue.",
	260:  "The mandatory 'EquipmentModel' field is missing.",
	280:  "The mandatory 'EquipmentModel' field value indicates an equipment model issue.",
	300:  "The Mandatory 'First Name' field is missing.",
	320:  "The Mandatory 'Full Name' field is missing.",
	340:  "The mandatory 'ImageCreationDateTime' field is missing.",
	360:  "The mandatory 'ImageCreationDateTime' field value indicates an image creation datetime issue.",
	380:  "The Mandatory 'Last Name' field is missing.",
	400:  "The Mandatory 'Middle Name' field is missing.",
	420:  "The Mandatory 'Nationality' field is missing.",
	440:  "The mandatory 'SoftwareUsed' field is missing.",
	460:  "The mandatory 'SoftwareUsed' field value indicates a software usage issue.",
	470:  "The 'Nationality' country code restriction rule has been activated.",
	480:  "The OCR confidence of the 'Address' field is low.",
	500:  "The OCR confidence of the 'Birth Place' field is low.",
	510:  "The OCR confidence of the 'Date of Birth' field is low.",
	520:  "The OCR confidence of the 'Date of Expiry' field is low.",
	540:  "The OCR confidence of the 'Date of Issue' field is low.",
	560:  "The OCR confidence of the 'Document Number' field is low.",
	580:  "The OCR confidence of the 'First Name' field is low.",
	600:  "The OCR confidence of the 'Last Name' field is low.",
	620:  "The OCR confidence of the 'Full Name' field is low.",
	640:  "The OCR confidence of the 'Middle Name' field is low.",
	660:  "The OCR confidence of the 'Nationality' field is low.",
	665:  "The Primary result has been changed due to liveness detection code rule in Policy Management.",
	670:  "The Remark code threshold rule in Profile Manager has been activated.",
	680:  "The 'Publicly Exposed Document' field value indicates a publicly exposed document issue.",
	700:  "The image size of the ID document is below the threshold.",
	720:  "The document was rejected because it is not in the predefined White List.",
	730:  "The document is in the predefined block list.",
	740:  "The visual text confidence of the ID document is low, please consider recapturing the image.",
	750:  "Instinct risk flag of repeating document data. When there is one or more repetition value that exceeds the threshold.",
	760:  "Instinct risk flag of conflicting document data. When there is one or more conflicts.",
	770:  "Instinct risk flag of repeating and conflicting document data. When there is one or more repetition value that exceeds the threshold and there is one or more conflicts.",
	780:  "Proof of address: names compare do not match",
	820:  "Calculated age is higher than risk threshold",
	830:  "Calculated age is lower than risk threshold",
	840:  "Selfie estimated age is higher than calculated age",
	850:  "Selfie estimated age is lower than calculated age",
	860:  "Primary photo was not detected on either side",
	870:  "The unexpected image corners indicator has been activated",
	880:  "The Mandatory 'Gender' field is missing.",
	890:  "The OCR confidence of the 'Gender' field is low.",
	900:  "The 'OptionalData' field is missing.",
	910:  "The OCR confidence of the 'OptionalData' field is low.",
	920:  "Instinct risk flag of Attack Info is activated for the SeenThatDocumentNumber category.",
	930:  "Instinct risk flag of Attack Info is activated for the SeenThatFacePicture category.",
	940:  "Instinct risk flag of Attack Info is activated for the SeenThatImageTemplate category.",
	950:  "Instinct risk flag of Attack Info is activated for the SeenThatPerson category.",
	960:  "The image was detected as Black and White ID and failed Profile Manager threshold.",
	970:  "Proof of address name match rule has been activated.",
	980:  "Proof of address match rule has been activated.",
	990:  "Proof of address valid date rule has been activated.",
	1000: "Instinct customer reported risk flag match.",
	1010: "Instinct risk flag of publicly exposed matched documents.",
	1020: "Personal information comparison status for country is 'not match'.",
	1030: "Personal information comparison status for date of birth is 'not match'.",
	1040: "Personal information comparison status for date of expiry is 'not match'.",
	1050: "Personal information comparison status for date of issue is 'not match'.",
	1060: "Personal information comparison status for document number is 'not match'.",
	1070: "Personal information comparison status for full name is 'not match'.",
	1080: "Personal information comparison status for personal number is 'not match'.",
	1085: "Personal information comparison status for registry code is 'not match'.",
	1090: "Selfie's estimated age is higher than the risk threshold.",
	1100: "Selfie's estimated age is lower than the risk threshold.",
	1110: "Document replay has detected an unauthorized capture type.",
	1120: "Photo gender validation has failed.",
	1130: "Selfie gender validation has failed.",
	1140: "The image DPI is below the risk threshold.",
	1150: "The cropped image height is below the risk threshold.",
	1160: "The cropped image width is below the risk threshold.",
	1170: "The cropped image jpeg compression is below the risk threshold.",
	1180: "Instinct risk flag of attack info is activated for seen that back side.",
	1190: "Instinct risk flag of attack info is activated for seen that selfie.",
	1200: "Unauthorized country detected by reverse geocoding risk rule.",
	1210: "Primary result has been changed because liveness check failed or was not requested.",
	1220: "Instinct risk flag of attack info is activated for seen that email.",
	1230: "Instinct risk flag of attack info is activated for seen that IP.",
	1240: "Instinct risk flag of attack info is activated for seen that phone.",
	1250: "Instinct risk flag of attack info is activated for seen that profile.",
	1260: "Instinct risk flag of attack info is activated for seen that user name.",
	1270: "The jpeg compression of the ID document is below the threshold.",
	1280: "Chip existence check failed.",
	1290: "The number of repetitions within the special period detected by instinct exceeds the threshold.",
	1300: "Driver license type check failure.",
	1310: "Video verification mismatch.",
	1320: "The MRZ text confidence of the ID document is low, please consider recapturing the image..",
	1330: "Non Proof of address",
	1340: "Document incomplete",
	1350: "Mandatory Personal Number field is missing",
	1360: "Ocr confidence of the Personal Number field is low",
	1370: "PII verification did not yield a matching result",
	1380: "Personal information comparison status for birth place is 'not match'.",
	1390: "Personal information comparison status for mother name is 'not match'.",
	1400: "Personal information comparison status for alternate name is 'not match'.",
	1410: "Identified as Deepfake.",
	1420: "Primary result changed due to VisaType check failure.",
	1430: "More than one word in FullName ignored.",
	1440: "The Mandatory 'Full Name Local' field is missing.",
	1450: "The OCR confidence of the 'Full Name Local' field is low.",
	1460: "Personal information comparison status for nationality is 'not match'.",
	1470: "Instinct risk flag of attack info is activated for seen that selfie background",
	1480: "Injection detected in secure selfie capture",
	1490: "Instinct risk flag of attack info is activated for seen that signature",
}
