package errors

// এরর কোড কনস্ট্যান্ট
// ফরম্যাট: CATEGORY_SPECIFIC_DETAIL
// ফ্রন্টএন্ড এই কোড দেখে ব্যবহারকারীর ভাষায় বার্তা দেখায়

const (
	// ==================== অথেনটিকেশন (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // লগইন প্রয়োজন
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // ভুল ইমেইল/পাসওয়ার্ড
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // টোকেনের মেয়াদ শেষ
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // অবৈধ টোকেন
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // টোকেন বাতিল হয়েছে
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // ইমেইল ইতিমধ্যে আছে
	AuthResetTokenInvalid  = "AUTH_RESET_TOKEN_INVALID" // রিসেট টোকেন অবৈধ/মেয়াদোত্তীর্ণ

	// ==================== অনুমতি (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // অনুমতি নেই
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // রোল তথ্য পাওয়া যায়নি
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // শুধুমাত্র অ্যাডমিন

	// ==================== ভ্যালিডেশন (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // ভুল ইনপুট
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // ভুল আইডি
	ValidationInvalidAge   = "VALIDATION_INVALID_AGE"   // বয়স সার্টিফিকেট নিয়মের বাইরে
	ValidationInvalidDate  = "VALIDATION_INVALID_DATE"  // তারিখ পড়া যায়নি
	ValidationRequired     = "VALIDATION_REQUIRED"      // আবশ্যিক ঘর ফাঁকা

	// ==================== রিসোর্স (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // ডেটা পাওয়া যায়নি
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // ইতিমধ্যে আছে
	ResourceConflict      = "RESOURCE_CONFLICT"       // কনফ্লিক্ট

	// ==================== ডকুমেন্ট/ফাইল (DOCUMENT_) ====================
	DocumentNotFound      = "DOCUMENT_NOT_FOUND"      // ফাইল পাওয়া যায়নি
	DocumentNoBirthDate   = "DOCUMENT_NO_BIRTH_DATE"  // সার্টিফিকেটের জন্য পূর্ণ জন্মতারিখ লাগবে
	DocumentNoCertificate = "DOCUMENT_NO_CERTIFICATE" // ফাইলে সার্টিফিকেট নেই
	DocumentNoBill        = "DOCUMENT_NO_BILL"        // ফাইলে বিদ্যুৎ বিল নেই
	InstitutionNotFound   = "INSTITUTION_NOT_FOUND"   // প্রতিষ্ঠান পাওয়া যায়নি
	ClientNotFound        = "CLIENT_NOT_FOUND"        // ক্লায়েন্ট পাওয়া যায়নি

	// ==================== প্রিন্ট (PRINT_) ====================
	PrintNothingEligible = "PRINT_NOTHING_ELIGIBLE" // নির্বাচিত কোনো ফাইলে এই ডকুমেন্ট নেই
	PrintInvalidKind     = "PRINT_INVALID_KIND"     // ভুল ডকুমেন্ট ধরন

	// ==================== এক্সট্রাকশন (EXTRACT_) ====================
	ExtractInvalidSource  = "EXTRACT_INVALID_SOURCE"   // পিডিএফ পড়া যায়নি
	ExtractThrottled      = "EXTRACT_THROTTLED"        // রেট লিমিট; কিছুক্ষণ পর আবার চেষ্টা করুন
	ExtractFailed         = "EXTRACT_FAILED"           // দুই ধাপেই এক্সট্রাকশন ব্যর্থ
	ExtractSourceNotFound = "EXTRACT_SOURCE_NOT_FOUND" // সংরক্ষিত সোর্স পিডিএফ পাওয়া যায়নি

	// ==================== আপলোড (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // ফাইলের ধরন গ্রহণযোগ্য নয়
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // ফাইল অনেক বড়
	UploadFailed          = "UPLOAD_FAILED"            // আপলোড ব্যর্থ

	// ==================== রিপোর্ট (REPORT_) ====================
	ReportGenerationFailed = "REPORT_GENERATION_FAILED" // রিপোর্ট তৈরি ব্যর্থ

	// ==================== সার্ভার (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // সার্ভার সমস্যা
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // ডেটাবেজ সমস্যা
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // বাইরের সার্ভিস সমস্যা
)
