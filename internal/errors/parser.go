package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo পার্স করা এররের তথ্য
type ErrorInfo struct {
	Code    string // এরর কোড (codes.go দেখুন)
	Message string // ব্যবহারকারীর জন্য বার্তা
}

// ParseError gorm/postgres এরর পার্স করে ব্যবহারকারীর জন্য কোড ও বার্তা বানায়।
// সংবেদনশীল তথ্য লুকিয়ে রেখে ব্যবহারকারী যেন সমস্যা বুঝতে পারে সেই তথ্য দেয়।
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "সার্ভারে সমস্যা হয়েছে",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM রেকর্ড নেই
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL constraint এরর

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr, context)
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return parseNotNullError(errStr)
	}

	// 3. নেটওয়ার্ক/কানেকশন এরর
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "বাইরের সার্ভিসে সংযোগ ব্যর্থ। কিছুক্ষণ পর আবার চেষ্টা করুন",
		}
	}

	// 4. ডিফল্ট সার্ভার এরর
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// parseDuplicateKeyError unique constraint ভঙ্গের এরর পার্স করে
func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// ইমেইল ডুপ্লিকেট
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "এই ইমেইল দিয়ে ইতিমধ্যে অ্যাকাউন্ট খোলা হয়েছে",
		}
	}

	// প্রতিষ্ঠানের EIIN ডুপ্লিকেট
	if strings.Contains(errLower, "eiin") || strings.Contains(errLower, "idx_institutions_eiin") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "এই EIIN নম্বরের প্রতিষ্ঠান ইতিমধ্যে যোগ করা আছে",
		}
	}

	// ফাইল নম্বর ডুপ্লিকেট
	if strings.Contains(errLower, "file_no") || strings.Contains(errLower, "idx_documents_file_no") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "এই ফাইল নম্বর ইতিমধ্যে ব্যবহার হয়েছে",
		}
	}

	// একটি ফাইলে একটিই সার্টিফিকেট/বিল
	if strings.Contains(errLower, "document_id") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "এই ফাইলে এই ডকুমেন্ট ইতিমধ্যে আছে",
		}
	}

	// Primary key ডুপ্লিকেট
	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "ডেটা ইতিমধ্যে আছে। আবার চেষ্টা করুন",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "ডেটা ইতিমধ্যে আছে",
	}
}

// parseForeignKeyError foreign key constraint ভঙ্গের এরর পার্স করে
func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// রেফারেন্স থাকা অবস্থায় ডিলিট
	if strings.Contains(errLower, "still referenced") || strings.Contains(errLower, "is still referenced by") {
		if strings.Contains(context, "institution") || strings.Contains(context, "প্রতিষ্ঠান") {
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "প্রতিষ্ঠানটির নামে সার্টিফিকেট থাকায় মুছে ফেলা যাচ্ছে না",
			}
		}
		if strings.Contains(context, "client") || strings.Contains(context, "ক্লায়েন্ট") {
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "ক্লায়েন্টের নামে ফাইল থাকায় মুছে ফেলা যাচ্ছে না",
			}
		}
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "সংযুক্ত ডেটা থাকায় মুছে ফেলা যাচ্ছে না",
		}
	}

	// রেফারেন্স করা ডেটা নেই
	if strings.Contains(errLower, "institution_id") {
		return ErrorInfo{
			Code:    InstitutionNotFound,
			Message: "প্রতিষ্ঠানটি পাওয়া যায়নি",
		}
	}
	if strings.Contains(errLower, "client_id") {
		return ErrorInfo{
			Code:    ClientNotFound,
			Message: "ক্লায়েন্টটি পাওয়া যায়নি",
		}
	}
	if strings.Contains(errLower, "document_id") {
		return ErrorInfo{
			Code:    DocumentNotFound,
			Message: "ফাইলটি পাওয়া যায়নি",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "রেফারেন্স করা ডেটা পাওয়া যায়নি",
	}
}

// parseNotNullError not null constraint ভঙ্গের এরর পার্স করে
func parseNotNullError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: ValidationRequired, Message: "ইমেইল আবশ্যক"}
	}
	if strings.Contains(errLower, "password") {
		return ErrorInfo{Code: ValidationRequired, Message: "পাসওয়ার্ড আবশ্যক"}
	}
	if strings.Contains(errLower, "name") {
		return ErrorInfo{Code: ValidationRequired, Message: "নাম আবশ্যক"}
	}

	return ErrorInfo{
		Code:    ValidationRequired,
		Message: "আবশ্যিক ঘর ফাঁকা রাখা যাবে না",
	}
}

// getNotFoundMessage context অনুযায়ী not found বার্তা
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "document") || strings.Contains(contextLower, "ফাইল") {
		return "ফাইলটি পাওয়া যায়নি"
	}
	if strings.Contains(contextLower, "institution") || strings.Contains(contextLower, "প্রতিষ্ঠান") {
		return "প্রতিষ্ঠানটি পাওয়া যায়নি"
	}
	if strings.Contains(contextLower, "client") || strings.Contains(contextLower, "ক্লায়েন্ট") {
		return "ক্লায়েন্টটি পাওয়া যায়নি"
	}
	if strings.Contains(contextLower, "user") || strings.Contains(contextLower, "ব্যবহারকারী") {
		return "ব্যবহারকারী পাওয়া যায়নি"
	}
	if strings.Contains(contextLower, "certificate") || strings.Contains(contextLower, "সার্টিফিকেট") {
		return "সার্টিফিকেট পাওয়া যায়নি"
	}
	if strings.Contains(contextLower, "bill") || strings.Contains(contextLower, "বিল") {
		return "বিদ্যুৎ বিল পাওয়া যায়নি"
	}

	return "ডেটা পাওয়া যায়নি"
}

// getDefaultErrorMessage context অনুযায়ী ডিফল্ট এরর বার্তা
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "তৈরি") {
		return "সংরক্ষণের সময় সমস্যা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন"
	}
	if strings.Contains(contextLower, "update") || strings.Contains(contextLower, "সংশোধন") {
		return "সংশোধনের সময় সমস্যা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন"
	}
	if strings.Contains(contextLower, "delete") || strings.Contains(contextLower, "মুছে") {
		return "মুছে ফেলার সময় সমস্যা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন"
	}

	return "সার্ভারে সমস্যা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন"
}

// ParseAndRespond এরর পার্স করে সরাসরি রেসপন্স পাঠায়
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
