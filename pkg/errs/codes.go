package errs

import (
	"fmt"
	"strings"
)

// Codes of the coded errors, usable as errors.Is targets through the Kind* values.
const (
	CodeFileRead     = "ERR::FIL::RD"
	CodeJSONMarshal  = "ERR::JSON::MAR"
	CodeAPIStatus    = "ERR::API::STATUS"
	CodeProfileParse = "ERR::PRF::PARSE"
	CodeConfig       = "ERR::CNF::FLD::VLD"
)

// Kind values match any error of the same code with errors.Is.
var (
	KindFileRead     = Err{Code: CodeFileRead}
	KindJSONMarshal  = Err{Code: CodeJSONMarshal}
	KindAPIStatus    = Err{Code: CodeAPIStatus}
	KindProfileParse = Err{Code: CodeProfileParse}
)

// ErrFileRead function returns err with code "ERR::FIL::RD"
func ErrFileRead(path string, err error) Err {
	return Err{
		Code:    CodeFileRead,
		Message: fmt.Sprintf("Unable to read file %s :  %v", path, err),
		cause:   err,
	}
}

// ERR_JSON_MAR function returns error with code "ERR::JSON::MAR"
func ERR_JSON_MAR(err error) Err {
	return Err{
		Code:    CodeJSONMarshal,
		Message: fmt.Sprintf("Error marshaling JSON:  \n%v", err),
		cause:   err,
	}
}

// ErrAPIStatus function returns error with code "ERR::API::STATUS"
func ErrAPIStatus(status int, body string) Err {
	return Err{
		Code:    CodeAPIStatus,
		Message: fmt.Sprintf("non OK status %d: %s", status, body),
	}
}

// ErrProfileParse function returns error with code "ERR::PRF::PARSE"
func ErrProfileParse(path string, err error) Err {
	return Err{
		Code:    CodeProfileParse,
		Message: fmt.Sprintf("Unable to parse coverage profile %s :  %v", path, err),
		cause:   err,
	}
}

// ERR_VLD_CFG function return error with code ERR::CNF::FLD::VLD
func ERR_VLD_CFG(errs []string) Err {
	return Err{
		Code:    CodeConfig,
		Message: fmt.Sprintf("Validation errors :  \n%s", strings.Join(errs, "\n"))}
}
