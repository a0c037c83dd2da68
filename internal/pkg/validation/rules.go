package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	StudentIDPattern = `^[A-Za-z0-9_-]{1,32}$`
	CourseIDPattern  = `^[A-Za-z0-9_-]{1,16}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
	CourseID  *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
	CourseID:  regexp.MustCompile(CourseIDPattern),
}

// Custom tag names usable in `binding` and `validate` struct tags
const (
	TagStudentID = "studentid"
	TagCourseID  = "courseid"
)

var (
	standalone     = validator.New()
	standaloneOnce sync.Once
	ginOnce        sync.Once
)

// RegisterRules installs the custom tags and json field naming on v.
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation(TagStudentID, func(fl validator.FieldLevel) bool {
		return CompiledPatterns.StudentID.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagCourseID, func(fl validator.FieldLevel) bool {
		return CompiledPatterns.CourseID.MatchString(fl.Field().String())
	})
}

// RegisterGinRules installs the rules on gin's binding validator once.
func RegisterGinRules() error {
	var err error
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = RegisterRules(v)
		}
	})
	return err
}

// ValidateStudentID checks a bare student id (a path parameter) and returns
// the first validation error, if any.
func ValidateStudentID(id string) error {
	standaloneOnce.Do(func() {
		// the tag names are static, registration cannot fail
		_ = RegisterRules(standalone)
	})
	return standalone.Var(id, "required,"+TagStudentID)
}

// Message renders a human-readable message for a single field error
func Message(e validator.FieldError) string {
	label := fieldLabel(e)
	switch e.Tag() {
	case "required":
		return label + " is required"
	case TagStudentID:
		return label + " must be 1-32 letters, digits, '-' or '_'"
	case TagCourseID:
		return label + " must be 1-16 letters, digits, '-' or '_'"
	case "min":
		return label + " must be at least " + e.Param()
	case "max":
		return label + " must be at most " + e.Param()
	case "oneof":
		return label + " must be one of: " + e.Param()
	default:
		return label + " validation failed: " + e.Tag()
	}
}

func fieldLabel(e validator.FieldError) string {
	switch e.Field() {
	case "studentId":
		return "Student Id"
	case "courseId":
		return "Course Id"
	case "":
		if e.Tag() == TagStudentID {
			return "Student Id"
		}
		return "Value"
	default:
		return e.Field()
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
