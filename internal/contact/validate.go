package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Length and range limits for field values.
const (
	MaxTextLength    = 100
	MinNameLength    = 2
	MinAddressLength = 5
	PhoneLength      = 11
	PhonePrefix      = "09"
	MinBirthYear     = 1900
	MaxBirthYear     = 2025
)

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	birthdatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// FieldError reports a value that failed its field rule.
type FieldError struct {
	Field   Field
	Message string
	Rule    string // failing validator tag, e.g. "min" or "ddmmyyyy"
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("contact: invalid %s: %s", e.Field, e.Message)
}

// Validation tags registered on the package validator.
const (
	tagNameText  = "contact_name"
	tagEmail     = "contact_email"
	tagBirthdate = "ddmmyyyy"
)

// rules maps each field to its validator tag.
var rules = map[Field]string{
	FieldName:      fmt.Sprintf("min=%d,max=%d,%s", MinNameLength, MaxTextLength, tagNameText),
	FieldPhone:     fmt.Sprintf("len=%d,startswith=%s,number", PhoneLength, PhonePrefix),
	FieldEmail:     tagEmail,
	FieldAddress:   fmt.Sprintf("min=%d,max=%d", MinAddressLength, MaxTextLength),
	FieldBirthdate: tagBirthdate,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		tagNameText:  func(fl validator.FieldLevel) bool { return isNameText(fl.Field().String()) },
		tagEmail:     func(fl validator.FieldLevel) bool { return emailPattern.MatchString(fl.Field().String()) },
		tagBirthdate: func(fl validator.FieldLevel) bool { return isLooseDate(fl.Field().String()) },
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("contact: registering %s: %v", tag, err))
		}
	}
	return v
}

// IsValidName accepts 2 to 100 characters made only of ASCII letters and spaces.
func IsValidName(name string) bool { return FieldName.Valid(name) }

// IsValidPhone accepts exactly 11 digits beginning with "09".
func IsValidPhone(phone string) bool { return FieldPhone.Valid(phone) }

// IsValidEmail accepts a simple local@domain.tld address.
func IsValidEmail(email string) bool { return FieldEmail.Valid(email) }

// IsValidAddress accepts 5 to 100 characters of any content.
func IsValidAddress(address string) bool { return FieldAddress.Valid(address) }

// IsValidBirthdate accepts DD/MM/YYYY with month 1-12, day 1-31 and year
// 1900-2025. Days are not checked against the month, so 31/02/2000 and
// 29/02/2021 both pass.
func IsValidBirthdate(date string) bool { return FieldBirthdate.Valid(date) }

// Valid reports whether v satisfies the rule for field f.
func (f Field) Valid(v string) bool {
	return Validate(f, v) == nil
}

// Message returns the user-facing explanation of the rule for field f.
func (f Field) Message() string {
	switch f {
	case FieldName:
		return fmt.Sprintf("Name must be between %d and %d characters.\nName must contain only letters and spaces.",
			MinNameLength, MaxTextLength)
	case FieldPhone:
		return "Phone number must be 11 digits starting with '09' (e.g., 09244561530)"
	case FieldEmail:
		return "Invalid email format. Example: user@domain.com"
	case FieldAddress:
		return fmt.Sprintf("Address must be between %d and %d characters.", MinAddressLength, MaxTextLength)
	case FieldBirthdate:
		return "Birthdate must be in format: DD/MM/YYYY"
	default:
		return "Unknown field."
	}
}

// Validate returns a *FieldError if v does not satisfy the rule for f.
// Rule names the first validator tag that failed.
func Validate(f Field, v string) error {
	rule, ok := rules[f]
	if !ok {
		return &FieldError{Field: f, Message: f.Message()}
	}
	err := validate.Var(v, rule)
	if err == nil {
		return nil
	}
	fe := &FieldError{Field: f, Message: f.Message()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe.Rule = verrs[0].Tag()
	}
	return fe
}

// isNameText reports whether s holds only ASCII letters and spaces.
func isNameText(s string) bool {
	for _, r := range s {
		if r != ' ' && !isASCIILetter(r) {
			return false
		}
	}
	return true
}

// isLooseDate checks DD/MM/YYYY ranges without month lengths or leap years.
func isLooseDate(date string) bool {
	m := birthdatePattern.FindStringSubmatch(date)
	if m == nil {
		return false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return year >= MinBirthYear && year <= MaxBirthYear
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
