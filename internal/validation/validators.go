package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jonathan/cv-builder/internal/types"
)

// Publication years outside this range are rejected.
const (
	MinPublicationYear = 1900
	MaxPublicationYear = 2030
)

// Domain check messages.
const (
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgInvalidYearRange = "Start year cannot be greater than end year"
	MsgInvalidPubYear   = "Please enter a valid publication year"
	MsgNegativeYear     = "Years cannot be negative"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Field names in errors come from the label tag so messages read "Full Name is required".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return v
}

// required runs the struct tags and renders each failure as "<Label> is required",
// in field declaration order.
func required(entry any) []string {
	messages := []string{}
	err := validate.Struct(entry)
	if err == nil {
		return messages
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(messages, err.Error())
	}
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
	}
	return messages
}

// ValidatePersonalInfo checks the header record.
func ValidatePersonalInfo(p types.PersonalInfo) []string {
	messages := required(p)
	// a blank email is reported both as missing and as malformed
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		messages = append(messages, MsgInvalidEmail)
	}
	return messages
}

// ValidateEducation checks required fields, that neither year is negative and
// that the start year does not follow the end year.
func ValidateEducation(e types.EducationEntry) []string {
	messages := required(e)
	if e.StartYear < 0 || e.EndYear < 0 {
		messages = append(messages, MsgNegativeYear)
	}
	if e.StartYear != 0 && e.EndYear != 0 && e.StartYear > e.EndYear {
		messages = append(messages, MsgInvalidYearRange)
	}
	return messages
}

// ValidateExperience checks required fields.
func ValidateExperience(e types.ExperienceEntry) []string {
	return required(e)
}

// ValidateProject checks required fields.
func ValidateProject(p types.ProjectEntry) []string {
	return required(p)
}

// ValidatePublication checks required fields and the year bound. A missing year
// is reported once, as missing.
func ValidatePublication(p types.PublicationEntry) []string {
	messages := required(p)
	if p.Year != 0 && (p.Year < MinPublicationYear || p.Year > MaxPublicationYear) {
		messages = append(messages, MsgInvalidPubYear)
	}
	return messages
}

// ValidateCertification checks required fields. Expiry before issue is accepted.
func ValidateCertification(c types.CertificationEntry) []string {
	return required(c)
}

// ValidateAward checks required fields.
func ValidateAward(a types.AwardEntry) []string {
	return required(a)
}

// ValidateDocument runs every validator over a whole document and prefixes each
// message with where it was found, e.g. "education[1]: Degree is required".
func ValidateDocument(doc *types.CVDocument) []string {
	var out []string
	add := func(where string, messages []string) {
		for _, m := range messages {
			out = append(out, where+": "+m)
		}
	}

	add("personal_info", ValidatePersonalInfo(doc.PersonalInfo))
	for i, e := range doc.Education {
		add(fmt.Sprintf("education[%d]", i), ValidateEducation(e))
	}
	for i, e := range doc.Experience {
		add(fmt.Sprintf("experience[%d]", i), ValidateExperience(e))
	}
	for i, p := range doc.Projects {
		add(fmt.Sprintf("projects[%d]", i), ValidateProject(p))
	}
	for i, p := range doc.Publications {
		add(fmt.Sprintf("publications[%d]", i), ValidatePublication(p))
	}
	for i, c := range doc.Certifications {
		add(fmt.Sprintf("certifications[%d]", i), ValidateCertification(c))
	}
	for i, a := range doc.Awards {
		add(fmt.Sprintf("awards[%d]", i), ValidateAward(a))
	}
	return out
}
