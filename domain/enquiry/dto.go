package enquiry

import (
	"time"

	"github.com/akeren/enquiry-portal/internal/models"
	"github.com/akeren/enquiry-portal/internal/web"
	"github.com/akeren/enquiry-portal/pkg/constants"
)

// EnquiryInput is the typed form payload for a submission. Field names match
// the HTML form controls; only the contact essentials are mandatory, every
// academic history field is optional.
type EnquiryInput struct {
	Email                  string    `form:"email" binding:"required,email,max=255"`
	FullName               string    `form:"fullName" binding:"required,min=1,max=255"`
	EnquiryDate            time.Time `form:"enquiryDate" time_format:"2006-01-02" binding:"required"`
	ContactNo              string    `form:"contactNo" binding:"omitempty,max=32"`
	ResidentialArea        string    `form:"residentialArea" binding:"omitempty,max=255"`
	ReferencedBy           string    `form:"referencedBy" binding:"omitempty,max=255"`
	AcademicQualification  string    `form:"academicQualification" binding:"omitempty,max=255"`
	SSC                    string    `form:"ssc" binding:"omitempty,max=255"`
	SSCPercentage          string    `form:"sscPercentage" binding:"omitempty,max=32"`
	SSCYear                string    `form:"sscYear" binding:"omitempty,max=16"`
	HSCName                string    `form:"hscName" binding:"omitempty,max=255"`
	HSCPercentage          string    `form:"hscPercentage" binding:"omitempty,max=32"`
	HSCYear                string    `form:"hscYear" binding:"omitempty,max=16"`
	GraduateName           string    `form:"graduateName" binding:"omitempty,max=255"`
	GraduatePercentage     string    `form:"graduatePercentage" binding:"omitempty,max=32"`
	GraduateYear           string    `form:"graduateYear" binding:"omitempty,max=16"`
	PostGraduateName       string    `form:"postGraduateName" binding:"omitempty,max=255"`
	PostGraduatePercentage string    `form:"postGraduatePercentage" binding:"omitempty,max=32"`
	PostGraduateYear       string    `form:"postGraduateYear" binding:"omitempty,max=16"`
	OtherCourse            string    `form:"otherCourse" binding:"omitempty,max=255"`
	Remarks                string    `form:"remarks" binding:"omitempty,max=2000"`
}

// ========================================
// Mappers
// ========================================

func ToEnquiryModel(input *EnquiryInput) *models.Enquiry {
	if input == nil {
		return nil
	}
	return &models.Enquiry{
		Email:                  input.Email,
		FullName:               input.FullName,
		EnquiryDate:            input.EnquiryDate,
		ContactNo:              input.ContactNo,
		ResidentialArea:        input.ResidentialArea,
		ReferencedBy:           input.ReferencedBy,
		AcademicQualification:  input.AcademicQualification,
		SSC:                    input.SSC,
		SSCPercentage:          input.SSCPercentage,
		SSCYear:                input.SSCYear,
		HSCName:                input.HSCName,
		HSCPercentage:          input.HSCPercentage,
		HSCYear:                input.HSCYear,
		GraduateName:           input.GraduateName,
		GraduatePercentage:     input.GraduatePercentage,
		GraduateYear:           input.GraduateYear,
		PostGraduateName:       input.PostGraduateName,
		PostGraduatePercentage: input.PostGraduatePercentage,
		PostGraduateYear:       input.PostGraduateYear,
		OtherCourse:            input.OtherCourse,
		Remarks:                input.Remarks,
	}
}

func ToEnquiryRow(enquiry *models.Enquiry) web.EnquiryRow {
	if enquiry == nil {
		return web.EnquiryRow{}
	}
	return web.EnquiryRow{
		ID:                    enquiry.ID,
		Email:                 enquiry.Email,
		FullName:              enquiry.FullName,
		EnquiryDate:           enquiry.EnquiryDate.Format(constants.EnquiryDateFormat),
		ContactNo:             enquiry.ContactNo,
		ResidentialArea:       enquiry.ResidentialArea,
		ReferencedBy:          enquiry.ReferencedBy,
		AcademicQualification: enquiry.AcademicQualification,
		OtherCourse:           enquiry.OtherCourse,
		Remarks:               enquiry.Remarks,
	}
}
