package models

import (
	"time"

	"gorm.io/gorm"
)

// ModelRegistry lists every model handed to AutoMigrate at startup.
var ModelRegistry = []interface{}{
	&Enquiry{},
}

// Enquiry is one admission enquiry form submission. Rows are written exactly
// once at submission time and are never updated or deleted afterwards.
//
// The column order mirrors the enquiries table definition in
// migrations/000001_create_enquiries_table.up.sql and must stay in sync
// with it.
type Enquiry struct {
	ID                    uint      `gorm:"primaryKey"`
	Email                 string    `gorm:"column:email;not null"`
	FullName              string    `gorm:"column:fullName;not null"`
	EnquiryDate           time.Time `gorm:"column:enquiryDate;type:date;not null"`
	ContactNo             string    `gorm:"column:contactNo"`
	ResidentialArea       string    `gorm:"column:residentialArea"`
	ReferencedBy          string    `gorm:"column:referencedBy"`
	AcademicQualification string    `gorm:"column:academicQualification"`
	SSC                   string    `gorm:"column:ssc"`
	SSCPercentage         string    `gorm:"column:sscPercentage"`
	SSCYear               string    `gorm:"column:sscYear"`
	HSCName               string    `gorm:"column:hscName"`
	HSCPercentage         string    `gorm:"column:hscPercentage"`
	HSCYear               string    `gorm:"column:hscYear"`
	GraduateName          string    `gorm:"column:graduateName"`
	GraduatePercentage    string    `gorm:"column:graduatePercentage"`
	GraduateYear          string    `gorm:"column:graduateYear"`
	PostGraduateName      string    `gorm:"column:postGraduateName"`
	PostGraduatePercentage string   `gorm:"column:postGraduatePercentage"`
	PostGraduateYear      string    `gorm:"column:postGraduateYear"`
	OtherCourse           string    `gorm:"column:otherCourse"`
	Remarks               string    `gorm:"column:remarks"`
	CreatedAt             time.Time `gorm:"not null"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

// BeforeUpdate blocks accidental mutation: enquiries are immutable once stored.
func (Enquiry) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrInvalidData
}
