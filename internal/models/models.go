package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Supported course languages.
const (
	LanguageTurkish = "Turkish"
	LanguageEnglish = "English"
)

// Course proficiency levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Weekdays accepted in a course schedule.
var Weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

type Course struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	Title           string         `json:"title" gorm:"not null"`
	Language        string         `json:"language" gorm:"size:16;not null"`
	Level           string         `json:"level" gorm:"size:16;not null"`
	Description     string         `json:"description" gorm:"type:text"`
	Duration        int            `json:"duration"` // minutes per session
	Price           int            `json:"price"`    // smallest currency unit
	Schedule        pq.StringArray `json:"schedule" gorm:"type:text[]"`
	MaxStudents     int            `json:"maxStudents"`
	CurrentStudents int            `json:"currentStudents"`
	IsActive        bool           `json:"isActive" gorm:"default:true"`
	TeacherID       *string        `json:"teacherId,omitempty" gorm:"size:36;index"`
	AvailableSlots  int            `json:"availableSlots" gorm:"-"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Course) AfterFind(tx *gorm.DB) error {
	c.ComputeAvailableSlots()
	return nil
}

func (c *Course) ComputeAvailableSlots() {
	c.AvailableSlots = c.MaxStudents - c.CurrentStudents
	if c.AvailableSlots < 0 {
		c.AvailableSlots = 0
	}
}

// Bookable reports whether the course can accept a new booking.
func (c *Course) Bookable() bool {
	return c.IsActive && c.MaxStudents-c.CurrentStudents > 0
}

type Booking struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	StudentName    string    `json:"studentName" gorm:"not null"`
	StudentEmail   string    `json:"studentEmail" gorm:"not null"`
	StudentPhone   string    `json:"studentPhone"`
	CourseID       string    `json:"courseId" gorm:"size:36;index;not null"`
	Course         *Course   `json:"-" gorm:"foreignKey:CourseID"`
	CourseTitle    string    `json:"courseTitle,omitempty" gorm:"-"`
	CourseLanguage string    `json:"courseLanguage,omitempty" gorm:"-"`
	CourseLevel    string    `json:"courseLevel,omitempty" gorm:"-"`
	Date           string    `json:"date" gorm:"size:10"` // YYYY-MM-DD
	Time           string    `json:"time" gorm:"size:5"`  // HH:MM
	Message        string    `json:"message,omitempty" gorm:"type:text"`
	Status         string    `json:"status" gorm:"size:16;not null;default:'pending'"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// AfterFind copies display fields from the preloaded course.
func (b *Booking) AfterFind(tx *gorm.DB) error {
	if b.Course != nil {
		b.CourseTitle = b.Course.Title
		b.CourseLanguage = b.Course.Language
		b.CourseLevel = b.Course.Level
	}
	return nil
}

type Testimonial struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	StudentName string `json:"studentName" gorm:"not null"`
	Course      string `json:"course"` // course name as free text, not a foreign key
	Rating      int    `json:"rating"`
	Comment     string `json:"comment" gorm:"type:text"`
	Date        string `json:"date" gorm:"size:10"`
	IsApproved  bool   `json:"isApproved" gorm:"default:false;index"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"type:text"`
	IsRead    bool      `json:"isRead" gorm:"default:false;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type Teacher struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Bio             string         `json:"bio" gorm:"type:text"`
	Specializations pq.StringArray `json:"specializations" gorm:"type:text[]"`
	Experience      int            `json:"experience"` // years
	Rating          float64        `json:"rating"`
	ProfileImage    string         `json:"profileImage"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type AdminUser struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"size:16;default:'admin'"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
