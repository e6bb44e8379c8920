// Package grades implements the student grade tracker core: rosters,
// averages, reports and top-performer selection.
package grades

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Grade bounds.
const (
	MinGrade = 0
	MaxGrade = 100
)

var (
	// ErrDuplicateStudent is returned when adding a name that is
	// already on the roster.
	ErrDuplicateStudent = errors.New("student already exists")
	// ErrStudentNotFound is returned when a name has no record.
	ErrStudentNotFound = errors.New("student not found")
	// ErrGradeOutOfRange is returned for grades outside [0, 100].
	ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")
	// ErrInvalidName is returned for empty or non-alphabetic names.
	ErrInvalidName = errors.New("invalid student name")
)

// Student is one named record with zero or more grades.
type Student struct {
	Name   string
	Grades []int
}

// Roster keeps students in insertion order with a name lookup on the
// side.
type Roster struct {
	students []*Student
	lookup   map[string]*Student
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{lookup: make(map[string]*Student)}
}

// Len returns the number of students on the roster.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns the records in insertion order.
func (r *Roster) Students() []*Student {
	return r.students
}

// Find returns the student with the given (normalized) name, or
// ErrStudentNotFound.
func (r *Roster) Find(name string) (*Student, error) {
	s, ok := r.lookup[name]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return s, nil
}

// Add normalizes name, validates it and appends a new student record.
func (r *Roster) Add(name string) (*Student, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if _, ok := r.lookup[normalized]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateStudent, normalized)
	}

	s := &Student{Name: normalized}
	r.students = append(r.students, s)
	r.lookup[normalized] = s
	return s, nil
}

// AddGrade appends a grade to an existing student record.
func (r *Roster) AddGrade(name string, grade int) error {
	s, err := r.Find(name)
	if err != nil {
		return err
	}
	if grade < MinGrade || grade > MaxGrade {
		return ErrGradeOutOfRange
	}
	s.Grades = append(s.Grades, grade)
	return nil
}

// HasGrades reports whether any student on the roster has at least one
// grade.
func (r *Roster) HasGrades() bool {
	for _, s := range r.students {
		if len(s.Grades) > 0 {
			return true
		}
	}
	return false
}

// nameRunes are the non-letter characters a name may contain, covering
// the usual dash and apostrophe variants.
const nameRunes = " -‐‑–'ʼ'′"

// NormalizeName trims and validates a raw name, collapses interior
// whitespace and title-cases each word. Names may contain letters plus
// spaces, dashes and apostrophes.
func NormalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !strings.ContainsRune(nameRunes, r) {
			return "", ErrInvalidName
		}
	}

	words := strings.Fields(trimmed)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " "), nil
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	upperNext := true
	for i, r := range runes {
		if upperNext && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			upperNext = false
		} else if !unicode.IsLetter(r) {
			upperNext = true
		}
	}
	return string(runes)
}

// Average returns the mean of grades rounded to one decimal place.
// The boolean is false when there are no grades to average.
func Average(grades []int) (float64, bool) {
	if len(grades) == 0 {
		return 0, false
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return round1(float64(sum) / float64(len(grades))), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
