// Package profilegen builds the mini profile summary: name, age, life
// stage and hobbies.
package profilegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFutureBirthYear is returned when the birth year is after the
// reference year.
var ErrFutureBirthYear = errors.New("birth year is in the future")

// LifeStage buckets an age into a coarse label.
type LifeStage string

const (
	Child    LifeStage = "Child"
	Teenager LifeStage = "Teenager"
	Adult    LifeStage = "Adult"
)

// StageOf returns the life stage for an age: Child up to 12, Teenager
// 13 through 19, Adult from 20.
func StageOf(age int) LifeStage {
	switch {
	case age <= 12:
		return Child
	case age <= 19:
		return Teenager
	default:
		return Adult
	}
}

// Profile is a generated user profile.
type Profile struct {
	Name    string
	Age     int
	Stage   LifeStage
	Hobbies []string
}

// New derives a profile from a name, a birth year and the current
// year.
func New(name string, birthYear, currentYear int, hobbies []string) (Profile, error) {
	if birthYear > currentYear {
		return Profile{}, ErrFutureBirthYear
	}
	age := currentYear - birthYear
	return Profile{
		Name:    name,
		Age:     age,
		Stage:   StageOf(age),
		Hobbies: hobbies,
	}, nil
}

// Render formats the profile summary for console output.
func (p Profile) Render() string {
	var b strings.Builder
	b.WriteString("---\nProfile Summary:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Life Stage: %s\n", p.Stage)

	if len(p.Hobbies) == 0 {
		b.WriteString("You didn't mention any hobbies.\n")
	} else {
		fmt.Fprintf(&b, "Favorite Hobbies (%d):\n", len(p.Hobbies))
		for _, h := range p.Hobbies {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	b.WriteString("---")
	return b.String()
}
