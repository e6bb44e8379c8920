package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bookcatalog/internal/grades"
)

const menu = `
    --- Student Grade Analyzer ---
    1. Add a new student
    2. Add grades for a student
    3. Generate a full report
    4. Find the top student
    5. Exit program
    Enter your choice: `

func main() {
	roster := grades.NewRoster()
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menu)
		if !in.Scan() {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("\n    Please enter a valid option.")
			continue
		}

		switch choice {
		case 1:
			addStudent(in, roster)
		case 2:
			addGrades(in, roster)
		case 3:
			printReport(roster)
		case 4:
			printTopPerformer(roster)
		case 5:
			fmt.Println("\n    Exiting program...")
			return
		default:
			fmt.Println("\n    Please enter a valid option.")
		}
	}
}

// promptName keeps asking until a valid name is entered. It returns
// false when the user typed '1' to go back to the menu.
func promptName(in *bufio.Scanner) (string, bool) {
	for {
		fmt.Print("    Enter student name (or '1' to return to main menu): ")
		if !in.Scan() {
			return "", false
		}
		raw := strings.TrimSpace(in.Text())

		if raw == "" {
			fmt.Println("    Name cannot be empty.")
			continue
		}
		if raw == "1" {
			return "", false
		}

		name, err := grades.NormalizeName(raw)
		if err != nil {
			fmt.Println("    Please enter a valid name.")
			continue
		}
		return name, true
	}
}

func addStudent(in *bufio.Scanner, roster *grades.Roster) {
	name, ok := promptName(in)
	if !ok {
		return
	}

	if _, err := roster.Add(name); err != nil {
		if errors.Is(err, grades.ErrDuplicateStudent) {
			fmt.Printf("\n    Student '%s' already exists.\n", name)
			return
		}
		fmt.Println("    Please enter a valid name.")
		return
	}
	fmt.Printf("\n    Student '%s' added successfully.\n", name)
}

func addGrades(in *bufio.Scanner, roster *grades.Roster) {
	if roster.Len() == 0 {
		fmt.Println("\n    No students are present in the records yet.")
		return
	}

	name, ok := promptName(in)
	if !ok {
		return
	}
	if _, err := roster.Find(name); err != nil {
		fmt.Println("\n    Student not found.")
		return
	}

	for {
		fmt.Print("    Enter a grade (or 'done' to finish): ")
		if !in.Scan() {
			return
		}
		raw := strings.TrimSpace(in.Text())
		if strings.EqualFold(raw, "done") {
			return
		}

		grade, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("    Invalid input. Please enter a number between 0 and 100.")
			continue
		}
		if err := roster.AddGrade(name, grade); err != nil {
			fmt.Println("    Invalid grade. Please enter a number between 0 and 100.")
			continue
		}
		fmt.Printf("    Grade '%d' added.\n", grade)
	}
}

func printReport(roster *grades.Roster) {
	if roster.Len() == 0 {
		fmt.Println("\n    No students are present in the records yet.")
		return
	}

	report, ok := grades.BuildReport(roster)
	if !ok {
		fmt.Println("\n    No grades are present in the records yet.")
		return
	}

	fmt.Println("\n    --- Report ---")
	for _, sa := range report.Averages {
		if sa.Graded {
			fmt.Printf("    %s's average grade is %.1f.\n", sa.Name, sa.Average)
		} else {
			fmt.Printf("    %s's average grade is N/A.\n", sa.Name)
		}
	}
	fmt.Println("    --------------------------")
	fmt.Printf("    Max Average: %.1f\n", report.Max)
	fmt.Printf("    Min Average: %.1f\n", report.Min)
	fmt.Printf("    Overall Average: %.1f\n", report.Overall)
}

func printTopPerformer(roster *grades.Roster) {
	if roster.Len() == 0 {
		fmt.Println("\n    No students are present in the records yet.")
		return
	}

	names, top, ok := grades.TopPerformers(roster)
	if !ok {
		fmt.Println("\n    No grades are present in the records yet.")
		return
	}

	if len(names) == 1 {
		fmt.Printf("\n    The student with the highest average is %s with a grade of '%.1f'.\n", names[0], top)
		return
	}
	fmt.Printf("\n    The students with the highest average grade of '%.1f' are: %s\n", top, grades.JoinNames(names))
}
