package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bookcatalog/internal/profilegen"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to the Mini-Profile Generator!")

	name := prompt(in, "Enter your full name: ")

	var birthYear int
	for {
		raw := prompt(in, "Enter your birth year: ")
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a valid year.")
			continue
		}
		birthYear = v
		break
	}

	var hobbies []string
	for {
		hobby := prompt(in, "Enter a favorite hobby or type 'stop' to finish: ")
		if strings.EqualFold(hobby, "stop") {
			break
		}
		if hobby != "" {
			hobbies = append(hobbies, hobby)
		}
	}

	profile, err := profilegen.New(name, birthYear, time.Now().Year(), hobbies)
	if err != nil {
		log.Fatalf("cannot build profile: %v", err)
	}

	fmt.Println()
	fmt.Println(profile.Render())
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
