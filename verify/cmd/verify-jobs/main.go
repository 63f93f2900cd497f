package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sarchlab/sysmac/job"
	"github.com/sarchlab/sysmac/verify"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <jobs.yaml>", os.Args[0])
	}

	jobPath := os.Args[1]
	f, err := job.LoadFile(jobPath)
	if err != nil {
		log.Fatalf("Failed to load jobs: %v", err)
	}

	fmt.Println("==============================================================================")
	fmt.Println("MAC ARRAY JOB VERIFICATION")
	fmt.Println("==============================================================================")
	fmt.Printf("\nLoaded %d jobs from %s\n\n", len(f.Specs), jobPath)

	fmt.Println("==============================================================================")
	fmt.Println("STAGE 1: LINT CHECK (Wrap & Expectation Validation)")
	fmt.Println("==============================================================================")
	fmt.Println()

	issues := verify.RunLint(f)
	if len(issues) == 0 {
		fmt.Println("LINT PASSED - No issues found")
	} else {
		fmt.Printf("LINT FOUND %d issues:\n\n", len(issues))
		for i, issue := range issues {
			fmt.Printf("Issue %d: %s\n", i+1, issue)
			if issue.Details != nil {
				fmt.Printf("  Details:  %v\n", issue.Details)
			}
		}
	}
	fmt.Println()

	fmt.Println("==============================================================================")
	fmt.Println("STAGE 2: REFERENCE MODEL")
	fmt.Println("==============================================================================")
	fmt.Println()

	jobs, err := f.Jobs()
	if err != nil {
		log.Fatalf("Failed to convert jobs: %v", err)
	}

	for i, j := range jobs {
		fmt.Printf("%-20s %v\n", f.Specs[i].Label(i), verify.Expected(j))
	}
	fmt.Println()

	expectIssues := 0
	for _, issue := range issues {
		if issue.Type == verify.IssueExpect {
			expectIssues++
		}
	}

	if expectIssues > 0 {
		log.Fatalf("job file verification failed with %d expectation issues",
			expectIssues)
	}
}
