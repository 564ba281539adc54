// Example program demonstrating the glitter library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// Drop a .glitterrc next to it to see the configured tasks and template.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/glitterhq/glitter/pkg/glitter"
)

func main() {
	planPush()

	if _, err := os.Stat(".glitterrc"); err == nil {
		showConfig()
	}
}

func planPush() {
	res, err := glitter.Plan(glitter.Options{
		Action:    "push",
		Arguments: []string{"feat", "example", "show the library API"},
		Branch:    "main",
	})
	if err != nil {
		log.Fatalf("planning failed: %v", err)
	}

	fmt.Println("=== Push Plan ===")
	fmt.Printf("message: %s\n", res.Message)
	for _, command := range res.Commands {
		fmt.Printf("$ %s\n", command)
	}
	fmt.Println()
}

func showConfig() {
	cfg, err := glitter.LoadConfig(".glitterrc")
	if err != nil {
		log.Fatalf("loading .glitterrc failed: %v", err)
	}

	fmt.Println("=== Configuration ===")
	fmt.Printf("template:     %s\n", cfg.CommitMessageTemplate())
	fmt.Printf("custom tasks: %v\n", cfg.CustomTasks())
	fmt.Printf("hooks:        %v\n", cfg.Hooks())
}
