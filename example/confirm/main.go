// Command confirm asks a yes/no question gated on an earlier answer.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/zhaopufeng/inquire"
)

func main() {
	answers := inquire.Answers{"role": "admin"}

	p, err := inquire.Confirm(inquire.Question{
		Name:    "sudo",
		Message: "Grant sudo access?",
		Default: true,
		When: func(a inquire.Answers) bool {
			return a.String("role") == "admin"
		},
	}, inquire.WithAnswers(answers))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	answer, err := p.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("sudo: %v\n", answer)
}
