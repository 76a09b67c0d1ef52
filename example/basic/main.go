// Command basic asks for a name with slow validation to show the spinner.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/zhaopufeng/inquire"
)

func main() {
	p, err := inquire.Input(inquire.Question{
		Name:           "name",
		Message:        "What is your name?",
		Default:        "anonymous",
		ValidatingText: "checking name...",
		Filter: func(_ context.Context, v any, _ inquire.Answers) (any, error) {
			s, _ := v.(string)
			return strings.TrimSpace(s), nil
		},
		Validate: func(_ context.Context, v any, _ inquire.Answers) error {
			time.Sleep(500 * time.Millisecond) // pretend to look the name up
			if s, _ := v.(string); len(s) < 2 {
				return errors.New("name must be at least 2 characters")
			}
			return nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	answer, err := p.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Hello, %v!\n", answer)
}
