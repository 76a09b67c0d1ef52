// Command password asks for a passphrase with masked echo.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zhaopufeng/inquire"
)

func main() {
	p, err := inquire.Password(inquire.Question{
		Name:    "passphrase",
		Message: "Choose a passphrase:",
		Validate: func(_ context.Context, v any, _ inquire.Answers) error {
			if s, _ := v.(string); len(s) < 8 {
				return errors.New("passphrase must be at least 8 characters")
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
	fmt.Printf("Stored a %d-character passphrase.\n", len(fmt.Sprint(answer)))
}
