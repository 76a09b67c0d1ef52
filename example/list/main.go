// Command list asks the user to pick a region; typing filters the choices.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/zhaopufeng/inquire"
)

func main() {
	p, err := inquire.List(inquire.Question{
		Name:    "region",
		Message: "Pick a region:",
		Choices: []inquire.Choice{
			{Name: "us-east-1", Value: "use1"},
			{Name: "us-west-2", Value: "usw2"},
			{Name: "eu-central-1", Value: "euc1"},
			{Name: "ap-northeast-1", Value: "apne1"},
		},
	}, inquire.WithColorScheme(inquire.ThemeDark))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	answer, err := p.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Deploying to %v.\n", answer)
}
