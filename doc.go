// Package inquire provides single-question interactive terminal prompts
// with asynchronous answer filtering and validation.
//
// A prompt is described by a Question: a required name, a message, an
// optional default, and optional Filter and Validate functions that may
// block (network lookups, disk checks) without freezing the terminal. While
// they run, a spinner with a configurable caption is shown. A rejected
// answer is displayed beneath the question and the user is re-prompted; the
// prompt resolves exactly once, with the first accepted value.
//
// Built-in variants cover free text, masked passwords, yes/no confirmation,
// and picking from a choice list with fuzzy filtering. Custom variants
// implement the Driver interface and inherit submission handling, question
// rendering, and error reporting.
//
// Quick start:
//
//	p, err := inquire.Input(inquire.Question{
//		Name:    "username",
//		Message: "What is your username?",
//		Validate: func(ctx context.Context, v any, _ inquire.Answers) error {
//			if v == "" {
//				return errors.New("username is required")
//			}
//			return nil
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	answer, err := p.Run(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Hello, %v!\n", answer)
//
// Cross-field logic reads earlier answers through the Answers map passed to
// Filter, Validate, and When:
//
//	answers := inquire.Answers{"role": "admin"}
//	p, err := inquire.Confirm(inquire.Question{
//		Name:    "sudo",
//		Message: "Grant sudo access?",
//		When: func(a inquire.Answers) bool {
//			return a.String("role") == "admin"
//		},
//	}, inquire.WithAnswers(answers))
//
// The package works on Windows, macOS, and Linux; raw keyboard input goes
// through github.com/mattn/go-tty and ANSI output is translated for the
// Windows console by github.com/mattn/go-colorable.
package inquire
