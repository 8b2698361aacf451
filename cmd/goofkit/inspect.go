package main

import (
	"fmt"

	"github.com/mgomes/goofscript/goof"
)

func checkCommand(args []string) error {
	_, _, err := compileProgramArg("check", args)
	return err
}

// tokensCommand prints one token per line as line:column, type and the
// quoted literal.
func tokensCommand(args []string) error {
	_, input, err := readProgramArg("tokens", args)
	if err != nil {
		return err
	}
	tokens, err := goof.Tokenize(goof.NewSource([]byte(input)))
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}
	for _, tok := range tokens {
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
	}
	return nil
}

func astCommand(args []string) error {
	_, program, err := compileProgramArg("ast", args)
	if err != nil {
		return err
	}
	for i, stmt := range program.Statements() {
		rendered := goof.FormatStatement(stmt)
		if rendered == "" {
			fmt.Printf("%d\n", i+1)
			continue
		}
		fmt.Printf("%d\t%s\n", i+1, rendered)
	}
	return nil
}
