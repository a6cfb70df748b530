package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aardvarkk/argh"
)

func main() {
	var (
		help        bool
		boolValue   bool
		floatValue  float64
		intValue    int
		stringValue string
		multiValue  []float64
		multiString []string
	)

	a := argh.New()
	a.AddFlag(&help, "--help", "Display this message")
	argh.AddOption(a, &boolValue, false, "--boolvalue", "True? False?")
	argh.AddOption(a, &floatValue, 3.14, "--floatvalue", "Get real")
	argh.AddOption(a, &intValue, 123, "--intvalue", "Making numbers whole")
	argh.AddOption(a, &stringValue, "It's a default", "--stringvalue", "Tell me a story")
	argh.AddMultiOption(a, &multiValue, "1,2,3", "--multivalue", "The more the merrier")
	argh.AddMultiOption(a, &multiString, "one,two,three", "--multistringvalue", "It's so easy!")

	// A missing option file just means we run with defaults.
	if err := a.Load("argh.opts"); err != nil && !errors.Is(err, argh.ErrConfigNotFound) {
		fmt.Fprintf(os.Stderr, "loading argh.opts: %v\n", err)
		os.Exit(1)
	}
	a.Parse(os.Args[1:])

	fmt.Println(a.Usage())

	if a.IsParsed("--help") {
		return
	}

	if missing := a.MissingRequired(); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "missing required options: %v\n", missing)
		os.Exit(1)
	}

	fmt.Println("We have liftoff...")
	fmt.Printf("int=%d float=%g string=%q multi=%v multistring=%v extra=%v\n",
		intValue, floatValue, stringValue, multiValue, multiString, a.RemainingArgs())

	// A second registry with a custom delimiter for awkward element text.
	adv := argh.New(argh.WithDelimiter('|'))
	var complex []string
	argh.AddMultiOption(adv, &complex, "one|two", "--complex", "")
	adv.Parse([]string{"--complex", "o n e|t w o|t h r e e"})
	fmt.Printf("complex=%v\n", complex)
}
