package algoviz_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/algoviz"
)

// ExampleEngine_Generate runs the stack demonstration and prints its actions.
func ExampleEngine_Generate() {
	eng := algoviz.New()

	steps, err := eng.Generate(context.Background(), "stack", nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range steps {
		fmt.Print(s.Action, " ")
	}
	fmt.Println()

	// Output:
	// init push push push push pop pop peek complete
}

// ExampleEngine_LinkedListAction shows that linked list actions share the
// session's current list.
func ExampleEngine_LinkedListAction() {
	eng := algoviz.New()
	ctx := context.Background()

	res, err := eng.LinkedListAction(ctx, "demo", "insertHead", map[string]any{"value": 3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Info.Message, res.Info.Values)

	res, err = eng.LinkedListAction(ctx, "demo", "remove-tail", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Info.Message, res.Info.Values, "version", res.Info.Version)

	// Output:
	// Insert at head completed [3 6 1 7 4 8]
	// Remove tail completed [3 6 1 7 4] version 2
}
