/*
Package algoviz generates step-by-step visualizations of classic algorithms.

Each generator turns an input into an ordered sequence of steps. A step is a
self-contained snapshot: the data structure as it looked at that moment, the
action that was just performed and a human-readable description. A renderer
can therefore draw any step on its own, jump backwards or scrub freely.

# Algorithms

  - Sorting: bubble, selection, insertion, quick, heap, merge, radix, bucket and counting sort.
  - Binary search tree: insertion followed by an inorder traversal.
  - Linked list: search, insert and remove operations on a per-session list.
  - Stack: push, pop and peek with a bounded capacity.

# Sessions

Linked list operations mutate the "current list" of a session. Sessions are
kept in a ports.ListStore (memory, file, bolt or redis) and access to a
session is serialized, optionally across processes with a DistributedLocker.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/algoviz"
	)

	func main() {
		eng := algoviz.New()
		ctx := context.Background()

		steps, err := eng.Generate(ctx, "bubbleSort", map[string]any{
			"array": []int{5, 2, 9, 1},
		})
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range steps {
			fmt.Println(s.Action, s.Description)
		}

		res, err := eng.LinkedListAction(ctx, "demo", "insertHead", map[string]any{"value": 3})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Info.Message, res.Info.Values)
	}

The same engine backs the HTTP/WebSocket server, the MCP server and the
algoviz CLI.
*/
package algoviz
