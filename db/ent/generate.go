//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates gen/ent from the schemas in db/ent/schema.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/edulend/loanassist/gen/ent",
			Schema:  "github.com/edulend/loanassist/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
