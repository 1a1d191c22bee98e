// Command lowindex enumerates low-index congruences of a finitely
// presented semigroup or monoid.
package main

import "github.com/lowindex/sims/cmd/lowindex/cmd"

func main() {
	cmd.Execute()
}
